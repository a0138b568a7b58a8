package telehealth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateWindow(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       error
	}{
		{"clock times", "09:00", "09:30", nil},
		{"clock times with seconds", "09:00:00", "09:30:00", nil},
		{"datetime local", "2025-01-10T09:00", "2025-01-10T09:30", nil},
		{"rfc3339", "2025-01-10T09:00:00Z", "2025-01-10T09:30:00Z", nil},
		{"space separated", "2025-01-10 09:00:00", "2025-01-10 10:00:00", nil},
		{"empty start", "", "09:30", ErrWindowRequired},
		{"blank end", "09:00", "   ", ErrWindowRequired},
		{"garbage", "nine", "ten", ErrInvalidTimeFormat},
		{"equal", "09:00", "09:00", ErrStartNotBeforeEnd},
		{"reversed", "10:00", "09:00", ErrStartNotBeforeEnd},
		{"reversed across dates", "2025-01-11T09:00", "2025-01-10T10:00", ErrStartNotBeforeEnd},
		{"equal datetimes", "2025-01-10T09:00", "2025-01-10T09:00", ErrStartNotBeforeEnd},
		// Lexical comparison: a window crossing midnight is rejected.
		{"across midnight", "23:30", "00:30", ErrStartNotBeforeEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWindow(tt.start, tt.end)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClockTime(t *testing.T) {
	got, err := ClockTime("09:00")
	assert.NoError(t, err)
	assert.Equal(t, "09:00:00", got)

	got, err = ClockTime("2025-01-10T14:15")
	assert.NoError(t, err)
	assert.Equal(t, "14:15:00", got)

	_, err = ClockTime("9am")
	assert.ErrorIs(t, err, ErrInvalidSlotTime)
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2025-01-10"))
	assert.False(t, ValidDate("10/01/2025"))
	assert.False(t, ValidDate("2025-02-30"))
}

func TestValidSlotTime(t *testing.T) {
	for _, v := range []string{"09:00", " 09:00:00 ", "2025-01-10T09:00", "2025-01-10 09:00:00", "2025-01-10T09:00:00+05:45"} {
		assert.True(t, ValidSlotTime(v), v)
	}
	for _, v := range []string{"", "9am", "25:00", "2025-01-10"} {
		assert.False(t, ValidSlotTime(v), v)
	}
}
