package telehealth

import (
	"strings"
	"time"

	"github.com/ariebrainware/healthghar/apperror"
)

var (
	ErrWindowRequired     = apperror.Validation("Start time and end time are required")
	ErrInvalidTimeFormat  = apperror.Validation("Invalid time format")
	ErrStartNotBeforeEnd  = apperror.Validation("Start time must be before end time")
	ErrInvalidBookingDate = apperror.Validation("Booking date must be YYYY-MM-DD")
	ErrInvalidSlotTime    = apperror.Validation("Slot time must be HH:MM:SS")
)

// slotLayouts are the accepted spellings of a slot boundary.
var slotLayouts = []string{
	"15:04",
	"15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

const dateLayout = "2006-01-02"

func parseSlotTime(v string) (time.Time, bool) {
	for _, layout := range slotLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ValidateWindow checks a proposed slot window. Ordering is a plain string
// comparison of the submitted values, so both ends should share a format.
// It never looks at other slots.
func ValidateWindow(start, end string) error {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		return ErrWindowRequired
	}
	if _, ok := parseSlotTime(start); !ok {
		return ErrInvalidTimeFormat
	}
	if _, ok := parseSlotTime(end); !ok {
		return ErrInvalidTimeFormat
	}
	if start >= end {
		return ErrStartNotBeforeEnd
	}
	return nil
}

// ClockTime returns the HH:MM:SS time of day of a slot boundary.
func ClockTime(v string) (string, error) {
	t, ok := parseSlotTime(strings.TrimSpace(v))
	if !ok {
		return "", ErrInvalidSlotTime
	}
	return t.Format("15:04:05"), nil
}

// ValidDate reports whether v is a YYYY-MM-DD calendar date.
func ValidDate(v string) bool {
	_, err := time.Parse(dateLayout, v)
	return err == nil
}

// ValidSlotTime reports whether v is an accepted slot boundary spelling.
func ValidSlotTime(v string) bool {
	_, ok := parseSlotTime(strings.TrimSpace(v))
	return ok
}
