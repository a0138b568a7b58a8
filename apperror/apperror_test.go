package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad")))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("wrapped: %w", NotFound("gone"))))
	assert.Equal(t, KindPersistence, KindOf(errors.New("driver exploded")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestMessage(t *testing.T) {
	err := Persistence("Failed to add slot", errors.New("duplicate key"))
	assert.Equal(t, "Failed to add slot", Message(err))
	assert.Equal(t, "Failed to add slot: duplicate key", err.Error())
	assert.Equal(t, "plain", Message(errors.New("plain")))
	assert.Equal(t, "", Message(nil))
}

func TestErrorIsMatchesKindAndMessage(t *testing.T) {
	sentinel := Unauthenticated("Not authenticated")
	assert.True(t, errors.Is(Unauthenticated("Not authenticated"), sentinel))
	assert.False(t, errors.Is(Unauthenticated("Unauthorized"), sentinel))
	assert.False(t, errors.Is(NotFound("Not authenticated"), sentinel))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := Persistence("Failed to load slots", cause)
	assert.True(t, errors.Is(err, cause))
}
