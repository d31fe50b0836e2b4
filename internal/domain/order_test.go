package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	for _, input := range []string{"ACTIVE", "active", "Active"} {
		status, ok := ParseStatus(input)
		assert.True(t, ok, input)
		assert.Equal(t, StatusActive, status)
	}

	for _, input := range []string{"", "UNKNOWN", "CANCELED"} {
		_, ok := ParseStatus(input)
		assert.False(t, ok, input)
	}
}

func TestCancellable(t *testing.T) {
	assert.True(t, StatusPending.Cancellable())
	assert.True(t, StatusActive.Cancellable())

	assert.False(t, StatusFilled.Cancellable())
	assert.False(t, StatusCancelled.Cancellable())
	assert.False(t, StatusExpired.Cancellable())
}

func TestInvalidTransitionError(t *testing.T) {
	err := NewInvalidTransitionError(StatusFilled)

	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Contains(t, err.Error(), "FILLED")
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{}
	errs.Add("makerAsset", "Missing required field in data: makerAsset")
	errs.Add("salt", "Must be a decimal integer string.")

	assert.Len(t, errs, 2)
	assert.Contains(t, errs.Error(), "2 field error(s)")
}
