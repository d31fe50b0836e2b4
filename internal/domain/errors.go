package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateOrder    = errors.New("order already exists")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("cannot cancel order")
	ErrMissingParameter  = errors.New("makerAsset and takerAsset parameters required")
)

// NewInvalidTransitionError wraps ErrInvalidTransition with the status that
// blocked the cancel, so callers can surface it in the response message.
func NewInvalidTransitionError(current OrderStatus) error {
	return fmt.Errorf("%w with status: %s", ErrInvalidTransition, current)
}

// ValidationErrors is a field-keyed map of submission validation failures.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	return fmt.Sprintf("invalid order data: %d field error(s)", len(v))
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}
