package errors

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidState       = errors.New("invalid state for requested operation")
	ErrNotEligible        = errors.New("not eligible")
)

// InsufficientStockError reports how far a requested quantity overshoots the
// available stock of one catalog item.
type InsufficientStockError struct {
	SweetID   string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for sweet %s: available %d, requested %d", e.SweetID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// LineItemNotFoundError identifies which requested order line referenced a
// missing catalog item.
type LineItemNotFoundError struct {
	SweetID string
}

func (e *LineItemNotFoundError) Error() string {
	return fmt.Sprintf("sweet %s not found", e.SweetID)
}

func (e *LineItemNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
