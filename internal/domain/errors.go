package domain

import (
	"errors"
	"fmt"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound          = errors.New("resource not found")
	ErrDuplicate         = errors.New("duplicate resource")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInvalidInput      = errors.New("invalid input")
	ErrConflict          = errors.New("conflict with current state")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports which liquor ran short and by how much.
// It is an expected business outcome, not a failure: callers surface it to the
// end user so they can adjust the order. Matches ErrInsufficientStock under errors.Is.
type InsufficientStockError struct {
	LiquorID         string
	Brand            string
	ShortfallMl      int
	ShortfallBottles int
}

func (e *InsufficientStockError) Error() string {
	name := e.Brand
	if name == "" {
		name = e.LiquorID
	}
	if e.ShortfallBottles > 0 {
		return fmt.Sprintf("insufficient stock of %s: %d bottle(s) short", name, e.ShortfallBottles)
	}
	return fmt.Sprintf("insufficient stock of %s: %d ml short", name, e.ShortfallMl)
}

// Is lets errors.Is(err, ErrInsufficientStock) succeed on the typed error.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
