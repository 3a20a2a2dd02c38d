package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderNotFound is returned when a settlement or status change targets
	// an order that does not exist. Settlement checks this before any write.
	ErrOrderNotFound = errors.New("order not found")
	// ErrMenuItemNotFound is returned by catalog updates against a missing item.
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// ValidationError rejects a malformed request before any store access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientStockError aborts order creation when a conditional decrement
// affects zero rows. Available is the stock observed after the failed attempt,
// so callers can tell the customer how many are actually left.
type InsufficientStockError struct {
	ItemID    int64
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for item %d (%s): requested %d, available %d",
		e.ItemID, e.Name, e.Requested, e.Available)
}

// ConflictError surfaces a generated code collision that persisted through a
// regeneration retry.
type ConflictError struct {
	Code string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("code %q already exists", e.Code)
}

// PersistenceError wraps a store-level failure inside a unit of work. The unit
// is rolled back and the error is not retried automatically.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
