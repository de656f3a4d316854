package order

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("order not found")
	ErrInvalidState    = errors.New("operation not allowed in current order status")
	ErrForbidden       = errors.New("staff role not allowed for this operation")
	ErrPaymentRequired = errors.New("order has no completed payment")
	ErrAlreadyPaid     = errors.New("order is already paid")
	ErrTableInactive   = errors.New("table is not active")
	ErrInvalidRequest  = errors.New("invalid request")

	// errDuplicateNumber is the internal signal that the sequential
	// order number raced another creation; the caller retries with the
	// timestamp fallback.
	errDuplicateNumber = errors.New("order number already taken")
)

// ItemUnavailableError rejects the whole order when any requested item
// is flagged unavailable. No partial orders.
type ItemUnavailableError struct {
	ItemID string
	Name   string
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("item %s is not available", e.Name)
}

// TableConflictError reports that the requested table is already bound
// to a live order, identifying it so the caller can redirect.
type TableConflictError struct {
	TableID            string
	ConflictingOrderID string
}

func (e *TableConflictError) Error() string {
	return fmt.Sprintf("table %s is occupied by order %s", e.TableID, e.ConflictingOrderID)
}

// BindWarningError surfaces a table-binding failure that is not a plain
// conflict. The creation transaction rolls back, but callers must see
// this distinctly from a clean validation failure so operators can
// reconcile the table state.
type BindWarningError struct {
	TableID string
	Err     error
}

func (e *BindWarningError) Error() string {
	return fmt.Sprintf("table %s binding failed: %v", e.TableID, e.Err)
}

func (e *BindWarningError) Unwrap() error { return e.Err }
