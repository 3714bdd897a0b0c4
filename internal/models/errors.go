package models

import (
	"errors"
	"fmt"
)

// ErrLock signals that a store could not acquire its internal mutual-exclusion
// primitive. The in-memory stores never produce it (a sync.Mutex cannot fail),
// but alternative store implementations report contention through it and the
// HTTP layer maps it to an internal error.
var ErrLock = errors.New("storage lock unavailable")

// NotFoundKind names the resource a NotFoundError refers to.
type NotFoundKind string

const (
	KindProduct NotFoundKind = "product"
	KindOrder   NotFoundKind = "order"
)

// NotFoundError reports a missing product or order.
type NotFoundError struct {
	Kind NotFoundKind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Kind, e.ID)
}

// Is matches any NotFoundError of the same kind, so callers can write
// errors.Is(err, &NotFoundError{Kind: KindOrder}) without knowing the id.
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.ID == "" || t.ID == e.ID)
}

// NewNotFound returns a NotFoundError for the given resource kind and id.
func NewNotFound(kind NotFoundKind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// IsNotFound reports whether err is a NotFoundError of the given kind.
func IsNotFound(err error, kind NotFoundKind) bool {
	return errors.Is(err, &NotFoundError{Kind: kind})
}

// ValidationError reports a well-formed request that the domain rejects.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Sentinel validation errors. Compare with errors.Is.
var (
	// ErrEmptyCart rejects a checkout on a cart with no lines.
	ErrEmptyCart = &ValidationError{Reason: "cart is empty"}
	// ErrCannotCancelOrder rejects cancellation of an order that is no
	// longer pending payment.
	ErrCannotCancelOrder = &ValidationError{Reason: "order can no longer be cancelled"}
)
