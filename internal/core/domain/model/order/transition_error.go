package order

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
)

// TransitionErrorKind classifies a rejected transition so callers can branch
// without parsing messages.
type TransitionErrorKind int

const (
	// IllegalTransition: the target is neither the next step nor Cancelled.
	IllegalTransition TransitionErrorKind = iota + 1
	// TerminalStateViolation: the order is already Delivered or Cancelled.
	TerminalStateViolation
	// AlreadyAssigned: another rider holds the order.
	AlreadyAssigned
	// Forbidden: the actor's role may not request this transition.
	Forbidden
)

var (
	ErrIllegalTransition      = errors.New("illegal transition")
	ErrTerminalStateViolation = errors.New("order is in a terminal state")
	ErrAlreadyAssigned        = errors.New("order is already assigned")
	ErrForbidden              = errors.New("transition is not permitted for actor")
)

func (k TransitionErrorKind) String() string {
	switch k {
	case IllegalTransition:
		return "IllegalTransition"
	case TerminalStateViolation:
		return "TerminalStateViolation"
	case AlreadyAssigned:
		return "AlreadyAssigned"
	case Forbidden:
		return "Forbidden"
	default:
		return "Unknown"
	}
}

func (k TransitionErrorKind) sentinel() error {
	switch k {
	case IllegalTransition:
		return ErrIllegalTransition
	case TerminalStateViolation:
		return ErrTerminalStateViolation
	case AlreadyAssigned:
		return ErrAlreadyAssigned
	case Forbidden:
		return ErrForbidden
	default:
		return errors.New("unknown transition error")
	}
}

// TransitionError is returned by Order.Transition. The order it refers to is
// left exactly as it was before the call.
type TransitionError struct {
	Kind    TransitionErrorKind
	OrderID kernel.UUID
	From    Status
	To      Status
}

func newTransitionError(kind TransitionErrorKind, o *Order, to Status) *TransitionError {
	return &TransitionError{
		Kind:    kind,
		OrderID: o.id,
		From:    o.status,
		To:      to,
	}
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: order %s cannot move from %s to %s", e.Kind.sentinel(), e.OrderID, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return e.Kind.sentinel()
}

// KindOf extracts the transition error kind from err, 0 when err is not one.
func KindOf(err error) TransitionErrorKind {
	var te *TransitionError
	if errors.As(err, &te) {
		return te.Kind
	}
	return 0
}
