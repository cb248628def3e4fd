package order

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Status is the lifecycle state of an order. Both workflows draw from this one
// enumeration: the full workflow uses Pending through Delivered, the delivery
// workflow uses Pending, InTransit and Delivered. Cancelled ends either one.
//
//	full:     Pending -> Confirmed -> PickedUp -> Processing -> ReadyForDelivery -> OutForDelivery -> Delivered
//	delivery: Pending -> InTransit -> Delivered
//	any non-terminal state -> Cancelled
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota
	Pending
	Confirmed
	PickedUp
	Processing
	ReadyForDelivery
	OutForDelivery
	Delivered
	Cancelled
	InTransit
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "unknown",
		Pending:          "pending",
		Confirmed:        "confirmed",
		PickedUp:         "picked_up",
		Processing:       "processing",
		ReadyForDelivery: "ready_for_delivery",
		OutForDelivery:   "out_for_delivery",
		Delivered:        "delivered",
		Cancelled:        "cancelled",
		InTransit:        "in_transit",
	}
}

// ParseStatus maps a wire name such as "ready_for_delivery" to its Status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > InTransit {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case wire name, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is accepted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsClaim reports whether this status is one a rider takes an order into when
// collecting it. The first claim status of a workflow marks the pickup.
func (s Status) IsClaim() bool {
	return s == PickedUp || s == OutForDelivery || s == InTransit
}

// StepIndex returns the position of s in the full workflow, 0 for Pending up to
// 6 for Delivered. Cancelled, InTransit and invalid values yield -1.
func StepIndex(s Status) int {
	return Full.StepIndex(s)
}

// DeliveryPhase projects a status onto the rider-facing vocabulary.
// Everything between pickup and hand-over collapses into InTransit.
func DeliveryPhase(s Status) Status {
	switch s {
	case Pending, Confirmed:
		return Pending
	case PickedUp, Processing, ReadyForDelivery, OutForDelivery, InTransit:
		return InTransit
	case Delivered, Cancelled:
		return s
	default:
		return Unknown
	}
}
