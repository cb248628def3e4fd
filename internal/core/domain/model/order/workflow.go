package order

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Workflow selects the status sequence an order advances through.
// It is fixed when the order is booked.
type Workflow string

const (
	// Full is the laundry workflow tracked by customers.
	Full Workflow = "full"
	// Delivery is the coarse pickup and drop-off workflow used by rider-only jobs.
	Delivery Workflow = "delivery"
)

// ParseWorkflow accepts "full" or "delivery"; an empty string means Full.
func ParseWorkflow(s string) (Workflow, error) {
	switch w := Workflow(strings.ToLower(strings.TrimSpace(s))); w {
	case "":
		return Full, nil
	case Full, Delivery:
		return w, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("workflow is invalid", fmt.Errorf("%q is not a valid workflow", s))
	}
}

// Validate rejects anything but Full and Delivery.
func (w Workflow) Validate() error {
	if w != Full && w != Delivery {
		return errs.NewValueIsInvalidErrorWithCause("workflow is invalid", fmt.Errorf("%q is not a valid workflow", string(w)))
	}
	return nil
}

func (w Workflow) String() string {
	return string(w)
}

// Steps returns the ordered non-cancelled statuses of the workflow.
func (w Workflow) Steps() []Status {
	switch w {
	case Full:
		return []Status{Pending, Confirmed, PickedUp, Processing, ReadyForDelivery, OutForDelivery, Delivered}
	case Delivery:
		return []Status{Pending, InTransit, Delivered}
	default:
		return nil
	}
}

// StepIndex returns the ordinal of s within the workflow, -1 when s is Cancelled
// or not part of it.
func (w Workflow) StepIndex(s Status) int {
	for i, step := range w.Steps() {
		if step == s {
			return i
		}
	}
	return -1
}

// Contains reports whether s is a step of the workflow.
func (w Workflow) Contains(s Status) bool {
	return w.StepIndex(s) >= 0
}

// Next returns the single status that may follow s.
func (w Workflow) Next(s Status) (Status, bool) {
	steps := w.Steps()
	i := w.StepIndex(s)
	if i < 0 || i+1 >= len(steps) {
		return Unknown, false
	}
	return steps[i+1], true
}

// ProgressPercent maps s onto 0..100 for progress bars. Cancelled orders report 0
// and are drawn as a separate branch by callers.
func (w Workflow) ProgressPercent(s Status) int {
	steps := w.Steps()
	i := w.StepIndex(s)
	if i < 0 || len(steps) < 2 {
		return 0
	}
	return i * 100 / (len(steps) - 1)
}

// beforePickup reports whether the parcel is still with the customer.
func (w Workflow) beforePickup(s Status) bool {
	i := w.StepIndex(s)
	for j, step := range w.Steps() {
		if step.IsClaim() {
			return i >= 0 && i < j
		}
	}
	return false
}
