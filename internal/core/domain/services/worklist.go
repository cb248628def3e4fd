package services

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// Tab is one of the worklist views an actor can open.
type Tab string

const (
	TabActive    Tab = "active"
	TabAvailable Tab = "available"
	TabHistory   Tab = "history"
)

// ParseTab accepts tab names case-insensitively; an empty string means TabActive.
func ParseTab(s string) (Tab, error) {
	switch t := Tab(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return TabActive, nil
	case TabActive, TabAvailable, TabHistory:
		return t, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("tab is invalid", fmt.Errorf("%q is not a valid tab", s))
	}
}

// WorklistResolver derives an actor's worklist from the shared order set.
type WorklistResolver struct{}

func NewWorklistResolver() WorklistResolver {
	return WorklistResolver{}
}

// ListForRole returns the orders shown to actorID on the given tab:
//
//	customer  active: all own orders       available: none               history: own terminal
//	delivery  active: carried, in transit  available: unassigned, ready  history: carried, terminal
//	staff     active: all non-terminal     available: none               history: all terminal
//
// Results are sorted newest first; the input slice is not modified.
func (r WorklistResolver) ListForRole(
	role actor.Role,
	actorID kernel.UUID,
	tab Tab,
	orders []*order.Order,
) ([]*order.Order, error) {
	if err := errors.Join(role.Validate(), actorID.Validate()); err != nil {
		return nil, err
	}

	var keep func(o *order.Order) bool
	switch tab {
	case TabActive:
		keep = func(o *order.Order) bool { return r.isActive(role, actorID, o) }
	case TabAvailable:
		keep = func(o *order.Order) bool { return role == actor.Delivery && IsAvailableForClaim(o) }
	case TabHistory:
		keep = func(o *order.Order) bool { return o.Status().IsTerminal() && r.inScope(role, actorID, o) }
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("tab is invalid", fmt.Errorf("%q is not a valid tab", string(tab)))
	}

	return newestFirst(filter(orders, keep)), nil
}

// InScope returns the orders an actor may see at all: customers their bookings,
// riders the orders they carry, staff everything. Metrics are computed over this set.
func (r WorklistResolver) InScope(role actor.Role, actorID kernel.UUID, orders []*order.Order) []*order.Order {
	return filter(orders, func(o *order.Order) bool { return r.inScope(role, actorID, o) })
}

// IsAvailableForClaim reports whether any rider may claim the order: unassigned and
// ready_for_delivery in the full workflow, or pending in the delivery workflow.
func IsAvailableForClaim(o *order.Order) bool {
	if o.DeliveryPersonID() != nil {
		return false
	}
	switch o.Workflow() {
	case order.Full:
		return o.Status() == order.ReadyForDelivery
	case order.Delivery:
		return o.Status() == order.Pending
	default:
		return false
	}
}

func (r WorklistResolver) isActive(role actor.Role, actorID kernel.UUID, o *order.Order) bool {
	// Customers follow their bookings through to the end, terminal ones included.
	if role == actor.Customer {
		return o.CustomerID().IsEqual(actorID)
	}
	if o.Status().IsTerminal() {
		return false
	}
	if role == actor.Delivery {
		return o.IsAssignedTo(actorID) && order.DeliveryPhase(o.Status()) == order.InTransit
	}
	return r.inScope(role, actorID, o)
}

func (r WorklistResolver) inScope(role actor.Role, actorID kernel.UUID, o *order.Order) bool {
	switch role {
	case actor.Customer:
		return o.CustomerID().IsEqual(actorID)
	case actor.Delivery:
		return o.IsAssignedTo(actorID)
	case actor.Vendor, actor.Laundry, actor.Admin:
		return true
	default:
		return false
	}
}

func filter(orders []*order.Order, keep func(o *order.Order) bool) []*order.Order {
	out := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o != nil && keep(o) {
			out = append(out, o)
		}
	}
	return out
}

func newestFirst(orders []*order.Order) []*order.Order {
	slices.SortStableFunc(orders, func(a, b *order.Order) int {
		if c := b.CreatedAt().Compare(a.CreatedAt()); c != 0 {
			return c
		}
		return b.Number() - a.Number()
	})
	return orders
}
