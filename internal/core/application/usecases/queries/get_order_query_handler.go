package queries

import (
	"context"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// GetOrderQueryHandler returns a single order. Orders outside the actor's
// visibility are reported as not found.
//
// Visibility: customers see their own orders; riders see orders they carry and
// orders open for claim; staff see everything.
type GetOrderQueryHandler struct {
	reader OrderReader
}

func NewGetOrderQueryHandler(reader OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	found, err := h.reader.Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	if !VisibleTo(query.By(), found) {
		return OrderView{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	return NewOrderView(found), nil
}

// VisibleTo reports whether the actor may see the order at all.
func VisibleTo(by actor.Actor, o *order.Order) bool {
	switch by.Role() {
	case actor.Customer:
		return o.CustomerID().IsEqual(by.ID())
	case actor.Delivery:
		return o.IsAssignedTo(by.ID()) || services.IsAvailableForClaim(o)
	default:
		return by.Role().IsStaff()
	}
}
