package queries

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderView is the read model of one order as shown on any screen.
type OrderView struct {
	ID                 kernel.UUID
	Number             int
	Workflow           order.Workflow
	Status             order.Status
	DeliveryPhase      order.Status
	StepIndex          int
	ProgressPercent    int
	CustomerID         kernel.UUID
	DeliveryPersonID   *kernel.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Price              kernel.Money
	Items              []ItemView
	Address            *AddressView
	CancellationReason string
	Version            int
}

type ItemView struct {
	Service  string
	Quantity int
}

type AddressView struct {
	Street string
	City   string
}

// NewOrderView projects an aggregate onto its read model.
func NewOrderView(o *order.Order) OrderView {
	items := o.Items()
	view := OrderView{
		ID:                 o.ID(),
		Number:             o.Number(),
		Workflow:           o.Workflow(),
		Status:             o.Status(),
		DeliveryPhase:      order.DeliveryPhase(o.Status()),
		StepIndex:          o.StepIndex(),
		ProgressPercent:    o.ProgressPercent(),
		CustomerID:         o.CustomerID(),
		DeliveryPersonID:   o.DeliveryPersonID(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
		Price:              o.Price(),
		Items:              make([]ItemView, 0, len(items)),
		CancellationReason: o.CancellationReason(),
		Version:            o.Version(),
	}
	for _, item := range items {
		view.Items = append(view.Items, ItemView{Service: item.Service(), Quantity: item.Quantity()})
	}
	if address := o.Address(); address != nil {
		view.Address = &AddressView{Street: address.Street(), City: address.City()}
	}
	return view
}

// NewOrderViews projects a list, preserving order.
func NewOrderViews(orders []*order.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o))
	}
	return views
}
