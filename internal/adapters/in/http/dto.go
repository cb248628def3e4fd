package http

import (
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/services"
)

// NewOrder is the body of POST /api/v1/orders.
type NewOrder struct {
	Number     *int     `json:"number,omitempty"`
	CustomerID *string  `json:"customerId,omitempty"`
	Workflow   *string  `json:"workflow,omitempty"`
	Price      string   `json:"price"`
	Items      []Item   `json:"items"`
	Address    *Address `json:"address,omitempty"`
}

// Transition is the body of POST /api/v1/orders/{orderId}/transitions.
type Transition struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type Item struct {
	Service  string `json:"service"`
	Quantity int    `json:"quantity"`
}

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

type Order struct {
	ID                 string     `json:"id"`
	Number             int        `json:"number"`
	Workflow           string     `json:"workflow"`
	Status             string     `json:"status"`
	DeliveryPhase      string     `json:"deliveryPhase"`
	StepIndex          int        `json:"stepIndex"`
	ProgressPercent    int        `json:"progressPercent"`
	CustomerID         string     `json:"customerId"`
	DeliveryPersonID   *string    `json:"deliveryPersonId,omitempty"`
	CreatedAt          *time.Time `json:"createdAt,omitempty"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
	Price              string     `json:"price"`
	Items              []Item     `json:"items"`
	Address            *Address   `json:"address,omitempty"`
	CancellationReason string     `json:"cancellationReason,omitempty"`
	Version            int        `json:"version"`
}

type WeekBucket struct {
	Label         string    `json:"label"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Earnings      string    `json:"earnings"`
	DeliveryCount int       `json:"deliveryCount"`
}

type Metrics struct {
	CompletionRate    int          `json:"completionRate"`
	TotalEarnings     string       `json:"totalEarnings"`
	WeeklyEarnings    string       `json:"weeklyEarnings"`
	MonthlyEarnings   string       `json:"monthlyEarnings"`
	WeeklyDeliveries  int          `json:"weeklyDeliveries"`
	MonthlyDeliveries int          `json:"monthlyDeliveries"`
	Weeks             []WeekBucket `json:"weeks"`
}

func toOrder(view queries.OrderView) Order {
	response := Order{
		ID:                 view.ID.String(),
		Number:             view.Number,
		Workflow:           view.Workflow.String(),
		Status:             view.Status.String(),
		DeliveryPhase:      view.DeliveryPhase.String(),
		StepIndex:          view.StepIndex,
		ProgressPercent:    view.ProgressPercent,
		CustomerID:         view.CustomerID.String(),
		CreatedAt:          optionalTime(view.CreatedAt),
		UpdatedAt:          optionalTime(view.UpdatedAt),
		Price:              view.Price.String(),
		Items:              make([]Item, len(view.Items)),
		CancellationReason: view.CancellationReason,
		Version:            view.Version,
	}
	if view.DeliveryPersonID != nil {
		id := view.DeliveryPersonID.String()
		response.DeliveryPersonID = &id
	}
	for i, item := range view.Items {
		response.Items[i] = Item{Service: item.Service, Quantity: item.Quantity}
	}
	if view.Address != nil {
		response.Address = &Address{Street: view.Address.Street, City: view.Address.City}
	}
	return response
}

func toOrders(views []queries.OrderView) []Order {
	response := make([]Order, len(views))
	for i, view := range views {
		response[i] = toOrder(view)
	}
	return response
}

func toMetrics(m services.Metrics) Metrics {
	response := Metrics{
		CompletionRate:    m.CompletionRate,
		TotalEarnings:     m.TotalEarnings.String(),
		WeeklyEarnings:    m.WeeklyEarnings.String(),
		MonthlyEarnings:   m.MonthlyEarnings.String(),
		WeeklyDeliveries:  m.WeeklyDeliveries,
		MonthlyDeliveries: m.MonthlyDeliveries,
		Weeks:             make([]WeekBucket, len(m.Weeks)),
	}
	for i, week := range m.Weeks {
		response.Weeks[i] = WeekBucket{
			Label:         week.Label,
			Start:         week.Start,
			End:           week.End,
			Earnings:      week.Earnings.String(),
			DeliveryCount: week.DeliveryCount,
		}
	}
	return response
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
