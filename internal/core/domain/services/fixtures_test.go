package services_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	number    int
	workflow  order.Workflow
	status    order.Status
	customer  kernel.UUID
	rider     *kernel.UUID
	createdAt time.Time
	updatedAt time.Time
}

func restore(t *testing.T, fx orderFixture) *order.Order {
	t.Helper()

	item, err := order.NewItem("wash_and_fold", 1)
	require.NoError(t, err)

	if fx.workflow == "" {
		fx.workflow = order.Full
	}
	if fx.number == 0 {
		fx.number = 1
	}
	if fx.customer.Validate() != nil {
		fx.customer = kernel.NewUUID()
	}

	o, err := order.RestoreOrder(order.State{
		ID:               kernel.NewUUID(),
		Number:           fx.number,
		Workflow:         fx.workflow,
		Status:           fx.status,
		CustomerID:       fx.customer,
		DeliveryPersonID: fx.rider,
		CreatedAt:        fx.createdAt,
		UpdatedAt:        fx.updatedAt,
		Price:            kernel.ZeroMoney(),
		Items:            []order.Item{item},
	})
	require.NoError(t, err)
	return o
}

func day(year int, month time.Month, d, hour int) time.Time {
	return time.Date(year, month, d, hour, 0, 0, 0, time.UTC)
}
