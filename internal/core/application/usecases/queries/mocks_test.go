package queries_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) ListAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

// 2026-10-15 is a Thursday.
var now = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time {
	return now
}

type stored struct {
	number   int
	status   order.Status
	customer kernel.UUID
	rider    *kernel.UUID
	at       time.Time
}

func restore(t *testing.T, s stored) *order.Order {
	t.Helper()
	item, err := order.NewItem("dry_cleaning", 2)
	require.NoError(t, err)
	price, err := kernel.MoneyFromString("40.00")
	require.NoError(t, err)
	address, err := kernel.NewAddress("5 Canal Rd", "Leeds")
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.State{
		ID:               kernel.NewUUID(),
		Number:           s.number,
		Workflow:         order.Full,
		Status:           s.status,
		CustomerID:       s.customer,
		DeliveryPersonID: s.rider,
		CreatedAt:        s.at,
		UpdatedAt:        s.at,
		Price:            price,
		Items:            []order.Item{item},
		Address:          &address,
		Version:          3,
	})
	require.NoError(t, err)
	return o
}

func newActor(role actor.Role) actor.Actor {
	return actor.MustNewActor(kernel.NewUUID(), role)
}
