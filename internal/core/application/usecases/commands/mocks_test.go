package commands_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expectedVersion int) error {
	args := m.Called(ctx, o, expectedVersion)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number int) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) NextNumber(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

var _ ports.OrderRepository = (*MockOrderRepository)(nil)

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

var booked = time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return booked.Add(time.Hour)
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem("wash_and_fold", 3)
	require.NoError(t, err)
	return []order.Item{item}
}

func testPrice(t *testing.T) kernel.Money {
	t.Helper()
	price, err := kernel.MoneyFromString("75.50")
	require.NoError(t, err)
	return price
}

func newPendingOrder(t *testing.T, customerID kernel.UUID, workflow order.Workflow) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), 1001, customerID, workflow, testPrice(t), testItems(t), nil, booked)
	require.NoError(t, err)
	return o
}

func readyOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(order.State{
		ID:         kernel.NewUUID(),
		Number:     1003,
		Workflow:   order.Full,
		Status:     order.ReadyForDelivery,
		CustomerID: kernel.NewUUID(),
		CreatedAt:  booked,
		UpdatedAt:  booked,
		Price:      testPrice(t),
		Items:      testItems(t),
		Version:    4,
	})
	require.NoError(t, err)
	return o
}

func newActor(role actor.Role) actor.Actor {
	return actor.MustNewActor(kernel.NewUUID(), role)
}
