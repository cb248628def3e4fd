package commands_test

import (
	"errors"
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateCommand(t *testing.T, number int) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), number, newActor(actor.Customer), kernel.UUID{}, order.Full, testPrice(t), testItems(t), nil,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCommand(t, 0)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("NextNumber", ctx).Return(1001, nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, cmd.OrderID(), created.ID())
	assert.Equal(t, 1001, created.Number())
	assert.Equal(t, order.Pending, created.Status())
	assert.Nil(t, created.DeliveryPersonID())
	assert.Equal(t, fixedClock(), created.CreatedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ExplicitNumber(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCommand(t, 2001)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	created, err := commands.NewCreateOrderCommandHandler(factory, fixedClock).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2001, created.Number())
	repo.AssertNotCalled(t, "NextNumber", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_RetriesTakenNumber(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCommand(t, 0)

	repo := new(MockOrderRepository)
	first := new(MockOrderUoW)
	second := new(MockOrderUoW)
	for _, uow := range []*MockOrderUoW{first, second} {
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
	}
	second.On("Commit", ctx).Return(nil).Once()

	repo.On("NextNumber", ctx).Return(1001, nil).Once()
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(ports.ErrOrderAlreadyExists).Once()
	repo.On("NextNumber", ctx).Return(1002, nil).Once()
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(first).Once()
	factory.On("Create").Return(second).Once()

	created, err := commands.NewCreateOrderCommandHandler(factory, fixedClock).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1002, created.Number())
	repo.AssertExpectations(t)
	first.AssertExpectations(t)
	second.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DuplicateExplicitNumber(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCommand(t, 1001)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(ports.ErrOrderAlreadyExists).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewCreateOrderCommandHandler(factory, fixedClock).Handle(ctx, cmd)

	require.ErrorIs(t, err, ports.ErrOrderAlreadyExists)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)

	_, err := commands.NewCreateOrderCommandHandler(factory, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCommand(t, 0)

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	_, err := commands.NewCreateOrderCommandHandler(factory, fixedClock).Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCommand(t, 0)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("NextNumber", ctx).Return(1001, nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewCreateOrderCommandHandler(factory, fixedClock).Handle(ctx, cmd)

	require.EqualError(t, err, "add error")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCommand(t, 0)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("NextNumber", ctx).Return(1001, nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewCreateOrderCommandHandler(factory, fixedClock).Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
