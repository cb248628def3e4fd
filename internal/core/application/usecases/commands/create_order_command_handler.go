package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

// maxNumberAttempts bounds retries when two bookings race for the same number.
const maxNumberAttempts = 3

// CreateOrderCommandHandler persists new bookings in Pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, time.Now)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order #%d booked\n", created.Number())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation. A nil clock
// means time.Now.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, now func() time.Time) CreateOrderCommandHandler {
	if now == nil {
		now = time.Now
	}
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle books the order. When the command carries no number the store assigns
// the next one; a number taken by a concurrent booking is retried.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		created, err := h.create(ctx, cmd)
		if err == nil {
			return created, nil
		}
		if cmd.Number() != 0 || !errors.Is(err, ports.ErrOrderAlreadyExists) || attempt == maxNumberAttempts {
			return nil, err
		}
	}
}

func (h CreateOrderCommandHandler) create(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	number := cmd.Number()
	if number == 0 {
		next, err := orderRepo.NextNumber(ctx)
		if err != nil {
			return nil, err
		}
		number = next
	}

	created, err := order.NewOrder(
		cmd.OrderID(),
		number,
		cmd.CustomerID(),
		cmd.Workflow(),
		cmd.Price(),
		cmd.Items(),
		cmd.Address(),
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
