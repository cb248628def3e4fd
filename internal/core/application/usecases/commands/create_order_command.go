package commands

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// CreateOrderCommand books a new order on behalf of an actor.
// Customers book for themselves; admins book for any customer. Number 0 lets
// the store pick the next free number.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("75.50")
//	item, _ := order.NewItem("wash_and_fold", 3)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), 0, customer, customer.ID(), order.Full, price, []order.Item{item}, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	number     int
	by         actor.Actor
	customerID kernel.UUID
	workflow   order.Workflow
	price      kernel.Money
	items      []order.Item
	address    *kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the booking data and the actor's right to book
// for customerID. Unauthorised actors get an error matching order.ErrForbidden.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	number int,
	by actor.Actor,
	customerID kernel.UUID,
	workflow order.Workflow,
	price kernel.Money,
	items []order.Item,
	address *kernel.Address,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		workflow: workflow,
		address:  address,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNumber(number),
		cmd.setBooking(by, customerID),
		workflow.Validate(),
		cmd.setPrice(price),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Number is the requested order number, 0 when the store should assign one.
func (c CreateOrderCommand) Number() int {
	return c.number
}

func (c CreateOrderCommand) By() actor.Actor {
	return c.by
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) Workflow() order.Workflow {
	return c.workflow
}

func (c CreateOrderCommand) Price() kernel.Money {
	return c.price
}

func (c CreateOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

func (c CreateOrderCommand) Address() *kernel.Address {
	return c.address
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setNumber(number int) error {
	if number < 0 {
		return errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%d is negative", number))
	}

	c.number = number
	return nil
}

func (c *CreateOrderCommand) setBooking(by actor.Actor, customerID kernel.UUID) error {
	if err := by.Validate(); err != nil {
		return err
	}

	switch by.Role() {
	case actor.Customer:
		if customerID.Validate() == nil && !customerID.IsEqual(by.ID()) {
			return fmt.Errorf("%w: customers book only for themselves", order.ErrForbidden)
		}
		customerID = by.ID()
	case actor.Admin:
		if err := customerID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("customerId", err)
		}
	default:
		return fmt.Errorf("%w: %s may not book orders", order.ErrForbidden, by.Role())
	}

	c.by = by
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = append([]order.Item(nil), items...)
	return nil
}
