package commands

import (
	"errors"

	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand asks to move one order to a target status on behalf of
// an actor. The reason is only recorded for cancellations.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, order.PickedUp, rider, "")
//	if err != nil {
//	    return err
//	}
//	updated, err := handler.Handle(ctx, cmd)
type TransitionOrderCommand struct {
	orderID kernel.UUID
	to      order.Status
	by      actor.Actor
	reason  string

	guard guard.ConstructorGuard
}

func NewTransitionOrderCommand(
	orderID kernel.UUID,
	to order.Status,
	by actor.Actor,
	reason string,
) (TransitionOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), to.Validate(), by.Validate()); err != nil {
		return TransitionOrderCommand{}, err
	}

	return TransitionOrderCommand{
		orderID: orderID,
		to:      to,
		by:      by,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c TransitionOrderCommand) To() order.Status {
	return c.to
}

func (c TransitionOrderCommand) By() actor.Actor {
	return c.by
}

func (c TransitionOrderCommand) Reason() string {
	return c.reason
}
