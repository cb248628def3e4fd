package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

// ErrTransitionTimedOut is returned when a transition does not finish within
// TransitionPolicy.Timeout.
var ErrTransitionTimedOut = errors.New("transition timed out")

const (
	DefaultTransitionTimeout = 5 * time.Second
	DefaultTransitionRetries = 1
)

// TransitionPolicy bounds how long a transition may take and how often a lost
// optimistic update is re-applied. Zero values select the defaults; a negative
// Retries disables retrying.
type TransitionPolicy struct {
	Timeout time.Duration
	Retries int
	Now     func() time.Time
}

// TransitionOrderCommandHandler applies lifecycle transitions against the order
// store with optimistic concurrency: the order is loaded, transitioned, and
// written back only if nobody else updated it in between.
//
// Two riders claiming the same order race on that write. The loser's update
// fails with ports.ErrConcurrentUpdate, the handler reloads the order (now
// carrying the winner as assignee) and re-applies, which yields
// order.ErrAlreadyAssigned.
//
// Example:
//
//	handler := NewTransitionOrderCommandHandler(uowFactory, TransitionPolicy{})
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrAlreadyAssigned):
//	    log.Println("another rider took it")
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("no such order")
//	case err != nil:
//	    log.Printf("transition failed: %v", err)
//	default:
//	    log.Printf("order #%d is now %s", updated.Number(), updated.Status())
//	}
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	timeout    time.Duration
	retries    int
	now        func() time.Time
}

func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory, policy TransitionPolicy) TransitionOrderCommandHandler {
	h := TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		timeout:    policy.Timeout,
		retries:    policy.Retries,
		now:        policy.Now,
	}
	if h.timeout <= 0 {
		h.timeout = DefaultTransitionTimeout
	}
	if h.retries == 0 {
		h.retries = DefaultTransitionRetries
	}
	if h.retries < 0 {
		h.retries = 0
	}
	if h.now == nil {
		h.now = time.Now
	}
	return h
}

// Handle applies the transition and returns the order as it now stands.
//
// On a rejected transition (*order.TransitionError) the returned order is the
// unmodified stored state. On a missing order it returns nil and an
// errs.ObjectNotFoundError.
func (h TransitionOrderCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	var err error
	for attempt := 0; attempt <= h.retries; attempt++ {
		var updated *order.Order
		updated, err = h.apply(ctx, cmd)
		if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s: %w", ErrTransitionTimedOut, h.timeout, ctx.Err())
		}
		if !errors.Is(err, ports.ErrConcurrentUpdate) {
			return updated, err
		}
	}

	return nil, err
}

func (h TransitionOrderCommandHandler) apply(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	loadedVersion := current.Version()
	if err = current.Transition(cmd.To(), cmd.By(), cmd.Reason(), h.now()); err != nil {
		return current, err
	}

	if err = orderRepo.Update(ctx, current, loadedVersion); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return current, nil
}
