// Package ports defines the persistence contracts of the order lifecycle.
// Adapters under internal/adapters/out implement them; the application layer
// depends only on these interfaces.
package ports

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

var (
	// ErrConcurrentUpdate is returned by Update when the stored order no longer has
	// the version the caller loaded. The caller should reload and re-apply.
	ErrConcurrentUpdate = errors.New("order was modified concurrently")

	// ErrOrderAlreadyExists is returned by Add for a duplicate id or number.
	ErrOrderAlreadyExists = errors.New("order already exists")
)

// OrderRepository is the single owned order store. Every view of an order is
// read through it, so all roles observe the same state.
type OrderRepository interface {
	// Add persists a new order. Duplicate ids or numbers yield ErrOrderAlreadyExists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the aggregate only if the stored version still equals
	// expectedVersion, which is the version the aggregate had when it was loaded.
	// Otherwise it returns ErrConcurrentUpdate and stores nothing.
	//
	// Example:
	//
	//	loaded := o.Version()
	//	if err := o.Transition(order.PickedUp, rider, "", now); err != nil {
	//	    return err
	//	}
	//	err := repo.Update(ctx, o, loaded)
	Update(ctx context.Context, aggregate *order.Order, expectedVersion int) error

	// Get returns the order or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber returns the order with the given human-facing number or an
	// errs.ObjectNotFoundError.
	GetByNumber(ctx context.Context, number int) (*order.Order, error)

	// ListAll returns a consistent snapshot of every order. Mutating the returned
	// aggregates never affects the store.
	ListAll(ctx context.Context) ([]*order.Order, error)

	// NextNumber returns the number a new order should receive: one past the
	// highest stored number, starting at FirstOrderNumber.
	NextNumber(ctx context.Context) (int, error)
}

// FirstOrderNumber is the number given to the first order of an empty store.
const FirstOrderNumber = 1001
