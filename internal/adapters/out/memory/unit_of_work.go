package memory

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages writes and applies them to the store atomically on Commit.
// Version checks run both when a write is staged and again at commit, so a
// stale write never lands even if another unit of work committed in between.
type UnitOfWork struct {
	store  *Store
	active bool
	staged []stagedWrite
}

type stagedWrite struct {
	aggregate       *order.Order
	expectedVersion int
	isNew           bool
}

func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uow.active {
		return nil
	}
	uow.active = true
	uow.staged = nil
	return nil
}

func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s := uow.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := uow.check(); err != nil {
		return err
	}
	if err := uow.apply(); err != nil {
		return err
	}

	uow.active = false
	uow.staged = nil
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	uow.active = false
	uow.staged = nil
	return nil
}

// OrderRepository returns a repository staging into this unit of work while a
// transaction is active and writing straight to the store otherwise.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	if !uow.active {
		return uow.store
	}
	return &stagingRepository{uow: uow}
}

// apply writes the staged aggregates to the store; caller holds the lock.
// If any write fails, the writes already applied are reverted and the error
// is returned, so the store never keeps part of a unit of work.
func (uow *UnitOfWork) apply() error {
	s := uow.store
	var undo []func()
	for _, w := range uow.staged {
		id, number := w.aggregate.ID(), w.aggregate.Number()
		if w.isNew {
			if err := s.add(w.aggregate); err != nil {
				revert(undo)
				return err
			}
			undo = append(undo, func() {
				delete(s.orders, id)
				delete(s.byNumber, number)
			})
			continue
		}

		previous := s.orders[id]
		if err := s.update(w.aggregate, w.expectedVersion); err != nil {
			revert(undo)
			return err
		}
		undo = append(undo, func() { s.orders[id] = previous })
	}
	return nil
}

func revert(undo []func()) {
	for i := len(undo) - 1; i >= 0; i-- {
		undo[i]()
	}
}

// check validates all staged writes against the store; caller holds the lock.
func (uow *UnitOfWork) check() error {
	ids := make(map[kernel.UUID]struct{}, len(uow.staged))
	numbers := make(map[int]struct{}, len(uow.staged))
	for _, w := range uow.staged {
		if w.isNew {
			_, idTaken := uow.store.orders[w.aggregate.ID()]
			_, numberTaken := uow.store.byNumber[w.aggregate.Number()]
			_, idStaged := ids[w.aggregate.ID()]
			_, numberStaged := numbers[w.aggregate.Number()]
			if idTaken || numberTaken || idStaged || numberStaged {
				return ports.ErrOrderAlreadyExists
			}
			ids[w.aggregate.ID()] = struct{}{}
			numbers[w.aggregate.Number()] = struct{}{}
			continue
		}
		current, ok := uow.store.orders[w.aggregate.ID()]
		if !ok || current.Version() != w.expectedVersion {
			return ports.ErrConcurrentUpdate
		}
	}
	return nil
}

type stagingRepository struct {
	uow *UnitOfWork
}

func (r *stagingRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, err := r.uow.store.Get(ctx, aggregate.ID()); err == nil {
		return ports.ErrOrderAlreadyExists
	}
	if _, err := r.uow.store.GetByNumber(ctx, aggregate.Number()); err == nil {
		return ports.ErrOrderAlreadyExists
	}
	r.uow.staged = append(r.uow.staged, stagedWrite{aggregate: aggregate.Clone(), isNew: true})
	return nil
}

func (r *stagingRepository) Update(ctx context.Context, aggregate *order.Order, expectedVersion int) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	current, err := r.uow.store.Get(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if current.Version() != expectedVersion {
		return ports.ErrConcurrentUpdate
	}
	r.uow.staged = append(r.uow.staged, stagedWrite{aggregate: aggregate.Clone(), expectedVersion: expectedVersion})
	return nil
}

func (r *stagingRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.uow.store.Get(ctx, id)
}

func (r *stagingRepository) GetByNumber(ctx context.Context, number int) (*order.Order, error) {
	return r.uow.store.GetByNumber(ctx, number)
}

func (r *stagingRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	return r.uow.store.ListAll(ctx)
}

func (r *stagingRepository) NextNumber(ctx context.Context) (int, error) {
	return r.uow.store.NextNumber(ctx)
}
