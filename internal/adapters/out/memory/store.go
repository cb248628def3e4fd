// Package memory keeps the order store in process memory. It backs the service
// when no database is configured and in tests. Every order handed out is a
// clone, so callers never share state with the store.
package memory

import (
	"context"
	"sync"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

var _ ports.OrderRepository = (*Store)(nil)

// Store is a mutex-guarded order map with optimistic versioning.
type Store struct {
	mu       sync.RWMutex
	orders   map[kernel.UUID]*order.Order
	byNumber map[int]kernel.UUID
}

func NewStore() *Store {
	return &Store{
		orders:   make(map[kernel.UUID]*order.Order),
		byNumber: make(map[int]kernel.UUID),
	}
}

func (s *Store) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(aggregate)
}

func (s *Store) Update(ctx context.Context, aggregate *order.Order, expectedVersion int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(aggregate, expectedVersion)
}

func (s *Store) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	found, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}
	return found.Clone(), nil
}

func (s *Store) GetByNumber(ctx context.Context, number int) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byNumber[number]
	if !ok {
		return nil, errs.NewObjectNotFoundError("number", number)
	}
	return s.orders[id].Clone(), nil
}

// ListAll copies every order under one read lock.
func (s *Store) ListAll(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]*order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		snapshot = append(snapshot, o.Clone())
	}
	return snapshot, nil
}

func (s *Store) NextNumber(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	next := ports.FirstOrderNumber
	for number := range s.byNumber {
		if number >= next {
			next = number + 1
		}
	}
	return next, nil
}

func (s *Store) add(aggregate *order.Order) error {
	if _, ok := s.orders[aggregate.ID()]; ok {
		return ports.ErrOrderAlreadyExists
	}
	if _, ok := s.byNumber[aggregate.Number()]; ok {
		return ports.ErrOrderAlreadyExists
	}

	s.orders[aggregate.ID()] = aggregate.Clone()
	s.byNumber[aggregate.Number()] = aggregate.ID()
	return nil
}

func (s *Store) update(aggregate *order.Order, expectedVersion int) error {
	current, ok := s.orders[aggregate.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("orderID", aggregate.ID())
	}
	if current.Version() != expectedVersion {
		return ports.ErrConcurrentUpdate
	}

	s.orders[aggregate.ID()] = aggregate.Clone()
	return nil
}
