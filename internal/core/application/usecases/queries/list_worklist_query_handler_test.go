package queries_test

import (
	"errors"
	"testing"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewListWorklistQuery(t *testing.T) {
	q, err := queries.NewListWorklistQuery(newActor(actor.Customer), "")
	require.NoError(t, err)
	assert.Equal(t, services.TabActive, q.Tab())

	_, err = queries.NewListWorklistQuery(newActor(actor.Customer), "archive")
	require.Error(t, err)

	_, err = queries.NewListWorklistQuery(actor.Actor{}, services.TabHistory)
	require.ErrorIs(t, err, actor.ErrActorIsNotConstructed)

	var zero queries.ListWorklistQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrListWorklistQueryIsNotConstructed)
}

func TestListWorklistQueryHandler_Handle(t *testing.T) {
	rider := newActor(actor.Delivery)
	riderID := rider.ID()
	customerID := kernel.NewUUID()

	snapshot := []*order.Order{
		restore(t, stored{number: 1001, status: order.ReadyForDelivery, customer: customerID, at: now.AddDate(0, 0, -3)}),
		restore(t, stored{number: 1002, status: order.ReadyForDelivery, customer: customerID, at: now.AddDate(0, 0, -1)}),
		restore(t, stored{number: 1003, status: order.OutForDelivery, customer: customerID, rider: &riderID, at: now}),
	}

	reader := new(MockOrderReader)
	reader.On("ListAll", mock.Anything).Return(snapshot, nil)
	handler := queries.NewListWorklistQueryHandler(reader)

	t.Run("should list open orders newest first", func(t *testing.T) {
		query, err := queries.NewListWorklistQuery(rider, services.TabAvailable)
		require.NoError(t, err)

		views, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, 1002, views[0].Number)
		assert.Equal(t, 1001, views[1].Number)
	})

	t.Run("should list the rider's carried orders", func(t *testing.T) {
		query, err := queries.NewListWorklistQuery(rider, services.TabActive)
		require.NoError(t, err)

		views, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, 1003, views[0].Number)
	})
}

func TestListWorklistQueryHandler_Handle_ReaderError(t *testing.T) {
	reader := new(MockOrderReader)
	reader.On("ListAll", mock.Anything).Return(nil, errors.New("database error")).Once()
	query, err := queries.NewListWorklistQuery(newActor(actor.Admin), services.TabHistory)
	require.NoError(t, err)

	views, err := queries.NewListWorklistQueryHandler(reader).Handle(t.Context(), query)

	require.EqualError(t, err, "database error")
	assert.Nil(t, views)
}
