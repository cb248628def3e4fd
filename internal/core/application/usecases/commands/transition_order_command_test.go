package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/actor"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderCommand_Success(t *testing.T) {
	id := kernel.NewUUID()
	rider := newActor(actor.Delivery)

	cmd, err := commands.NewTransitionOrderCommand(id, order.PickedUp, rider, "")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.PickedUp, cmd.To())
	assert.Equal(t, rider, cmd.By())
	assert.Empty(t, cmd.Reason())
}

func TestNewTransitionOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewTransitionOrderCommand(kernel.UUID{}, order.PickedUp, newActor(actor.Delivery), "")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewTransitionOrderCommand(kernel.NewUUID(), order.Unknown, newActor(actor.Delivery), "")
	require.Error(t, err)

	_, err = commands.NewTransitionOrderCommand(kernel.NewUUID(), order.PickedUp, actor.Actor{}, "")
	require.ErrorIs(t, err, actor.ErrActorIsNotConstructed)
}

func TestTransitionOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.TransitionOrderCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrTransitionOrderCommandIsNotConstructed)
}
