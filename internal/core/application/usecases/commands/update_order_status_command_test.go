package commands_test

import (
	"testing"

	"freshcart/internal/core/application/usecases/commands"
	"freshcart/internal/core/domain/model/auth"
	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminPrincipal(t *testing.T) auth.Principal {
	t.Helper()
	p, err := auth.NewPrincipal(kernel.NewUUID(), auth.RoleAdmin)
	require.NoError(t, err)
	return p
}

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	actor := adminPrincipal(t)
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Confirmed, actor)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.Confirmed, cmd.Status())
	assert.Equal(t, actor, cmd.Actor())
}

func TestNewUpdateOrderStatusCommand_RejectsOutForDelivery(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.OutForDelivery, adminPrincipal(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStatusRequiresAssignment)
}

func TestNewUpdateOrderStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Unknown, adminPrincipal(t))
	require.Error(t, err)
}

func TestNewUpdateOrderStatusCommand_UnconstructedActor(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Confirmed, auth.Principal{})
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrPrincipalIsNotConstructed)
}
