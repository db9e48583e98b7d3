package commands_test

import (
	"testing"

	"freshcart/internal/core/application/usecases/commands"
	"freshcart/internal/core/domain/model/auth"
	"freshcart/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignPartnerCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	partnerID := kernel.NewUUID()
	actor := adminPrincipal(t)
	cmd, err := commands.NewAssignPartnerCommand(orderID, partnerID, actor)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, partnerID, cmd.PartnerID())
	assert.Equal(t, actor, cmd.Actor())
}

func TestNewAssignPartnerCommand_InvalidPartnerID(t *testing.T) {
	_, err := commands.NewAssignPartnerCommand(kernel.NewUUID(), kernel.UUID{}, adminPrincipal(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAssignPartnerCommand_UnconstructedActor(t *testing.T) {
	_, err := commands.NewAssignPartnerCommand(kernel.NewUUID(), kernel.NewUUID(), auth.Principal{})
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrPrincipalIsNotConstructed)
}

func TestAssignPartnerCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.AssignPartnerCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAssignPartnerCommandIsNotConstructed)
}
