package commands_test

import (
	"testing"

	"freshcart/internal/core/application/usecases/commands"
	"freshcart/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatePartnerCommand_ValidInput(t *testing.T) {
	partnerID := kernel.NewUUID()
	cmd, err := commands.NewCreatePartnerCommand(partnerID, "Sam Rivera", "+15550100", "bike", nil)
	require.NoError(t, err)
	assert.Equal(t, partnerID, cmd.PartnerID())
	assert.Equal(t, "Sam Rivera", cmd.Name())
	assert.Equal(t, "+15550100", cmd.Phone())
	assert.Equal(t, "bike", cmd.VehicleType())
	assert.Nil(t, cmd.LinkedUserID())
}

func TestNewCreatePartnerCommand_WithLinkedUser(t *testing.T) {
	userID := kernel.NewUUID()
	cmd, err := commands.NewCreatePartnerCommand(kernel.NewUUID(), "Sam Rivera", "+15550100", "bike", &userID)
	require.NoError(t, err)
	require.NotNil(t, cmd.LinkedUserID())
	assert.True(t, cmd.LinkedUserID().IsEqual(userID))
}

func TestNewCreatePartnerCommand_ZeroValueLinkedUser(t *testing.T) {
	var userID kernel.UUID
	_, err := commands.NewCreatePartnerCommand(kernel.NewUUID(), "Sam Rivera", "+15550100", "bike", &userID)
	require.Error(t, err)
}

func TestNewCreatePartnerCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreatePartnerCommand(kernel.NewUUID(), "", "+15550100", "bike", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPartnerNameIsRequired)
}

func TestNewCreatePartnerCommand_EmptyPhone(t *testing.T) {
	_, err := commands.NewCreatePartnerCommand(kernel.NewUUID(), "Sam Rivera", "", "bike", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPartnerPhoneIsRequired)
}

func TestNewCreatePartnerCommand_EmptyVehicleType(t *testing.T) {
	_, err := commands.NewCreatePartnerCommand(kernel.NewUUID(), "Sam Rivera", "+15550100", "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPartnerVehicleTypeIsRequired)
}
