package commands_test

import (
	"testing"

	"freshcart/internal/core/application/usecases/commands"
	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewForceSetStatusCommand_AcceptsOutForDelivery(t *testing.T) {
	cmd, err := commands.NewForceSetStatusCommand(kernel.NewUUID(), order.OutForDelivery)
	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, cmd.Status())
}

func TestNewForceSetStatusCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewForceSetStatusCommand(kernel.NewUUID(), order.Unknown)
	require.Error(t, err)
}

func TestForceSetStatusCommandHandler_Handle_BypassesGraph(t *testing.T) {
	ctx := t.Context()
	pendingOrder := newPendingOrder(t)
	cmd, err := commands.NewForceSetStatusCommand(pendingOrder.ID(), order.Delivered)
	require.NoError(t, err)

	repo := new(MockStatusOrderRepository)
	uow := new(MockStatusOrderUoW)
	factory := new(MockStatusOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, pendingOrder.ID()).Return(pendingOrder, nil).Once(),
		repo.On("Update", mock.Anything, pendingOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewForceSetStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.Delivered, pendingOrder.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestForceSetStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := commands.NewForceSetStatusCommandHandler(new(MockStatusOrderUoWFactory))
	err := h.Handle(ctx, commands.ForceSetStatusCommand{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrForceSetStatusCommandIsNotConstructed)
}
