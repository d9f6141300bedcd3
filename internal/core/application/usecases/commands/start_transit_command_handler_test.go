package commands_test

import (
	"testing"

	"deliverytrack/internal/core/application/usecases/commands"
	"deliverytrack/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartTransitCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := pickedUpDelivery(t)
	cmd, _ := commands.NewStartTransitCommand(aggregate.ID())

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	uow.On("DeliveryRepository").Return(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartTransitCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, delivery.InTransit, aggregate.Status())
	repo.AssertExpectations(t)
}

func TestStartTransitCommandHandler_Handle_FromAssignedFails(t *testing.T) {
	ctx := t.Context()
	aggregate := assignedDelivery(t)
	cmd, _ := commands.NewStartTransitCommand(aggregate.ID())

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	uow.On("DeliveryRepository").Return(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartTransitCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, delivery.ErrInvalidTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
