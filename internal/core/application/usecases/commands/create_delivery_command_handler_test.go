package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"deliverytrack/internal/core/application/usecases/commands"
	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewCreateDeliveryCommand(
		orderID, nil, "12 Rue de la Paix", "34 Avenue Victor Hugo", "")

	route := fullRouteInfo(t)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	uow.On("DeliveryRepository").Return(repo)
	mock.InOrder(
		repo.On("ExistsByOrderID", ctx, orderID).Return(false, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	estimator := new(MockRouteEstimator)
	estimator.On("Estimate", ctx, "12 Rue de la Paix", "34 Avenue Victor Hugo").
		Return(route, true).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, estimator, discardLogger())
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NoError(t, id.Validate())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	estimator.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_EstimationFailureStillCreates(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewCreateDeliveryCommand(
		orderID, nil, "12 Rue de la Paix", "34 Avenue Victor Hugo", "")

	var persisted *delivery.Delivery

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	uow.On("DeliveryRepository").Return(repo)
	mock.InOrder(
		repo.On("ExistsByOrderID", ctx, orderID).Return(false, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).
			Run(func(args mock.Arguments) {
				persisted = args.Get(1).(*delivery.Delivery)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	estimator := new(MockRouteEstimator)
	estimator.On("Estimate", ctx, mock.Anything, mock.Anything).Return(nil, false).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, estimator, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Nil(t, persisted.Route())
	assert.Equal(t, delivery.Pending, persisted.Status())
}

func TestCreateDeliveryCommandHandler_Handle_DuplicateOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewCreateDeliveryCommand(
		orderID, nil, "12 Rue de la Paix", "34 Avenue Victor Hugo", "")

	repo := new(MockDeliveryRepository)
	repo.On("ExistsByOrderID", ctx, orderID).Return(true, nil).Once()

	uow := new(MockDeliveryUoW)
	uow.On("DeliveryRepository").Return(repo)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	estimator := new(MockRouteEstimator)

	h := commands.NewCreateDeliveryCommandHandler(factory, estimator, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	estimator.AssertNotCalled(t, "Estimate", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestCreateDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateDeliveryCommand{} // not constructed properly
	factory := new(MockDeliveryUoWFactory)
	estimator := new(MockRouteEstimator)
	h := commands.NewCreateDeliveryCommandHandler(factory, estimator, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateDeliveryCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewCreateDeliveryCommand(
		orderID, nil, "12 Rue de la Paix", "34 Avenue Victor Hugo", "")

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	uow.On("DeliveryRepository").Return(repo)
	mock.InOrder(
		repo.On("ExistsByOrderID", ctx, orderID).Return(false, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*delivery.Delivery")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	estimator := new(MockRouteEstimator)
	estimator.On("Estimate", ctx, mock.Anything, mock.Anything).Return(nil, false).Once()

	h := commands.NewCreateDeliveryCommandHandler(factory, estimator, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
