package commands

import (
	"context"
	"log/slog"

	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/pkg/errs"
)

// CreateDeliveryCommandHandler handles the business logic for delivery creation.
//
// Creation enforces the one-delivery-per-order invariant, then enriches the
// new record with route information on a best-effort basis: when the routing
// provider is unreachable or cannot resolve an address, the delivery is still
// created, just without coordinates or an estimate.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory, estimator, logger)
//	cmd, _ := NewCreateDeliveryCommand(orderID, nil, restaurantAddr, customerAddr, "")
//
//	deliveryID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // a delivery for this order already exists
//	}
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	estimator  RouteEstimator
	logger     *slog.Logger
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
func NewCreateDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	estimator RouteEstimator,
	logger *slog.Logger,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		estimator:  estimator,
		logger:     logger.With("component", "create_delivery_handler"),
	}
}

// Handle processes the delivery creation command and returns the new delivery's ID.
//
// Fails with an ObjectAlreadyExistsError when a delivery for the order exists.
// Route enrichment runs before the transaction opens, so the record is
// persisted atomically: either a complete row (with or without enrichment)
// or nothing.
func (h *CreateDeliveryCommandHandler) Handle(
	ctx context.Context, cmd CreateDeliveryCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()

	exists, err := uow.DeliveryRepository().ExistsByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if exists {
		return kernel.UUID{}, errs.NewObjectAlreadyExistsError("orderId", cmd.OrderID().String())
	}

	aggregate, err := delivery.NewDelivery(
		kernel.NewUUID(),
		cmd.OrderID(),
		cmd.DriverID(),
		cmd.RestaurantAddress(),
		cmd.CustomerAddress(),
		cmd.Notes(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if route, ok := h.estimator.Estimate(ctx, cmd.RestaurantAddress(), cmd.CustomerAddress()); ok {
		if err = aggregate.AttachRoute(*route); err != nil {
			return kernel.UUID{}, err
		}
	} else {
		h.logger.WarnContext(ctx, "delivery created without route enrichment",
			"order_id", cmd.OrderID().String())
	}

	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// The unique index on order_id turns a racing create into an
	// ObjectAlreadyExistsError here instead of a second row.
	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
