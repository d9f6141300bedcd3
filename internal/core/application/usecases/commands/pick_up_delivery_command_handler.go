package commands

import (
	"context"
)

// PickUpDeliveryCommandHandler marks an assigned delivery as picked up.
type PickUpDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewPickUpDeliveryCommandHandler creates a handler for the pickup transition.
func NewPickUpDeliveryCommandHandler(uowFactory DeliveryUoWFactory) PickUpDeliveryCommandHandler {
	return PickUpDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle marks the delivery as picked up and stamps the pickup time.
//
// Fails with an ObjectNotFoundError when the delivery does not exist and an
// InvalidTransitionError when it has no assigned driver yet.
func (h *PickUpDeliveryCommandHandler) Handle(ctx context.Context, cmd PickUpDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = aggregate.PickUp(); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
