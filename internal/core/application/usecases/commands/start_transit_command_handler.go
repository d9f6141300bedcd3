package commands

import (
	"context"
)

// StartTransitCommandHandler moves a picked-up delivery into transit.
type StartTransitCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewStartTransitCommandHandler creates a handler for the transit transition.
func NewStartTransitCommandHandler(uowFactory DeliveryUoWFactory) StartTransitCommandHandler {
	return StartTransitCommandHandler{uowFactory: uowFactory}
}

// Handle puts the delivery in transit.
//
// Fails with an ObjectNotFoundError when the delivery does not exist and an
// InvalidTransitionError when the order has not been picked up.
func (h *StartTransitCommandHandler) Handle(ctx context.Context, cmd StartTransitCommand) error {
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

	if err = aggregate.StartTransit(); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
