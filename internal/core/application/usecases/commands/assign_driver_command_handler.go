package commands

import (
	"context"
)

// AssignDriverCommandHandler moves a pending delivery to the assigned state,
// recording which driver will carry it out.
type AssignDriverCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory DeliveryUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{uowFactory: uowFactory}
}

// Handle assigns the driver to the delivery.
//
// Fails with an ObjectNotFoundError when the delivery does not exist, an
// InvalidTransitionError when it is not pending, and a
// ConcurrencyConflictError when a concurrent update won the race.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	if err = aggregate.Assign(cmd.DriverID(), cmd.DriverName()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
