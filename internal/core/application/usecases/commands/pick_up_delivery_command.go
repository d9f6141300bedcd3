package commands

import (
	"errors"

	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/pkg/guard"
)

var ErrPickUpDeliveryCommandIsNotConstructed = errors.New(
	"PickUpDeliveryCommand must be created via NewPickUpDeliveryCommand constructor",
)

// PickUpDeliveryCommand represents a driver collecting the order from the restaurant.
type PickUpDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickUpDeliveryCommand creates a command to mark a delivery as picked up.
func NewPickUpDeliveryCommand(deliveryID kernel.UUID) (PickUpDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return PickUpDeliveryCommand{}, err
	}

	return PickUpDeliveryCommand{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PickUpDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrPickUpDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery being picked up.
func (c PickUpDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}
