package commands

import (
	"errors"

	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/pkg/guard"
)

var ErrStartTransitCommandIsNotConstructed = errors.New(
	"StartTransitCommand must be created via NewStartTransitCommand constructor",
)

// StartTransitCommand represents a driver departing towards the customer.
type StartTransitCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartTransitCommand creates a command to put a delivery in transit.
func NewStartTransitCommand(deliveryID kernel.UUID) (StartTransitCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return StartTransitCommand{}, err
	}

	return StartTransitCommand{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartTransitCommand) Validate() error {
	return c.guard.Validate(ErrStartTransitCommandIsNotConstructed)
}

// DeliveryID returns the delivery entering transit.
func (c StartTransitCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}
