package commands

import (
	"errors"

	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/pkg/guard"
)

var (
	ErrAssignDriverCommandIsNotConstructed = errors.New(
		"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
	)
	ErrDriverNameIsRequired = errors.New("driver name is required")
)

// AssignDriverCommand represents a request to assign a driver to a delivery.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	driverID   kernel.UUID
	driverName string

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver.
// Both identifiers must be valid and the driver name non-empty.
func NewAssignDriverCommand(
	deliveryID kernel.UUID,
	driverID kernel.UUID,
	driverName string,
) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setDriverID(driverID),
		cmd.setDriverName(driverName),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// DeliveryID returns the delivery to assign.
func (c AssignDriverCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// DriverID returns the driver being assigned.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// DriverName returns the driver's display name.
func (c AssignDriverCommand) DriverName() string {
	return c.driverName
}

func (c *AssignDriverCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *AssignDriverCommand) setDriverName(name string) error {
	if name == "" {
		return ErrDriverNameIsRequired
	}
	c.driverName = name
	return nil
}
