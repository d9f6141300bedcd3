package commands

import (
	"errors"

	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
	ErrRestaurantAddressIsRequired = errors.New("restaurant address is required")
	ErrCustomerAddressIsRequired   = errors.New("customer address is required")
)

// CreateDeliveryCommand represents a request to create a delivery for an order.
// Encapsulates the order reference, both addresses, an optional intended
// driver, and free-text notes.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(orderID, nil,
//	    "12 Rue de la Paix, Paris", "34 Avenue Victor Hugo, Paris", "ring twice")
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory, estimator, logger)
//	deliveryID, err := handler.Handle(ctx, cmd)
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	driverID          *kernel.UUID
	restaurantAddress string
	customerAddress   string
	notes             string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new delivery.
// The order ID must be valid and both addresses non-empty; the driver ID is
// optional and validated when present.
func NewCreateDeliveryCommand(
	orderID kernel.UUID,
	driverID *kernel.UUID,
	restaurantAddress string,
	customerAddress string,
	notes string,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
		cmd.setRestaurantAddress(restaurantAddress),
		cmd.setCustomerAddress(customerAddress),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// OrderID returns the order this delivery fulfils.
func (c CreateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the optional intended driver, or nil.
func (c CreateDeliveryCommand) DriverID() *kernel.UUID {
	return c.driverID
}

// RestaurantAddress returns the pickup address.
func (c CreateDeliveryCommand) RestaurantAddress() string {
	return c.restaurantAddress
}

// CustomerAddress returns the drop-off address.
func (c CreateDeliveryCommand) CustomerAddress() string {
	return c.customerAddress
}

// Notes returns the optional free-text notes.
func (c CreateDeliveryCommand) Notes() string {
	return c.notes
}

func (c *CreateDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *CreateDeliveryCommand) setRestaurantAddress(address string) error {
	if address == "" {
		return ErrRestaurantAddressIsRequired
	}
	c.restaurantAddress = address
	return nil
}

func (c *CreateDeliveryCommand) setCustomerAddress(address string) error {
	if address == "" {
		return ErrCustomerAddressIsRequired
	}
	c.customerAddress = address
	return nil
}
