package delivery

import (
	"errors"
	"time"

	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New(
	"Delivery must be created via NewDelivery or RestoreDelivery constructor")

// ErrRouteAlreadyAttached is returned when attaching route information to a
// delivery that already carries it.
var ErrRouteAlreadyAttached = errors.New("route info is already attached")

// Delivery is the aggregate root tracking one order's fulfilment from
// creation to completion.
//
// Invariants:
//   - exactly one delivery exists per order (enforced at creation and by a
//     unique index in storage)
//   - the status is always consistent with the populated timestamps: each of
//     assignedAt/pickedUpAt/deliveredAt is written exactly once, by its
//     matching transition
//   - route information is attached at most once and only as a complete
//     RouteInfo composite
//   - all transitions go through the Status state machine; an illegal event
//     leaves the aggregate unmodified
type Delivery struct {
	id      kernel.UUID
	orderID kernel.UUID

	// driverID is nil until a driver is assigned (it may be pre-filled at
	// creation when the caller already knows the intended driver).
	driverID   *kernel.UUID
	driverName string

	restaurantAddress string
	customerAddress   string

	// route is nil when geocoding failed or has not run yet.
	route *RouteInfo

	status Status
	notes  string

	createdAt   time.Time
	updatedAt   time.Time
	assignedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time

	// version supports optimistic locking in the storage adapter.
	version int

	isConstructed bool
}

// NewDelivery creates a new delivery in Pending status.
//
// Parameters:
//   - id: unique delivery identifier
//   - orderID: the order this delivery fulfils
//   - driverID: optional intended driver (nil when unknown at creation)
//   - restaurantAddress, customerAddress: required free-text addresses
//   - notes: optional free-text notes
//
// Route information is not part of construction; it is attached afterwards
// via AttachRoute when estimation succeeds.
func NewDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	driverID *kernel.UUID,
	restaurantAddress string,
	customerAddress string,
	notes string,
) (*Delivery, error) {
	now := time.Now().UTC()
	d := &Delivery{
		status:        Pending,
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setDriverID(driverID),
		d.setRestaurantAddress(restaurantAddress),
		d.setCustomerAddress(customerAddress),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// DeliveryState carries every persisted field of a delivery for
// reconstruction from storage.
type DeliveryState struct {
	ID                kernel.UUID
	OrderID           kernel.UUID
	DriverID          *kernel.UUID
	DriverName        string
	RestaurantAddress string
	CustomerAddress   string
	Route             *RouteInfo
	Status            Status
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	AssignedAt        *time.Time
	PickedUpAt        *time.Time
	DeliveredAt       *time.Time
	Version           int
}

// RestoreDelivery rebuilds a delivery aggregate from its persisted state.
// Used by the storage adapter; validates identifiers, addresses, and status.
func RestoreDelivery(state DeliveryState) (*Delivery, error) {
	d := &Delivery{
		driverName:    state.DriverName,
		route:         state.Route,
		notes:         state.Notes,
		createdAt:     state.CreatedAt,
		updatedAt:     state.UpdatedAt,
		assignedAt:    state.AssignedAt,
		pickedUpAt:    state.PickedUpAt,
		deliveredAt:   state.DeliveredAt,
		version:       state.Version,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(state.ID),
		d.setOrderID(state.OrderID),
		d.setDriverID(state.DriverID),
		d.setRestaurantAddress(state.RestaurantAddress),
		d.setCustomerAddress(state.CustomerAddress),
		d.setStatus(state.Status),
	); err != nil {
		return nil, err
	}

	if state.Version < 1 {
		return nil, errs.NewVersionIsInvalidError("version")
	}

	return d, nil
}

// Validate ensures the Delivery was built through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by identity.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the fulfilled order.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// DriverID returns the assigned driver's ID, or nil before assignment.
func (d *Delivery) DriverID() *kernel.UUID {
	return d.driverID
}

// DriverName returns the assigned driver's display name, empty before assignment.
func (d *Delivery) DriverName() string {
	return d.driverName
}

// RestaurantAddress returns the pickup address.
func (d *Delivery) RestaurantAddress() string {
	return d.restaurantAddress
}

// CustomerAddress returns the drop-off address.
func (d *Delivery) CustomerAddress() string {
	return d.customerAddress
}

// Route returns the attached route enrichment, or nil when absent.
func (d *Delivery) Route() *RouteInfo {
	return d.route
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// Notes returns the free-text notes, including appended cancellation reasons.
func (d *Delivery) Notes() string {
	return d.notes
}

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// AssignedAt returns when the driver was assigned, or nil.
func (d *Delivery) AssignedAt() *time.Time {
	return d.assignedAt
}

// PickedUpAt returns when the order was picked up, or nil.
func (d *Delivery) PickedUpAt() *time.Time {
	return d.pickedUpAt
}

// DeliveredAt returns when the order was delivered, or nil.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// Version returns the optimistic-locking version of the persisted record.
func (d *Delivery) Version() int {
	return d.version
}

// AttachRoute attaches the route enrichment produced by estimation.
// Fails with ErrRouteAlreadyAttached if enrichment is already present.
func (d *Delivery) AttachRoute(route RouteInfo) error {
	if err := route.Validate(); err != nil {
		return err
	}
	if d.route != nil {
		return ErrRouteAlreadyAttached
	}

	d.route = &route
	d.touch()
	return nil
}

// Assign assigns a driver to the delivery and transitions Pending -> Assigned.
// Sets assignedAt. The driver name must be non-empty.
func (d *Delivery) Assign(driverID kernel.UUID, driverName string) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if driverName == "" {
		return errs.NewValueIsRequiredError("driverName")
	}

	newStatus, err := d.status.Assign()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	d.status = newStatus
	d.driverID = &driverID
	d.driverName = driverName
	d.assignedAt = &now
	d.touch()
	return nil
}

// PickUp marks the order as collected at the restaurant,
// transitioning Assigned -> PickedUp. Sets pickedUpAt.
func (d *Delivery) PickUp() error {
	newStatus, err := d.status.PickUp()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	d.status = newStatus
	d.pickedUpAt = &now
	d.touch()
	return nil
}

// StartTransit transitions PickedUp -> InTransit.
func (d *Delivery) StartTransit() error {
	newStatus, err := d.status.StartTransit()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.touch()
	return nil
}

// Deliver marks the delivery completed, transitioning InTransit -> Delivered.
// Sets deliveredAt. Delivered is terminal.
func (d *Delivery) Deliver() error {
	newStatus, err := d.status.Deliver()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	d.status = newStatus
	d.deliveredAt = &now
	d.touch()
	return nil
}

// Cancel cancels the delivery from any non-terminal status and appends the
// reason to the notes without discarding prior content.
func (d *Delivery) Cancel(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}

	d.status = newStatus
	if d.notes == "" {
		d.notes = "Cancelled: " + reason
	} else {
		d.notes = d.notes + " | Cancelled: " + reason
	}
	d.touch()
	return nil
}

func (d *Delivery) touch() {
	d.updatedAt = time.Now().UTC()
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	d.driverID = driverID
	return nil
}

func (d *Delivery) setRestaurantAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("restaurantAddress")
	}
	d.restaurantAddress = address
	return nil
}

func (d *Delivery) setCustomerAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("customerAddress")
	}
	d.customerAddress = address
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
