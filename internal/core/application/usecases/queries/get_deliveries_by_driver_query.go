package queries

import (
	"errors"

	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/pkg/guard"
)

var ErrGetDeliveriesByDriverQueryIsNotConstructed = errors.New(
	"GetDeliveriesByDriverQuery must be created via NewGetDeliveriesByDriverQuery constructor",
)

// GetDeliveriesByDriverQuery lists the deliveries assigned to a driver.
// The active-only variant narrows the result to deliveries currently in
// transit, which is what a dispatcher means by "active".
type GetDeliveriesByDriverQuery struct {
	driverID   kernel.UUID
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetDeliveriesByDriverQuery creates a query for all of a driver's deliveries.
func NewGetDeliveriesByDriverQuery(driverID kernel.UUID) (GetDeliveriesByDriverQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDeliveriesByDriverQuery{}, err
	}

	return GetDeliveriesByDriverQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewGetActiveDeliveriesByDriverQuery creates a query for a driver's in-transit deliveries.
func NewGetActiveDeliveriesByDriverQuery(driverID kernel.UUID) (GetDeliveriesByDriverQuery, error) {
	query, err := NewGetDeliveriesByDriverQuery(driverID)
	if err != nil {
		return GetDeliveriesByDriverQuery{}, err
	}

	query.activeOnly = true
	return query, nil
}

// Validate ensures the query was created through a constructor.
func (q GetDeliveriesByDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesByDriverQueryIsNotConstructed)
}

// DriverID returns the driver whose deliveries are listed.
func (q GetDeliveriesByDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}

// ActiveOnly reports whether the result is limited to in-transit deliveries.
func (q GetDeliveriesByDriverQuery) ActiveOnly() bool {
	return q.activeOnly
}
