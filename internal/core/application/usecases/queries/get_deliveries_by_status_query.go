package queries

import (
	"errors"

	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/pkg/guard"
)

var ErrGetDeliveriesByStatusQueryIsNotConstructed = errors.New(
	"GetDeliveriesByStatusQuery must be created via NewGetDeliveriesByStatusQuery constructor",
)

// GetDeliveriesByStatusQuery lists all deliveries in a given lifecycle status.
type GetDeliveriesByStatusQuery struct {
	status delivery.Status

	guard guard.ConstructorGuard
}

// NewGetDeliveriesByStatusQuery creates a status-filtered listing query.
func NewGetDeliveriesByStatusQuery(status delivery.Status) (GetDeliveriesByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetDeliveriesByStatusQuery{}, err
	}

	return GetDeliveriesByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesByStatusQueryIsNotConstructed)
}

// Status returns the lifecycle status being filtered on.
func (q GetDeliveriesByStatusQuery) Status() delivery.Status {
	return q.status
}
