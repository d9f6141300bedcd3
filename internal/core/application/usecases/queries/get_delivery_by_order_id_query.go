package queries

import (
	"errors"

	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/pkg/guard"
)

var ErrGetDeliveryByOrderIDQueryIsNotConstructed = errors.New(
	"GetDeliveryByOrderIDQuery must be created via NewGetDeliveryByOrderIDQuery constructor",
)

// GetDeliveryByOrderIDQuery retrieves the delivery fulfilling a given order.
// Each order has at most one delivery, so the result is a single record.
type GetDeliveryByOrderIDQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryByOrderIDQuery creates a query keyed by order.
func NewGetDeliveryByOrderIDQuery(orderID kernel.UUID) (GetDeliveryByOrderIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDeliveryByOrderIDQuery{}, err
	}

	return GetDeliveryByOrderIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryByOrderIDQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryByOrderIDQueryIsNotConstructed)
}

// OrderID returns the order being looked up.
func (q GetDeliveryByOrderIDQuery) OrderID() kernel.UUID {
	return q.orderID
}
