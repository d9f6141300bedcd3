package queries

import (
	"errors"

	"deliverytrack/internal/pkg/guard"
)

var ErrGetAllDeliveriesQueryIsNotConstructed = errors.New(
	"GetAllDeliveriesQuery must be created via NewGetAllDeliveriesQuery constructor",
)

// GetAllDeliveriesQuery lists every delivery in the system.
type GetAllDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDeliveriesQuery creates a parameterless listing query.
func NewGetAllDeliveriesQuery() GetAllDeliveriesQuery {
	return GetAllDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDeliveriesQueryIsNotConstructed)
}
