package ports

import (
	"context"

	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// List-style reads for the API surface live on the query side; this port
// carries the operations commands and background jobs need.
//
// All reads return freshly restored aggregates, never shared instances.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate.
	// Fails with an ObjectAlreadyExistsError when a delivery for the same
	// order already exists (unique per order).
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate using
	// optimistic locking. Fails with a ConcurrencyConflictError when the
	// record was modified since the aggregate was loaded, and with an
	// ObjectNotFoundError when it no longer exists.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its unique identifier.
	// Fails with an ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderID retrieves the delivery fulfilling the given order.
	// Fails with an ObjectNotFoundError when absent.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// ExistsByOrderID reports whether a delivery already exists for the order.
	ExistsByOrderID(ctx context.Context, orderID kernel.UUID) (bool, error)

	// GetAllMissingRoute retrieves non-terminal deliveries that carry no
	// route enrichment. Used by the route backfill job.
	GetAllMissingRoute(ctx context.Context) ([]*delivery.Delivery, error)
}
