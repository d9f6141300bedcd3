package queries

import (
	"context"

	"deliverytrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryByOrderIDQueryHandler retrieves the delivery read model for an order.
type GetDeliveryByOrderIDQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryByOrderIDQueryHandler creates a handler for order-keyed lookups.
func NewGetDeliveryByOrderIDQueryHandler(db *gorm.DB) GetDeliveryByOrderIDQueryHandler {
	return GetDeliveryByOrderIDQueryHandler{db: db}
}

// Handle executes the lookup.
// Fails with an ObjectNotFoundError when no delivery exists for the order.
func (h GetDeliveryByOrderIDQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryByOrderIDQuery,
) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE order_id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return DeliveryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DeliveryResponse{}, err
		}
		return DeliveryResponse{}, errs.NewObjectNotFoundError(
			"orderId", query.OrderID().String())
	}

	return scanDelivery(rows)
}
