package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDeliveriesByStatusQueryHandler lists delivery read models in one status,
// newest first.
type GetDeliveriesByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesByStatusQueryHandler creates a handler for status-filtered listings.
func NewGetDeliveriesByStatusQueryHandler(db *gorm.DB) GetDeliveriesByStatusQueryHandler {
	return GetDeliveriesByStatusQueryHandler{db: db}
}

// Handle executes the listing. A status with no deliveries yields an empty
// slice, never an error.
func (h GetDeliveriesByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesByStatusQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE status = ?
		ORDER BY created_at DESC
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]DeliveryResponse, 0)
	for rows.Next() {
		response, scanErr := scanDelivery(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		deliveries = append(deliveries, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
