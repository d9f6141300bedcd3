package queries

import (
	"context"

	"deliverytrack/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetDeliveriesByDriverQueryHandler lists delivery read models for a driver,
// newest first.
type GetDeliveriesByDriverQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesByDriverQueryHandler creates a handler for driver-keyed listings.
func NewGetDeliveriesByDriverQueryHandler(db *gorm.DB) GetDeliveriesByDriverQueryHandler {
	return GetDeliveriesByDriverQueryHandler{db: db}
}

// Handle executes the listing. An unknown driver yields an empty slice,
// never an error.
func (h GetDeliveriesByDriverQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesByDriverQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE driver_id = ?`
	args := []any{query.DriverID().String()}

	if query.ActiveOnly() {
		sql += ` AND status = ?`
		args = append(args, delivery.InTransit.String())
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
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
