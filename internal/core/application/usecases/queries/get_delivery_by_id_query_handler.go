package queries

import (
	"context"

	"deliverytrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryByIDQueryHandler retrieves one delivery read model by ID.
// Uses direct SQL for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetDeliveryByIDQueryHandler(db)
//	query, _ := NewGetDeliveryByIDQuery(deliveryID)
//
//	response, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown delivery
//	}
type GetDeliveryByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryByIDQueryHandler creates a handler for single-delivery lookups.
func NewGetDeliveryByIDQueryHandler(db *gorm.DB) GetDeliveryByIDQueryHandler {
	return GetDeliveryByIDQueryHandler{db: db}
}

// Handle executes the lookup.
// Fails with an ObjectNotFoundError when no delivery has the given ID.
func (h GetDeliveryByIDQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryByIDQuery,
) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE id = ?
	`, query.DeliveryID().String()).Rows()
	if err != nil {
		return DeliveryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DeliveryResponse{}, err
		}
		return DeliveryResponse{}, errs.NewObjectNotFoundError(
			"deliveryId", query.DeliveryID().String())
	}

	return scanDelivery(rows)
}
