// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models built from raw SQL, bypassing the
// aggregate layer.
package queries

import (
	"database/sql"
	"time"

	"deliverytrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryResponse is the read model shared by all delivery queries.
// Optional fields are nil when the underlying column is NULL: driver fields
// before assignment, coordinate and estimate fields when route enrichment is
// absent, timestamps before their transition happened.
type DeliveryResponse struct {
	ID      kernel.UUID
	OrderID kernel.UUID

	DriverID   *kernel.UUID
	DriverName string

	RestaurantAddress string
	CustomerAddress   string

	RestaurantLat *float64
	RestaurantLon *float64
	CustomerLat   *float64
	CustomerLon   *float64

	DistanceKm  *float64
	EtaMinutes  *int
	TrackingURL *string

	Status string
	Notes  string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
}

// deliveryColumns is the SELECT list every delivery query shares; its order
// must match scanDelivery.
const deliveryColumns = `
	id,
	order_id,
	driver_id,
	driver_name,
	restaurant_address,
	customer_address,
	restaurant_lat,
	restaurant_lon,
	customer_lat,
	customer_lon,
	distance_km,
	eta_minutes,
	tracking_url,
	status,
	notes,
	created_at,
	updated_at,
	assigned_at,
	picked_up_at,
	delivered_at`

func scanDelivery(rows *sql.Rows) (DeliveryResponse, error) {
	var (
		response    DeliveryResponse
		id          uuid.UUID
		orderID     uuid.UUID
		driverID    uuid.NullUUID
		driverName  sql.NullString
		restLat     sql.NullFloat64
		restLon     sql.NullFloat64
		custLat     sql.NullFloat64
		custLon     sql.NullFloat64
		distanceKm  sql.NullFloat64
		etaMinutes  sql.NullInt64
		trackingURL sql.NullString
		assignedAt  sql.NullTime
		pickedUpAt  sql.NullTime
		deliveredAt sql.NullTime
	)

	err := rows.Scan(
		&id,
		&orderID,
		&driverID,
		&driverName,
		&response.RestaurantAddress,
		&response.CustomerAddress,
		&restLat,
		&restLon,
		&custLat,
		&custLon,
		&distanceKm,
		&etaMinutes,
		&trackingURL,
		&response.Status,
		&response.Notes,
		&response.CreatedAt,
		&response.UpdatedAt,
		&assignedAt,
		&pickedUpAt,
		&deliveredAt,
	)
	if err != nil {
		return DeliveryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return DeliveryResponse{}, err
	}
	if response.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return DeliveryResponse{}, err
	}
	if driverID.Valid {
		driver, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if idErr != nil {
			return DeliveryResponse{}, idErr
		}
		response.DriverID = &driver
	}
	if driverName.Valid {
		response.DriverName = driverName.String
	}

	response.RestaurantLat = nullFloat(restLat)
	response.RestaurantLon = nullFloat(restLon)
	response.CustomerLat = nullFloat(custLat)
	response.CustomerLon = nullFloat(custLon)
	response.DistanceKm = nullFloat(distanceKm)
	if etaMinutes.Valid {
		eta := int(etaMinutes.Int64)
		response.EtaMinutes = &eta
	}
	if trackingURL.Valid {
		response.TrackingURL = &trackingURL.String
	}
	response.AssignedAt = nullTime(assignedAt)
	response.PickedUpAt = nullTime(pickedUpAt)
	response.DeliveredAt = nullTime(deliveredAt)

	return response, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	return &v.Time
}
