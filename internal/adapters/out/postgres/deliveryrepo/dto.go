// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. It converts between the delivery domain aggregate
// and its relational representation, flattening the optional route enrichment
// into nullable columns.
package deliveryrepo

import (
	"time"

	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. The unique index on order_id enforces one delivery per order at
// the storage level; version carries the optimistic-locking counter.
//
// Route columns are NULL when enrichment is absent: the coordinate columns
// appear together, and the estimate columns appear only when the coordinate
// columns do.
type DeliveryDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	DriverID *uuid.UUID `gorm:"type:uuid;index"`

	DriverName        string
	RestaurantAddress string
	CustomerAddress   string

	RestaurantLat *float64
	RestaurantLon *float64
	CustomerLat   *float64
	CustomerLon   *float64

	DistanceKm  *float64
	EtaMinutes  *int
	TrackingURL *string

	Status string `gorm:"index"`
	Notes  string

	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time

	Version int
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	dto := DeliveryDTO{
		ID:                aggregate.ID().Bytes(),
		OrderID:           aggregate.OrderID().Bytes(),
		DriverID:          driverID,
		DriverName:        aggregate.DriverName(),
		RestaurantAddress: aggregate.RestaurantAddress(),
		CustomerAddress:   aggregate.CustomerAddress(),
		Status:            aggregate.Status().String(),
		Notes:             aggregate.Notes(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
		AssignedAt:        aggregate.AssignedAt(),
		PickedUpAt:        aggregate.PickedUpAt(),
		DeliveredAt:       aggregate.DeliveredAt(),
		Version:           aggregate.Version(),
	}

	if route := aggregate.Route(); route != nil {
		restLat := route.RestaurantCoordinates().Latitude()
		restLon := route.RestaurantCoordinates().Longitude()
		custLat := route.CustomerCoordinates().Latitude()
		custLon := route.CustomerCoordinates().Longitude()
		dto.RestaurantLat = &restLat
		dto.RestaurantLon = &restLon
		dto.CustomerLat = &custLat
		dto.CustomerLon = &custLon

		if estimate := route.Estimate(); estimate != nil {
			distance := estimate.DistanceKm()
			eta := estimate.EtaMinutes()
			url := estimate.TrackingURL()
			dto.DistanceKm = &distance
			dto.EtaMinutes = &eta
			dto.TrackingURL = &url
		}
	}

	return dto
}

// toDomain converts a database DTO to a delivery aggregate, rebuilding the
// route composite from the nullable columns via RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	route, err := routeFromDTO(dto)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(delivery.DeliveryState{
		ID:                id,
		OrderID:           orderID,
		DriverID:          driverID,
		DriverName:        dto.DriverName,
		RestaurantAddress: dto.RestaurantAddress,
		CustomerAddress:   dto.CustomerAddress,
		Route:             route,
		Status:            status,
		Notes:             dto.Notes,
		CreatedAt:         dto.CreatedAt,
		UpdatedAt:         dto.UpdatedAt,
		AssignedAt:        dto.AssignedAt,
		PickedUpAt:        dto.PickedUpAt,
		DeliveredAt:       dto.DeliveredAt,
		Version:           dto.Version,
	})
}

func routeFromDTO(dto DeliveryDTO) (*delivery.RouteInfo, error) {
	if dto.RestaurantLat == nil || dto.RestaurantLon == nil ||
		dto.CustomerLat == nil || dto.CustomerLon == nil {
		return nil, nil
	}

	restaurant, err := kernel.NewCoordinates(*dto.RestaurantLat, *dto.RestaurantLon)
	if err != nil {
		return nil, err
	}

	customer, err := kernel.NewCoordinates(*dto.CustomerLat, *dto.CustomerLon)
	if err != nil {
		return nil, err
	}

	if dto.DistanceKm == nil || dto.EtaMinutes == nil || dto.TrackingURL == nil {
		route, err := delivery.NewRouteInfo(restaurant, customer)
		if err != nil {
			return nil, err
		}
		return &route, nil
	}

	estimate, err := delivery.NewEstimate(*dto.DistanceKm, *dto.EtaMinutes, *dto.TrackingURL)
	if err != nil {
		return nil, err
	}

	route, err := delivery.NewRouteInfoWithEstimate(restaurant, customer, estimate)
	if err != nil {
		return nil, err
	}
	return &route, nil
}
