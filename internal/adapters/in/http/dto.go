package http

import (
	"time"

	"deliverytrack/internal/core/application/usecases/queries"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateDeliveryRequest is the body of POST /api/v1/deliveries.
type CreateDeliveryRequest struct {
	OrderID           string  `json:"orderId"`
	DriverID          *string `json:"driverId,omitempty"`
	RestaurantAddress string  `json:"restaurantAddress"`
	CustomerAddress   string  `json:"customerAddress"`
	Notes             string  `json:"notes,omitempty"`
}

// AssignDriverRequest is the body of PUT /api/v1/deliveries/:id/assign.
type AssignDriverRequest struct {
	DriverID   string `json:"driverId"`
	DriverName string `json:"driverName"`
}

// CancelDeliveryRequest is the body of PUT /api/v1/deliveries/:id/cancel.
type CancelDeliveryRequest struct {
	Reason string `json:"reason"`
}

// DeliveryView is the JSON representation of a delivery returned by every
// read and write endpoint. Route fields are omitted when enrichment is
// absent, driver fields before assignment, timestamps before their
// transition.
type DeliveryView struct {
	ID      string `json:"id"`
	OrderID string `json:"orderId"`

	DriverID   *string `json:"driverId,omitempty"`
	DriverName string  `json:"driverName,omitempty"`

	RestaurantAddress string `json:"restaurantAddress"`
	CustomerAddress   string `json:"customerAddress"`

	RestaurantLat *float64 `json:"restaurantLat,omitempty"`
	RestaurantLon *float64 `json:"restaurantLon,omitempty"`
	CustomerLat   *float64 `json:"customerLat,omitempty"`
	CustomerLon   *float64 `json:"customerLon,omitempty"`

	DistanceKm  *float64 `json:"distanceKm,omitempty"`
	EtaMinutes  *int     `json:"etaMinutes,omitempty"`
	TrackingURL *string  `json:"trackingUrl,omitempty"`

	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	AssignedAt  *time.Time `json:"assignedAt,omitempty"`
	PickedUpAt  *time.Time `json:"pickedUpAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}

func toDeliveryView(r queries.DeliveryResponse) DeliveryView {
	view := DeliveryView{
		ID:                r.ID.String(),
		OrderID:           r.OrderID.String(),
		DriverName:        r.DriverName,
		RestaurantAddress: r.RestaurantAddress,
		CustomerAddress:   r.CustomerAddress,
		RestaurantLat:     r.RestaurantLat,
		RestaurantLon:     r.RestaurantLon,
		CustomerLat:       r.CustomerLat,
		CustomerLon:       r.CustomerLon,
		DistanceKm:        r.DistanceKm,
		EtaMinutes:        r.EtaMinutes,
		TrackingURL:       r.TrackingURL,
		Status:            r.Status,
		Notes:             r.Notes,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		AssignedAt:        r.AssignedAt,
		PickedUpAt:        r.PickedUpAt,
		DeliveredAt:       r.DeliveredAt,
	}

	if r.DriverID != nil {
		id := r.DriverID.String()
		view.DriverID = &id
	}

	return view
}

func toDeliveryViews(rs []queries.DeliveryResponse) []DeliveryView {
	views := make([]DeliveryView, len(rs))
	for i, r := range rs {
		views[i] = toDeliveryView(r)
	}
	return views
}
