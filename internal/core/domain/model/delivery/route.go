package delivery

import (
	"fmt"

	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/pkg/errs"
	"deliverytrack/internal/pkg/guard"
)

// ErrEstimateIsNotConstructed is returned when validating a zero-value Estimate.
var ErrEstimateIsNotConstructed = errs.NewValueIsRequiredError(
	"estimate must be created via NewEstimate constructor")

// ErrRouteInfoIsNotConstructed is returned when validating a zero-value RouteInfo.
var ErrRouteInfoIsNotConstructed = errs.NewValueIsRequiredError(
	"route info must be created via NewRouteInfo or NewRouteInfoWithEstimate constructors")

// Estimate is the distance/duration result of a matrix lookup together with
// the tracking link derived from the same coordinate pair. The three values
// only ever exist together, so they form a single value object.
type Estimate struct { //nolint:recvcheck //using for validation
	distanceKm  float64
	etaMinutes  int
	trackingURL string

	guard guard.ConstructorGuard
}

// NewEstimate creates a validated Estimate.
// Distance and ETA must be non-negative; the tracking URL must be non-empty.
func NewEstimate(distanceKm float64, etaMinutes int, trackingURL string) (Estimate, error) {
	if distanceKm < 0 {
		return Estimate{}, errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%f is negative", distanceKm))
	}
	if etaMinutes < 0 {
		return Estimate{}, errs.NewValueIsInvalidErrorWithCause("etaMinutes",
			fmt.Errorf("%d is negative", etaMinutes))
	}
	if trackingURL == "" {
		return Estimate{}, errs.NewValueIsRequiredError("trackingURL")
	}

	return Estimate{
		distanceKm:  distanceKm,
		etaMinutes:  etaMinutes,
		trackingURL: trackingURL,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// DistanceKm returns the driving distance in kilometers.
func (e Estimate) DistanceKm() float64 {
	return e.distanceKm
}

// EtaMinutes returns the estimated travel time in whole minutes, rounded up.
func (e Estimate) EtaMinutes() int {
	return e.etaMinutes
}

// TrackingURL returns the map link for following the route.
func (e Estimate) TrackingURL() string {
	return e.trackingURL
}

// Validate ensures the Estimate was created via NewEstimate.
func (e Estimate) Validate() error {
	return e.guard.Validate(ErrEstimateIsNotConstructed)
}

// RouteInfo is the enrichment attached to a delivery when geocoding succeeds.
// The resolved coordinates of both addresses are always present; the Estimate
// is optional and absent when the distance-matrix call failed.
//
// Modelling the enrichment as one composite keeps the invariant "coordinates,
// estimate and tracking URL never appear independently" unrepresentable to
// violate: a delivery either has no RouteInfo, coordinates only, or the full
// set.
type RouteInfo struct { //nolint:recvcheck //using for validation
	restaurantCoordinates kernel.Coordinates
	customerCoordinates   kernel.Coordinates
	estimate              *Estimate

	guard guard.ConstructorGuard
}

// NewRouteInfo creates RouteInfo holding resolved coordinates without an estimate.
func NewRouteInfo(restaurant, customer kernel.Coordinates) (RouteInfo, error) {
	info := RouteInfo{guard: guard.NewConstructorGuard()}

	if err := restaurant.Validate(); err != nil {
		return RouteInfo{}, err
	}
	if err := customer.Validate(); err != nil {
		return RouteInfo{}, err
	}

	info.restaurantCoordinates = restaurant
	info.customerCoordinates = customer
	return info, nil
}

// NewRouteInfoWithEstimate creates fully enriched RouteInfo.
func NewRouteInfoWithEstimate(restaurant, customer kernel.Coordinates, estimate Estimate) (RouteInfo, error) {
	info, err := NewRouteInfo(restaurant, customer)
	if err != nil {
		return RouteInfo{}, err
	}
	if err = estimate.Validate(); err != nil {
		return RouteInfo{}, err
	}

	info.estimate = &estimate
	return info, nil
}

// RestaurantCoordinates returns the geocoded restaurant position.
func (r RouteInfo) RestaurantCoordinates() kernel.Coordinates {
	return r.restaurantCoordinates
}

// CustomerCoordinates returns the geocoded customer position.
func (r RouteInfo) CustomerCoordinates() kernel.Coordinates {
	return r.customerCoordinates
}

// Estimate returns the distance/duration estimate, or nil when the
// distance-matrix lookup did not succeed.
func (r RouteInfo) Estimate() *Estimate {
	return r.estimate
}

// HasEstimate reports whether a full estimate is attached.
func (r RouteInfo) HasEstimate() bool {
	return r.estimate != nil
}

// Validate ensures the RouteInfo was created via a constructor.
func (r RouteInfo) Validate() error {
	return r.guard.Validate(ErrRouteInfoIsNotConstructed)
}
