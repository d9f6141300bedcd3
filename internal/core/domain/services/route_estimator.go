package services

import (
	"context"
	"errors"
	"log/slog"

	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/core/domain/model/kernel"
)

var (
	// ErrProviderUnavailable indicates the routing provider could not be
	// reached or returned an unusable response. Returned by RoutingClient
	// implementations; never propagated past the RouteEstimator.
	ErrProviderUnavailable = errors.New("routing provider unavailable")

	// ErrAddressNotFound indicates the provider returned zero matches for an
	// address. Returned by RoutingClient implementations.
	ErrAddressNotFound = errors.New("address not found")
)

// RoutingClient is the contract for the external routing provider.
// Implementations are stateless and perform no internal retries; retry policy
// belongs to the caller.
type RoutingClient interface {
	// Geocode resolves a free-text address to its single best-match
	// coordinates. Fails with ErrAddressNotFound on zero matches and
	// ErrProviderUnavailable on transport or provider errors.
	Geocode(ctx context.Context, address string) (kernel.Coordinates, error)

	// DistanceAndDuration returns the driving distance and travel time
	// between two points. Fails with ErrProviderUnavailable on transport
	// errors or a malformed/empty matrix response.
	DistanceAndDuration(ctx context.Context, origin, destination kernel.Coordinates) (
		distanceKm float64, etaMinutes int, err error)

	// TrackingURL builds a map link for the route. Pure string
	// construction; no network call.
	TrackingURL(origin, destination kernel.Coordinates) string
}

// RouteEstimator enriches a delivery's addressing with geocoded coordinates,
// a distance/duration estimate, and a tracking link.
//
// Its defining contract is "degrade, never block": delivery creation must not
// depend on the routing provider's availability, so every failure — transport
// error, zero geocoding matches, malformed response, even a panicking client —
// is logged and absorbed. Estimate never returns an error.
type RouteEstimator struct {
	client RoutingClient
	logger *slog.Logger
}

// NewRouteEstimator creates a RouteEstimator over the given routing client.
func NewRouteEstimator(client RoutingClient, logger *slog.Logger) RouteEstimator {
	return RouteEstimator{
		client: client,
		logger: logger.With("component", "route_estimator"),
	}
}

// Estimate resolves both addresses and computes the route enrichment.
//
// Outcomes:
//   - both geocoding calls and the matrix lookup succeed: RouteInfo with
//     coordinates and a full Estimate (distance, ETA, tracking URL)
//   - geocoding succeeds but the matrix lookup fails: RouteInfo with
//     coordinates only
//   - either geocoding call fails: nil
//
// The second return value reports whether any enrichment was produced.
func (e RouteEstimator) Estimate(ctx context.Context, restaurantAddress, customerAddress string) (
	info *delivery.RouteInfo, ok bool) {
	// A panicking routing client must not abort delivery creation.
	defer func() {
		if r := recover(); r != nil {
			e.logger.ErrorContext(ctx, "routing client panicked, continuing without enrichment", "panic", r)
			info = nil
			ok = false
		}
	}()

	restaurantCoords, err := e.client.Geocode(ctx, restaurantAddress)
	if err != nil {
		e.logger.WarnContext(ctx, "failed to geocode restaurant address",
			"address", restaurantAddress, "error", err)
		return nil, false
	}

	customerCoords, err := e.client.Geocode(ctx, customerAddress)
	if err != nil {
		e.logger.WarnContext(ctx, "failed to geocode customer address",
			"address", customerAddress, "error", err)
		return nil, false
	}

	distanceKm, etaMinutes, err := e.client.DistanceAndDuration(ctx, restaurantCoords, customerCoords)
	if err != nil {
		e.logger.WarnContext(ctx, "distance matrix lookup failed, attaching coordinates only", "error", err)

		route, routeErr := delivery.NewRouteInfo(restaurantCoords, customerCoords)
		if routeErr != nil {
			e.logger.ErrorContext(ctx, "failed to build route info", "error", routeErr)
			return nil, false
		}
		return &route, true
	}

	estimate, err := delivery.NewEstimate(distanceKm, etaMinutes,
		e.client.TrackingURL(restaurantCoords, customerCoords))
	if err != nil {
		e.logger.WarnContext(ctx, "provider returned an unusable estimate, attaching coordinates only",
			"distance_km", distanceKm, "eta_minutes", etaMinutes, "error", err)

		route, routeErr := delivery.NewRouteInfo(restaurantCoords, customerCoords)
		if routeErr != nil {
			e.logger.ErrorContext(ctx, "failed to build route info", "error", routeErr)
			return nil, false
		}
		return &route, true
	}

	route, err := delivery.NewRouteInfoWithEstimate(restaurantCoords, customerCoords, estimate)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to build route info", "error", err)
		return nil, false
	}

	e.logger.InfoContext(ctx, "route estimated",
		"distance_km", estimate.DistanceKm(), "eta_minutes", estimate.EtaMinutes())
	return &route, true
}
