// Package openroute implements the routing client port against the
// OpenRouteService HTTP API: forward geocoding via /geocode/search and
// driving distance/duration via the /v2/matrix endpoint.
package openroute

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/core/domain/services"
)

const drivingProfile = "driving-car"

// Client calls OpenRouteService. All failures are reported as
// services.ErrProviderUnavailable except an address that resolves to no
// result, which is services.ErrAddressNotFound; the route estimator decides
// how to degrade.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ services.RoutingClient = (*Client)(nil)

// NewClient creates an OpenRouteService client.
// The timeout bounds each individual request.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			// GeoJSON order: [longitude, latitude].
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Geocode resolves a free-text address to its best-match coordinates.
func (c *Client) Geocode(ctx context.Context, address string) (kernel.Coordinates, error) {
	endpoint := fmt.Sprintf("%s/geocode/search?api_key=%s&text=%s&size=1",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return kernel.Coordinates{}, fmt.Errorf("%w: %w", services.ErrProviderUnavailable, err)
	}

	body, err := c.do(req)
	if err != nil {
		return kernel.Coordinates{}, err
	}

	var parsed geocodeResponse
	if err = json.Unmarshal(body, &parsed); err != nil {
		return kernel.Coordinates{}, fmt.Errorf("%w: decoding geocode response: %w",
			services.ErrProviderUnavailable, err)
	}

	if len(parsed.Features) == 0 {
		return kernel.Coordinates{}, fmt.Errorf("%w: %q", services.ErrAddressNotFound, address)
	}

	coords := parsed.Features[0].Geometry.Coordinates
	if len(coords) < 2 {
		return kernel.Coordinates{}, fmt.Errorf("%w: geocode response has %d coordinates",
			services.ErrProviderUnavailable, len(coords))
	}

	result, err := kernel.NewCoordinates(coords[1], coords[0])
	if err != nil {
		return kernel.Coordinates{}, fmt.Errorf("%w: %w", services.ErrProviderUnavailable, err)
	}

	return result, nil
}

type matrixRequest struct {
	Locations [][]float64 `json:"locations"`
	Metrics   []string    `json:"metrics"`
}

type matrixResponse struct {
	Distances [][]float64 `json:"distances"`
	Durations [][]float64 `json:"durations"`
}

// DistanceAndDuration returns the driving distance in kilometers and travel
// time in whole minutes (rounded up) between two points.
func (c *Client) DistanceAndDuration(
	ctx context.Context, origin, destination kernel.Coordinates,
) (float64, int, error) {
	payload, err := json.Marshal(matrixRequest{
		Locations: [][]float64{
			{origin.Longitude(), origin.Latitude()},
			{destination.Longitude(), destination.Latitude()},
		},
		Metrics: []string{"distance", "duration"},
	})
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", services.ErrProviderUnavailable, err)
	}

	endpoint := fmt.Sprintf("%s/v2/matrix/%s", c.baseURL, drivingProfile)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", services.ErrProviderUnavailable, err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return 0, 0, err
	}

	var parsed matrixResponse
	if err = json.Unmarshal(body, &parsed); err != nil {
		return 0, 0, fmt.Errorf("%w: decoding matrix response: %w",
			services.ErrProviderUnavailable, err)
	}

	if len(parsed.Distances) < 1 || len(parsed.Distances[0]) < 2 ||
		len(parsed.Durations) < 1 || len(parsed.Durations[0]) < 2 {
		return 0, 0, fmt.Errorf("%w: matrix response is incomplete",
			services.ErrProviderUnavailable)
	}

	distanceKm := parsed.Distances[0][1] / 1000.0
	etaMinutes := int(math.Ceil(parsed.Durations[0][1] / 60.0))
	return distanceKm, etaMinutes, nil
}

// TrackingURL builds a Google Maps driving-directions link for the route.
func (c *Client) TrackingURL(origin, destination kernel.Coordinates) string {
	return fmt.Sprintf(
		"https://www.google.com/maps/dir/?api=1&origin=%f,%f&destination=%f,%f&travelmode=driving",
		origin.Latitude(), origin.Longitude(),
		destination.Latitude(), destination.Longitude(),
	)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", services.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d",
			services.ErrProviderUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", services.ErrProviderUnavailable, err)
	}

	return body, nil
}
