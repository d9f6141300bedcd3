package openroute_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"deliverytrack/internal/adapters/out/openroute"
	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *openroute.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return openroute.NewClient(server.URL, "test-key", 5*time.Second)
}

func TestClient_Geocode_Success(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/search", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "12 Rue de la Paix, Paris", r.URL.Query().Get("text"))
		assert.Equal(t, "1", r.URL.Query().Get("size"))

		// GeoJSON coordinate order is [lon, lat].
		_, _ = w.Write([]byte(`{"features":[{"geometry":{"coordinates":[2.3311,48.8698]}}]}`))
	})

	coords, err := client.Geocode(t.Context(), "12 Rue de la Paix, Paris")
	require.NoError(t, err)
	assert.InDelta(t, 48.8698, coords.Latitude(), 1e-9)
	assert.InDelta(t, 2.3311, coords.Longitude(), 1e-9)
}

func TestClient_Geocode_NoResults(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"features":[]}`))
	})

	_, err := client.Geocode(t.Context(), "nowhere at all")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrAddressNotFound)
}

func TestClient_Geocode_ServerError(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Geocode(t.Context(), "12 Rue de la Paix, Paris")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrProviderUnavailable)
}

func TestClient_Geocode_MalformedBody(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"features": "oops"`))
	})

	_, err := client.Geocode(t.Context(), "12 Rue de la Paix, Paris")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrProviderUnavailable)
}

func TestClient_Geocode_Unreachable(t *testing.T) {
	client := openroute.NewClient("http://127.0.0.1:1", "test-key", 200*time.Millisecond)

	_, err := client.Geocode(t.Context(), "12 Rue de la Paix, Paris")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrProviderUnavailable)
}

func TestClient_DistanceAndDuration_Success(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/matrix/driving-car", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))

		var body struct {
			Locations [][]float64 `json:"locations"`
			Metrics   []string    `json:"metrics"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Locations, 2)
		assert.InDelta(t, 2.3311, body.Locations[0][0], 1e-9)
		assert.InDelta(t, 48.8698, body.Locations[0][1], 1e-9)
		assert.ElementsMatch(t, []string{"distance", "duration"}, body.Metrics)

		_, _ = w.Write([]byte(`{"distances":[[0,12345],[12345,0]],"durations":[[0,905],[905,0]]}`))
	})

	origin, err := kernel.NewCoordinates(48.8698, 2.3311)
	require.NoError(t, err)
	destination, err := kernel.NewCoordinates(48.8708, 2.2850)
	require.NoError(t, err)

	distanceKm, etaMinutes, err := client.DistanceAndDuration(t.Context(), origin, destination)
	require.NoError(t, err)
	assert.InDelta(t, 12.345, distanceKm, 1e-9)
	assert.Equal(t, 16, etaMinutes) // 905s rounds up to 16 minutes
}

func TestClient_DistanceAndDuration_ExactMinuteDoesNotRoundUp(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"distances":[[0,1000],[1000,0]],"durations":[[0,600],[600,0]]}`))
	})

	origin, _ := kernel.NewCoordinates(48.8698, 2.3311)
	destination, _ := kernel.NewCoordinates(48.8708, 2.2850)

	distanceKm, etaMinutes, err := client.DistanceAndDuration(t.Context(), origin, destination)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, distanceKm, 1e-9)
	assert.Equal(t, 10, etaMinutes)
}

func TestClient_DistanceAndDuration_IncompleteMatrix(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"distances":[[0]],"durations":[[0]]}`))
	})

	origin, _ := kernel.NewCoordinates(48.8698, 2.3311)
	destination, _ := kernel.NewCoordinates(48.8708, 2.2850)

	_, _, err := client.DistanceAndDuration(t.Context(), origin, destination)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrProviderUnavailable)
}

func TestClient_TrackingURL(t *testing.T) {
	client := openroute.NewClient("http://unused", "test-key", time.Second)

	origin, _ := kernel.NewCoordinates(48.8698, 2.3311)
	destination, _ := kernel.NewCoordinates(48.8708, 2.2850)

	url := client.TrackingURL(origin, destination)
	assert.Equal(t,
		"https://www.google.com/maps/dir/?api=1&origin=48.869800,2.331100&destination=48.870800,2.285000&travelmode=driving",
		url)
}
