package maps

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "house-info-api/internal/errors"
	"house-info-api/internal/transformers"
)

const beverlyHillsResponse = `{
  "status": "OK",
  "results": [{
    "formatted_address": "123 Main St, Beverly Hills, CA 90210, USA",
    "place_id": "place-123",
    "geometry": {"location": {"lat": 34.0736, "lng": -118.4004}}
  }]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Options{APIKey: "test-key", BaseURL: server.URL}, transformers.NewAddressTransformer())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestGeocode(t *testing.T) {
	var gotAddress, gotKey string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/maps/api/geocode/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAddress = r.URL.Query().Get("address")
		gotKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(beverlyHillsResponse))
	})

	result, err := client.Geocode(context.Background(), "123 Main Street, Beverly Hills, CA 90210")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAddress != "123 Main Street, Beverly Hills, CA 90210" {
		t.Errorf("unexpected address query %q", gotAddress)
	}
	if gotKey != "test-key" {
		t.Errorf("unexpected key %q", gotKey)
	}
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.Address != "123 Main Street, Beverly Hills, CA 90210" {
		t.Errorf("unexpected address %q", result.Address)
	}
	if result.FormattedAddress != "123 Main St, Beverly Hills, CA 90210, USA" || result.PlaceID != "place-123" {
		t.Errorf("unexpected result %+v", result)
	}
	if result.Latitude != 34.0736 || result.Longitude != -118.4004 {
		t.Errorf("unexpected coordinates %v,%v", result.Latitude, result.Longitude)
	}
}

func TestGeocodeZeroResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	result, err := client.Geocode(context.Background(), "nowhere at all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Errorf("expected no result, got %+v", result)
	}
}

func TestGeocodeRequestDenied(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "bad key", "results": []}`))
	})

	if _, err := client.Geocode(context.Background(), "123 Main St"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestGeocodeWithoutAPIKey(t *testing.T) {
	client, err := NewClient(Options{}, transformers.NewAddressTransformer())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Configured() {
		t.Error("expected unconfigured client")
	}
	if _, err := client.Geocode(context.Background(), "123 Main St"); !errors.Is(err, apperrors.ErrMapsNotConfigured) {
		t.Errorf("expected ErrMapsNotConfigured, got %v", err)
	}
}

func TestGeocodeTransportErrorHidesKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client, err := NewClient(Options{APIKey: "SECRET-MAPS-KEY", BaseURL: baseURL}, transformers.NewAddressTransformer())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = client.Geocode(context.Background(), "123 Main St")
	if err == nil {
		t.Fatal("expected an error from a closed server")
	}
	if strings.Contains(err.Error(), "SECRET-MAPS-KEY") {
		t.Errorf("error leaks the API key: %v", err)
	}
	if msg := apperrors.MapError(err).UserMessage; strings.Contains(msg, "SECRET-MAPS-KEY") {
		t.Errorf("user message leaks the API key: %q", msg)
	}
}
