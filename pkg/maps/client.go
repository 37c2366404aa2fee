package maps

import (
	"fmt"
	"net/http"
	"time"

	"house-info-api/internal/transformers"

	"googlemaps.github.io/maps"
)

// Client geocodes free-text addresses through the Google Maps Geocoding API.
type Client struct {
	maps      *maps.Client
	addrTrans transformers.AddressTransformer
	timeout   time.Duration
}

// Options configures a Client. An empty APIKey yields a client whose calls
// fail with ErrMapsNotConfigured.
type Options struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// NewClient creates a new geocoding client
func NewClient(opts Options, addrTrans transformers.AddressTransformer) (*Client, error) {
	c := &Client{
		addrTrans: addrTrans,
		timeout:   opts.Timeout,
	}
	if c.timeout <= 0 {
		c.timeout = 10 * time.Second
	}
	if opts.APIKey == "" {
		return c, nil
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: c.timeout}
	}
	clientOpts := []maps.ClientOption{
		maps.WithAPIKey(opts.APIKey),
		maps.WithHTTPClient(httpClient),
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, maps.WithBaseURL(opts.BaseURL))
	}

	mc, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %v", err)
	}
	c.maps = mc
	return c, nil
}

// Configured reports whether an API key was supplied.
func (c *Client) Configured() bool {
	return c.maps != nil
}

func (c *Client) Name() string {
	return "google_maps"
}
