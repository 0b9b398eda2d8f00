package citybikes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jengzang/velomap-backend-go/internal/models"
)

// Defaults for the public citybik.es API
const (
	DefaultBaseURL = "https://api.citybik.es"
	DefaultNetwork = "velo-antwerpen"
)

// ErrUnexpectedStatus is returned for non-2xx upstream responses
var ErrUnexpectedStatus = errors.New("citybikes: unexpected status")

// ErrMalformedResponse is returned when the body is not a network document
var ErrMalformedResponse = errors.New("citybikes: malformed response")

// Client provides access to the citybik.es network API
type Client struct {
	baseURL    string
	network    string
	httpClient *http.Client
}

// NewClient creates a new API client for one network
func NewClient(baseURL, network string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, network, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP creates a new API client with a custom HTTP client
func NewClientWithHTTP(baseURL, network string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if network == "" {
		network = DefaultNetwork
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		network:    network,
		httpClient: httpClient,
	}
}

// NetworkURL returns the endpoint the client reads
func (c *Client) NetworkURL() string {
	return fmt.Sprintf("%s/v2/networks/%s", c.baseURL, url.PathEscape(c.network))
}

// FetchNetwork retrieves the full station snapshot. It makes one request and
// never retries.
func (c *Client) FetchNetwork(ctx context.Context) (*models.Network, error) {
	requestURL := c.NetworkURL()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch network: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w %d from %s: %s", ErrUnexpectedStatus, resp.StatusCode, requestURL, strings.TrimSpace(string(body)))
	}

	var envelope models.NetworkEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if envelope.Network == nil {
		return nil, fmt.Errorf("%w: missing network object", ErrMalformedResponse)
	}
	if envelope.Network.Stations == nil {
		envelope.Network.Stations = []models.Station{}
	}

	log.Printf("[CityBikes] Fetched %s: %d stations", envelope.Network.Name, len(envelope.Network.Stations))
	return envelope.Network, nil
}
