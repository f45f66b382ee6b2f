package minir3

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wjhx/sonoffctl/internal/logging"
)

const (
	// DefaultPort is the HTTP port the DIY-mode API listens on
	DefaultPort = 8081

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second
)

// Client represents an HTTP client for a single Sonoff mini R3 in DIY mode.
//
// The client holds only immutable configuration and issues one HTTP
// exchange per call, so it is safe for concurrent use. It never retries,
// caches, or authenticates; timeout and cancellation policy live entirely
// on HTTPClient.
type Client struct {
	// BaseURL is the base URL for the device (e.g., "http://192.168.1.75:8081")
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewClient creates a new client for the device at the given host and port.
// host: device IP address or hostname (e.g., "192.168.1.75")
// port: device HTTP port (8081 on stock DIY-mode firmware)
func NewClient(host string, port int) *Client {
	return NewClientWithURL(fmt.Sprintf("http://%s:%d", host, port))
}

// NewClientWithURL creates a new client with a full base URL
// baseURL: Full base URL (e.g., "http://192.168.1.75:8081")
func NewClientWithURL(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// url builds the endpoint URL for a DIY-mode API path
func (c *Client) url(path string) string {
	return c.BaseURL + "/zeroconf/" + path
}

// FetchInfo retrieves the current state of outlet 0.
//
// It POSTs /zeroconf/info and extracts the outlet-0 entries from the
// device's per-outlet arrays. The other outlets are reported by the device
// but not surfaced here.
func (c *Client) FetchInfo() (*Info, error) {
	body, err := c.post("info", newInfoRequest())
	if err != nil {
		return nil, err
	}
	return ParseInfoResponse(body)
}

// SetStartupPosition sets the boot-time state of outlet 0.
//
// WARNING: the /zeroconf/startups endpoint does not support partial
// updates, so every call also resets the startup state of outlets 1-3 to
// "off". Callers with startup state configured on other outlets lose it.
func (c *Client) SetStartupPosition(position StartupPosition) error {
	body, err := c.post("startups", newStartupsRequest(position))
	if err != nil {
		return err
	}
	return ParseSetResponse(body)
}

// SetSwitchPosition sets the current power state of outlet 0. This is a
// true partial update; the other outlets are left untouched.
func (c *Client) SetSwitchPosition(position SwitchPosition) error {
	body, err := c.post("switches", newSwitchesRequest(position))
	if err != nil {
		return err
	}
	return ParseSetResponse(body)
}

// post performs a single POST exchange against a DIY-mode endpoint and
// returns the raw response body. Non-200 responses that still carry an
// error envelope are mapped to device errors, since the firmware reports
// rejections both ways at once.
func (c *Client) post(path string, payload any) ([]byte, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, NewParseError("failed to encode request body", err)
	}

	logging.LogDeviceRequest(c.BaseURL, path, reqBody)

	resp, err := c.HTTPClient.Post(c.url(path), "application/json", bytes.NewReader(reqBody))
	if err != nil {
		return nil, NewNetworkError(fmt.Sprintf("POST /zeroconf/%s failed", path), err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError("failed to read response body", err)
	}

	logging.LogDeviceResponse(c.BaseURL, path, resp.StatusCode, body)

	if resp.StatusCode != http.StatusOK {
		var env envelope
		if jsonErr := json.Unmarshal(body, &env); jsonErr == nil && env.Error != 0 {
			return nil, NewDeviceError(env.Error)
		}
		return nil, NewHTTPError(resp.StatusCode, fmt.Sprintf("unexpected status code: %d", resp.StatusCode))
	}

	return body, nil
}
