// Package geocode resolves free-form addresses to coordinates.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"volunteer-dispatch/internal/apperr"
)

// StatusError reports an unexpected HTTP status from the geocoding provider.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("geocoder responded %d", e.Code)
}

// Client talks to a Nominatim-compatible search endpoint.
type Client struct {
	base    *url.URL
	http    *http.Client
	timeout time.Duration
}

// NewClient returns a Client for the provider rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse geocoder url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("geocoder url %q: %w", baseURL, apperr.ErrInvalid)
	}
	return &Client{base: u, http: &http.Client{}, timeout: timeout}, nil
}

type place struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Resolve returns the coordinates of the first match for address.
func (c *Client) Resolve(ctx context.Context, address string) (float64, float64, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return 0, 0, fmt.Errorf("empty address: %w", apperr.ErrInvalid)
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u := *c.base
	u.Path += "/search"
	q := url.Values{}
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("q", address)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, 0, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode %q: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, &StatusError{Code: resp.StatusCode}
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return 0, 0, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(places) == 0 {
		return 0, 0, fmt.Errorf("address %q not found: %w", address, apperr.ErrInvalid)
	}
	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse longitude: %w", err)
	}
	return lat, lon, nil
}

// isRetryable reports whether a failed lookup is worth repeating.
func isRetryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code == http.StatusTooManyRequests || se.Code >= 500
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Timeout() || !errors.Is(err, context.Canceled)
	}
	return false
}

// Validate reports whether address resolves to a location.
func (c *Client) Validate(ctx context.Context, address string) bool {
	return validate(ctx, c, address)
}

func validate(ctx context.Context, r resolver, address string) bool {
	_, _, err := r.Resolve(ctx, address)
	return err == nil
}
