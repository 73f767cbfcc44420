// Package gateway provides the HTTP client for the remote trip service.
// It is the only package that knows the wire shape; everything above it
// works with domain types. Read failures wrap domain.ErrLoad, write
// failures wrap domain.ErrWrite, so callers can branch on the taxonomy
// without inspecting HTTP details.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mkraev/trip-planner/internal/domain"
)

// Client talks to the remote trip service.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// New creates a client for the service at baseURL (no trailing slash).
// authToken is sent verbatim in the Authorization header; the credential is
// opaque to this client.
func New(baseURL, authToken string) *Client {
	return &Client{
		baseURL:   baseURL,
		authToken: authToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchPoints returns all points known to the remote service.
func (c *Client) FetchPoints(ctx context.Context) ([]domain.Point, error) {
	var wire []wirePoint
	if err := c.do(ctx, http.MethodGet, "/points", nil, &wire); err != nil {
		return nil, fmt.Errorf("gateway.Client.FetchPoints: %w: %w", domain.ErrLoad, err)
	}
	points := make([]domain.Point, 0, len(wire))
	for _, w := range wire {
		points = append(points, fromWire(w))
	}
	return points, nil
}

// FetchDestinations returns the destination reference dataset.
func (c *Client) FetchDestinations(ctx context.Context) ([]domain.Destination, error) {
	var wire []wireDestination
	if err := c.do(ctx, http.MethodGet, "/destinations", nil, &wire); err != nil {
		return nil, fmt.Errorf("gateway.Client.FetchDestinations: %w: %w", domain.ErrLoad, err)
	}
	destinations := make([]domain.Destination, 0, len(wire))
	for _, w := range wire {
		destinations = append(destinations, fromWireDestination(w))
	}
	return destinations, nil
}

// FetchOffers returns the offer reference dataset, grouped by point type.
func (c *Client) FetchOffers(ctx context.Context) ([]domain.OfferGroup, error) {
	var wire []wireOfferGroup
	if err := c.do(ctx, http.MethodGet, "/offers", nil, &wire); err != nil {
		return nil, fmt.Errorf("gateway.Client.FetchOffers: %w: %w", domain.ErrLoad, err)
	}
	groups := make([]domain.OfferGroup, 0, len(wire))
	for _, w := range wire {
		groups = append(groups, fromWireOfferGroup(w))
	}
	return groups, nil
}

// CreatePoint sends a draft and returns the persisted point with its
// server-assigned id.
func (c *Client) CreatePoint(ctx context.Context, draft domain.Point) (domain.Point, error) {
	var created wirePoint
	if err := c.do(ctx, http.MethodPost, "/points", toWire(draft), &created); err != nil {
		return domain.Point{}, fmt.Errorf("gateway.Client.CreatePoint: %w: %w", domain.ErrWrite, err)
	}
	return fromWire(created), nil
}

// UpdatePoint sends the full normalized point and returns the saved record.
func (c *Client) UpdatePoint(ctx context.Context, point domain.Point) (domain.Point, error) {
	var saved wirePoint
	if err := c.do(ctx, http.MethodPut, "/points/"+point.ID, toWire(point), &saved); err != nil {
		return domain.Point{}, fmt.Errorf("gateway.Client.UpdatePoint: %w: %w", domain.ErrWrite, err)
	}
	return fromWire(saved), nil
}

// DeletePoint removes a point by id.
func (c *Client) DeletePoint(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/points/"+id, nil, nil); err != nil {
		return fmt.Errorf("gateway.Client.DeletePoint: %w: %w", domain.ErrWrite, err)
	}
	return nil
}

// do performs one request against the service and decodes the JSON response
// into result (skipped when result is nil).
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused; the body content of error
		// responses is not part of the service contract.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
