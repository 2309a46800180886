// Package qloo provides the recommendation adapter. It queries the QLOO
// insights service for mood-based podcast recommendations and normalizes the
// loosely-typed payload into domain records.
package qloo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Agnik7/SuurAI/internal/core/domain"
	"github.com/Agnik7/SuurAI/internal/core/ports"
)

// DefaultTimeout bounds a single recommendation request end to end.
const DefaultTimeout = 10 * time.Second

// Client is an HTTP client for the QLOO recommendation API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	maxRetries  int
	baseBackoff time.Duration
}

var _ ports.RecommendationProvider = (*Client)(nil)

// NewClient constructs a recommendation client. A nil httpClient gets a
// default with the bounded request timeout applied.
func NewClient(httpClient *http.Client, baseURL string, apiKey string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// Recommend fetches recommendations for the given mood and returns them
// normalized. Upstream failures surface as errors; malformed payloads do
// not — the normalizer absorbs them.
func (c *Client) Recommend(ctx context.Context, userMood string) ([]domain.Podcast, error) {
	endpoint, err := url.Parse(c.baseURL + "/podcasts")
	if err != nil {
		return nil, fmt.Errorf("qloo adapter: invalid base url: %w", err)
	}
	query := endpoint.Query()
	query.Set("user_mood", userMood)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("qloo adapter: failed to create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return nil, fmt.Errorf("qloo adapter: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("qloo adapter: status %d", resp.StatusCode)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("qloo adapter: decode error: %w", err)
	}

	return decodeRecommendations(envelope.Data), nil
}

// decodeRecommendations handles the documented envelope,
// data.results.entities, before letting the normalizer shape-sniff the
// fallback forms (bare array, object wrapping an array).
func decodeRecommendations(data json.RawMessage) []domain.Podcast {
	var known struct {
		Results struct {
			Entities json.RawMessage `json:"entities"`
		} `json:"results"`
	}
	if err := json.Unmarshal(data, &known); err == nil {
		if entities := bytes.TrimSpace(known.Results.Entities); len(entities) > 0 && entities[0] == '[' {
			return Normalize(entities)
		}
	}
	return Normalize(data)
}
