// Package places proxies the Places nearby-search API to find
// agro-input shops around a coordinate.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/farmassist/farmassist/server/internal/config"
	"github.com/farmassist/farmassist/server/pkg/models"
)

const (
	// searchRadiusMeters is the fixed 5 km search radius.
	searchRadiusMeters = 5000

	// searchKeyword is the fixed keyword set sent upstream.
	searchKeyword = "agro pesticide fertilizer seed agriculture"
)

// nameFilters are matched against lowercased shop names; a shop also
// passes when its types include "store".
var nameFilters = []string{"agro", "pesticide", "fertilizer", "seed"}

// StatusError is returned when the upstream call succeeded but the
// Places status field was not OK. The handler maps it to 400 so the
// upstream signal passes through to the client.
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("places: status %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("places: status %s", e.Status)
}

// Client calls the Places nearby-search endpoint.
type Client struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewClient creates a places client from configuration.
func NewClient(cfg config.PlacesConfig) *Client {
	return &Client{
		apiKey:   cfg.APIKey,
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type searchResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
	Results      []models.Shop `json:"results"`
}

// NearbyAgroShops searches for shops around the coordinate and filters
// the results to agro-input sellers.
func (c *Client) NearbyAgroShops(ctx context.Context, lat, lng float64) ([]models.Shop, error) {
	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("radius", fmt.Sprintf("%d", searchRadiusMeters))
	q.Set("keyword", searchKeyword)
	q.Set("key", c.apiKey)

	searchURL := c.endpoint + "/maps/api/place/nearbysearch/json?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("places: create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places: status %d", resp.StatusCode)
	}

	var search searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return nil, fmt.Errorf("places: decode response: %w", err)
	}

	// ZERO_RESULTS is a valid empty answer, not an upstream error.
	if search.Status != "OK" && search.Status != "ZERO_RESULTS" {
		return nil, &StatusError{Status: search.Status, Message: search.ErrorMessage}
	}

	filtered := make([]models.Shop, 0, len(search.Results))
	for _, shop := range search.Results {
		if isAgroShop(shop) {
			filtered = append(filtered, shop)
		}
	}
	return filtered, nil
}

func isAgroShop(shop models.Shop) bool {
	name := strings.ToLower(shop.Name)
	for _, f := range nameFilters {
		if strings.Contains(name, f) {
			return true
		}
	}
	for _, t := range shop.Types {
		if t == "store" {
			return true
		}
	}
	return false
}
