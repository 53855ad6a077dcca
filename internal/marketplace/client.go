// Package marketplace implements the REST client for the marketplace
// operator API: vendor listing and document bundle download.
package marketplace

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"walletsync/internal/config"
	"walletsync/internal/domain"
	"walletsync/pkg/retry"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxRetries int
}

func NewClient(cfg config.MarketplaceConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		maxRetries: cfg.MaxRetries,
	}
}

type listVendorsResponse struct {
	Shops []domain.MarketplaceVendor `json:"shops"`
}

func (c *Client) ListVendors(ctx context.Context, since time.Time) ([]domain.MarketplaceVendor, error) {
	endpoint := c.baseURL + "/api/shops"
	if !since.IsZero() {
		endpoint += "?updated_since=" + url.QueryEscape(since.Format(time.RFC3339))
	}

	var response listVendorsResponse
	err := retry.Do(ctx, func() error {
		return c.getJSON(ctx, endpoint, &response)
	}, retry.WithMaxAttempts(c.maxRetries))
	if err != nil {
		return nil, fmt.Errorf("listing vendors: %w", err)
	}

	return response.Shops, nil
}

func (c *Client) DownloadDocumentBundle(ctx context.Context, shopIDs []int64) ([]byte, error) {
	ids := make([]string, len(shopIDs))
	for i, id := range shopIDs {
		ids[i] = strconv.FormatInt(id, 10)
	}
	endpoint := c.baseURL + "/api/shops/documents/download?shop_ids=" + strings.Join(ids, ",")

	var bundle []byte
	err := retry.Do(ctx, func() error {
		body, err := c.get(ctx, endpoint)
		if err != nil {
			return err
		}
		bundle = body
		return nil
	}, retry.WithMaxAttempts(c.maxRetries))
	if err != nil {
		return nil, fmt.Errorf("downloading document bundle: %w", err)
	}

	return bundle, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("marketplace returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
