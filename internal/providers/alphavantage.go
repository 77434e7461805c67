package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const alphaVantageBaseURL = "https://www.alphavantage.co"

// AlphaVantageClient resolves company names to ticker symbols via the
// Alpha Vantage SYMBOL_SEARCH endpoint.
type AlphaVantageClient struct {
	client *resty.Client
	apiKey string
	region string
}

// AlphaVantageOption customizes an AlphaVantageClient.
type AlphaVantageOption func(*AlphaVantageClient)

// WithAlphaVantageBaseURL overrides the API endpoint, used by tests.
func WithAlphaVantageBaseURL(baseURL string) AlphaVantageOption {
	return func(c *AlphaVantageClient) {
		c.client.SetBaseURL(baseURL)
	}
}

// NewAlphaVantageClient creates an Alpha Vantage client. Only symbols
// whose listing region equals region are accepted by Resolve.
func NewAlphaVantageClient(apiKey, region string, timeout time.Duration, opts ...AlphaVantageOption) *AlphaVantageClient {
	client := resty.New()
	client.SetBaseURL(alphaVantageBaseURL)
	client.SetTimeout(timeout)

	c := &AlphaVantageClient{
		client: client,
		apiKey: apiKey,
		region: region,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SymbolMatch is one candidate from a symbol search.
type SymbolMatch struct {
	Symbol string `json:"1. symbol"`
	Name   string `json:"2. name"`
	Type   string `json:"3. type"`
	Region string `json:"4. region"`
}

type symbolSearchResponse struct {
	BestMatches []SymbolMatch `json:"bestMatches"`
}

// Search returns candidate symbol matches for keywords in provider
// ranking order.
func (c *AlphaVantageClient) Search(ctx context.Context, keywords string) ([]SymbolMatch, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"function": "SYMBOL_SEARCH",
			"keywords": keywords,
			"apikey":   c.apiKey,
		}).
		Get("/query")
	if err != nil {
		return nil, fmt.Errorf("symbol search for %q: %w", keywords, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("symbol search error %d: %s", resp.StatusCode(), resp.String())
	}

	var result symbolSearchResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("parse symbol search response: %w", err)
	}
	return result.BestMatches, nil
}

// Resolve returns the first search match listed in the configured
// region. A miss is an unresolvable name, not a transient fault; there
// is no retry.
func (c *AlphaVantageClient) Resolve(ctx context.Context, name string) (string, error) {
	matches, err := c.Search(ctx, name)
	if err != nil {
		return "", err
	}

	for _, m := range matches {
		if m.Region == c.region {
			return m.Symbol, nil
		}
	}
	return "", fmt.Errorf("no %s symbol match for %q", c.region, name)
}
