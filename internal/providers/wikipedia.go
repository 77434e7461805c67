package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/go-resty/resty/v2"

	"github.com/vr-tejas/Stockmind/internal/models"
)

const (
	wikipediaSiteBaseURL = "https://en.wikipedia.org"
	wikipediaRestBaseURL = "https://en.wikipedia.org/api/rest_v1"

	// Summaries are capped at two sentences, matching the upstream
	// encyclopedia lookup behavior.
	summarySentences = 2
)

// WikipediaClient resolves free-text company names to short
// encyclopedia summaries via the MediaWiki search and REST APIs.
type WikipediaClient struct {
	search *resty.Client
	rest   *resty.Client
}

// WikipediaOption customizes a WikipediaClient.
type WikipediaOption func(*WikipediaClient)

// WithWikipediaBaseURLs overrides the site and REST API base URLs,
// used by tests.
func WithWikipediaBaseURLs(siteURL, restURL string) WikipediaOption {
	return func(c *WikipediaClient) {
		c.search.SetBaseURL(siteURL)
		c.rest.SetBaseURL(restURL)
	}
}

// NewWikipediaClient creates a Wikipedia client with a single bounded
// timeout per call and no retry.
func NewWikipediaClient(timeout time.Duration, opts ...WikipediaOption) *WikipediaClient {
	search := resty.New()
	search.SetBaseURL(wikipediaSiteBaseURL)
	search.SetTimeout(timeout)

	rest := resty.New()
	rest.SetBaseURL(wikipediaRestBaseURL)
	rest.SetTimeout(timeout)

	c := &WikipediaClient{search: search, rest: rest}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search returns page titles matching query, best match first.
func (c *WikipediaClient) Search(ctx context.Context, query string) ([]string, error) {
	resp, err := c.search.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"action": "opensearch",
			"search": query,
			"limit":  "5",
			"format": "json",
		}).
		Get("/w/api.php")
	if err != nil {
		return nil, fmt.Errorf("wikipedia search for %q: %w", query, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("wikipedia search error %d: %s", resp.StatusCode(), resp.String())
	}

	// opensearch responses are a positional JSON array:
	// [query, [titles], [descriptions], [urls]]
	var payload []json.RawMessage
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("parse wikipedia search response: %w", err)
	}
	if len(payload) < 2 {
		return nil, fmt.Errorf("malformed wikipedia search response for %q", query)
	}

	var titles []string
	if err := json.Unmarshal(payload[1], &titles); err != nil {
		return nil, fmt.Errorf("parse wikipedia search titles: %w", err)
	}
	return titles, nil
}

type wikipediaSummary struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

// Summary fetches the page extract for title, capped at two sentences.
func (c *WikipediaClient) Summary(ctx context.Context, title string) (string, error) {
	resp, err := c.rest.R().
		SetContext(ctx).
		Get("/page/summary/" + url.PathEscape(title))
	if err != nil {
		return "", fmt.Errorf("wikipedia summary for %q: %w", title, err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("wikipedia summary error %d: %s", resp.StatusCode(), resp.String())
	}

	var summary wikipediaSummary
	if err := json.Unmarshal(resp.Body(), &summary); err != nil {
		return "", fmt.Errorf("parse wikipedia summary response: %w", err)
	}
	if summary.Extract == "" {
		return "", fmt.Errorf("empty wikipedia summary for %q", title)
	}
	return firstSentences(summary.Extract, summarySentences), nil
}

// Describe resolves a company name to the summary of its top-ranked
// encyclopedia page.
func (c *WikipediaClient) Describe(ctx context.Context, name string) (models.CompanyDescription, error) {
	titles, err := c.Search(ctx, name)
	if err != nil {
		return models.CompanyDescription{}, err
	}
	if len(titles) == 0 {
		return models.CompanyDescription{}, fmt.Errorf("no wikipedia page found for %q", name)
	}

	summary, err := c.Summary(ctx, titles[0])
	if err != nil {
		return models.CompanyDescription{}, err
	}

	return models.CompanyDescription{Title: titles[0], Summary: summary}, nil
}

// firstSentences returns the first n sentences of text. A sentence ends
// at '.', '!' or '?' followed by whitespace and an uppercase letter or
// digit, so abbreviations like "Apple Inc. is" or "U.S. markets" do not
// end a sentence.
func firstSentences(text string, n int) string {
	text = strings.TrimSpace(text)
	if n <= 0 {
		return text
	}

	count := 0
	runes := []rune(text)
	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 == len(runes) {
			return text
		}
		if !isSpaceRune(runes[i+1]) {
			continue
		}
		next := i + 1
		for next < len(runes) && isSpaceRune(runes[next]) {
			next++
		}
		if next < len(runes) && !unicode.IsUpper(runes[next]) && !unicode.IsDigit(runes[next]) {
			continue
		}
		count++
		if count == n {
			return strings.TrimSpace(string(runes[:i+1]))
		}
	}
	return text
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}
