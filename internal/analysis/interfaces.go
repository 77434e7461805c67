// Package analysis implements the company analysis pipeline: it
// aggregates an encyclopedia description, ticker resolution, trailing
// price history and an LLM-generated competitor breakdown into a single
// result, and owns the partial-failure policy across those sources.
package analysis

import (
	"context"

	"github.com/vr-tejas/Stockmind/internal/models"
)

// DescriptionSource resolves a free-text company name to a short
// encyclopedia summary.
type DescriptionSource interface {
	Describe(ctx context.Context, name string) (models.CompanyDescription, error)
}

// SymbolSource resolves a free-text company name to an exchange ticker
// symbol in the configured region.
type SymbolSource interface {
	Resolve(ctx context.Context, name string) (string, error)
}

// MarketSource provides trailing price history and market
// capitalization for a ticker. PriceHistory rounds closes to 2 decimal
// places; RawPriceHistory returns native provider precision.
type MarketSource interface {
	PriceHistory(ctx context.Context, symbol string) (models.PriceSeries, error)
	RawPriceHistory(ctx context.Context, symbol string) (models.PriceSeries, error)
	MarketCap(ctx context.Context, symbol string) (int64, error)
}

// TextGenerator produces free-form text from a single prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
