package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vr-tejas/Stockmind/internal/models"
)

func newTestPipeline(descriptions *fakeDescriptions, symbols *fakeSymbols, market *fakeMarket, gen *fakeGenerator) *Pipeline {
	return NewPipeline(Deps{
		Descriptions: descriptions,
		Symbols:      symbols,
		Market:       market,
		Generator:    gen,
	}, nil)
}

func TestAnalyzeMissingInput(t *testing.T) {
	descriptions := &fakeDescriptions{}
	symbols := &fakeSymbols{}
	market := &fakeMarket{}
	gen := &fakeGenerator{}
	p := newTestPipeline(descriptions, symbols, market, gen)

	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := p.Analyze(context.Background(), input)

		var pErr *Error
		require.ErrorAs(t, err, &pErr)
		assert.Equal(t, CodeMissingInput, pErr.Code)
	}

	// No provider is touched for empty input.
	assert.Zero(t, descriptions.calls)
	assert.Zero(t, symbols.calls)
	assert.Zero(t, market.historyCalls)
	assert.Zero(t, gen.calls)
}

func TestAnalyzeDescriptionNotFound(t *testing.T) {
	descriptions := &fakeDescriptions{err: errors.New("no wikipedia page found")}
	symbols := &fakeSymbols{}
	p := newTestPipeline(descriptions, symbols, &fakeMarket{}, &fakeGenerator{})

	_, err := p.Analyze(context.Background(), "Acme")

	var pErr *Error
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, CodeDescriptionNotFound, pErr.Code)
	assert.Equal(t, "Could not find company description.", pErr.Message)

	// Fail-fast: symbol resolution is never attempted.
	assert.Zero(t, symbols.calls)
}

func TestAnalyzeEmptySummaryIsAbsent(t *testing.T) {
	descriptions := &fakeDescriptions{desc: models.CompanyDescription{Title: "Acme"}}
	p := newTestPipeline(descriptions, &fakeSymbols{}, &fakeMarket{}, &fakeGenerator{})

	_, err := p.Analyze(context.Background(), "Acme")

	var pErr *Error
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, CodeDescriptionNotFound, pErr.Code)
}

func TestAnalyzeTickerNotFound(t *testing.T) {
	descriptions := &fakeDescriptions{desc: models.CompanyDescription{Summary: "Acme makes anvils."}}
	symbols := &fakeSymbols{tickers: map[string]string{}}
	market := &fakeMarket{}
	p := newTestPipeline(descriptions, symbols, market, &fakeGenerator{})

	_, err := p.Analyze(context.Background(), "Acme")

	var pErr *Error
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, CodeTickerNotFound, pErr.Code)
	assert.Zero(t, market.historyCalls)
}

func TestAnalyzePriceDataUnavailable(t *testing.T) {
	descriptions := &fakeDescriptions{desc: models.CompanyDescription{Summary: "Acme makes anvils."}}
	symbols := &fakeSymbols{tickers: map[string]string{"Acme": "ACME"}}
	market := &fakeMarket{} // no series for ACME
	gen := &fakeGenerator{}
	p := newTestPipeline(descriptions, symbols, market, gen)

	_, err := p.Analyze(context.Background(), "Acme")

	var pErr *Error
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, CodePriceDataUnavailable, pErr.Code)
	assert.Zero(t, gen.calls)
}

func TestAnalyzeExtractionFailureFallsBack(t *testing.T) {
	descriptions := &fakeDescriptions{desc: models.CompanyDescription{Summary: "Acme makes anvils."}}
	symbols := &fakeSymbols{tickers: map[string]string{"Acme": "ACME"}}
	market := &fakeMarket{
		series: map[string]models.PriceSeries{"ACME": someSeries(10.5, 11.25)},
	}
	gen := &fakeGenerator{err: errors.New("model unavailable")}
	p := newTestPipeline(descriptions, symbols, market, gen)

	result, err := p.Analyze(context.Background(), "Acme")
	require.NoError(t, err)

	assert.Equal(t, PlaceholderSectors(), result.Sectors)
	assert.Empty(t, result.TopCompetitors)
	assert.NotNil(t, result.TopCompetitors)
}

func TestAnalyzeEndToEnd(t *testing.T) {
	descriptions := &fakeDescriptions{desc: models.CompanyDescription{
		Title:   "Apple Inc.",
		Summary: "Apple Inc. is an American multinational technology company.",
	}}
	symbols := &fakeSymbols{tickers: map[string]string{
		"Apple":     "AAPL",
		"Microsoft": "MSFT",
		"Google":    "GOOGL",
		// Samsung intentionally unresolvable in the target region.
	}}
	market := &fakeMarket{
		series: map[string]models.PriceSeries{
			"AAPL":  someSeries(190.12, 192.45, 195.01),
			"MSFT":  someSeries(410.335, 415.972),
			"GOOGL": someSeries(170.114, 171.006),
		},
		caps: map[string]int64{
			"AAPL":  3_500_000_000_000,
			"MSFT":  3_100_000_000_000,
			"GOOGL": 2_100_000_000_000,
		},
	}
	gen := &fakeGenerator{text: "Technology\nMicrosoft\nGoogle\nSamsung"}
	p := newTestPipeline(descriptions, symbols, market, gen)

	result, err := p.Analyze(context.Background(), "Apple")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", result.Ticker)
	assert.Equal(t, descriptions.desc.Summary, result.Description)
	assert.Len(t, result.StockPrices, 3)
	assert.Len(t, result.TimeLabels, 3)

	require.Len(t, result.Sectors, 1)
	assert.Equal(t, "Technology", result.Sectors[0].Name)
	assert.Equal(t, []string{"Microsoft", "Google", "Samsung"}, result.Sectors[0].Competitors)

	// Samsung drops out; the rest are ranked by market cap descending.
	require.Len(t, result.TopCompetitors, 2)
	assert.Equal(t, "MSFT", result.TopCompetitors[0].Ticker)
	assert.Equal(t, "GOOGL", result.TopCompetitors[1].Ticker)

	// The primary company uses the rounded history path, competitors the
	// raw one.
	assert.Equal(t, 1, market.historyCalls)
	assert.Equal(t, 2, market.rawCalls)
}
