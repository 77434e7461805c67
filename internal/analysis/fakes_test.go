package analysis

import (
	"context"
	"fmt"

	"github.com/vr-tejas/Stockmind/internal/models"
)

type fakeDescriptions struct {
	desc  models.CompanyDescription
	err   error
	calls int
}

func (f *fakeDescriptions) Describe(ctx context.Context, name string) (models.CompanyDescription, error) {
	f.calls++
	return f.desc, f.err
}

type fakeSymbols struct {
	tickers map[string]string
	calls   int
	queries []string
}

func (f *fakeSymbols) Resolve(ctx context.Context, name string) (string, error) {
	f.calls++
	f.queries = append(f.queries, name)
	ticker, ok := f.tickers[name]
	if !ok {
		return "", fmt.Errorf("no symbol match for %q", name)
	}
	return ticker, nil
}

type fakeMarket struct {
	series map[string]models.PriceSeries
	caps   map[string]int64

	historyCalls int
	rawCalls     int
	capCalls     int
}

func (f *fakeMarket) PriceHistory(ctx context.Context, symbol string) (models.PriceSeries, error) {
	f.historyCalls++
	return f.lookup(symbol)
}

func (f *fakeMarket) RawPriceHistory(ctx context.Context, symbol string) (models.PriceSeries, error) {
	f.rawCalls++
	return f.lookup(symbol)
}

func (f *fakeMarket) lookup(symbol string) (models.PriceSeries, error) {
	series, ok := f.series[symbol]
	if !ok {
		return models.PriceSeries{}, fmt.Errorf("no price history for %s", symbol)
	}
	return series, nil
}

func (f *fakeMarket) MarketCap(ctx context.Context, symbol string) (int64, error) {
	f.capCalls++
	cap, ok := f.caps[symbol]
	if !ok {
		return 0, fmt.Errorf("no market cap data for %s", symbol)
	}
	return cap, nil
}

type fakeGenerator struct {
	text    string
	err     error
	calls   int
	prompts []string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func someSeries(closes ...float64) models.PriceSeries {
	dates := make([]string, len(closes))
	for i := range closes {
		dates[i] = fmt.Sprintf("2026-05-%02d", i+1)
	}
	return models.PriceSeries{Dates: dates, Closes: closes}
}
