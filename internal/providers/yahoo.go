package providers

import (
	"context"
	"fmt"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/shopspring/decimal"

	"github.com/vr-tejas/Stockmind/internal/models"
)

// YahooClient fetches trailing price history and market capitalization
// from Yahoo Finance. Every call runs under a single bounded timeout
// with no retry.
type YahooClient struct {
	historyMonths int
	timeout       time.Duration
}

// NewYahooClient creates a Yahoo Finance client. historyMonths is the
// trailing window for price history; timeout bounds each provider call.
func NewYahooClient(historyMonths int, timeout time.Duration) *YahooClient {
	if historyMonths <= 0 {
		historyMonths = 3
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &YahooClient{historyMonths: historyMonths, timeout: timeout}
}

// PriceHistory returns the trailing daily close history with closes
// rounded to 2 decimal places. This is the primary-company path.
func (c *YahooClient) PriceHistory(ctx context.Context, symbol string) (models.PriceSeries, error) {
	return c.history(ctx, symbol, true)
}

// RawPriceHistory returns the trailing daily close history at native
// provider precision. Competitor records carry unrounded closes while
// the primary company's are rounded; the asymmetry is kept for parity
// with the system this replaces.
func (c *YahooClient) RawPriceHistory(ctx context.Context, symbol string) (models.PriceSeries, error) {
	return c.history(ctx, symbol, false)
}

func (c *YahooClient) history(ctx context.Context, symbol string, round bool) (models.PriceSeries, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	end := time.Now()
	start := end.AddDate(0, -c.historyMonths, 0)

	params := &chart.Params{
		Params:   finance.Params{Context: &ctx},
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)

	series := models.PriceSeries{
		Dates:  make([]string, 0),
		Closes: make([]float64, 0),
	}
	for iter.Next() {
		bar := iter.Bar()

		px := bar.Close.InexactFloat64()
		if round {
			px = round2(px)
		}

		series.Dates = append(series.Dates, time.Unix(int64(bar.Timestamp), 0).Format("2006-01-02"))
		series.Closes = append(series.Closes, px)
	}
	if err := iter.Err(); err != nil {
		return models.PriceSeries{}, fmt.Errorf("price history for %s: %w", symbol, err)
	}
	if series.Empty() {
		return models.PriceSeries{}, fmt.Errorf("no price history for %s", symbol)
	}

	return series, nil
}

// MarketCap returns the market capitalization for symbol in the
// provider's native currency units.
func (c *YahooClient) MarketCap(ctx context.Context, symbol string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// equity.Get accepts no context in finance-go, so the call is
	// abandoned from the outside once the deadline passes.
	q, err := runWithDeadline(ctx, func() (*finance.Equity, error) {
		return equity.Get(symbol)
	})
	if err != nil {
		return 0, fmt.Errorf("market cap for %s: %w", symbol, err)
	}
	if q == nil || q.MarketCap == 0 {
		return 0, fmt.Errorf("no market cap data for %s", symbol)
	}
	return q.MarketCap, nil
}

// runWithDeadline invokes fetch on its own goroutine and returns early
// with ctx's error once the context expires. The abandoned fetch
// finishes in the background and its result is dropped.
func runWithDeadline[T any](ctx context.Context, fetch func() (T, error)) (T, error) {
	type result struct {
		value T
		err   error
	}

	ch := make(chan result, 1)
	go func() {
		value, err := fetch()
		ch <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case res := <-ch:
		return res.value, res.err
	}
}

// round2 rounds a close price to 2 decimal places without binary float
// artifacts.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
