package analysis

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/vr-tejas/Stockmind/internal/models"
)

// DefaultTopCompetitors is how many ranked peers a result carries.
const DefaultTopCompetitors = 3

// CompetitorRanker resolves candidate competitor names to tickers,
// fetches market data for each, and keeps the largest by market cap.
type CompetitorRanker struct {
	symbols SymbolSource
	market  MarketSource
	limit   int
	log     *zap.Logger
}

// NewCompetitorRanker creates a ranker returning at most limit records.
func NewCompetitorRanker(symbols SymbolSource, market MarketSource, limit int, log *zap.Logger) *CompetitorRanker {
	if limit <= 0 {
		limit = DefaultTopCompetitors
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CompetitorRanker{symbols: symbols, market: market, limit: limit, log: log}
}

// Rank produces up to limit competitor records sorted by market cap
// descending, ties broken by input-encounter order. A candidate is kept
// only when its name resolves to a not-yet-seen ticker AND both market
// cap and a non-empty price history are available; every other candidate
// is dropped silently. Rank itself never fails; zero records is a valid
// result.
func (r *CompetitorRanker) Rank(ctx context.Context, candidates []string) []models.Competitor {
	seenNames := make(map[string]struct{}, len(candidates))
	seenTickers := make(map[string]struct{})

	records := make([]models.Competitor, 0, r.limit)
	for _, name := range candidates {
		if _, dup := seenNames[name]; dup {
			continue
		}
		seenNames[name] = struct{}{}

		ticker, err := r.symbols.Resolve(ctx, name)
		if err != nil || ticker == "" {
			r.log.Debug("competitor dropped: unresolvable", zap.String("name", name), zap.Error(err))
			continue
		}
		if _, dup := seenTickers[ticker]; dup {
			continue
		}

		marketCap, err := r.market.MarketCap(ctx, ticker)
		if err != nil || marketCap == 0 {
			r.log.Debug("competitor dropped: no market cap", zap.String("ticker", ticker), zap.Error(err))
			continue
		}

		series, err := r.market.RawPriceHistory(ctx, ticker)
		if err != nil || series.Empty() {
			r.log.Debug("competitor dropped: no price history", zap.String("ticker", ticker), zap.Error(err))
			continue
		}

		records = append(records, models.Competitor{
			Name:        name,
			Ticker:      ticker,
			MarketCap:   marketCap,
			StockPrices: series.Closes,
			TimeLabels:  series.Dates,
			StockPrice:  series.LatestClose(),
		})
		seenTickers[ticker] = struct{}{}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].MarketCap > records[j].MarketCap
	})

	if len(records) > r.limit {
		records = records[:r.limit]
	}
	return records
}
