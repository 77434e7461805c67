package analysis

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/vr-tejas/Stockmind/internal/models"
)

// Deps are the capability handles the pipeline orchestrates. All four
// are injected so tests can substitute doubles.
type Deps struct {
	Descriptions DescriptionSource
	Symbols      SymbolSource
	Market       MarketSource
	Generator    TextGenerator

	// Limit is the maximum number of ranked competitors; 0 means the
	// default of 3.
	Limit int
}

// Pipeline sequences the providers into one Analysis per request.
// The primary path (description, ticker, price history) fails fast with
// a coded error; the competitor path degrades gracefully instead.
type Pipeline struct {
	descriptions DescriptionSource
	symbols      SymbolSource
	market       MarketSource
	extractor    *CompetitorExtractor
	ranker       *CompetitorRanker
	log          *zap.Logger
}

// NewPipeline wires the pipeline from its dependencies.
func NewPipeline(deps Deps, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		descriptions: deps.Descriptions,
		symbols:      deps.Symbols,
		market:       deps.Market,
		extractor:    NewCompetitorExtractor(deps.Generator, log),
		ranker:       NewCompetitorRanker(deps.Symbols, deps.Market, deps.Limit, log),
		log:          log,
	}
}

// Analyze answers one company query. It returns a fully constructed
// Analysis or a coded *Error; never a partial result. Provider failures
// are trapped here and mapped to absence, they do not propagate as
// transport errors.
func (p *Pipeline) Analyze(ctx context.Context, companyName string) (*models.Analysis, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return nil, ErrMissingInput
	}

	log := p.log.With(zap.String("company", companyName))

	desc, err := p.descriptions.Describe(ctx, companyName)
	if err != nil || desc.Summary == "" {
		log.Info("description lookup failed", zap.Error(err))
		return nil, ErrDescriptionNotFound
	}

	ticker, err := p.symbols.Resolve(ctx, companyName)
	if err != nil || ticker == "" {
		log.Info("ticker resolution failed", zap.Error(err))
		return nil, ErrTickerNotFound
	}
	log = log.With(zap.String("ticker", ticker))

	series, err := p.market.PriceHistory(ctx, ticker)
	if err != nil || series.Empty() {
		log.Info("price history unavailable", zap.Error(err))
		return nil, ErrPriceDataUnavailable
	}

	sectors, err := p.extractor.Extract(ctx, desc.Summary)
	if err != nil {
		// Non-fatal: fall back to the placeholder breakdown.
		log.Warn("competitor extraction failed", zap.Error(err))
		sectors = PlaceholderSectors()
	}

	candidates := make([]string, 0)
	for _, sector := range sectors {
		candidates = append(candidates, sector.Competitors...)
	}
	top := p.ranker.Rank(ctx, candidates)

	log.Info("analysis complete",
		zap.Int("trading_days", len(series.Closes)),
		zap.Int("sectors", len(sectors)),
		zap.Int("top_competitors", len(top)))

	return &models.Analysis{
		Description:    desc.Summary,
		Ticker:         ticker,
		StockPrices:    series.Closes,
		TimeLabels:     series.Dates,
		Sectors:        sectors,
		TopCompetitors: top,
	}, nil
}
