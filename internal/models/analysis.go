package models

// CompanyDescription is the resolved encyclopedia entry for a company.
type CompanyDescription struct {
	Title   string `json:"title,omitempty"`
	Summary string `json:"summary"`
}

// PriceSeries holds trailing daily close history for one symbol.
// Dates and Closes are index-aligned, ascending, trading days only,
// exactly as delivered by the provider.
type PriceSeries struct {
	Dates  []string  `json:"time_labels"`
	Closes []float64 `json:"stock_prices"`
}

// Empty reports whether the series carries no usable data points.
func (p PriceSeries) Empty() bool {
	return len(p.Closes) == 0 || len(p.Dates) == 0
}

// LatestClose returns the most recent close, or 0 for an empty series.
func (p PriceSeries) LatestClose() float64 {
	if len(p.Closes) == 0 {
		return 0
	}
	return p.Closes[len(p.Closes)-1]
}

// Sector groups competitor names under one industry sector, in the
// order the generative model emitted them.
type Sector struct {
	Name        string   `json:"name"`
	Competitors []string `json:"competitors"`
}

// Competitor is one ranked peer company. Name is the candidate name as
// it appeared in the sector breakdown, not a canonicalized form.
type Competitor struct {
	Name        string    `json:"name"`
	Ticker      string    `json:"ticker"`
	MarketCap   int64     `json:"market_cap"`
	StockPrices []float64 `json:"stock_prices"`
	TimeLabels  []string  `json:"time_labels"`
	StockPrice  float64   `json:"stock_price"`
}

// Analysis is the aggregate answer for one company query. It is built
// in full or not at all; a failed pipeline run returns an error instead.
type Analysis struct {
	Description    string       `json:"description"`
	Ticker         string       `json:"ticker"`
	StockPrices    []float64    `json:"stock_prices"`
	TimeLabels     []string     `json:"time_labels"`
	Sectors        []Sector     `json:"competitors"`
	TopCompetitors []Competitor `json:"top_competitors"`
}
