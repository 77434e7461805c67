package server

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/vr-tejas/Stockmind/internal/analysis"
	"github.com/vr-tejas/Stockmind/internal/models"
)

// Analyzer is the pipeline surface the HTTP layer depends on.
type Analyzer interface {
	Analyze(ctx context.Context, companyName string) (*models.Analysis, error)
}

// Handler serves the company analysis endpoints.
type Handler struct {
	pipeline Analyzer
	log      *zap.Logger
}

// NewHandler creates a Handler over the given pipeline.
func NewHandler(pipeline Analyzer, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{pipeline: pipeline, log: log}
}

type analyzeResponse struct {
	Success        bool                `json:"success"`
	Description    string              `json:"description"`
	Ticker         string              `json:"ticker"`
	StockPrices    []float64           `json:"stock_prices"`
	TimeLabels     []string            `json:"time_labels"`
	Competitors    []models.Sector     `json:"competitors"`
	TopCompetitors []models.Competitor `json:"top_competitors"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// AnalyzeCompany handles GET /analyze_company. Failures still return
// HTTP 200 with success=false; the envelope is the only error channel,
// matching the system this replaces.
func (h *Handler) AnalyzeCompany(c *fiber.Ctx) error {
	companyName := c.Query("company_name")

	result, err := h.pipeline.Analyze(c.Context(), companyName)
	if err != nil {
		return c.JSON(errorResponse{Success: false, Error: userMessage(err)})
	}

	return c.JSON(analyzeResponse{
		Success:        true,
		Description:    result.Description,
		Ticker:         result.Ticker,
		StockPrices:    result.StockPrices,
		TimeLabels:     result.TimeLabels,
		Competitors:    result.Sectors,
		TopCompetitors: result.TopCompetitors,
	})
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func userMessage(err error) string {
	var pErr *analysis.Error
	if errors.As(err, &pErr) {
		return pErr.Message
	}
	return "Analysis failed."
}
