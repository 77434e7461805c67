package analysis

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vr-tejas/Stockmind/internal/models"
)

// descriptionLimit caps how much of the company description is fed to
// the generative model.
const descriptionLimit = 500

const sectorPromptFormat = `Provide a structured list of sectors and their competitors for the following company description:
%s
Format:
Sector Name :
    Competitor 1
    Competitor 2
    Competitor 3

Leave a line after each sector. Do not use bullet points.`

// PlaceholderSectors is the breakdown substituted when competitor
// extraction fails, so downstream ranking sees a defined empty result.
func PlaceholderSectors() []models.Sector {
	return []models.Sector{
		{Name: "No Sectors", Competitors: []string{"No competitors found."}},
	}
}

// CompetitorExtractor derives a sector/competitor breakdown from a
// company description via a generative-text model.
type CompetitorExtractor struct {
	gen TextGenerator
	log *zap.Logger
}

// NewCompetitorExtractor creates an extractor over gen.
func NewCompetitorExtractor(gen TextGenerator, log *zap.Logger) *CompetitorExtractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &CompetitorExtractor{gen: gen, log: log}
}

// Extract prompts the model with the first 500 characters of
// description and parses its response into sectors. Generation or
// parsing failures return an error; the caller substitutes the
// placeholder breakdown.
func (e *CompetitorExtractor) Extract(ctx context.Context, description string) ([]models.Sector, error) {
	prompt := fmt.Sprintf(sectorPromptFormat, truncateRunes(description, descriptionLimit))

	text, err := e.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate sector breakdown: %w", err)
	}

	sectors := parseSectorBlocks(text)
	if len(sectors) == 0 {
		return nil, fmt.Errorf("no sectors parsed from model response")
	}

	e.log.Debug("extracted competitor sectors", zap.Int("sectors", len(sectors)))
	return sectors, nil
}

// parseSectorBlocks splits the model response on blank lines. Within a
// block the first line is the sector name and the remaining lines are
// competitor names; blocks with fewer than two lines are dropped.
func parseSectorBlocks(text string) []models.Sector {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var sectors []models.Sector
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		lines := strings.Split(block, "\n")
		if len(lines) < 2 {
			continue
		}

		name := strings.TrimSpace(lines[0])
		competitors := make([]string, 0, len(lines)-1)
		for _, line := range lines[1:] {
			if c := strings.TrimSpace(line); c != "" {
				competitors = append(competitors, c)
			}
		}
		if name == "" || len(competitors) == 0 {
			continue
		}

		sectors = append(sectors, models.Sector{Name: name, Competitors: competitors})
	}
	return sectors
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
