package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/resume-analyzer/resume-analyzer/internal/models"
	"github.com/resume-analyzer/resume-analyzer/internal/repositories"
)

type HistoryHandler struct {
	analysisRepo repositories.AnalysisRepository
	limit        int
}

func NewHistoryHandler(analysisRepo repositories.AnalysisRepository, limit int) *HistoryHandler {
	return &HistoryHandler{
		analysisRepo: analysisRepo,
		limit:        limit,
	}
}

// HandleHistory handles GET /history: the most recent analyses,
// newest first.
func (h *HistoryHandler) HandleHistory(c *fiber.Ctx) error {
	analyses, err := h.analysisRepo.Recent(h.limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "error loading history",
		})
	}

	entries := make([]models.HistoryEntry, 0, len(analyses))
	for _, analysis := range analyses {
		entries = append(entries, models.HistoryEntry{
			ID:              analysis.ID,
			Filename:        analysis.Filename,
			Skills:          analysis.Skills,
			MatchPercentage: analysis.MatchPercentage,
			AnalysisDate:    analysis.AnalysisDate,
		})
	}

	return c.JSON(fiber.Map{
		"results": entries,
	})
}
