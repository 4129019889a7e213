package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/resume-analyzer/resume-analyzer/internal/models"
)

type stubAnalysisRepo struct {
	analyses []models.Analysis
	err      error
	gotLimit int
}

func (s *stubAnalysisRepo) Create(analysis *models.Analysis) error {
	s.analyses = append(s.analyses, *analysis)
	return nil
}

func (s *stubAnalysisRepo) Recent(limit int) ([]models.Analysis, error) {
	s.gotLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.analyses) {
		return s.analyses[:limit], nil
	}
	return s.analyses, nil
}

func newHistoryApp(repo *stubAnalysisRepo, limit int) *fiber.App {
	app := fiber.New()
	handler := NewHistoryHandler(repo, limit)
	app.Get("/api/v1/history", handler.HandleHistory)
	return app
}

func TestHandleHistory(t *testing.T) {
	now := time.Now()
	repo := &stubAnalysisRepo{
		analyses: []models.Analysis{
			{
				ID:              2,
				Filename:        "second.pdf",
				Skills:          "Docker,Python",
				MatchPercentage: 88.5,
				AnalysisDate:    now,
			},
			{
				ID:           1,
				Filename:     "first.docx",
				Skills:       "Aws",
				AnalysisDate: now.Add(-time.Minute),
			},
		},
	}
	app := newHistoryApp(repo, 50)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/history", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Results []models.HistoryEntry `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body.Results, 2)
	require.Equal(t, uint(2), body.Results[0].ID)
	require.Equal(t, "second.pdf", body.Results[0].Filename)
	require.Equal(t, "Docker,Python", body.Results[0].Skills)
	require.InDelta(t, 88.5, body.Results[0].MatchPercentage, 1e-9)

	require.Equal(t, 50, repo.gotLimit)
}

func TestHandleHistoryEmpty(t *testing.T) {
	app := newHistoryApp(&stubAnalysisRepo{}, 50)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/history", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Results []models.HistoryEntry `json:"results"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Empty(t, body.Results)
}

func TestHandleHistoryStoreFailure(t *testing.T) {
	app := newHistoryApp(&stubAnalysisRepo{err: errors.New("database gone")}, 50)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/history", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
