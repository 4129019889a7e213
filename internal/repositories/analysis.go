package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/resume-analyzer/resume-analyzer/internal/models"
)

// AnalysisRepository is an append-only log of past analyses. There are
// deliberately no update or delete operations.
type AnalysisRepository interface {
	Create(analysis *models.Analysis) error
	Recent(limit int) ([]models.Analysis, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

// Create implements AnalysisRepository.
func (r *analysisRepository) Create(analysis *models.Analysis) error {
	if err := r.db.Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}

	return nil
}

// Recent implements AnalysisRepository. Entries come back newest first.
func (r *analysisRepository) Recent(limit int) ([]models.Analysis, error) {
	var analyses []models.Analysis
	err := r.db.
		Order("analysis_date DESC, id DESC").
		Limit(limit).
		Find(&analyses).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent analyses: %w", err)
	}

	return analyses, nil
}
