package services

import (
	"context"
	"errors"
	"log"
	"math"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/resume-analyzer/resume-analyzer/internal/config"
	"github.com/resume-analyzer/resume-analyzer/internal/models"
	"github.com/resume-analyzer/resume-analyzer/internal/repositories"
)

// previewLimit caps the resume text echoed back in the summary.
const previewLimit = 500

// AnalyzerService runs the per-request pipeline: validate the upload,
// save it, extract text and skills, score against the job description,
// and persist the result. It keeps no state between requests.
type AnalyzerService interface {
	AnalyzeResume(ctx context.Context, file *multipart.FileHeader, jobDescription string) (*models.AnalysisSummary, error)
}

type analyzerService struct {
	parser        DocumentParserService
	extractor     SkillExtractorService
	similarity    SimilarityService
	storage       StorageService
	analysisRepo  repositories.AnalysisRepository
	fileRetention time.Duration
}

func NewAnalyzerService(
	parser DocumentParserService,
	extractor SkillExtractorService,
	similarity SimilarityService,
	storage StorageService,
	analysisRepo repositories.AnalysisRepository,
	fileRetention time.Duration,
) AnalyzerService {
	return &analyzerService{
		parser:        parser,
		extractor:     extractor,
		similarity:    similarity,
		storage:       storage,
		analysisRepo:  analysisRepo,
		fileRetention: fileRetention,
	}
}

// AnalyzeResume implements AnalyzerService.
func (a *analyzerService) AnalyzeResume(ctx context.Context, file *multipart.FileHeader, jobDescription string) (*models.AnalysisSummary, error) {
	// Step 1: validate the upload before touching disk.
	ext, err := validateUpload(file)
	if err != nil {
		return nil, err
	}

	// Step 2: persist the uploaded bytes to the working directory.
	filename, filePath, err := a.storage.SaveUpload(file)
	if err != nil {
		log.Printf("❌ Failed to save upload %s: %v\n", file.Filename, err)
		return nil, &ProcessingError{Message: "failed to store uploaded file", Err: err}
	}
	log.Printf("📄 File uploaded: %s\n", filename)

	// Step 3: extract the document text.
	resumeText, err := a.parser.ExtractText(filePath, ext)
	if err != nil {
		log.Printf("❌ Failed to parse %s: %v\n", filename, err)
		var readErr *DocumentReadError
		if errors.As(err, &readErr) {
			return nil, err
		}
		return nil, &ProcessingError{Message: "failed to process uploaded file", Err: err}
	}

	if strings.TrimSpace(resumeText) == "" {
		log.Printf("⚠️  No text extracted from: %s\n", filename)
		return nil, ErrEmptyDocument
	}

	// Step 4: extract skills.
	skills := a.extractor.ExtractSkills(ctx, resumeText)
	log.Printf("🔍 Extracted %d skills from resume\n", len(skills))

	// Step 5: score against the job description, if one was supplied.
	matchPercentage := 0.0
	var missingSkills []string
	if strings.TrimSpace(jobDescription) != "" {
		matchPercentage = a.similarity.Score(resumeText, jobDescription)
		missingSkills = a.extractor.MissingSkills(ctx, skills, jobDescription)
		log.Printf("📊 Match percentage calculated: %.2f%%\n", matchPercentage)
	}

	// Step 6: persist the result.
	analysis := &models.Analysis{
		Filename:        filename,
		Skills:          models.JoinSkills(skills),
		JobDescription:  jobDescription,
		MatchPercentage: matchPercentage,
		AnalysisDate:    time.Now(),
	}
	if err := a.analysisRepo.Create(analysis); err != nil {
		log.Printf("❌ Failed to save analysis for %s: %v\n", filename, err)
		return nil, &ProcessingError{Message: "failed to save analysis result", Err: err}
	}
	log.Printf("💾 Analysis saved for file: %s\n", filename)

	// Step 7: best-effort housekeeping of stale working files.
	if err := a.storage.RemoveOlderThan(a.fileRetention); err != nil {
		log.Printf("⚠️  Failed to clean up old files: %v\n", err)
	}

	return &models.AnalysisSummary{
		Skills:            skills,
		MatchPercentage:   roundTo(matchPercentage, 2),
		ResumeTextPreview: preview(resumeText),
		Filename:          filename,
		MissingSkills:     missingSkills,
	}, nil
}

func validateUpload(file *multipart.FileHeader) (string, error) {
	if file == nil || file.Filename == "" {
		return "", &ValidationError{Reason: "no file selected"}
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	for _, allowed := range config.AllowedExtensions {
		if ext == allowed {
			return ext, nil
		}
	}

	return "", &ValidationError{Reason: "please upload a PDF or DOCX file only"}
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit]) + "..."
}

func roundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
