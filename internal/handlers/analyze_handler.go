package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/resume-analyzer/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	maxFileSize int64
}

func NewAnalyzeHandler(analyzer services.AnalyzerService, maxFileSize int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze: a multipart "resume" file plus
// an optional "job_description" field.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no file selected",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"error": "file too large",
		})
	}

	jobDescription := c.FormValue("job_description", "")

	summary, err := h.analyzer.AnalyzeResume(c.Context(), file, jobDescription)
	if err != nil {
		return analyzeErrorResponse(c, err)
	}

	return c.JSON(summary)
}

// analyzeErrorResponse maps pipeline errors onto HTTP statuses.
// User-correctable problems come back as 400 with a specific message;
// anything unexpected is a generic 500.
func analyzeErrorResponse(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validationErr.Reason,
		})
	}

	var formatErr *services.UnsupportedFormatError
	if errors.As(err, &formatErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": formatErr.Error(),
		})
	}

	var readErr *services.DocumentReadError
	if errors.As(err, &readErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "could not read the uploaded document; please re-upload a valid file",
		})
	}

	if errors.Is(err, services.ErrEmptyDocument) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "could not extract text from the resume; please check the file format",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "error processing file",
	})
}
