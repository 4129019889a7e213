package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/resume-analyzer/resume-analyzer/internal/models"
	"github.com/resume-analyzer/resume-analyzer/internal/services"
)

// stubAnalyzer returns a fixed summary or error and records the job
// description it was called with.
type stubAnalyzer struct {
	summary    *models.AnalysisSummary
	err        error
	gotForm    string
	gotJobDesc string
	invoked    bool
}

func (s *stubAnalyzer) AnalyzeResume(ctx context.Context, file *multipart.FileHeader, jobDescription string) (*models.AnalysisSummary, error) {
	s.invoked = true
	if file != nil {
		s.gotForm = file.Filename
	}
	s.gotJobDesc = jobDescription
	return s.summary, s.err
}

func newAnalyzeApp(analyzer services.AnalyzerService) *fiber.App {
	app := fiber.New()
	handler := NewAnalyzeHandler(analyzer, 16*1024*1024)
	app.Post("/api/v1/analyze", handler.HandleAnalyze)
	return app
}

func multipartRequest(t *testing.T, filename, content, jobDescription string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if filename != "" {
		part, err := writer.CreateFormFile("resume", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	if jobDescription != "" {
		require.NoError(t, writer.WriteField("job_description", jobDescription))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/v1/analyze", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestHandleAnalyzeSuccess(t *testing.T) {
	analyzer := &stubAnalyzer{
		summary: &models.AnalysisSummary{
			Skills:            []string{"Aws", "Docker", "Python"},
			MatchPercentage:   73.21,
			ResumeTextPreview: "Experienced in Python...",
			Filename:          "resume_abc.pdf",
		},
	}
	app := newAnalyzeApp(analyzer)

	resp, err := app.Test(multipartRequest(t, "resume.pdf", "fake pdf", "python role"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary models.AnalysisSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	require.Equal(t, []string{"Aws", "Docker", "Python"}, summary.Skills)
	require.InDelta(t, 73.21, summary.MatchPercentage, 1e-9)
	require.Equal(t, "resume_abc.pdf", summary.Filename)

	require.Equal(t, "resume.pdf", analyzer.gotForm)
	require.Equal(t, "python role", analyzer.gotJobDesc)
}

func TestHandleAnalyzeNoFile(t *testing.T) {
	analyzer := &stubAnalyzer{}
	app := newAnalyzeApp(analyzer)

	resp, err := app.Test(multipartRequest(t, "", "", "some jd"))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.False(t, analyzer.invoked)
}

func TestHandleAnalyzeErrorMapping(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation error",
			err:        &services.ValidationError{Reason: "please upload a PDF or DOCX file only"},
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "unsupported format",
			err:        &services.UnsupportedFormatError{Extension: "txt"},
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "document read error",
			err:        &services.DocumentReadError{Path: "/tmp/x.pdf", Err: io.ErrUnexpectedEOF},
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "empty document",
			err:        services.ErrEmptyDocument,
			wantStatus: fiber.StatusBadRequest,
		},
		{
			name:       "processing error",
			err:        &services.ProcessingError{Message: "failed to save analysis result"},
			wantStatus: fiber.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := newAnalyzeApp(&stubAnalyzer{err: tc.err})

			resp, err := app.Test(multipartRequest(t, "resume.pdf", "content", ""))
			require.NoError(t, err)
			require.Equal(t, tc.wantStatus, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.NotEmpty(t, body["error"])
		})
	}
}
