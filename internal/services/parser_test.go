package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractTextUnsupportedFormat(t *testing.T) {
	parser := NewDocumentParserService()

	testCases := []string{"txt", "doc", "png", ""}

	for _, ext := range testCases {
		t.Run("ext "+ext, func(t *testing.T) {
			_, err := parser.ExtractText("whatever.file", ext)
			require.Error(t, err)

			var formatErr *UnsupportedFormatError
			require.ErrorAs(t, err, &formatErr)
			require.Equal(t, ext, formatErr.Extension)
		})
	}
}

func TestExtractTextMissingFile(t *testing.T) {
	parser := NewDocumentParserService()

	for _, ext := range []string{"pdf", "docx"} {
		t.Run("ext "+ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "does-not-exist."+ext)
			_, err := parser.ExtractText(path, ext)
			require.Error(t, err)

			var readErr *DocumentReadError
			require.ErrorAs(t, err, &readErr)
			require.Equal(t, path, readErr.Path)
			require.NotNil(t, readErr.Err)
		})
	}
}

func TestExtractTextCorruptFile(t *testing.T) {
	parser := NewDocumentParserService()

	for _, ext := range []string{"pdf", "docx"} {
		t.Run("ext "+ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "garbage."+ext)
			require.NoError(t, os.WriteFile(path, []byte("this is not a real document"), 0644))

			_, err := parser.ExtractText(path, ext)
			require.Error(t, err)

			var readErr *DocumentReadError
			require.ErrorAs(t, err, &readErr)
		})
	}
}

func TestExtractTextExtensionCaseInsensitive(t *testing.T) {
	parser := NewDocumentParserService()

	// "PDF" must dispatch to the pdf branch, not fail as unsupported.
	_, err := parser.ExtractText(filepath.Join(t.TempDir(), "missing.pdf"), "PDF")

	var formatErr *UnsupportedFormatError
	require.False(t, errors.As(err, &formatErr))
}
