package services

import (
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

type DocumentParserService interface {
	// ExtractText returns the plain text of the document at filePath.
	// ext selects the format ("pdf" or "docx", case-insensitive);
	// anything else is an UnsupportedFormatError.
	ExtractText(filePath string, ext string) (string, error)
}

type documentParserService struct{}

func NewDocumentParserService() DocumentParserService {
	return &documentParserService{}
}

// ExtractText implements DocumentParserService.
func (p *documentParserService) ExtractText(filePath string, ext string) (string, error) {
	switch strings.ToLower(ext) {
	case "pdf":
		return p.extractPDF(filePath)
	case "docx":
		return p.extractDocx(filePath)
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}
}

func (p *documentParserService) extractPDF(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", &DocumentReadError{Path: filePath, Err: err}
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Log error but continue with other pages
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}

func (p *documentParserService) extractDocx(filePath string) (string, error) {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", &DocumentReadError{Path: filePath, Err: err}
	}
	defer doc.Close()

	// GetContent returns the raw document.xml; pull the text runs out
	// of it, one line per paragraph.
	content := doc.Editable().GetContent()

	var textBuilder strings.Builder
	for _, paragraph := range paragraphPattern.Split(content, -1) {
		runs := textRunPattern.FindAllStringSubmatch(paragraph, -1)
		if len(runs) == 0 {
			continue
		}
		for _, run := range runs {
			textBuilder.WriteString(xmlUnescape(run[1]))
		}
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}

var (
	paragraphPattern = regexp.MustCompile(`</w:p>`)
	textRunPattern   = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)
	xmlReplacer      = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
		"&amp;", "&",
	)
)

func xmlUnescape(s string) string {
	return xmlReplacer.Replace(s)
}
