// Package extract converts binary resume documents (PDF, DOCX) into plain text.
package extract

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Format identifies a supported document format.
type Format string

const (
	// FormatPDF is a PDF document.
	FormatPDF Format = "pdf"
	// FormatDOCX is an OOXML word-processing document.
	FormatDOCX Format = "docx"
)

// Error represents a failure to decode a document. Extraction errors are
// surfaced to the caller and never retried.
type Error struct {
	Format  Format
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error (%s): %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error (%s): %s", e.Format, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// DetectFormat maps a file name to its document format by extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	default:
		return "", &Error{Format: Format(strings.TrimPrefix(filepath.Ext(path), ".")), Message: "unsupported file extension"}
	}
}

// Text extracts plain text from a document. An empty but well-formed
// document yields an empty string, not an error.
func Text(data []byte, format Format) (string, error) {
	switch format {
	case FormatPDF:
		return pdfText(data)
	case FormatDOCX:
		return docxText(data)
	default:
		return "", &Error{Format: format, Message: "unsupported format"}
	}
}

// pdfText decodes each page in order and joins page texts with newlines.
func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &Error{Format: FormatPDF, Message: "failed to read document", Cause: err}
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// One undecodable page fails the whole document.
			return "", &Error{Format: FormatPDF, Message: fmt.Sprintf("failed to decode page %d", i), Cause: err}
		}
		pages = append(pages, text)
	}
	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}

var docxTagPattern = regexp.MustCompile(`<[^>]+>`)

// docxText joins paragraph texts in document order with newlines. The docx
// library exposes the document body as WordprocessingML, so paragraph
// breaks are recovered from </w:p> markers before tags are stripped.
func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &Error{Format: FormatDOCX, Message: "failed to parse document", Cause: err}
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = docxTagPattern.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	return strings.TrimSpace(content), nil
}
