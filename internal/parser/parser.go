package parser

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFileType means the upload's content type is none of the
// accepted resume formats.
var ErrUnsupportedFileType = errors.New("unsupported file type")

const (
	MimePlainText = "text/plain"
	MimePDF       = "application/pdf"
	MimeDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeDoc       = "application/msword"
)

// ExtractText pulls plain text out of an uploaded resume based on its MIME
// type. Plain text passes through, PDF and Word documents are parsed in
// memory. Legacy .doc uploads go through the docx reader; genuinely old
// binary .doc files fail there with a parse error rather than a type
// rejection.
func ExtractText(data []byte, mime string) (string, error) {
	switch normalizeMime(mime) {
	case MimePlainText:
		return strings.TrimSpace(string(data)), nil
	case MimePDF:
		return extractPDFText(data)
	case MimeDocx, MimeDoc:
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, mime)
	}
}

// normalizeMime drops parameters like "; charset=utf-8".
func normalizeMime(mime string) string {
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	return strings.TrimSpace(strings.ToLower(mime))
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", errors.New("pdf contains no extractable text")
	}
	return out, nil
}

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	// GetContent returns WordprocessingML; strip markup, keep the text runs.
	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTagPattern.ReplaceAllString(content, "")

	out := strings.TrimSpace(content)
	if out == "" {
		return "", errors.New("docx contains no extractable text")
	}
	return out, nil
}
