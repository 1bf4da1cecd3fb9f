package ingestion

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ResumeFromFile reads a resume document and returns its cleaned text.
// Plain text files are read directly; PDFs go through best-effort text
// extraction. Scanned or image-only PDFs come back empty, which the
// caller rejects as too short.
func ResumeFromFile(path string) (string, *Metadata, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read pdf: %w", err)
		}
		text, err := ExtractPDFText(data)
		if err != nil {
			return "", nil, err
		}
		cleaned := CleanText(text)
		return cleaned, NewMetadata(cleaned, ""), nil
	}
	return IngestFromFile(path)
}

// ExtractPDFText pulls the plain text out of a PDF document.
func ExtractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse pdf: %w", err)
	}

	var textBuilder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}
