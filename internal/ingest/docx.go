package ingest

import (
	"bytes"
	"fmt"

	"code.sajari.com/docconv"
)

// DocxExtractor extracts raw text from Word documents using docconv.
type DocxExtractor struct{}

// NewDocxExtractor returns the default office-document extractor.
func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{}
}

// ExtractText converts a .docx payload into plain text.
func (DocxExtractor) ExtractText(data []byte) (string, error) {
	text, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("convert docx: %w", err)
	}
	return text, nil
}
