// Package ingest normalizes source documents for the generation request.
//
// Files are read sequentially, one fully processed before the next.
// Office documents are converted to extracted plain text up front;
// PDFs and images pass through as binary payloads for the model to
// read natively.
package ingest

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// UploadedFile is a normalized source document. Immutable once created.
type UploadedFile struct {
	// Name is the original filename.
	Name string

	// DeclaredType is the MIME type implied by the file extension,
	// before any conversion.
	DeclaredType string

	// MIMEType describes Data as stored. Office documents become
	// "text/plain" after extraction.
	MIMEType string

	// Data is the payload: raw bytes for PDF/image, UTF-8 text otherwise.
	Data []byte
}

// Extractor converts a binary office document into plain text.
type Extractor interface {
	ExtractText(data []byte) (string, error)
}

// FileError records a per-file ingestion failure. One bad file does
// not abort the batch.
type FileError struct {
	Name string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("ingest %s: %v", e.Name, e.Err)
}

func (e FileError) Unwrap() error { return e.Err }

// Loader reads and normalizes files from disk.
type Loader struct {
	extractor Extractor
}

// NewLoader creates a Loader with the given office-document extractor.
func NewLoader(extractor Extractor) *Loader {
	return &Loader{extractor: extractor}
}

// Load reads each path in order and returns the normalized files plus
// any per-file failures.
func (l *Loader) Load(paths []string) ([]UploadedFile, []FileError) {
	var files []UploadedFile
	var errs []FileError

	for _, path := range paths {
		f, err := l.loadOne(path)
		if err != nil {
			errs = append(errs, FileError{Name: filepath.Base(path), Err: err})
			continue
		}
		files = append(files, f)
	}

	return files, errs
}

func (l *Loader) loadOne(path string) (UploadedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return UploadedFile{}, err
	}

	name := filepath.Base(path)
	declared := declaredType(path, data)

	switch {
	case isOfficeDoc(path):
		if l.extractor == nil {
			return UploadedFile{}, fmt.Errorf("no extractor configured for %s", filepath.Ext(path))
		}
		text, err := l.extractor.ExtractText(data)
		if err != nil {
			return UploadedFile{}, fmt.Errorf("extract text: %w", err)
		}
		return UploadedFile{
			Name:         name,
			DeclaredType: declared,
			MIMEType:     "text/plain",
			Data:         []byte(text),
		}, nil

	case declared == "application/pdf" || strings.HasPrefix(declared, "image/"):
		return UploadedFile{
			Name:         name,
			DeclaredType: declared,
			MIMEType:     declared,
			Data:         data,
		}, nil

	default:
		// Everything else is treated as plain text, matching the
		// catch-all upload path.
		return UploadedFile{
			Name:         name,
			DeclaredType: declared,
			MIMEType:     "text/plain",
			Data:         data,
		}, nil
	}
}

// declaredType resolves the MIME type from the extension, falling back
// to content sniffing for unknown extensions.
func declaredType(path string, data []byte) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); t != "" {
		// Strip optional parameters like "; charset=utf-8".
		if i := strings.IndexByte(t, ';'); i >= 0 {
			t = strings.TrimSpace(t[:i])
		}
		return t
	}
	return http.DetectContentType(data)
}

func isOfficeDoc(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".docx"
}
