package cmd

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateExportFormat(t *testing.T) {
	for _, format := range []string{"pdf", "key", "txt", "json"} {
		if err := validateExportFormat(format); err != nil {
			t.Errorf("validateExportFormat(%q) = %v, want nil", format, err)
		}
	}

	err := validateExportFormat("docx")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), `unknown format "docx"`) {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestDefaultExportPath(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"pdf", "Biology_Midterm.pdf"},
		{"key", "Biology_Midterm_answer_key.pdf"},
		{"txt", "Biology_Midterm.txt"},
		{"json", "Biology_Midterm.json"},
	}

	for _, tt := range tests {
		if got := defaultExportPath(tt.format, "Biology Midterm"); got != tt.want {
			t.Errorf("defaultExportPath(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestExportUnknownFormatFailsFast(t *testing.T) {
	if err := exportCmd.Flags().Set("format", "docx"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { exportCmd.Flags().Set("format", "pdf") })

	err := exportCmd.RunE(exportCmd, []string{filepath.Join(t.TempDir(), "missing.json")})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("expected the format error, not a file error: %v", err)
	}
}
