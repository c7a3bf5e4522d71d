package settings

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/attafarid/studyai/internal/examgen"
	"github.com/attafarid/studyai/internal/store"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	repo, err := NewRepo(s.DB())
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func TestLoadConfigDefaults(t *testing.T) {
	repo := newTestRepo(t)

	cfg, err := repo.LoadConfig(context.Background())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != examgen.DefaultExamConfig() {
		t.Errorf("fresh database should yield defaults, got %+v", cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	want := examgen.DefaultExamConfig()
	want.ExamName = "Physics Midterm"
	want.MCQCount = 10
	want.EssayCount = 2
	want.Difficulty = examgen.DifficultyConceptual
	want.PDFFontTheme = examgen.ThemeElegant

	if err := repo.SaveConfig(ctx, want); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	got, err := repo.LoadConfig(ctx)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}

	// Second save overwrites.
	want.MCQCount = 1
	if err := repo.SaveConfig(ctx, want); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	got, err = repo.LoadConfig(ctx)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.MCQCount != 1 {
		t.Errorf("overwrite failed, MCQCount = %d", got.MCQCount)
	}
}

func TestReset(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	cfg := examgen.DefaultExamConfig()
	cfg.ExamName = "Custom"
	if err := repo.SaveConfig(ctx, cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	got, err := repo.LoadConfig(ctx)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got != examgen.DefaultExamConfig() {
		t.Errorf("reset should restore defaults, got %+v", got)
	}
}

func TestCorruptBlobFallsBackToDefaults(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	repo, err := NewRepo(s.DB())
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	_, err = s.DB().Exec("INSERT INTO settings (key, value) VALUES (?, ?)",
		"exam_config", "{not json")
	if err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}

	got, err := repo.LoadConfig(context.Background())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got != examgen.DefaultExamConfig() {
		t.Errorf("corrupt blob should yield defaults, got %+v", got)
	}
}
