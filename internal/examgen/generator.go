package examgen

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/attafarid/studyai/internal/ingest"
	"github.com/attafarid/studyai/internal/llm"
)

// Config controls the behavior of the Generator.
type Config struct {
	// Temperature is kept high: diversity over determinism.
	Temperature float64

	// TopP is the nucleus sampling cutoff.
	TopP float64

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Rand is the randomness source for the strategy pick and entropy
	// token. Nil seeds from the current time; tests inject a fixed seed.
	Rand *rand.Rand

	// Now supplies the exam timestamp. Nil means time.Now.
	Now func() time.Time
}

// DefaultConfig returns the recommended generation parameters.
func DefaultConfig() Config {
	return Config{
		Temperature: 0.85,
		TopP:        0.95,
		MaxTokens:   8192,
	}
}

// Generator produces exams from source documents via the LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
	rng      *rand.Rand
	now      func() time.Time
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Generator{provider: provider, config: cfg, rng: rng, now: now}
}

// examOutput is the raw LLM response before it becomes a GeneratedExam.
type examOutput struct {
	Questions []Question `json:"questions"`
}

// Generate builds the generation request from the uploaded files and
// config, submits it, and wraps the parsed questions into a new exam.
// The config is normalized (negative counts clamped) before prompt
// assembly.
func (g *Generator) Generate(ctx context.Context, files []ingest.UploadedFile, cfg ExamConfig) (*GeneratedExam, error) {
	ctx = llm.WithPurpose(ctx, "exam-gen")
	cfg = cfg.Normalized()

	prompt := buildPrompt(cfg, g.rng)

	req := llm.Request{
		System: systemInstruction,
		Files:  fileParts(files),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:      ExamSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
		TopP:        g.config.TopP,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("exam generation failed: %w", err)
	}

	var raw examOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("parse exam response: %w", err),
		}
	}

	questions := raw.Questions
	if questions == nil {
		questions = []Question{}
	}

	return &GeneratedExam{
		Questions: questions,
		Timestamp: g.now().UnixMilli(),
	}, nil
}

func fileParts(files []ingest.UploadedFile) []llm.FilePart {
	parts := make([]llm.FilePart, len(files))
	for i, f := range files {
		parts[i] = llm.FilePart{
			Name:     f.Name,
			MIMEType: f.MIMEType,
			Data:     f.Data,
		}
	}
	return parts
}
