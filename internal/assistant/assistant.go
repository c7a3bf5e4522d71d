// Package assistant is the conversational side of Study.AI: free-form
// chat turns with history, no response schema.
package assistant

import (
	"context"
	"fmt"

	"github.com/attafarid/studyai/internal/llm"
)

const persona = "You are 'Study.AI', a highly advanced autonomous academic assistant. " +
	"Your responses should be intelligent, precise, and sophisticated. " +
	"Use **bold text** for key concepts. " +
	"Adopt a helpful but high-tech, slightly robotic yet professional persona."

// RoleModel tags assistant turns in the history; RoleUser tags the
// user's. These match the wire-level chat roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one prior exchange in the conversation.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Config controls the assistant's generation parameters. Temperature
// sits lower than exam generation: coherence over diversity.
type Config struct {
	Temperature float64
	MaxTokens   int
}

// DefaultConfig returns the recommended chat parameters.
func DefaultConfig() Config {
	return Config{
		Temperature: 0.7,
		MaxTokens:   2048,
	}
}

// Assistant answers free-form questions with conversation history.
type Assistant struct {
	provider llm.Provider
	config   Config
}

// New creates an Assistant backed by the given provider.
func New(provider llm.Provider, cfg Config) *Assistant {
	return &Assistant{provider: provider, config: cfg}
}

// Reply sends message plus the prior history and returns the reply
// text. Replies use **double-asterisk** spans to mark emphasis.
func (a *Assistant) Reply(ctx context.Context, message string, history []Turn) (string, error) {
	ctx = llm.WithPurpose(ctx, "chat")

	messages := make([]llm.Message, 0, len(history)+1)
	for _, t := range history {
		role := llm.RoleUser
		if t.Role == RoleModel {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: t.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: message})

	req := llm.Request{
		System:      persona,
		Messages:    messages,
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat failed: %w", err)
	}

	return resp.Text(), nil
}
