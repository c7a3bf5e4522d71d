package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction.
// Consumers call Generate with a Request and receive either structured
// JSON (when a Schema is set) or plain text.
type Provider interface {
	// Generate sends a prompt to the LLM and returns a response.
	// The request's Schema field, when set, instructs the provider to
	// return JSON conforming to that schema. The response Content will
	// be the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system instruction. Sets the LLM's persona and
	// output constraints.
	System string

	// Files are inline attachments (source documents, images) sent
	// ahead of the message text. Providers map these to their native
	// content-part mechanism.
	Files []FilePart

	// Messages is the conversation history. For single-turn generation
	// this contains one user message; the chat flow passes prior turns.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output
	// mechanism. When nil, Content is the raw reply text.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64

	// TopP is the nucleus sampling cutoff. Zero means provider default.
	TopP float64
}

// FilePart is an inline file payload attached to a request.
type FilePart struct {
	// Name is the original filename, used in diagnostics only.
	Name string

	// MIMEType describes Data, e.g. "application/pdf", "image/png",
	// "text/plain".
	MIMEType string

	// Data is the raw file content.
	Data []byte
}

// IsText reports whether the part carries plain text rather than a
// binary payload.
func (f FilePart) IsText() bool {
	return f.MIMEType == "text/plain" || f.MIMEType == ""
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (used as the schema name for OpenAI,
	// resource name for validation). Kebab-case, e.g. "exam-paper".
	Name string

	// Description is a human-readable description of what this schema
	// represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. When a Schema was provided in
	// the request, this is the validated JSON object. When no Schema
	// was provided, this is the raw reply text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Text returns the response content as a string.
func (r *Response) Text() string {
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
