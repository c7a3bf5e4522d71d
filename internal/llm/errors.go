package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrMissingCredential indicates no API key is configured for the
// selected provider. Detected before any network call is attempted.
type ErrMissingCredential struct {
	Provider string
}

func (e *ErrMissingCredential) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("no API key configured for provider %q", e.Provider)
	}
	return "no API key configured"
}

// ErrEmptyResponse indicates the provider call succeeded at the
// transport level but returned no content.
type ErrEmptyResponse struct {
	Model string
}

func (e *ErrEmptyResponse) Error() string {
	return fmt.Sprintf("empty response from model %s", e.Model)
}

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the LLM returned content that does not
// parse or conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrUnsupportedAttachment indicates a provider cannot carry an inline
// file of the given MIME type.
type ErrUnsupportedAttachment struct {
	Provider string
	Name     string
	MIMEType string
}

func (e *ErrUnsupportedAttachment) Error() string {
	return fmt.Sprintf("provider %s cannot attach %s (%s)", e.Provider, e.Name, e.MIMEType)
}
