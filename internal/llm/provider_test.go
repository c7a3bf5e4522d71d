package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProviderCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"questions":[]}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`second reply`)},
	)

	resp, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != `{"questions":[]}` {
		t.Errorf("unexpected first response: %q", resp.Text())
	}
	if resp.Usage.TotalTokens != 15 {
		t.Errorf("unexpected usage: %+v", resp.Usage)
	}

	resp, err = mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "second reply" {
		t.Errorf("unexpected second response: %q", resp.Text())
	}
}

func TestMockProviderEmptyQueue(t *testing.T) {
	mock := NewMockProvider()

	_, err := mock.Generate(context.Background(), Request{})
	var unavailErr *ErrProviderUnavailable
	if !errors.As(err, &unavailErr) {
		t.Fatalf("expected ErrProviderUnavailable, got: %v", err)
	}
}

func TestMockProviderRecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`ok`)},
	)

	req := Request{
		System:   "you are an examiner",
		Messages: []Message{{Role: RoleUser, Content: "five questions on algebra"}},
	}
	if _, err := mock.Generate(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "you are an examiner" {
		t.Errorf("unexpected recorded system: %q", mock.Calls[0].System)
	}
	if mock.Calls[0].Messages[0].Content != "five questions on algebra" {
		t.Errorf("unexpected recorded message: %q", mock.Calls[0].Messages[0].Content)
	}
}

func TestMockProviderConfiguredError(t *testing.T) {
	wantErr := &ErrRateLimit{Err: errors.New("slow down")}
	mock := NewMockProvider(MockResponse{Err: wantErr})

	_, err := mock.Generate(context.Background(), Request{})
	var rateLimitErr *ErrRateLimit
	if !errors.As(err, &rateLimitErr) {
		t.Fatalf("expected ErrRateLimit, got: %v", err)
	}
}

func TestMockProviderModelID(t *testing.T) {
	if got := NewMockProvider().ModelID(); got != "mock" {
		t.Errorf("expected mock, got %q", got)
	}
}

func TestPurposeContext(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("expected unknown for bare context, got %q", got)
	}

	ctx := WithPurpose(context.Background(), "exam-gen")
	if got := PurposeFrom(ctx); got != "exam-gen" {
		t.Errorf("expected exam-gen, got %q", got)
	}

	ctx = WithPurpose(ctx, "chat")
	if got := PurposeFrom(ctx); got != "chat" {
		t.Errorf("expected chat after overwrite, got %q", got)
	}
}
