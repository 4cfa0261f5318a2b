package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/mathtutor/internal/store"
)

// recordingLogRepo captures appended LLM request rows in memory.
type recordingLogRepo struct {
	rows    []store.LLMRequestData
	failure error
}

func (r *recordingLogRepo) AppendRequest(_ context.Context, data store.LLMRequestData) error {
	if r.failure != nil {
		return r.failure
	}
	r.rows = append(r.rows, data)
	return nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &recordingLogRepo{}
	mock := NewMockProvider(
		MockResponse{Text: "hi", Usage: Usage{InputTokens: 12, OutputTokens: 8}},
	)
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "feedback")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.rows) != 1 {
		t.Fatalf("expected 1 log row, got %d", len(repo.rows))
	}
	row := repo.rows[0]
	if !row.Success {
		t.Fatal("expected success=true")
	}
	if row.Purpose != "feedback" {
		t.Fatalf("expected purpose 'feedback', got %q", row.Purpose)
	}
	if row.InputTokens != 12 || row.OutputTokens != 8 {
		t.Fatalf("token counts not recorded: %+v", row)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &recordingLogRepo{}
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithLogging(mock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error to pass through")
	}

	if len(repo.rows) != 1 {
		t.Fatalf("expected 1 log row, got %d", len(repo.rows))
	}
	row := repo.rows[0]
	if row.Success {
		t.Fatal("expected success=false")
	}
	if row.ErrorMessage == "" {
		t.Fatal("expected error message recorded")
	}
}

func TestLogging_NilRepoDisablesLogging(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "hi"})
	p := WithLogging(mock, nil)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "hi" {
		t.Fatalf("unexpected text: %q", resp.Text)
	}
}

func TestLogging_LogFailureDoesNotFailRequest(t *testing.T) {
	repo := &recordingLogRepo{failure: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Text: "hi"})
	p := WithLogging(mock, repo)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("log failure must not fail the request: %v", err)
	}
	if resp.Text != "hi" {
		t.Fatalf("unexpected text: %q", resp.Text)
	}
}
