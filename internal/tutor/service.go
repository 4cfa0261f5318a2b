// Package tutor evaluates student answers: it records the attempt, asks
// the LLM for coaching feedback built on the student's history, and logs
// the exchange. Statistics never depend on the LLM — correctness comes
// from the substring heuristic, so an LLM outage never loses progress.
package tutor

import (
	"context"
	"fmt"

	"github.com/abhisek/mathtutor/internal/catalog"
	"github.com/abhisek/mathtutor/internal/llm"
	"github.com/abhisek/mathtutor/internal/store"
)

// fallbackFeedback is returned when the LLM is unreachable. The attempt
// is already recorded by then; only the coaching is lost.
const fallbackFeedback = "Sorry — I couldn't reach the tutor right now. " +
	"Your answer has been recorded; please try again in a moment."

// Service grades answers and produces tutoring feedback.
type Service struct {
	provider llm.Provider
	progress store.ProgressRepo
	cfg      Config
}

// NewService creates an evaluation service. A nil provider is allowed:
// evaluation then always degrades to the fallback message while
// statistics keep recording.
func NewService(provider llm.Provider, progress store.ProgressRepo, cfg Config) *Service {
	return &Service{provider: provider, progress: progress, cfg: cfg}
}

// Result is the outcome of one graded submission.
type Result struct {
	// Feedback is the tutor's reply, or the fallback message when the
	// provider failed.
	Feedback string

	// Correct is the heuristic verdict recorded in statistics.
	Correct bool

	// Degraded reports that the provider failed and Feedback is the
	// fallback message.
	Degraded bool
}

// Evaluate grades one answer end to end: record the attempt, gather the
// student's history, ask the LLM, and log the exchange. A provider
// failure degrades to a message; only storage faults return an error.
func (s *Service) Evaluate(ctx context.Context, userID int, p catalog.Problem, answer string) (Result, error) {
	correct := AnswerMatches(answer, p)

	// Recorded before the LLM call so progress survives any outage.
	if err := s.progress.RecordAttempt(ctx, userID, p.Number, answer, correct); err != nil {
		return Result{}, fmt.Errorf("record attempt: %w", err)
	}

	stats, err := s.progress.Stats(ctx, userID)
	if err != nil {
		return Result{}, fmt.Errorf("load stats: %w", err)
	}
	weak, err := s.progress.WeakProblems(ctx, userID, s.cfg.WeakLimit)
	if err != nil {
		return Result{}, fmt.Errorf("load weak problems: %w", err)
	}
	chat, err := s.progress.RecentChat(ctx, userID, s.cfg.HistoryLimit)
	if err != nil {
		return Result{}, fmt.Errorf("load chat history: %w", err)
	}

	pctx := BuildContext(p, answer, stats, weak, chat)

	feedback, ok := s.generate(ctx, pctx)
	if !ok {
		return Result{Feedback: fallbackFeedback, Correct: correct, Degraded: true}, nil
	}

	// Persist the exchange in conversational order: student first.
	if err := s.progress.RecordChat(ctx, userID, p.Number, store.RoleUser, answer); err != nil {
		return Result{}, fmt.Errorf("record user chat: %w", err)
	}
	if err := s.progress.RecordChat(ctx, userID, p.Number, store.RoleAssistant, feedback); err != nil {
		return Result{}, fmt.Errorf("record assistant chat: %w", err)
	}

	return Result{Feedback: feedback, Correct: correct}, nil
}

// generate runs the bounded LLM call. The second return value is false on
// any provider failure.
func (s *Service) generate(ctx context.Context, pctx Context) (string, bool) {
	if s.provider == nil {
		return "", false
	}

	ctx = llm.WithPurpose(ctx, "feedback")
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: feedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildFeedbackUserMessage(pctx)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil || resp.Text == "" {
		return "", false
	}
	return resp.Text, true
}
