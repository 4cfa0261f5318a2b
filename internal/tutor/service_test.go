package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/mathtutor/internal/catalog"
	"github.com/abhisek/mathtutor/internal/llm"
	"github.com/abhisek/mathtutor/internal/store"
)

// fakeProgress is an in-memory ProgressRepo for service tests.
type fakeProgress struct {
	users    map[string]int
	nextID   int
	attempts []fakeAttempt
	chat     []store.ChatMessage
	weak     []int

	failAttempt error
	failChat    error
}

type fakeAttempt struct {
	userID  int
	problem int
	answer  string
	correct bool
}

func newFakeProgress() *fakeProgress {
	return &fakeProgress{users: make(map[string]int), nextID: 1}
}

func (f *fakeProgress) GetOrCreateUser(_ context.Context, name string) (*store.User, error) {
	if id, ok := f.users[name]; ok {
		return &store.User{ID: id, Name: name}, nil
	}
	id := f.nextID
	f.nextID++
	f.users[name] = id
	return &store.User{ID: id, Name: name}, nil
}

func (f *fakeProgress) RecordAttempt(_ context.Context, userID, problemNumber int, answer string, isCorrect bool) error {
	if f.failAttempt != nil {
		return f.failAttempt
	}
	f.attempts = append(f.attempts, fakeAttempt{userID, problemNumber, answer, isCorrect})
	return nil
}

func (f *fakeProgress) RecordChat(_ context.Context, userID, problemNumber int, role, content string) error {
	if f.failChat != nil {
		return f.failChat
	}
	f.chat = append(f.chat, store.ChatMessage{ProblemNumber: problemNumber, Role: role, Content: content})
	return nil
}

func (f *fakeProgress) Stats(_ context.Context, userID int) ([]store.Stat, error) {
	byProblem := make(map[int]*store.Stat)
	var order []int
	for _, a := range f.attempts {
		if a.userID != userID {
			continue
		}
		st, ok := byProblem[a.problem]
		if !ok {
			st = &store.Stat{ProblemNumber: a.problem}
			byProblem[a.problem] = st
			order = append(order, a.problem)
		}
		st.TotalAttempts++
		if a.correct {
			st.CorrectAttempts++
		}
	}
	out := make([]store.Stat, 0, len(order))
	for _, n := range order {
		out = append(out, *byProblem[n])
	}
	return out, nil
}

func (f *fakeProgress) RecentChat(_ context.Context, userID, limit int) ([]store.ChatMessage, error) {
	out := make([]store.ChatMessage, 0, limit)
	for i := len(f.chat) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.chat[i])
	}
	return out, nil
}

func (f *fakeProgress) WeakProblems(_ context.Context, userID, limit int) ([]int, error) {
	if len(f.weak) > limit {
		return f.weak[:limit], nil
	}
	return f.weak, nil
}

var _ store.ProgressRepo = (*fakeProgress)(nil)

func additionProblem() catalog.Problem {
	return catalog.Problem{
		Number:    1,
		Statement: "What is 2 + 2?",
		Hints:     []string{"add", "carry the one"},
		Solutions: []catalog.Solution{{Method: "addition", Text: "2 + 2 = 4"}},
	}
}

func TestEvaluate_CorrectAnswer(t *testing.T) {
	progress := newFakeProgress()
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "Great job, 4 is correct!"},
	)
	svc := NewService(mock, progress, DefaultConfig())

	res, err := svc.Evaluate(context.Background(), 1, additionProblem(), "4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Correct {
		t.Fatal("expected answer to be graded correct")
	}
	if res.Degraded {
		t.Fatal("expected live feedback, not degraded")
	}
	if res.Feedback != "Great job, 4 is correct!" {
		t.Fatalf("unexpected feedback: %q", res.Feedback)
	}

	if len(progress.attempts) != 1 {
		t.Fatalf("expected 1 recorded attempt, got %d", len(progress.attempts))
	}
	a := progress.attempts[0]
	if a.userID != 1 || a.problem != 1 || a.answer != "4" || !a.correct {
		t.Fatalf("unexpected attempt: %+v", a)
	}
}

func TestEvaluate_WrongAnswer(t *testing.T) {
	progress := newFakeProgress()
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "Not quite. Try counting up."},
	)
	svc := NewService(mock, progress, DefaultConfig())

	res, err := svc.Evaluate(context.Background(), 1, additionProblem(), "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Correct {
		t.Fatal("expected answer to be graded incorrect")
	}
	if progress.attempts[0].correct {
		t.Fatal("statistics recorded the wrong verdict")
	}
}

func TestEvaluate_ChatPersistedInOrder(t *testing.T) {
	progress := newFakeProgress()
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "Correct!"},
	)
	svc := NewService(mock, progress, DefaultConfig())

	if _, err := svc.Evaluate(context.Background(), 1, additionProblem(), "4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(progress.chat) != 2 {
		t.Fatalf("expected 2 chat rows, got %d", len(progress.chat))
	}
	if progress.chat[0].Role != store.RoleUser || progress.chat[0].Content != "4" {
		t.Fatalf("first chat row should be the student: %+v", progress.chat[0])
	}
	if progress.chat[1].Role != store.RoleAssistant || progress.chat[1].Content != "Correct!" {
		t.Fatalf("second chat row should be the tutor: %+v", progress.chat[1])
	}
}

func TestEvaluate_ProviderFailureDegrades(t *testing.T) {
	progress := newFakeProgress()
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	svc := NewService(mock, progress, DefaultConfig())

	res, err := svc.Evaluate(context.Background(), 1, additionProblem(), "4")
	if err != nil {
		t.Fatalf("provider failure must not surface as error: %v", err)
	}
	if !res.Degraded {
		t.Fatal("expected degraded result")
	}
	if res.Feedback != fallbackFeedback {
		t.Fatalf("unexpected fallback: %q", res.Feedback)
	}
	if !res.Correct {
		t.Fatal("heuristic verdict must survive a provider outage")
	}

	// The attempt still landed; the failed exchange is not persisted.
	if len(progress.attempts) != 1 {
		t.Fatalf("expected 1 recorded attempt, got %d", len(progress.attempts))
	}
	if len(progress.chat) != 0 {
		t.Fatalf("degraded evaluation must not record chat, got %d rows", len(progress.chat))
	}
}

func TestEvaluate_NilProviderDegrades(t *testing.T) {
	progress := newFakeProgress()
	svc := NewService(nil, progress, DefaultConfig())

	res, err := svc.Evaluate(context.Background(), 1, additionProblem(), "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Degraded || res.Feedback != fallbackFeedback {
		t.Fatalf("expected fallback feedback, got %+v", res)
	}
	if len(progress.attempts) != 1 {
		t.Fatal("attempt should be recorded even without a provider")
	}
}

func TestEvaluate_StorageErrorSurfaces(t *testing.T) {
	progress := newFakeProgress()
	progress.failAttempt = errors.New("disk full")
	mock := llm.NewMockProvider(llm.MockResponse{Text: "unused"})
	svc := NewService(mock, progress, DefaultConfig())

	_, err := svc.Evaluate(context.Background(), 1, additionProblem(), "4")
	if err == nil {
		t.Fatal("expected storage error to surface")
	}
	if mock.CallCount() != 0 {
		t.Fatal("LLM must not be called when the attempt failed to record")
	}
}

func TestEvaluate_EmptyReplyDegrades(t *testing.T) {
	progress := newFakeProgress()
	mock := llm.NewMockProvider(llm.MockResponse{Text: ""})
	svc := NewService(mock, progress, DefaultConfig())

	res, err := svc.Evaluate(context.Background(), 1, additionProblem(), "4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Degraded {
		t.Fatal("empty LLM reply should degrade")
	}
}

func TestEvaluate_PromptCarriesHistory(t *testing.T) {
	progress := newFakeProgress()
	progress.weak = []int{3, 7}
	progress.chat = []store.ChatMessage{
		{ProblemNumber: 3, Role: store.RoleUser, Content: "my earlier guess"},
	}
	mock := llm.NewMockProvider(llm.MockResponse{Text: "ok"})
	svc := NewService(mock, progress, DefaultConfig())

	if _, err := svc.Evaluate(context.Background(), 1, additionProblem(), "4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.System != feedbackSystemPrompt {
		t.Fatal("system prompt not set")
	}
	if len(req.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(req.Messages))
	}
	body := req.Messages[0].Content
	for _, want := range []string{
		"What is 2 + 2?",
		"Student's answer: 4",
		"Problems needing practice: 3, 7",
		"my earlier guess",
		"add",
		"[addition] 2 + 2 = 4",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildContext(t *testing.T) {
	p := additionProblem()
	stats := []store.Stat{{ProblemNumber: 1}, {ProblemNumber: 2}}
	weak := []int{2}
	chat := []store.ChatMessage{{Role: store.RoleUser, Content: "hi"}}

	pctx := BuildContext(p, "4", stats, weak, chat)
	if pctx.ProblemsAttempted != 2 {
		t.Fatalf("expected 2 attempted, got %d", pctx.ProblemsAttempted)
	}
	if pctx.Answer != "4" || pctx.Problem.Number != 1 {
		t.Fatalf("unexpected context: %+v", pctx)
	}
	if len(pctx.WeakProblems) != 1 || len(pctx.RecentChat) != 1 {
		t.Fatalf("history not carried: %+v", pctx)
	}
}
