package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestGetOrCreateUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	ada, err := repo.GetOrCreateUser(ctx, "Ada")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if ada.ID == 0 || ada.Name != "Ada" {
		t.Fatalf("unexpected user: %+v", ada)
	}

	// Same name resolves to the same row.
	again, err := repo.GetOrCreateUser(ctx, "Ada")
	if err != nil {
		t.Fatalf("lookup user: %v", err)
	}
	if again.ID != ada.ID {
		t.Fatalf("expected id %d, got %d", ada.ID, again.ID)
	}

	// Different name gets a distinct row.
	bob, err := repo.GetOrCreateUser(ctx, "Bob")
	if err != nil {
		t.Fatalf("create second user: %v", err)
	}
	if bob.ID == ada.ID {
		t.Fatal("distinct names must map to distinct users")
	}
}

func TestRecordAttempt_Aggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	ada, err := repo.GetOrCreateUser(ctx, "Ada")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	// Five attempts on problem 1, two of them correct.
	attempts := []bool{false, true, false, false, true}
	for i, correct := range attempts {
		if err := repo.RecordAttempt(ctx, ada.ID, 1, "answer", correct); err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
	}

	stats, err := repo.Stats(ctx, ada.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("expected 1 stat row, got %d", len(stats))
	}
	st := stats[0]
	if st.ProblemNumber != 1 || st.TotalAttempts != 5 || st.CorrectAttempts != 2 {
		t.Fatalf("unexpected counters: %+v", st)
	}
	if st.SuccessRate != 0.4 {
		t.Fatalf("expected success rate 0.4, got %v", st.SuccessRate)
	}
	if st.LastAttemptAt.IsZero() {
		t.Fatal("last attempt timestamp not set")
	}

	// The per-attempt log keeps every row, not just the aggregate.
	n, err := s.Client().ProblemAttempt.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count attempts: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected 5 attempt-log rows, got %d", n)
	}
}

func TestRecordAttempt_CorrectNeverExceedsTotal(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	ada, _ := repo.GetOrCreateUser(ctx, "Ada")
	for range 3 {
		if err := repo.RecordAttempt(ctx, ada.ID, 2, "4", true); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	stats, err := repo.Stats(ctx, ada.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, st := range stats {
		if st.CorrectAttempts > st.TotalAttempts {
			t.Fatalf("correct %d exceeds total %d", st.CorrectAttempts, st.TotalAttempts)
		}
	}
}

func TestStats_PerUserIsolation(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	ada, _ := repo.GetOrCreateUser(ctx, "Ada")
	bob, _ := repo.GetOrCreateUser(ctx, "Bob")

	if err := repo.RecordAttempt(ctx, ada.ID, 1, "4", true); err != nil {
		t.Fatalf("record: %v", err)
	}

	stats, err := repo.Stats(ctx, bob.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 0 {
		t.Fatalf("expected no stats for Bob, got %d rows", len(stats))
	}
}

func TestStats_Ordering(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	ada, _ := repo.GetOrCreateUser(ctx, "Ada")

	// Problem 3 practiced three times, problem 1 once, problem 2 once.
	for range 3 {
		if err := repo.RecordAttempt(ctx, ada.ID, 3, "x", false); err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.RecordAttempt(ctx, ada.ID, 2, "x", true); err != nil {
		t.Fatal(err)
	}
	if err := repo.RecordAttempt(ctx, ada.ID, 1, "x", true); err != nil {
		t.Fatal(err)
	}

	stats, err := repo.Stats(ctx, ada.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(stats))
	}
	// Most practiced first, then problem number for equal counts.
	if stats[0].ProblemNumber != 3 || stats[1].ProblemNumber != 1 || stats[2].ProblemNumber != 2 {
		t.Fatalf("unexpected order: %d, %d, %d",
			stats[0].ProblemNumber, stats[1].ProblemNumber, stats[2].ProblemNumber)
	}
}

func TestRecentChat(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	ada, _ := repo.GetOrCreateUser(ctx, "Ada")

	for i := range 4 {
		role := RoleUser
		if i%2 == 1 {
			role = RoleAssistant
		}
		content := []string{"first", "second", "third", "fourth"}[i]
		if err := repo.RecordChat(ctx, ada.ID, 1, role, content); err != nil {
			t.Fatalf("record chat: %v", err)
		}
	}

	msgs, err := repo.RecentChat(ctx, ada.ID, 3)
	if err != nil {
		t.Fatalf("recent chat: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	// Newest first.
	if msgs[0].Content != "fourth" || msgs[1].Content != "third" || msgs[2].Content != "second" {
		t.Fatalf("unexpected order: %q, %q, %q", msgs[0].Content, msgs[1].Content, msgs[2].Content)
	}
	if msgs[0].Role != RoleAssistant {
		t.Fatalf("unexpected role: %q", msgs[0].Role)
	}
}

func TestRecentChat_DefaultLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	ada, _ := repo.GetOrCreateUser(ctx, "Ada")
	for i := range 15 {
		if err := repo.RecordChat(ctx, ada.ID, 1, RoleUser, time.Now().Add(time.Duration(i)).String()); err != nil {
			t.Fatal(err)
		}
	}

	msgs, err := repo.RecentChat(ctx, ada.ID, 0)
	if err != nil {
		t.Fatalf("recent chat: %v", err)
	}
	if len(msgs) != defaultChatLimit {
		t.Fatalf("expected default limit %d, got %d", defaultChatLimit, len(msgs))
	}
}

func TestWeakProblems(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	ada, _ := repo.GetOrCreateUser(ctx, "Ada")

	record := func(problem int, results ...bool) {
		t.Helper()
		for _, correct := range results {
			if err := repo.RecordAttempt(ctx, ada.ID, problem, "x", correct); err != nil {
				t.Fatal(err)
			}
		}
	}

	record(1, true, true)          // 100%
	record(2, false, false)        // 0%
	record(3, true, false)         // 50%
	record(4, false, true, false)  // 33%

	weak, err := repo.WeakProblems(ctx, ada.ID, 3)
	if err != nil {
		t.Fatalf("weak problems: %v", err)
	}
	if len(weak) != 3 {
		t.Fatalf("expected 3 weak problems, got %d", len(weak))
	}
	// Lowest success ratio first.
	if weak[0] != 2 || weak[1] != 4 || weak[2] != 3 {
		t.Fatalf("unexpected order: %v", weak)
	}
}

func TestWeakProblems_TieBreak(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	ada, _ := repo.GetOrCreateUser(ctx, "Ada")
	// Equal ratios: ties resolve by problem number ascending.
	for _, n := range []int{5, 2, 9} {
		if err := repo.RecordAttempt(ctx, ada.ID, n, "x", false); err != nil {
			t.Fatal(err)
		}
	}

	weak, err := repo.WeakProblems(ctx, ada.ID, 3)
	if err != nil {
		t.Fatalf("weak problems: %v", err)
	}
	if len(weak) != 3 || weak[0] != 2 || weak[1] != 5 || weak[2] != 9 {
		t.Fatalf("unexpected order: %v", weak)
	}
}

func TestWeakProblems_NoAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	ada, _ := repo.GetOrCreateUser(ctx, "Ada")
	weak, err := repo.WeakProblems(ctx, ada.ID, 3)
	if err != nil {
		t.Fatalf("weak problems: %v", err)
	}
	if len(weak) != 0 {
		t.Fatalf("expected no weak problems, got %v", weak)
	}
}

func TestLLMLog_AppendRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMLogRepo()
	ctx := context.Background()

	err := repo.AppendRequest(ctx, LLMRequestData{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Purpose:      "feedback",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    350,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append request: %v", err)
	}

	n, err := s.Client().LLMRequest.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count requests: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 log row, got %d", n)
	}
}
