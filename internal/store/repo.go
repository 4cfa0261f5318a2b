package store

import (
	"context"
	"time"
)

// Role values for chat messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// User is a learner row.
type User struct {
	ID   int
	Name string
}

// Stat is the aggregate attempt counters for one (user, problem) pair.
type Stat struct {
	ProblemNumber   int
	TotalAttempts   int
	CorrectAttempts int
	SuccessRate     float64
	LastAttemptAt   time.Time
}

// ChatMessage is one side of a recorded LLM exchange.
type ChatMessage struct {
	ProblemNumber int
	Role          string
	Content       string
	CreatedAt     time.Time
}

// ProgressRepo provides transactional access to user progress. Every
// method is self-contained: one call, one implicit transaction.
type ProgressRepo interface {
	// GetOrCreateUser looks up a user by exact name, inserting it on
	// first login. Concurrent first logins with the same name are
	// resolved by the unique name constraint: the losing insert retries
	// as a lookup.
	GetOrCreateUser(ctx context.Context, name string) (*User, error)

	// RecordAttempt appends an attempt-log row and upserts the
	// aggregate counters for (userID, problemNumber) in one
	// transaction, so a crash can never leave the two out of sync.
	RecordAttempt(ctx context.Context, userID, problemNumber int, answer string, isCorrect bool) error

	// RecordChat appends one chat row. Called twice per graded
	// submission: student content first, assistant reply second.
	RecordChat(ctx context.Context, userID, problemNumber int, role, content string) error

	// Stats returns the user's per-problem counters, most-practiced
	// first (total attempts descending).
	Stats(ctx context.Context, userID int) ([]Stat, error)

	// RecentChat returns the user's most recent chat rows, newest
	// first. A non-positive limit falls back to 10.
	RecentChat(ctx context.Context, userID, limit int) ([]ChatMessage, error)

	// WeakProblems returns the problem numbers with the lowest success
	// ratio among problems the user has attempted, ties broken by
	// problem number ascending. A non-positive limit falls back to 3.
	WeakProblems(ctx context.Context, userID, limit int) ([]int, error)
}

// LLMRequestData captures one LLM API call for the audit log.
type LLMRequestData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMLogRepo provides append access to the LLM request audit log.
type LLMLogRepo interface {
	// AppendRequest records an LLM API call.
	AppendRequest(ctx context.Context, data LLMRequestData) error
}
