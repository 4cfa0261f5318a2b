package tutor

import (
	"github.com/abhisek/mathtutor/internal/catalog"
	"github.com/abhisek/mathtutor/internal/store"
)

// Context is everything the prompt needs to evaluate one answer: the
// problem itself plus the student's history for personalization.
type Context struct {
	Problem catalog.Problem
	Answer  string

	// ProblemsAttempted is the count of distinct problems the student
	// has tried so far.
	ProblemsAttempted int

	// WeakProblems are the problem numbers with the lowest success
	// ratio, most struggling first.
	WeakProblems []int

	// RecentChat is the latest tutoring exchange history, newest first.
	RecentChat []store.ChatMessage
}

// BuildContext assembles a Context from already-fetched data. Pure
// assembly, no I/O: the store reads happen in Evaluate so this stays
// trivially testable.
func BuildContext(p catalog.Problem, answer string, stats []store.Stat, weak []int, chat []store.ChatMessage) Context {
	return Context{
		Problem:           p,
		Answer:            answer,
		ProblemsAttempted: len(stats),
		WeakProblems:      weak,
		RecentChat:        chat,
	}
}
