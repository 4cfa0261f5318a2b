// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// LLMRequest is the predicate function for llmrequest builders.
type LLMRequest func(*sql.Selector)

// ProblemAttempt is the predicate function for problemattempt builders.
type ProblemAttempt func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserStat is the predicate function for userstat builders.
type UserStat func(*sql.Selector)
