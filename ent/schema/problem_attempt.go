package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProblemAttempt is the append-only audit row for one submitted answer.
// Rows are write-once: the aggregate counters in UserStat are in principle
// reconstructible from this log.
type ProblemAttempt struct {
	ent.Schema
}

func (ProblemAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Immutable().
			Comment("Submitting user"),
		field.Int("problem_number").
			Immutable().
			Comment("Catalog problem number"),
		field.String("answer").
			Immutable().
			Comment("Raw answer text as submitted"),
		field.Bool("is_correct").
			Immutable().
			Comment("Result of the substring correctness check"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time of submission"),
	}
}

func (ProblemAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "problem_number"),
		index.Fields("created_at"),
	}
}
