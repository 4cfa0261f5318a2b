package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserStat holds the aggregate attempt counters for one (user, problem)
// pair. Upserted on every submitted answer; correct_attempts never
// exceeds total_attempts.
type UserStat struct {
	ent.Schema
}

func (UserStat) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Comment("Owning user"),
		field.Int("problem_number").
			Comment("Catalog problem number"),
		field.Int("total_attempts").
			Default(0).
			Comment("All submitted answers for this pair"),
		field.Int("correct_attempts").
			Default(0).
			Comment("Answers that matched a solution"),
		field.Time("last_attempt_at").
			Comment("UTC time of the most recent attempt"),
	}
}

func (UserStat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "problem_number").
			Unique(),
		index.Fields("user_id"),
	}
}
