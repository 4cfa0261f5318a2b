package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage is one side of an LLM exchange. Two rows are appended per
// graded submission: the student's answer (role "user") then the tutor's
// reply (role "assistant"). Append-only.
type ChatMessage struct {
	ent.Schema
}

func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Immutable().
			Comment("Owning user"),
		field.Int("problem_number").
			Immutable().
			Comment("Problem the exchange was about"),
		field.String("role").
			NotEmpty().
			Immutable().
			Comment("user or assistant"),
		field.Text("content").
			NotEmpty().
			Immutable().
			Comment("Message text"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time; insertion order within a pair"),
	}
}

func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
