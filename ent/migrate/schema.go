// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "problem_number", Type: field.TypeInt},
		{Name: "role", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[1], ChatMessagesColumns[5]},
			},
		},
	}
	// LlmRequestsColumns holds the columns for the "llm_requests" table.
	LlmRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmRequestsTable holds the schema information for the "llm_requests" table.
	LlmRequestsTable = &schema.Table{
		Name:       "llm_requests",
		Columns:    LlmRequestsColumns,
		PrimaryKey: []*schema.Column{LlmRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequest_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestsColumns[1]},
			},
			{
				Name:    "llmrequest_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestsColumns[7]},
			},
		},
	}
	// ProblemAttemptsColumns holds the columns for the "problem_attempts" table.
	ProblemAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "problem_number", Type: field.TypeInt},
		{Name: "answer", Type: field.TypeString},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProblemAttemptsTable holds the schema information for the "problem_attempts" table.
	ProblemAttemptsTable = &schema.Table{
		Name:       "problem_attempts",
		Columns:    ProblemAttemptsColumns,
		PrimaryKey: []*schema.Column{ProblemAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "problemattempt_user_id_problem_number",
				Unique:  false,
				Columns: []*schema.Column{ProblemAttemptsColumns[1], ProblemAttemptsColumns[2]},
			},
			{
				Name:    "problemattempt_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProblemAttemptsColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// UserStatsColumns holds the columns for the "user_stats" table.
	UserStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "problem_number", Type: field.TypeInt},
		{Name: "total_attempts", Type: field.TypeInt, Default: 0},
		{Name: "correct_attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_attempt_at", Type: field.TypeTime},
	}
	// UserStatsTable holds the schema information for the "user_stats" table.
	UserStatsTable = &schema.Table{
		Name:       "user_stats",
		Columns:    UserStatsColumns,
		PrimaryKey: []*schema.Column{UserStatsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userstat_user_id_problem_number",
				Unique:  true,
				Columns: []*schema.Column{UserStatsColumns[1], UserStatsColumns[2]},
			},
			{
				Name:    "userstat_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserStatsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		LlmRequestsTable,
		ProblemAttemptsTable,
		UsersTable,
		UserStatsTable,
	}
)

func init() {
}
