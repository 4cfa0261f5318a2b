// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/mathtutor/ent/chatmessage"
	"github.com/abhisek/mathtutor/ent/llmrequest"
	"github.com/abhisek/mathtutor/ent/problemattempt"
	"github.com/abhisek/mathtutor/ent/schema"
	"github.com/abhisek/mathtutor/ent/user"
	"github.com/abhisek/mathtutor/ent/userstat"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescRole is the schema descriptor for role field.
	chatmessageDescRole := chatmessageFields[2].Descriptor()
	// chatmessage.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	chatmessage.RoleValidator = chatmessageDescRole.Validators[0].(func(string) error)
	// chatmessageDescContent is the schema descriptor for content field.
	chatmessageDescContent := chatmessageFields[3].Descriptor()
	// chatmessage.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	chatmessage.ContentValidator = chatmessageDescContent.Validators[0].(func(string) error)
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[4].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	llmrequestFields := schema.LLMRequest{}.Fields()
	_ = llmrequestFields
	// llmrequestDescInputTokens is the schema descriptor for input_tokens field.
	llmrequestDescInputTokens := llmrequestFields[3].Descriptor()
	// llmrequest.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequest.DefaultInputTokens = llmrequestDescInputTokens.Default.(int)
	// llmrequestDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequestDescOutputTokens := llmrequestFields[4].Descriptor()
	// llmrequest.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequest.DefaultOutputTokens = llmrequestDescOutputTokens.Default.(int)
	// llmrequestDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequestDescLatencyMs := llmrequestFields[5].Descriptor()
	// llmrequest.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequest.DefaultLatencyMs = llmrequestDescLatencyMs.Default.(int64)
	// llmrequestDescErrorMessage is the schema descriptor for error_message field.
	llmrequestDescErrorMessage := llmrequestFields[7].Descriptor()
	// llmrequest.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequest.DefaultErrorMessage = llmrequestDescErrorMessage.Default.(string)
	// llmrequestDescCreatedAt is the schema descriptor for created_at field.
	llmrequestDescCreatedAt := llmrequestFields[8].Descriptor()
	// llmrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmrequest.DefaultCreatedAt = llmrequestDescCreatedAt.Default.(func() time.Time)
	problemattemptFields := schema.ProblemAttempt{}.Fields()
	_ = problemattemptFields
	// problemattemptDescCreatedAt is the schema descriptor for created_at field.
	problemattemptDescCreatedAt := problemattemptFields[4].Descriptor()
	// problemattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	problemattempt.DefaultCreatedAt = problemattemptDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[1].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	userstatFields := schema.UserStat{}.Fields()
	_ = userstatFields
	// userstatDescTotalAttempts is the schema descriptor for total_attempts field.
	userstatDescTotalAttempts := userstatFields[2].Descriptor()
	// userstat.DefaultTotalAttempts holds the default value on creation for the total_attempts field.
	userstat.DefaultTotalAttempts = userstatDescTotalAttempts.Default.(int)
	// userstatDescCorrectAttempts is the schema descriptor for correct_attempts field.
	userstatDescCorrectAttempts := userstatFields[3].Descriptor()
	// userstat.DefaultCorrectAttempts holds the default value on creation for the correct_attempts field.
	userstat.DefaultCorrectAttempts = userstatDescCorrectAttempts.Default.(int)
}
