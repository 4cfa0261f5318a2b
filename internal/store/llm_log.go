package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathtutor/ent"
)

type llmLogRepo struct {
	client *ent.Client
}

func (r *llmLogRepo) AppendRequest(ctx context.Context, data LLMRequestData) error {
	err := r.client.LLMRequest.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save llm request: %w", err)
	}
	return nil
}
