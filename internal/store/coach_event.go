package store

import (
	"context"
	"fmt"

	"github.com/abhisek/focusbar/ent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendCoachEvent(ctx context.Context, data CoachEventData) error {
	_, err := r.client.CoachEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save coach event: %w", err)
	}
	return nil
}
