package store

import (
	"context"
	"fmt"

	"github.com/abhisek/focusbar/ent"
	"github.com/abhisek/focusbar/ent/achievement"
)

// achievementRepo implements AchievementRepo using the ent client.
type achievementRepo struct {
	client *ent.Client
}

func (r *achievementRepo) UnlockedSet(ctx context.Context) (map[string]bool, error) {
	ids, err := r.client.Achievement.Query().
		Select(achievement.FieldAchievementID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unlocked achievements: %w", err)
	}

	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (r *achievementRepo) RecordUnlock(ctx context.Context, rec AchievementRecord) error {
	_, err := r.client.Achievement.Create().
		SetAchievementID(rec.AchievementID).
		SetUnlockedAt(rec.UnlockedAt).
		SetMetadata(rec.Metadata).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save achievement unlock: %w", err)
	}
	return nil
}

func (r *achievementRepo) All(ctx context.Context) ([]AchievementRecord, error) {
	rows, err := r.client.Achievement.Query().
		Order(ent.Asc(achievement.FieldUnlockedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}

	recs := make([]AchievementRecord, 0, len(rows))
	for _, a := range rows {
		recs = append(recs, AchievementRecord{
			AchievementID: a.AchievementID,
			UnlockedAt:    a.UnlockedAt,
			Metadata:      a.Metadata,
		})
	}
	return recs, nil
}
