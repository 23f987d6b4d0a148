package store

import (
	"context"
	"fmt"

	"github.com/abhisek/focusbar/ent"
)

// progressRepo implements ProgressRepo using the ent client. The table
// holds exactly one row, created lazily with defaults on first read.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context) (*ProgressRecord, error) {
	row, err := r.client.Progress.Query().First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("query progress: %w", err)
		}
		row, err = r.client.Progress.Create().Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create progress row: %w", err)
		}
	}

	return &ProgressRecord{
		XP:                  row.Xp,
		Level:               row.Level,
		CurrentStreak:       row.CurrentStreak,
		FreezesRemaining:    row.FreezesRemaining,
		LastStreakDate:      row.LastStreakDate,
		LastFreezeResetWeek: row.LastFreezeResetWeek,
		DailyGoal:           row.DailyGoal,
	}, nil
}

func (r *progressRepo) Save(ctx context.Context, rec *ProgressRecord) error {
	row, err := r.client.Progress.Query().First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query progress: %w", err)
		}
		_, err = r.client.Progress.Create().
			SetXp(rec.XP).
			SetLevel(rec.Level).
			SetCurrentStreak(rec.CurrentStreak).
			SetFreezesRemaining(rec.FreezesRemaining).
			SetLastStreakDate(rec.LastStreakDate).
			SetLastFreezeResetWeek(rec.LastFreezeResetWeek).
			SetDailyGoal(rec.DailyGoal).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create progress row: %w", err)
		}
		return nil
	}

	_, err = row.Update().
		SetXp(rec.XP).
		SetLevel(rec.Level).
		SetCurrentStreak(rec.CurrentStreak).
		SetFreezesRemaining(rec.FreezesRemaining).
		SetLastStreakDate(rec.LastStreakDate).
		SetLastFreezeResetWeek(rec.LastFreezeResetWeek).
		SetDailyGoal(rec.DailyGoal).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress row: %w", err)
	}
	return nil
}
