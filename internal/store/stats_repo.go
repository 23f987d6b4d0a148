package store

import (
	"context"
	"fmt"

	"github.com/abhisek/focusbar/ent"
	"github.com/abhisek/focusbar/ent/dailystat"
)

// statsRepo implements StatsRepo using the ent client.
type statsRepo struct {
	client *ent.Client
}

func (r *statsRepo) Apply(ctx context.Context, date string, addPomodoros, addMinutes, addXP int, streakMaintained bool) error {
	existing, err := r.client.DailyStat.Query().
		Where(dailystat.DateEQ(date)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query daily stat: %w", err)
	}

	if existing == nil {
		_, err = r.client.DailyStat.Create().
			SetDate(date).
			SetPomodorosCompleted(addPomodoros).
			SetTotalFocusMinutes(addMinutes).
			SetXpEarned(addXP).
			SetStreakMaintained(streakMaintained).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create daily stat: %w", err)
		}
		return nil
	}

	// The flag is sticky: once the day is credited, later sessions that
	// pass false must not clear it.
	_, err = existing.Update().
		AddPomodorosCompleted(addPomodoros).
		AddTotalFocusMinutes(addMinutes).
		AddXpEarned(addXP).
		SetStreakMaintained(existing.StreakMaintained || streakMaintained).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update daily stat: %w", err)
	}
	return nil
}

func (r *statsRepo) Day(ctx context.Context, date string) (*DailyStatRecord, error) {
	row, err := r.client.DailyStat.Query().
		Where(dailystat.DateEQ(date)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query daily stat: %w", err)
	}
	rec := toDailyStatRecord(row)
	return &rec, nil
}

func (r *statsRepo) All(ctx context.Context) ([]DailyStatRecord, error) {
	rows, err := r.client.DailyStat.Query().
		Order(ent.Asc(dailystat.FieldDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query daily stats: %w", err)
	}

	recs := make([]DailyStatRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, toDailyStatRecord(row))
	}
	return recs, nil
}

func toDailyStatRecord(row *ent.DailyStat) DailyStatRecord {
	return DailyStatRecord{
		Date:               row.Date,
		PomodorosCompleted: row.PomodorosCompleted,
		TotalFocusMinutes:  row.TotalFocusMinutes,
		StreakMaintained:   row.StreakMaintained,
		XPEarned:           row.XpEarned,
	}
}
