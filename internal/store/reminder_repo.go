package store

import (
	"context"
	"fmt"

	"github.com/abhisek/focusbar/ent"
	"github.com/abhisek/focusbar/ent/reminder"
)

// reminderRepo implements ReminderRepo using the ent client.
type reminderRepo struct {
	client *ent.Client
}

func (r *reminderRepo) Insert(ctx context.Context, rec ReminderRecord) error {
	_, err := r.client.Reminder.Create().
		SetRid(rec.RID).
		SetTitle(rec.Title).
		SetNotes(rec.Notes).
		SetCompleted(rec.Completed).
		SetCreatedAt(rec.CreatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save reminder: %w", err)
	}
	return nil
}

func (r *reminderRepo) Get(ctx context.Context, rid string) (*ReminderRecord, error) {
	row, err := r.client.Reminder.Query().
		Where(reminder.RidEQ(rid)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query reminder: %w", err)
	}
	rec := toReminderRecord(row)
	return &rec, nil
}

func (r *reminderRepo) Open(ctx context.Context) ([]ReminderRecord, error) {
	rows, err := r.client.Reminder.Query().
		Where(reminder.CompletedEQ(false)).
		Order(ent.Asc(reminder.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query open reminders: %w", err)
	}

	recs := make([]ReminderRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, toReminderRecord(row))
	}
	return recs, nil
}

func (r *reminderRepo) AppendNote(ctx context.Context, rid, note string) error {
	row, err := r.client.Reminder.Query().
		Where(reminder.RidEQ(rid)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("query reminder: %w", err)
	}

	notes := row.Notes
	if notes != "" {
		notes += "\n"
	}
	notes += note

	if _, err := row.Update().SetNotes(notes).Save(ctx); err != nil {
		return fmt.Errorf("append note: %w", err)
	}
	return nil
}

func (r *reminderRepo) MarkComplete(ctx context.Context, rid string) error {
	n, err := r.client.Reminder.Update().
		Where(reminder.RidEQ(rid)).
		SetCompleted(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark reminder complete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("reminder not found: %s", rid)
	}
	return nil
}

func toReminderRecord(row *ent.Reminder) ReminderRecord {
	return ReminderRecord{
		RID:       row.Rid,
		Title:     row.Title,
		Notes:     row.Notes,
		Completed: row.Completed,
		CreatedAt: row.CreatedAt,
	}
}
