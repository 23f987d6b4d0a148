package reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/focusbar/internal/apperr"
	"github.com/abhisek/focusbar/internal/store"
)

type memRepo struct {
	items map[string]*store.ReminderRecord
	order []string
}

func newMemRepo() *memRepo {
	return &memRepo{items: map[string]*store.ReminderRecord{}}
}

func (m *memRepo) Insert(_ context.Context, rec store.ReminderRecord) error {
	r := rec
	m.items[rec.RID] = &r
	m.order = append(m.order, rec.RID)
	return nil
}

func (m *memRepo) Get(_ context.Context, rid string) (*store.ReminderRecord, error) {
	return m.items[rid], nil
}

func (m *memRepo) Open(_ context.Context) ([]store.ReminderRecord, error) {
	var out []store.ReminderRecord
	for _, rid := range m.order {
		if r := m.items[rid]; !r.Completed {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memRepo) AppendNote(_ context.Context, rid, note string) error {
	r := m.items[rid]
	if r == nil {
		return errors.New("not found")
	}
	if r.Notes != "" {
		r.Notes += "\n"
	}
	r.Notes += note
	return nil
}

func (m *memRepo) MarkComplete(_ context.Context, rid string) error {
	r := m.items[rid]
	if r == nil {
		return errors.New("not found")
	}
	r.Completed = true
	return nil
}

func TestLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := New(newMemRepo())
	svc.now = func() time.Time { return time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local) }

	rec, err := svc.Create(ctx, "  Write report ")
	if err != nil {
		t.Fatal(err)
	}
	if rec.RID == "" || rec.Title != "Write report" {
		t.Errorf("bad record: %+v", rec)
	}

	items, err := svc.FetchOpenItems(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("open = %d, want 1", len(items))
	}

	if err := svc.AppendNote(ctx, rec.RID, "25 min on 2026-08-31"); err != nil {
		t.Fatal(err)
	}
	if err := svc.MarkComplete(ctx, rec.RID); err != nil {
		t.Fatal(err)
	}

	items, err = svc.FetchOpenItems(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("open after complete = %d, want 0", len(items))
	}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	svc := New(newMemRepo())
	for _, title := range []string{"Write report", "Review PR", "write tests"} {
		if _, err := svc.Create(ctx, title); err != nil {
			t.Fatal(err)
		}
	}

	got, err := svc.Search(ctx, "WRITE")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("matches = %d, want 2", len(got))
	}

	all, err := svc.Search(ctx, "  ")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("empty query matches = %d, want 3", len(all))
	}
}

func TestPermissionDenied(t *testing.T) {
	t.Setenv("FOCUSBAR_REMINDERS", "off")
	ctx := context.Background()
	svc := New(newMemRepo())

	if got := svc.RequestAccess(ctx); got != AccessDenied {
		t.Fatalf("access = %v, want denied", got)
	}

	_, err := svc.FetchOpenItems(ctx)
	var perr *apperr.PermissionError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want PermissionError", err)
	}
	if perr.Kind != apperr.PermissionReminders {
		t.Errorf("kind = %v, want reminders", perr.Kind)
	}

	if _, err := svc.Create(ctx, "x"); err == nil {
		t.Error("create should fail when denied")
	}
	if err := svc.AppendNote(ctx, "r1", "n"); err == nil {
		t.Error("append should fail when denied")
	}
	if err := svc.MarkComplete(ctx, "r1"); err == nil {
		t.Error("complete should fail when denied")
	}
}
