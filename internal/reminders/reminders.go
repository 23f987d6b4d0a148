// Package reminders manages the local task list sessions can be linked
// to. Access is permission-gated: every call is fallible and denial
// surfaces as a typed permission error, never a crash.
package reminders

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/focusbar/internal/apperr"
	"github.com/abhisek/focusbar/internal/store"
)

// Access is the tri-state permission result.
type Access int

const (
	AccessGranted Access = iota
	AccessDenied
	AccessError
)

// Service is the task-list collaborator.
type Service struct {
	repo store.ReminderRepo
	now  func() time.Time
}

// New creates a Service over the reminder repository.
func New(repo store.ReminderRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// RequestAccess resolves the permission state. FOCUSBAR_REMINDERS=off
// simulates a user denial, which downstream calls then report.
func (s *Service) RequestAccess(ctx context.Context) Access {
	if err := ctx.Err(); err != nil {
		return AccessError
	}
	if v := os.Getenv("FOCUSBAR_REMINDERS"); v == "off" || v == "0" {
		return AccessDenied
	}
	return AccessGranted
}

// FetchOpenItems returns every incomplete task, oldest first.
func (s *Service) FetchOpenItems(ctx context.Context) ([]store.ReminderRecord, error) {
	if err := s.checkAccess(ctx); err != nil {
		return nil, err
	}
	items, err := s.repo.Open(ctx)
	if err != nil {
		return nil, &apperr.DataError{Op: "fetch reminders", Err: err}
	}
	return items, nil
}

// Search returns open tasks whose title contains the query,
// case-insensitively. An empty query returns everything open.
func (s *Service) Search(ctx context.Context, query string) ([]store.ReminderRecord, error) {
	items, err := s.FetchOpenItems(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items, nil
	}
	var out []store.ReminderRecord
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Title), q) {
			out = append(out, it)
		}
	}
	return out, nil
}

// Create adds a new open task and returns it.
func (s *Service) Create(ctx context.Context, title string) (*store.ReminderRecord, error) {
	if err := s.checkAccess(ctx); err != nil {
		return nil, err
	}
	rec := store.ReminderRecord{
		RID:       uuid.NewString(),
		Title:     strings.TrimSpace(title),
		CreatedAt: s.now(),
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		return nil, &apperr.DataError{Op: "create reminder", Err: err}
	}
	return &rec, nil
}

// AppendNote appends a line to a task's notes.
func (s *Service) AppendNote(ctx context.Context, rid, text string) error {
	if err := s.checkAccess(ctx); err != nil {
		return err
	}
	if err := s.repo.AppendNote(ctx, rid, text); err != nil {
		return &apperr.DataError{Op: "append reminder note", Err: err}
	}
	return nil
}

// MarkComplete closes a task.
func (s *Service) MarkComplete(ctx context.Context, rid string) error {
	if err := s.checkAccess(ctx); err != nil {
		return err
	}
	if err := s.repo.MarkComplete(ctx, rid); err != nil {
		return &apperr.DataError{Op: "complete reminder", Err: err}
	}
	return nil
}

func (s *Service) checkAccess(ctx context.Context) error {
	switch s.RequestAccess(ctx) {
	case AccessGranted:
		return nil
	case AccessDenied:
		return &apperr.PermissionError{Kind: apperr.PermissionReminders}
	default:
		return &apperr.PermissionError{Kind: apperr.PermissionReminders, Err: ctx.Err()}
	}
}
