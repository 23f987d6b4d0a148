// Package apperr defines the error taxonomy surfaced at the UI boundary:
// data errors, permission errors, export errors and a catch-all. Engine
// state transitions never produce errors; these types cover persistence
// and external-collaborator failures.
package apperr

import "fmt"

// PermissionKind names the external capability that was denied.
type PermissionKind string

const (
	PermissionNotifications PermissionKind = "notifications"
	PermissionReminders     PermissionKind = "reminders"
)

// DataError indicates a persistence read or write failed.
type DataError struct {
	Op  string
	Err error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("data error in %s: %v", e.Op, e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }

// UserMessage returns the dismissible advisory text shown to the user.
func (e *DataError) UserMessage() string {
	return "Couldn't save your progress. Please try again."
}

// PermissionError indicates an external capability was denied.
type PermissionError struct {
	Kind PermissionKind
	Err  error
}

func (e *PermissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s access denied: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s access denied", e.Kind)
}

func (e *PermissionError) Unwrap() error { return e.Err }

func (e *PermissionError) UserMessage() string {
	return fmt.Sprintf("FocusBar needs %s access. Enable it and try again.", e.Kind)
}

// ExportStage distinguishes where an export failed.
type ExportStage string

const (
	ExportEncode ExportStage = "encode"
	ExportWrite  ExportStage = "write"
)

// ExportError indicates an export failed, and at which stage.
type ExportError struct {
	Stage ExportStage
	Err   error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export failed (%s): %v", e.Stage, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

func (e *ExportError) UserMessage() string {
	return "Export failed. Please try saving to a different location."
}

// Advisory is implemented by all taxonomy errors: a short, user-facing
// message for the dismissible error banner.
type Advisory interface {
	error
	UserMessage() string
}
