package store

// Persisted session kind strings. These are part of the storage and
// export contracts and must not change.
const (
	KindFocus      = "focus"
	KindShortBreak = "shortBreak"
	KindLongBreak  = "longBreak"
)
