// Package notify delivers desktop banners for session and progression
// events. Delivery failures are advisory: callers log and continue.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/abhisek/focusbar/internal/timer"
)

// Notifier publishes user-facing banners. Fire and forget: no return
// value is consumed by the engines, errors exist only for logging.
type Notifier interface {
	SessionComplete(kind, next timer.Kind) error
	AchievementUnlocked(title string, bonusXP int) error
	LevelUp(level int, title string) error
	DailyGoalMet(streak int) error

	// PlayCompletionSound rings the platform alert sound; gated by the
	// sound toggle at the call site.
	PlayCompletionSound() error
}

// Desktop sends native notifications via the platform notification
// service.
type Desktop struct {
	appName string
}

// NewDesktop returns a Notifier backed by the OS notification center.
func NewDesktop() *Desktop {
	return &Desktop{appName: "FocusBar"}
}

func (d *Desktop) SessionComplete(kind, next timer.Kind) error {
	return d.send(
		fmt.Sprintf("%s complete", kind.DisplayName()),
		fmt.Sprintf("Up next: %s %s", next.Icon(), next.DisplayName()),
	)
}

func (d *Desktop) AchievementUnlocked(title string, bonusXP int) error {
	return d.send("Achievement unlocked", fmt.Sprintf("%s (+%d XP)", title, bonusXP))
}

func (d *Desktop) LevelUp(level int, title string) error {
	return d.send("Level up!", fmt.Sprintf("You reached level %d: %s", level, title))
}

func (d *Desktop) DailyGoalMet(streak int) error {
	return d.send("Daily goal met", fmt.Sprintf("Streak secured: %d days and counting.", streak))
}

func (d *Desktop) PlayCompletionSound() error {
	if err := beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil {
		return fmt.Errorf("play sound: %w", err)
	}
	return nil
}

func (d *Desktop) send(title, body string) error {
	if err := beeep.Notify(fmt.Sprintf("%s: %s", d.appName, title), body, ""); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}

// Nop discards all notifications. Used when banners are disabled and in
// tests.
type Nop struct{}

func (Nop) SessionComplete(timer.Kind, timer.Kind) error { return nil }
func (Nop) AchievementUnlocked(string, int) error        { return nil }
func (Nop) LevelUp(int, string) error                    { return nil }
func (Nop) DailyGoalMet(int) error                       { return nil }
func (Nop) PlayCompletionSound() error                   { return nil }
