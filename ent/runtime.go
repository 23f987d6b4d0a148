// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/focusbar/ent/achievement"
	"github.com/abhisek/focusbar/ent/coachevent"
	"github.com/abhisek/focusbar/ent/dailystat"
	"github.com/abhisek/focusbar/ent/progress"
	"github.com/abhisek/focusbar/ent/reminder"
	"github.com/abhisek/focusbar/ent/schema"
	"github.com/abhisek/focusbar/ent/session"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementFields := schema.Achievement{}.Fields()
	_ = achievementFields
	// achievementDescAchievementID is the schema descriptor for achievement_id field.
	achievementDescAchievementID := achievementFields[0].Descriptor()
	// achievement.AchievementIDValidator is a validator for the "achievement_id" field. It is called by the builders before save.
	achievement.AchievementIDValidator = achievementDescAchievementID.Validators[0].(func(string) error)
	// achievementDescUnlockedAt is the schema descriptor for unlocked_at field.
	achievementDescUnlockedAt := achievementFields[1].Descriptor()
	// achievement.DefaultUnlockedAt holds the default value on creation for the unlocked_at field.
	achievement.DefaultUnlockedAt = achievementDescUnlockedAt.Default.(func() time.Time)
	// achievementDescMetadata is the schema descriptor for metadata field.
	achievementDescMetadata := achievementFields[2].Descriptor()
	// achievement.DefaultMetadata holds the default value on creation for the metadata field.
	achievement.DefaultMetadata = achievementDescMetadata.Default.(string)
	coacheventFields := schema.CoachEvent{}.Fields()
	_ = coacheventFields
	// coacheventDescTimestamp is the schema descriptor for timestamp field.
	coacheventDescTimestamp := coacheventFields[0].Descriptor()
	// coachevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	coachevent.DefaultTimestamp = coacheventDescTimestamp.Default.(func() time.Time)
	// coacheventDescInputTokens is the schema descriptor for input_tokens field.
	coacheventDescInputTokens := coacheventFields[4].Descriptor()
	// coachevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	coachevent.DefaultInputTokens = coacheventDescInputTokens.Default.(int)
	// coacheventDescOutputTokens is the schema descriptor for output_tokens field.
	coacheventDescOutputTokens := coacheventFields[5].Descriptor()
	// coachevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	coachevent.DefaultOutputTokens = coacheventDescOutputTokens.Default.(int)
	// coacheventDescLatencyMs is the schema descriptor for latency_ms field.
	coacheventDescLatencyMs := coacheventFields[6].Descriptor()
	// coachevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	coachevent.DefaultLatencyMs = coacheventDescLatencyMs.Default.(int64)
	// coacheventDescErrorMessage is the schema descriptor for error_message field.
	coacheventDescErrorMessage := coacheventFields[8].Descriptor()
	// coachevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	coachevent.DefaultErrorMessage = coacheventDescErrorMessage.Default.(string)
	dailystatFields := schema.DailyStat{}.Fields()
	_ = dailystatFields
	// dailystatDescDate is the schema descriptor for date field.
	dailystatDescDate := dailystatFields[0].Descriptor()
	// dailystat.DateValidator is a validator for the "date" field. It is called by the builders before save.
	dailystat.DateValidator = dailystatDescDate.Validators[0].(func(string) error)
	// dailystatDescPomodorosCompleted is the schema descriptor for pomodoros_completed field.
	dailystatDescPomodorosCompleted := dailystatFields[1].Descriptor()
	// dailystat.DefaultPomodorosCompleted holds the default value on creation for the pomodoros_completed field.
	dailystat.DefaultPomodorosCompleted = dailystatDescPomodorosCompleted.Default.(int)
	// dailystatDescTotalFocusMinutes is the schema descriptor for total_focus_minutes field.
	dailystatDescTotalFocusMinutes := dailystatFields[2].Descriptor()
	// dailystat.DefaultTotalFocusMinutes holds the default value on creation for the total_focus_minutes field.
	dailystat.DefaultTotalFocusMinutes = dailystatDescTotalFocusMinutes.Default.(int)
	// dailystatDescStreakMaintained is the schema descriptor for streak_maintained field.
	dailystatDescStreakMaintained := dailystatFields[3].Descriptor()
	// dailystat.DefaultStreakMaintained holds the default value on creation for the streak_maintained field.
	dailystat.DefaultStreakMaintained = dailystatDescStreakMaintained.Default.(bool)
	// dailystatDescXpEarned is the schema descriptor for xp_earned field.
	dailystatDescXpEarned := dailystatFields[4].Descriptor()
	// dailystat.DefaultXpEarned holds the default value on creation for the xp_earned field.
	dailystat.DefaultXpEarned = dailystatDescXpEarned.Default.(int)
	progressFields := schema.Progress{}.Fields()
	_ = progressFields
	// progressDescXp is the schema descriptor for xp field.
	progressDescXp := progressFields[0].Descriptor()
	// progress.DefaultXp holds the default value on creation for the xp field.
	progress.DefaultXp = progressDescXp.Default.(int)
	// progressDescLevel is the schema descriptor for level field.
	progressDescLevel := progressFields[1].Descriptor()
	// progress.DefaultLevel holds the default value on creation for the level field.
	progress.DefaultLevel = progressDescLevel.Default.(int)
	// progressDescCurrentStreak is the schema descriptor for current_streak field.
	progressDescCurrentStreak := progressFields[2].Descriptor()
	// progress.DefaultCurrentStreak holds the default value on creation for the current_streak field.
	progress.DefaultCurrentStreak = progressDescCurrentStreak.Default.(int)
	// progressDescFreezesRemaining is the schema descriptor for freezes_remaining field.
	progressDescFreezesRemaining := progressFields[3].Descriptor()
	// progress.DefaultFreezesRemaining holds the default value on creation for the freezes_remaining field.
	progress.DefaultFreezesRemaining = progressDescFreezesRemaining.Default.(int)
	// progressDescLastStreakDate is the schema descriptor for last_streak_date field.
	progressDescLastStreakDate := progressFields[4].Descriptor()
	// progress.DefaultLastStreakDate holds the default value on creation for the last_streak_date field.
	progress.DefaultLastStreakDate = progressDescLastStreakDate.Default.(string)
	// progressDescLastFreezeResetWeek is the schema descriptor for last_freeze_reset_week field.
	progressDescLastFreezeResetWeek := progressFields[5].Descriptor()
	// progress.DefaultLastFreezeResetWeek holds the default value on creation for the last_freeze_reset_week field.
	progress.DefaultLastFreezeResetWeek = progressDescLastFreezeResetWeek.Default.(string)
	// progressDescDailyGoal is the schema descriptor for daily_goal field.
	progressDescDailyGoal := progressFields[6].Descriptor()
	// progress.DefaultDailyGoal holds the default value on creation for the daily_goal field.
	progress.DefaultDailyGoal = progressDescDailyGoal.Default.(int)
	// progressDescUpdatedAt is the schema descriptor for updated_at field.
	progressDescUpdatedAt := progressFields[7].Descriptor()
	// progress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progress.DefaultUpdatedAt = progressDescUpdatedAt.Default.(func() time.Time)
	// progress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progress.UpdateDefaultUpdatedAt = progressDescUpdatedAt.UpdateDefault.(func() time.Time)
	reminderFields := schema.Reminder{}.Fields()
	_ = reminderFields
	// reminderDescTitle is the schema descriptor for title field.
	reminderDescTitle := reminderFields[1].Descriptor()
	// reminder.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	reminder.TitleValidator = reminderDescTitle.Validators[0].(func(string) error)
	// reminderDescNotes is the schema descriptor for notes field.
	reminderDescNotes := reminderFields[2].Descriptor()
	// reminder.DefaultNotes holds the default value on creation for the notes field.
	reminder.DefaultNotes = reminderDescNotes.Default.(string)
	// reminderDescCompleted is the schema descriptor for completed field.
	reminderDescCompleted := reminderFields[3].Descriptor()
	// reminder.DefaultCompleted holds the default value on creation for the completed field.
	reminder.DefaultCompleted = reminderDescCompleted.Default.(bool)
	// reminderDescCreatedAt is the schema descriptor for created_at field.
	reminderDescCreatedAt := reminderFields[4].Descriptor()
	// reminder.DefaultCreatedAt holds the default value on creation for the created_at field.
	reminder.DefaultCreatedAt = reminderDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescKind is the schema descriptor for kind field.
	sessionDescKind := sessionFields[4].Descriptor()
	// session.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	session.KindValidator = sessionDescKind.Validators[0].(func(string) error)
	// sessionDescCompleted is the schema descriptor for completed field.
	sessionDescCompleted := sessionFields[5].Descriptor()
	// session.DefaultCompleted holds the default value on creation for the completed field.
	session.DefaultCompleted = sessionDescCompleted.Default.(bool)
	// sessionDescXpEarned is the schema descriptor for xp_earned field.
	sessionDescXpEarned := sessionFields[8].Descriptor()
	// session.DefaultXpEarned holds the default value on creation for the xp_earned field.
	session.DefaultXpEarned = sessionDescXpEarned.Default.(int)
}
