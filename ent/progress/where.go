// Code generated by ent, DO NOT EDIT.

package progress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/focusbar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldID, id))
}

// Xp applies equality check predicate on the "xp" field. It's identical to XpEQ.
func Xp(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldXp, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldLevel, v))
}

// CurrentStreak applies equality check predicate on the "current_streak" field. It's identical to CurrentStreakEQ.
func CurrentStreak(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCurrentStreak, v))
}

// FreezesRemaining applies equality check predicate on the "freezes_remaining" field. It's identical to FreezesRemainingEQ.
func FreezesRemaining(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldFreezesRemaining, v))
}

// LastStreakDate applies equality check predicate on the "last_streak_date" field. It's identical to LastStreakDateEQ.
func LastStreakDate(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldLastStreakDate, v))
}

// LastFreezeResetWeek applies equality check predicate on the "last_freeze_reset_week" field. It's identical to LastFreezeResetWeekEQ.
func LastFreezeResetWeek(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldLastFreezeResetWeek, v))
}

// DailyGoal applies equality check predicate on the "daily_goal" field. It's identical to DailyGoalEQ.
func DailyGoal(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldDailyGoal, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldUpdatedAt, v))
}

// XpEQ applies the EQ predicate on the "xp" field.
func XpEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldXp, v))
}

// XpNEQ applies the NEQ predicate on the "xp" field.
func XpNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldXp, v))
}

// XpIn applies the In predicate on the "xp" field.
func XpIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldXp, vs...))
}

// XpNotIn applies the NotIn predicate on the "xp" field.
func XpNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldXp, vs...))
}

// XpGT applies the GT predicate on the "xp" field.
func XpGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldXp, v))
}

// XpGTE applies the GTE predicate on the "xp" field.
func XpGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldXp, v))
}

// XpLT applies the LT predicate on the "xp" field.
func XpLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldXp, v))
}

// XpLTE applies the LTE predicate on the "xp" field.
func XpLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldXp, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldLevel, v))
}

// CurrentStreakEQ applies the EQ predicate on the "current_streak" field.
func CurrentStreakEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldCurrentStreak, v))
}

// CurrentStreakNEQ applies the NEQ predicate on the "current_streak" field.
func CurrentStreakNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldCurrentStreak, v))
}

// CurrentStreakIn applies the In predicate on the "current_streak" field.
func CurrentStreakIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldCurrentStreak, vs...))
}

// CurrentStreakNotIn applies the NotIn predicate on the "current_streak" field.
func CurrentStreakNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldCurrentStreak, vs...))
}

// CurrentStreakGT applies the GT predicate on the "current_streak" field.
func CurrentStreakGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldCurrentStreak, v))
}

// CurrentStreakGTE applies the GTE predicate on the "current_streak" field.
func CurrentStreakGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldCurrentStreak, v))
}

// CurrentStreakLT applies the LT predicate on the "current_streak" field.
func CurrentStreakLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldCurrentStreak, v))
}

// CurrentStreakLTE applies the LTE predicate on the "current_streak" field.
func CurrentStreakLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldCurrentStreak, v))
}

// FreezesRemainingEQ applies the EQ predicate on the "freezes_remaining" field.
func FreezesRemainingEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldFreezesRemaining, v))
}

// FreezesRemainingNEQ applies the NEQ predicate on the "freezes_remaining" field.
func FreezesRemainingNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldFreezesRemaining, v))
}

// FreezesRemainingIn applies the In predicate on the "freezes_remaining" field.
func FreezesRemainingIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldFreezesRemaining, vs...))
}

// FreezesRemainingNotIn applies the NotIn predicate on the "freezes_remaining" field.
func FreezesRemainingNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldFreezesRemaining, vs...))
}

// FreezesRemainingGT applies the GT predicate on the "freezes_remaining" field.
func FreezesRemainingGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldFreezesRemaining, v))
}

// FreezesRemainingGTE applies the GTE predicate on the "freezes_remaining" field.
func FreezesRemainingGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldFreezesRemaining, v))
}

// FreezesRemainingLT applies the LT predicate on the "freezes_remaining" field.
func FreezesRemainingLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldFreezesRemaining, v))
}

// FreezesRemainingLTE applies the LTE predicate on the "freezes_remaining" field.
func FreezesRemainingLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldFreezesRemaining, v))
}

// LastStreakDateEQ applies the EQ predicate on the "last_streak_date" field.
func LastStreakDateEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldLastStreakDate, v))
}

// LastStreakDateNEQ applies the NEQ predicate on the "last_streak_date" field.
func LastStreakDateNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldLastStreakDate, v))
}

// LastStreakDateIn applies the In predicate on the "last_streak_date" field.
func LastStreakDateIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldLastStreakDate, vs...))
}

// LastStreakDateNotIn applies the NotIn predicate on the "last_streak_date" field.
func LastStreakDateNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldLastStreakDate, vs...))
}

// LastStreakDateGT applies the GT predicate on the "last_streak_date" field.
func LastStreakDateGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldLastStreakDate, v))
}

// LastStreakDateGTE applies the GTE predicate on the "last_streak_date" field.
func LastStreakDateGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldLastStreakDate, v))
}

// LastStreakDateLT applies the LT predicate on the "last_streak_date" field.
func LastStreakDateLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldLastStreakDate, v))
}

// LastStreakDateLTE applies the LTE predicate on the "last_streak_date" field.
func LastStreakDateLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldLastStreakDate, v))
}

// LastStreakDateContains applies the Contains predicate on the "last_streak_date" field.
func LastStreakDateContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldLastStreakDate, v))
}

// LastStreakDateHasPrefix applies the HasPrefix predicate on the "last_streak_date" field.
func LastStreakDateHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldLastStreakDate, v))
}

// LastStreakDateHasSuffix applies the HasSuffix predicate on the "last_streak_date" field.
func LastStreakDateHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldLastStreakDate, v))
}

// LastStreakDateEqualFold applies the EqualFold predicate on the "last_streak_date" field.
func LastStreakDateEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldLastStreakDate, v))
}

// LastStreakDateContainsFold applies the ContainsFold predicate on the "last_streak_date" field.
func LastStreakDateContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldLastStreakDate, v))
}

// LastFreezeResetWeekEQ applies the EQ predicate on the "last_freeze_reset_week" field.
func LastFreezeResetWeekEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldLastFreezeResetWeek, v))
}

// LastFreezeResetWeekNEQ applies the NEQ predicate on the "last_freeze_reset_week" field.
func LastFreezeResetWeekNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldLastFreezeResetWeek, v))
}

// LastFreezeResetWeekIn applies the In predicate on the "last_freeze_reset_week" field.
func LastFreezeResetWeekIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldLastFreezeResetWeek, vs...))
}

// LastFreezeResetWeekNotIn applies the NotIn predicate on the "last_freeze_reset_week" field.
func LastFreezeResetWeekNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldLastFreezeResetWeek, vs...))
}

// LastFreezeResetWeekGT applies the GT predicate on the "last_freeze_reset_week" field.
func LastFreezeResetWeekGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldLastFreezeResetWeek, v))
}

// LastFreezeResetWeekGTE applies the GTE predicate on the "last_freeze_reset_week" field.
func LastFreezeResetWeekGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldLastFreezeResetWeek, v))
}

// LastFreezeResetWeekLT applies the LT predicate on the "last_freeze_reset_week" field.
func LastFreezeResetWeekLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldLastFreezeResetWeek, v))
}

// LastFreezeResetWeekLTE applies the LTE predicate on the "last_freeze_reset_week" field.
func LastFreezeResetWeekLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldLastFreezeResetWeek, v))
}

// LastFreezeResetWeekContains applies the Contains predicate on the "last_freeze_reset_week" field.
func LastFreezeResetWeekContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldLastFreezeResetWeek, v))
}

// LastFreezeResetWeekHasPrefix applies the HasPrefix predicate on the "last_freeze_reset_week" field.
func LastFreezeResetWeekHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldLastFreezeResetWeek, v))
}

// LastFreezeResetWeekHasSuffix applies the HasSuffix predicate on the "last_freeze_reset_week" field.
func LastFreezeResetWeekHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldLastFreezeResetWeek, v))
}

// LastFreezeResetWeekEqualFold applies the EqualFold predicate on the "last_freeze_reset_week" field.
func LastFreezeResetWeekEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldLastFreezeResetWeek, v))
}

// LastFreezeResetWeekContainsFold applies the ContainsFold predicate on the "last_freeze_reset_week" field.
func LastFreezeResetWeekContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldLastFreezeResetWeek, v))
}

// DailyGoalEQ applies the EQ predicate on the "daily_goal" field.
func DailyGoalEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldDailyGoal, v))
}

// DailyGoalNEQ applies the NEQ predicate on the "daily_goal" field.
func DailyGoalNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldDailyGoal, v))
}

// DailyGoalIn applies the In predicate on the "daily_goal" field.
func DailyGoalIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldDailyGoal, vs...))
}

// DailyGoalNotIn applies the NotIn predicate on the "daily_goal" field.
func DailyGoalNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldDailyGoal, vs...))
}

// DailyGoalGT applies the GT predicate on the "daily_goal" field.
func DailyGoalGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldDailyGoal, v))
}

// DailyGoalGTE applies the GTE predicate on the "daily_goal" field.
func DailyGoalGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldDailyGoal, v))
}

// DailyGoalLT applies the LT predicate on the "daily_goal" field.
func DailyGoalLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldDailyGoal, v))
}

// DailyGoalLTE applies the LTE predicate on the "daily_goal" field.
func DailyGoalLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldDailyGoal, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.NotPredicates(p))
}
