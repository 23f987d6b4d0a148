// Code generated by ent, DO NOT EDIT.

package dailystat

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/focusbar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLTE(FieldID, id))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldDate, v))
}

// PomodorosCompleted applies equality check predicate on the "pomodoros_completed" field. It's identical to PomodorosCompletedEQ.
func PomodorosCompleted(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldPomodorosCompleted, v))
}

// TotalFocusMinutes applies equality check predicate on the "total_focus_minutes" field. It's identical to TotalFocusMinutesEQ.
func TotalFocusMinutes(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldTotalFocusMinutes, v))
}

// StreakMaintained applies equality check predicate on the "streak_maintained" field. It's identical to StreakMaintainedEQ.
func StreakMaintained(v bool) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldStreakMaintained, v))
}

// XpEarned applies equality check predicate on the "xp_earned" field. It's identical to XpEarnedEQ.
func XpEarned(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldXpEarned, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldContainsFold(FieldDate, v))
}

// PomodorosCompletedEQ applies the EQ predicate on the "pomodoros_completed" field.
func PomodorosCompletedEQ(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldPomodorosCompleted, v))
}

// PomodorosCompletedNEQ applies the NEQ predicate on the "pomodoros_completed" field.
func PomodorosCompletedNEQ(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNEQ(FieldPomodorosCompleted, v))
}

// PomodorosCompletedIn applies the In predicate on the "pomodoros_completed" field.
func PomodorosCompletedIn(vs ...int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldIn(FieldPomodorosCompleted, vs...))
}

// PomodorosCompletedNotIn applies the NotIn predicate on the "pomodoros_completed" field.
func PomodorosCompletedNotIn(vs ...int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNotIn(FieldPomodorosCompleted, vs...))
}

// PomodorosCompletedGT applies the GT predicate on the "pomodoros_completed" field.
func PomodorosCompletedGT(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGT(FieldPomodorosCompleted, v))
}

// PomodorosCompletedGTE applies the GTE predicate on the "pomodoros_completed" field.
func PomodorosCompletedGTE(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGTE(FieldPomodorosCompleted, v))
}

// PomodorosCompletedLT applies the LT predicate on the "pomodoros_completed" field.
func PomodorosCompletedLT(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLT(FieldPomodorosCompleted, v))
}

// PomodorosCompletedLTE applies the LTE predicate on the "pomodoros_completed" field.
func PomodorosCompletedLTE(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLTE(FieldPomodorosCompleted, v))
}

// TotalFocusMinutesEQ applies the EQ predicate on the "total_focus_minutes" field.
func TotalFocusMinutesEQ(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldTotalFocusMinutes, v))
}

// TotalFocusMinutesNEQ applies the NEQ predicate on the "total_focus_minutes" field.
func TotalFocusMinutesNEQ(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNEQ(FieldTotalFocusMinutes, v))
}

// TotalFocusMinutesIn applies the In predicate on the "total_focus_minutes" field.
func TotalFocusMinutesIn(vs ...int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldIn(FieldTotalFocusMinutes, vs...))
}

// TotalFocusMinutesNotIn applies the NotIn predicate on the "total_focus_minutes" field.
func TotalFocusMinutesNotIn(vs ...int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNotIn(FieldTotalFocusMinutes, vs...))
}

// TotalFocusMinutesGT applies the GT predicate on the "total_focus_minutes" field.
func TotalFocusMinutesGT(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGT(FieldTotalFocusMinutes, v))
}

// TotalFocusMinutesGTE applies the GTE predicate on the "total_focus_minutes" field.
func TotalFocusMinutesGTE(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGTE(FieldTotalFocusMinutes, v))
}

// TotalFocusMinutesLT applies the LT predicate on the "total_focus_minutes" field.
func TotalFocusMinutesLT(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLT(FieldTotalFocusMinutes, v))
}

// TotalFocusMinutesLTE applies the LTE predicate on the "total_focus_minutes" field.
func TotalFocusMinutesLTE(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLTE(FieldTotalFocusMinutes, v))
}

// StreakMaintainedEQ applies the EQ predicate on the "streak_maintained" field.
func StreakMaintainedEQ(v bool) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldStreakMaintained, v))
}

// StreakMaintainedNEQ applies the NEQ predicate on the "streak_maintained" field.
func StreakMaintainedNEQ(v bool) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNEQ(FieldStreakMaintained, v))
}

// XpEarnedEQ applies the EQ predicate on the "xp_earned" field.
func XpEarnedEQ(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldEQ(FieldXpEarned, v))
}

// XpEarnedNEQ applies the NEQ predicate on the "xp_earned" field.
func XpEarnedNEQ(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNEQ(FieldXpEarned, v))
}

// XpEarnedIn applies the In predicate on the "xp_earned" field.
func XpEarnedIn(vs ...int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldIn(FieldXpEarned, vs...))
}

// XpEarnedNotIn applies the NotIn predicate on the "xp_earned" field.
func XpEarnedNotIn(vs ...int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldNotIn(FieldXpEarned, vs...))
}

// XpEarnedGT applies the GT predicate on the "xp_earned" field.
func XpEarnedGT(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGT(FieldXpEarned, v))
}

// XpEarnedGTE applies the GTE predicate on the "xp_earned" field.
func XpEarnedGTE(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldGTE(FieldXpEarned, v))
}

// XpEarnedLT applies the LT predicate on the "xp_earned" field.
func XpEarnedLT(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLT(FieldXpEarned, v))
}

// XpEarnedLTE applies the LTE predicate on the "xp_earned" field.
func XpEarnedLTE(v int) predicate.DailyStat {
	return predicate.DailyStat(sql.FieldLTE(FieldXpEarned, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DailyStat) predicate.DailyStat {
	return predicate.DailyStat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DailyStat) predicate.DailyStat {
	return predicate.DailyStat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DailyStat) predicate.DailyStat {
	return predicate.DailyStat(sql.NotPredicates(p))
}
