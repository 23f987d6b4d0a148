// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/focusbar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// Sid applies equality check predicate on the "sid" field. It's identical to SidEQ.
func Sid(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSid, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndTime, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDurationSecs, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldKind, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCompleted, v))
}

// ReminderID applies equality check predicate on the "reminder_id" field. It's identical to ReminderIDEQ.
func ReminderID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldReminderID, v))
}

// ReminderTitle applies equality check predicate on the "reminder_title" field. It's identical to ReminderTitleEQ.
func ReminderTitle(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldReminderTitle, v))
}

// XpEarned applies equality check predicate on the "xp_earned" field. It's identical to XpEarnedEQ.
func XpEarned(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldXpEarned, v))
}

// SidEQ applies the EQ predicate on the "sid" field.
func SidEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSid, v))
}

// SidNEQ applies the NEQ predicate on the "sid" field.
func SidNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSid, v))
}

// SidIn applies the In predicate on the "sid" field.
func SidIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSid, vs...))
}

// SidNotIn applies the NotIn predicate on the "sid" field.
func SidNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSid, vs...))
}

// SidGT applies the GT predicate on the "sid" field.
func SidGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSid, v))
}

// SidGTE applies the GTE predicate on the "sid" field.
func SidGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSid, v))
}

// SidLT applies the LT predicate on the "sid" field.
func SidLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSid, v))
}

// SidLTE applies the LTE predicate on the "sid" field.
func SidLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSid, v))
}

// SidContains applies the Contains predicate on the "sid" field.
func SidContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldSid, v))
}

// SidHasPrefix applies the HasPrefix predicate on the "sid" field.
func SidHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldSid, v))
}

// SidHasSuffix applies the HasSuffix predicate on the "sid" field.
func SidHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldSid, v))
}

// SidEqualFold applies the EqualFold predicate on the "sid" field.
func SidEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldSid, v))
}

// SidContainsFold applies the ContainsFold predicate on the "sid" field.
func SidContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldSid, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeIsNil applies the IsNil predicate on the "end_time" field.
func EndTimeIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldEndTime))
}

// EndTimeNotNil applies the NotNil predicate on the "end_time" field.
func EndTimeNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldEndTime))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldDurationSecs, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldKind, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCompleted, v))
}

// ReminderIDEQ applies the EQ predicate on the "reminder_id" field.
func ReminderIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldReminderID, v))
}

// ReminderIDNEQ applies the NEQ predicate on the "reminder_id" field.
func ReminderIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldReminderID, v))
}

// ReminderIDIn applies the In predicate on the "reminder_id" field.
func ReminderIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldReminderID, vs...))
}

// ReminderIDNotIn applies the NotIn predicate on the "reminder_id" field.
func ReminderIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldReminderID, vs...))
}

// ReminderIDGT applies the GT predicate on the "reminder_id" field.
func ReminderIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldReminderID, v))
}

// ReminderIDGTE applies the GTE predicate on the "reminder_id" field.
func ReminderIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldReminderID, v))
}

// ReminderIDLT applies the LT predicate on the "reminder_id" field.
func ReminderIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldReminderID, v))
}

// ReminderIDLTE applies the LTE predicate on the "reminder_id" field.
func ReminderIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldReminderID, v))
}

// ReminderIDContains applies the Contains predicate on the "reminder_id" field.
func ReminderIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldReminderID, v))
}

// ReminderIDHasPrefix applies the HasPrefix predicate on the "reminder_id" field.
func ReminderIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldReminderID, v))
}

// ReminderIDHasSuffix applies the HasSuffix predicate on the "reminder_id" field.
func ReminderIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldReminderID, v))
}

// ReminderIDIsNil applies the IsNil predicate on the "reminder_id" field.
func ReminderIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldReminderID))
}

// ReminderIDNotNil applies the NotNil predicate on the "reminder_id" field.
func ReminderIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldReminderID))
}

// ReminderIDEqualFold applies the EqualFold predicate on the "reminder_id" field.
func ReminderIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldReminderID, v))
}

// ReminderIDContainsFold applies the ContainsFold predicate on the "reminder_id" field.
func ReminderIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldReminderID, v))
}

// ReminderTitleEQ applies the EQ predicate on the "reminder_title" field.
func ReminderTitleEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldReminderTitle, v))
}

// ReminderTitleNEQ applies the NEQ predicate on the "reminder_title" field.
func ReminderTitleNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldReminderTitle, v))
}

// ReminderTitleIn applies the In predicate on the "reminder_title" field.
func ReminderTitleIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldReminderTitle, vs...))
}

// ReminderTitleNotIn applies the NotIn predicate on the "reminder_title" field.
func ReminderTitleNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldReminderTitle, vs...))
}

// ReminderTitleGT applies the GT predicate on the "reminder_title" field.
func ReminderTitleGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldReminderTitle, v))
}

// ReminderTitleGTE applies the GTE predicate on the "reminder_title" field.
func ReminderTitleGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldReminderTitle, v))
}

// ReminderTitleLT applies the LT predicate on the "reminder_title" field.
func ReminderTitleLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldReminderTitle, v))
}

// ReminderTitleLTE applies the LTE predicate on the "reminder_title" field.
func ReminderTitleLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldReminderTitle, v))
}

// ReminderTitleContains applies the Contains predicate on the "reminder_title" field.
func ReminderTitleContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldReminderTitle, v))
}

// ReminderTitleHasPrefix applies the HasPrefix predicate on the "reminder_title" field.
func ReminderTitleHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldReminderTitle, v))
}

// ReminderTitleHasSuffix applies the HasSuffix predicate on the "reminder_title" field.
func ReminderTitleHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldReminderTitle, v))
}

// ReminderTitleIsNil applies the IsNil predicate on the "reminder_title" field.
func ReminderTitleIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldReminderTitle))
}

// ReminderTitleNotNil applies the NotNil predicate on the "reminder_title" field.
func ReminderTitleNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldReminderTitle))
}

// ReminderTitleEqualFold applies the EqualFold predicate on the "reminder_title" field.
func ReminderTitleEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldReminderTitle, v))
}

// ReminderTitleContainsFold applies the ContainsFold predicate on the "reminder_title" field.
func ReminderTitleContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldReminderTitle, v))
}

// XpEarnedEQ applies the EQ predicate on the "xp_earned" field.
func XpEarnedEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldXpEarned, v))
}

// XpEarnedNEQ applies the NEQ predicate on the "xp_earned" field.
func XpEarnedNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldXpEarned, v))
}

// XpEarnedIn applies the In predicate on the "xp_earned" field.
func XpEarnedIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldXpEarned, vs...))
}

// XpEarnedNotIn applies the NotIn predicate on the "xp_earned" field.
func XpEarnedNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldXpEarned, vs...))
}

// XpEarnedGT applies the GT predicate on the "xp_earned" field.
func XpEarnedGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldXpEarned, v))
}

// XpEarnedGTE applies the GTE predicate on the "xp_earned" field.
func XpEarnedGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldXpEarned, v))
}

// XpEarnedLT applies the LT predicate on the "xp_earned" field.
func XpEarnedLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldXpEarned, v))
}

// XpEarnedLTE applies the LTE predicate on the "xp_earned" field.
func XpEarnedLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldXpEarned, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
