// Code generated by ent, DO NOT EDIT.

package reminder

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/focusbar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Reminder {
	return predicate.Reminder(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Reminder {
	return predicate.Reminder(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Reminder {
	return predicate.Reminder(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Reminder {
	return predicate.Reminder(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Reminder {
	return predicate.Reminder(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Reminder {
	return predicate.Reminder(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Reminder {
	return predicate.Reminder(sql.FieldLTE(FieldID, id))
}

// Rid applies equality check predicate on the "rid" field. It's identical to RidEQ.
func Rid(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldRid, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldTitle, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldNotes, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldCompleted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldCreatedAt, v))
}

// RidEQ applies the EQ predicate on the "rid" field.
func RidEQ(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldRid, v))
}

// RidNEQ applies the NEQ predicate on the "rid" field.
func RidNEQ(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldNEQ(FieldRid, v))
}

// RidIn applies the In predicate on the "rid" field.
func RidIn(vs ...string) predicate.Reminder {
	return predicate.Reminder(sql.FieldIn(FieldRid, vs...))
}

// RidNotIn applies the NotIn predicate on the "rid" field.
func RidNotIn(vs ...string) predicate.Reminder {
	return predicate.Reminder(sql.FieldNotIn(FieldRid, vs...))
}

// RidGT applies the GT predicate on the "rid" field.
func RidGT(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldGT(FieldRid, v))
}

// RidGTE applies the GTE predicate on the "rid" field.
func RidGTE(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldGTE(FieldRid, v))
}

// RidLT applies the LT predicate on the "rid" field.
func RidLT(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldLT(FieldRid, v))
}

// RidLTE applies the LTE predicate on the "rid" field.
func RidLTE(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldLTE(FieldRid, v))
}

// RidContains applies the Contains predicate on the "rid" field.
func RidContains(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldContains(FieldRid, v))
}

// RidHasPrefix applies the HasPrefix predicate on the "rid" field.
func RidHasPrefix(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldHasPrefix(FieldRid, v))
}

// RidHasSuffix applies the HasSuffix predicate on the "rid" field.
func RidHasSuffix(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldHasSuffix(FieldRid, v))
}

// RidEqualFold applies the EqualFold predicate on the "rid" field.
func RidEqualFold(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldEqualFold(FieldRid, v))
}

// RidContainsFold applies the ContainsFold predicate on the "rid" field.
func RidContainsFold(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldContainsFold(FieldRid, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Reminder {
	return predicate.Reminder(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Reminder {
	return predicate.Reminder(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldContainsFold(FieldTitle, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Reminder {
	return predicate.Reminder(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Reminder {
	return predicate.Reminder(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldContainsFold(FieldNotes, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.Reminder {
	return predicate.Reminder(sql.FieldNEQ(FieldCompleted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Reminder {
	return predicate.Reminder(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Reminder {
	return predicate.Reminder(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Reminder {
	return predicate.Reminder(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Reminder {
	return predicate.Reminder(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Reminder {
	return predicate.Reminder(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Reminder {
	return predicate.Reminder(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Reminder {
	return predicate.Reminder(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Reminder) predicate.Reminder {
	return predicate.Reminder(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Reminder) predicate.Reminder {
	return predicate.Reminder(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Reminder) predicate.Reminder {
	return predicate.Reminder(sql.NotPredicates(p))
}
