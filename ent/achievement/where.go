// Code generated by ent, DO NOT EDIT.

package achievement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/focusbar/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldID, id))
}

// AchievementID applies equality check predicate on the "achievement_id" field. It's identical to AchievementIDEQ.
func AchievementID(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldAchievementID, v))
}

// UnlockedAt applies equality check predicate on the "unlocked_at" field. It's identical to UnlockedAtEQ.
func UnlockedAt(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldUnlockedAt, v))
}

// Metadata applies equality check predicate on the "metadata" field. It's identical to MetadataEQ.
func Metadata(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldMetadata, v))
}

// AchievementIDEQ applies the EQ predicate on the "achievement_id" field.
func AchievementIDEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldAchievementID, v))
}

// AchievementIDNEQ applies the NEQ predicate on the "achievement_id" field.
func AchievementIDNEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldAchievementID, v))
}

// AchievementIDIn applies the In predicate on the "achievement_id" field.
func AchievementIDIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldAchievementID, vs...))
}

// AchievementIDNotIn applies the NotIn predicate on the "achievement_id" field.
func AchievementIDNotIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldAchievementID, vs...))
}

// AchievementIDGT applies the GT predicate on the "achievement_id" field.
func AchievementIDGT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldAchievementID, v))
}

// AchievementIDGTE applies the GTE predicate on the "achievement_id" field.
func AchievementIDGTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldAchievementID, v))
}

// AchievementIDLT applies the LT predicate on the "achievement_id" field.
func AchievementIDLT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldAchievementID, v))
}

// AchievementIDLTE applies the LTE predicate on the "achievement_id" field.
func AchievementIDLTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldAchievementID, v))
}

// AchievementIDContains applies the Contains predicate on the "achievement_id" field.
func AchievementIDContains(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContains(FieldAchievementID, v))
}

// AchievementIDHasPrefix applies the HasPrefix predicate on the "achievement_id" field.
func AchievementIDHasPrefix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasPrefix(FieldAchievementID, v))
}

// AchievementIDHasSuffix applies the HasSuffix predicate on the "achievement_id" field.
func AchievementIDHasSuffix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasSuffix(FieldAchievementID, v))
}

// AchievementIDEqualFold applies the EqualFold predicate on the "achievement_id" field.
func AchievementIDEqualFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEqualFold(FieldAchievementID, v))
}

// AchievementIDContainsFold applies the ContainsFold predicate on the "achievement_id" field.
func AchievementIDContainsFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContainsFold(FieldAchievementID, v))
}

// UnlockedAtEQ applies the EQ predicate on the "unlocked_at" field.
func UnlockedAtEQ(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldUnlockedAt, v))
}

// UnlockedAtNEQ applies the NEQ predicate on the "unlocked_at" field.
func UnlockedAtNEQ(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldUnlockedAt, v))
}

// UnlockedAtIn applies the In predicate on the "unlocked_at" field.
func UnlockedAtIn(vs ...time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldUnlockedAt, vs...))
}

// UnlockedAtNotIn applies the NotIn predicate on the "unlocked_at" field.
func UnlockedAtNotIn(vs ...time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldUnlockedAt, vs...))
}

// UnlockedAtGT applies the GT predicate on the "unlocked_at" field.
func UnlockedAtGT(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldUnlockedAt, v))
}

// UnlockedAtGTE applies the GTE predicate on the "unlocked_at" field.
func UnlockedAtGTE(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldUnlockedAt, v))
}

// UnlockedAtLT applies the LT predicate on the "unlocked_at" field.
func UnlockedAtLT(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldUnlockedAt, v))
}

// UnlockedAtLTE applies the LTE predicate on the "unlocked_at" field.
func UnlockedAtLTE(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldUnlockedAt, v))
}

// MetadataEQ applies the EQ predicate on the "metadata" field.
func MetadataEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldMetadata, v))
}

// MetadataNEQ applies the NEQ predicate on the "metadata" field.
func MetadataNEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldMetadata, v))
}

// MetadataIn applies the In predicate on the "metadata" field.
func MetadataIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldMetadata, vs...))
}

// MetadataNotIn applies the NotIn predicate on the "metadata" field.
func MetadataNotIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldMetadata, vs...))
}

// MetadataGT applies the GT predicate on the "metadata" field.
func MetadataGT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldMetadata, v))
}

// MetadataGTE applies the GTE predicate on the "metadata" field.
func MetadataGTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldMetadata, v))
}

// MetadataLT applies the LT predicate on the "metadata" field.
func MetadataLT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldMetadata, v))
}

// MetadataLTE applies the LTE predicate on the "metadata" field.
func MetadataLTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldMetadata, v))
}

// MetadataContains applies the Contains predicate on the "metadata" field.
func MetadataContains(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContains(FieldMetadata, v))
}

// MetadataHasPrefix applies the HasPrefix predicate on the "metadata" field.
func MetadataHasPrefix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasPrefix(FieldMetadata, v))
}

// MetadataHasSuffix applies the HasSuffix predicate on the "metadata" field.
func MetadataHasSuffix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasSuffix(FieldMetadata, v))
}

// MetadataEqualFold applies the EqualFold predicate on the "metadata" field.
func MetadataEqualFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEqualFold(FieldMetadata, v))
}

// MetadataContainsFold applies the ContainsFold predicate on the "metadata" field.
func MetadataContainsFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContainsFold(FieldMetadata, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Achievement) predicate.Achievement {
	return predicate.Achievement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Achievement) predicate.Achievement {
	return predicate.Achievement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Achievement) predicate.Achievement {
	return predicate.Achievement(sql.NotPredicates(p))
}
