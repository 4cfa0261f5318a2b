// Code generated by ent, DO NOT EDIT.

package problemattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathtutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldEQ(FieldUserID, v))
}

// ProblemNumber applies equality check predicate on the "problem_number" field. It's identical to ProblemNumberEQ.
func ProblemNumber(v int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldEQ(FieldProblemNumber, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldEQ(FieldAnswer, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldEQ(FieldIsCorrect, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldLTE(FieldUserID, v))
}

// ProblemNumberEQ applies the EQ predicate on the "problem_number" field.
func ProblemNumberEQ(v int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldEQ(FieldProblemNumber, v))
}

// ProblemNumberNEQ applies the NEQ predicate on the "problem_number" field.
func ProblemNumberNEQ(v int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldNEQ(FieldProblemNumber, v))
}

// ProblemNumberIn applies the In predicate on the "problem_number" field.
func ProblemNumberIn(vs ...int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldIn(FieldProblemNumber, vs...))
}

// ProblemNumberNotIn applies the NotIn predicate on the "problem_number" field.
func ProblemNumberNotIn(vs ...int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldNotIn(FieldProblemNumber, vs...))
}

// ProblemNumberGT applies the GT predicate on the "problem_number" field.
func ProblemNumberGT(v int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldGT(FieldProblemNumber, v))
}

// ProblemNumberGTE applies the GTE predicate on the "problem_number" field.
func ProblemNumberGTE(v int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldGTE(FieldProblemNumber, v))
}

// ProblemNumberLT applies the LT predicate on the "problem_number" field.
func ProblemNumberLT(v int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldLT(FieldProblemNumber, v))
}

// ProblemNumberLTE applies the LTE predicate on the "problem_number" field.
func ProblemNumberLTE(v int) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldLTE(FieldProblemNumber, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldContainsFold(FieldAnswer, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldNEQ(FieldIsCorrect, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProblemAttempt) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProblemAttempt) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProblemAttempt) predicate.ProblemAttempt {
	return predicate.ProblemAttempt(sql.NotPredicates(p))
}
