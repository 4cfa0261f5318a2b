// Code generated by ent, DO NOT EDIT.

package userstat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathtutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserStat {
	return predicate.UserStat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserStat {
	return predicate.UserStat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserStat {
	return predicate.UserStat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserStat {
	return predicate.UserStat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserStat {
	return predicate.UserStat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserStat {
	return predicate.UserStat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserStat {
	return predicate.UserStat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserStat {
	return predicate.UserStat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserStat {
	return predicate.UserStat(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldEQ(FieldUserID, v))
}

// ProblemNumber applies equality check predicate on the "problem_number" field. It's identical to ProblemNumberEQ.
func ProblemNumber(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldEQ(FieldProblemNumber, v))
}

// TotalAttempts applies equality check predicate on the "total_attempts" field. It's identical to TotalAttemptsEQ.
func TotalAttempts(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldEQ(FieldTotalAttempts, v))
}

// CorrectAttempts applies equality check predicate on the "correct_attempts" field. It's identical to CorrectAttemptsEQ.
func CorrectAttempts(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldEQ(FieldCorrectAttempts, v))
}

// LastAttemptAt applies equality check predicate on the "last_attempt_at" field. It's identical to LastAttemptAtEQ.
func LastAttemptAt(v time.Time) predicate.UserStat {
	return predicate.UserStat(sql.FieldEQ(FieldLastAttemptAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.UserStat {
	return predicate.UserStat(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.UserStat {
	return predicate.UserStat(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldLTE(FieldUserID, v))
}

// ProblemNumberEQ applies the EQ predicate on the "problem_number" field.
func ProblemNumberEQ(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldEQ(FieldProblemNumber, v))
}

// ProblemNumberNEQ applies the NEQ predicate on the "problem_number" field.
func ProblemNumberNEQ(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldNEQ(FieldProblemNumber, v))
}

// ProblemNumberIn applies the In predicate on the "problem_number" field.
func ProblemNumberIn(vs ...int) predicate.UserStat {
	return predicate.UserStat(sql.FieldIn(FieldProblemNumber, vs...))
}

// ProblemNumberNotIn applies the NotIn predicate on the "problem_number" field.
func ProblemNumberNotIn(vs ...int) predicate.UserStat {
	return predicate.UserStat(sql.FieldNotIn(FieldProblemNumber, vs...))
}

// ProblemNumberGT applies the GT predicate on the "problem_number" field.
func ProblemNumberGT(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldGT(FieldProblemNumber, v))
}

// ProblemNumberGTE applies the GTE predicate on the "problem_number" field.
func ProblemNumberGTE(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldGTE(FieldProblemNumber, v))
}

// ProblemNumberLT applies the LT predicate on the "problem_number" field.
func ProblemNumberLT(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldLT(FieldProblemNumber, v))
}

// ProblemNumberLTE applies the LTE predicate on the "problem_number" field.
func ProblemNumberLTE(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldLTE(FieldProblemNumber, v))
}

// TotalAttemptsEQ applies the EQ predicate on the "total_attempts" field.
func TotalAttemptsEQ(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldEQ(FieldTotalAttempts, v))
}

// TotalAttemptsNEQ applies the NEQ predicate on the "total_attempts" field.
func TotalAttemptsNEQ(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldNEQ(FieldTotalAttempts, v))
}

// TotalAttemptsIn applies the In predicate on the "total_attempts" field.
func TotalAttemptsIn(vs ...int) predicate.UserStat {
	return predicate.UserStat(sql.FieldIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsNotIn applies the NotIn predicate on the "total_attempts" field.
func TotalAttemptsNotIn(vs ...int) predicate.UserStat {
	return predicate.UserStat(sql.FieldNotIn(FieldTotalAttempts, vs...))
}

// TotalAttemptsGT applies the GT predicate on the "total_attempts" field.
func TotalAttemptsGT(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldGT(FieldTotalAttempts, v))
}

// TotalAttemptsGTE applies the GTE predicate on the "total_attempts" field.
func TotalAttemptsGTE(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldGTE(FieldTotalAttempts, v))
}

// TotalAttemptsLT applies the LT predicate on the "total_attempts" field.
func TotalAttemptsLT(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldLT(FieldTotalAttempts, v))
}

// TotalAttemptsLTE applies the LTE predicate on the "total_attempts" field.
func TotalAttemptsLTE(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldLTE(FieldTotalAttempts, v))
}

// CorrectAttemptsEQ applies the EQ predicate on the "correct_attempts" field.
func CorrectAttemptsEQ(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldEQ(FieldCorrectAttempts, v))
}

// CorrectAttemptsNEQ applies the NEQ predicate on the "correct_attempts" field.
func CorrectAttemptsNEQ(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldNEQ(FieldCorrectAttempts, v))
}

// CorrectAttemptsIn applies the In predicate on the "correct_attempts" field.
func CorrectAttemptsIn(vs ...int) predicate.UserStat {
	return predicate.UserStat(sql.FieldIn(FieldCorrectAttempts, vs...))
}

// CorrectAttemptsNotIn applies the NotIn predicate on the "correct_attempts" field.
func CorrectAttemptsNotIn(vs ...int) predicate.UserStat {
	return predicate.UserStat(sql.FieldNotIn(FieldCorrectAttempts, vs...))
}

// CorrectAttemptsGT applies the GT predicate on the "correct_attempts" field.
func CorrectAttemptsGT(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldGT(FieldCorrectAttempts, v))
}

// CorrectAttemptsGTE applies the GTE predicate on the "correct_attempts" field.
func CorrectAttemptsGTE(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldGTE(FieldCorrectAttempts, v))
}

// CorrectAttemptsLT applies the LT predicate on the "correct_attempts" field.
func CorrectAttemptsLT(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldLT(FieldCorrectAttempts, v))
}

// CorrectAttemptsLTE applies the LTE predicate on the "correct_attempts" field.
func CorrectAttemptsLTE(v int) predicate.UserStat {
	return predicate.UserStat(sql.FieldLTE(FieldCorrectAttempts, v))
}

// LastAttemptAtEQ applies the EQ predicate on the "last_attempt_at" field.
func LastAttemptAtEQ(v time.Time) predicate.UserStat {
	return predicate.UserStat(sql.FieldEQ(FieldLastAttemptAt, v))
}

// LastAttemptAtNEQ applies the NEQ predicate on the "last_attempt_at" field.
func LastAttemptAtNEQ(v time.Time) predicate.UserStat {
	return predicate.UserStat(sql.FieldNEQ(FieldLastAttemptAt, v))
}

// LastAttemptAtIn applies the In predicate on the "last_attempt_at" field.
func LastAttemptAtIn(vs ...time.Time) predicate.UserStat {
	return predicate.UserStat(sql.FieldIn(FieldLastAttemptAt, vs...))
}

// LastAttemptAtNotIn applies the NotIn predicate on the "last_attempt_at" field.
func LastAttemptAtNotIn(vs ...time.Time) predicate.UserStat {
	return predicate.UserStat(sql.FieldNotIn(FieldLastAttemptAt, vs...))
}

// LastAttemptAtGT applies the GT predicate on the "last_attempt_at" field.
func LastAttemptAtGT(v time.Time) predicate.UserStat {
	return predicate.UserStat(sql.FieldGT(FieldLastAttemptAt, v))
}

// LastAttemptAtGTE applies the GTE predicate on the "last_attempt_at" field.
func LastAttemptAtGTE(v time.Time) predicate.UserStat {
	return predicate.UserStat(sql.FieldGTE(FieldLastAttemptAt, v))
}

// LastAttemptAtLT applies the LT predicate on the "last_attempt_at" field.
func LastAttemptAtLT(v time.Time) predicate.UserStat {
	return predicate.UserStat(sql.FieldLT(FieldLastAttemptAt, v))
}

// LastAttemptAtLTE applies the LTE predicate on the "last_attempt_at" field.
func LastAttemptAtLTE(v time.Time) predicate.UserStat {
	return predicate.UserStat(sql.FieldLTE(FieldLastAttemptAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserStat) predicate.UserStat {
	return predicate.UserStat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserStat) predicate.UserStat {
	return predicate.UserStat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserStat) predicate.UserStat {
	return predicate.UserStat(sql.NotPredicates(p))
}
