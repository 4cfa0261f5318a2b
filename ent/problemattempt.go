// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathtutor/ent/problemattempt"
)

// ProblemAttempt is the model entity for the ProblemAttempt schema.
type ProblemAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Submitting user
	UserID int `json:"user_id,omitempty"`
	// Catalog problem number
	ProblemNumber int `json:"problem_number,omitempty"`
	// Raw answer text as submitted
	Answer string `json:"answer,omitempty"`
	// Result of the substring correctness check
	IsCorrect bool `json:"is_correct,omitempty"`
	// UTC wall-clock time of submission
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProblemAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case problemattempt.FieldIsCorrect:
			values[i] = new(sql.NullBool)
		case problemattempt.FieldID, problemattempt.FieldUserID, problemattempt.FieldProblemNumber:
			values[i] = new(sql.NullInt64)
		case problemattempt.FieldAnswer:
			values[i] = new(sql.NullString)
		case problemattempt.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProblemAttempt fields.
func (_m *ProblemAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case problemattempt.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case problemattempt.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case problemattempt.FieldProblemNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field problem_number", values[i])
			} else if value.Valid {
				_m.ProblemNumber = int(value.Int64)
			}
		case problemattempt.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = value.String
			}
		case problemattempt.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				_m.IsCorrect = value.Bool
			}
		case problemattempt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProblemAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *ProblemAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProblemAttempt.
// Note that you need to call ProblemAttempt.Unwrap() before calling this method if this ProblemAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProblemAttempt) Update() *ProblemAttemptUpdateOne {
	return NewProblemAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProblemAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProblemAttempt) Unwrap() *ProblemAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProblemAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProblemAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("ProblemAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("problem_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProblemNumber))
	builder.WriteString(", ")
	builder.WriteString("answer=")
	builder.WriteString(_m.Answer)
	builder.WriteString(", ")
	builder.WriteString("is_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCorrect))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProblemAttempts is a parsable slice of ProblemAttempt.
type ProblemAttempts []*ProblemAttempt
