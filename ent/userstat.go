// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathtutor/ent/userstat"
)

// UserStat is the model entity for the UserStat schema.
type UserStat struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning user
	UserID int `json:"user_id,omitempty"`
	// Catalog problem number
	ProblemNumber int `json:"problem_number,omitempty"`
	// All submitted answers for this pair
	TotalAttempts int `json:"total_attempts,omitempty"`
	// Answers that matched a solution
	CorrectAttempts int `json:"correct_attempts,omitempty"`
	// UTC time of the most recent attempt
	LastAttemptAt time.Time `json:"last_attempt_at,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserStat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userstat.FieldID, userstat.FieldUserID, userstat.FieldProblemNumber, userstat.FieldTotalAttempts, userstat.FieldCorrectAttempts:
			values[i] = new(sql.NullInt64)
		case userstat.FieldLastAttemptAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserStat fields.
func (_m *UserStat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userstat.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userstat.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case userstat.FieldProblemNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field problem_number", values[i])
			} else if value.Valid {
				_m.ProblemNumber = int(value.Int64)
			}
		case userstat.FieldTotalAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_attempts", values[i])
			} else if value.Valid {
				_m.TotalAttempts = int(value.Int64)
			}
		case userstat.FieldCorrectAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_attempts", values[i])
			} else if value.Valid {
				_m.CorrectAttempts = int(value.Int64)
			}
		case userstat.FieldLastAttemptAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_attempt_at", values[i])
			} else if value.Valid {
				_m.LastAttemptAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserStat.
// This includes values selected through modifiers, order, etc.
func (_m *UserStat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserStat.
// Note that you need to call UserStat.Unwrap() before calling this method if this UserStat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserStat) Update() *UserStatUpdateOne {
	return NewUserStatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserStat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserStat) Unwrap() *UserStat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserStat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserStat) String() string {
	var builder strings.Builder
	builder.WriteString("UserStat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("problem_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProblemNumber))
	builder.WriteString(", ")
	builder.WriteString("total_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAttempts))
	builder.WriteString(", ")
	builder.WriteString("correct_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAttempts))
	builder.WriteString(", ")
	builder.WriteString("last_attempt_at=")
	builder.WriteString(_m.LastAttemptAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserStats is a parsable slice of UserStat.
type UserStats []*UserStat
