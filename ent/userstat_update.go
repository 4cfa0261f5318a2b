// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathtutor/ent/predicate"
	"github.com/abhisek/mathtutor/ent/userstat"
)

// UserStatUpdate is the builder for updating UserStat entities.
type UserStatUpdate struct {
	config
	hooks    []Hook
	mutation *UserStatMutation
}

// Where appends a list predicates to the UserStatUpdate builder.
func (_u *UserStatUpdate) Where(ps ...predicate.UserStat) *UserStatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *UserStatUpdate) SetUserID(v int) *UserStatUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserStatUpdate) SetNillableUserID(v *int) *UserStatUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *UserStatUpdate) AddUserID(v int) *UserStatUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetProblemNumber sets the "problem_number" field.
func (_u *UserStatUpdate) SetProblemNumber(v int) *UserStatUpdate {
	_u.mutation.ResetProblemNumber()
	_u.mutation.SetProblemNumber(v)
	return _u
}

// SetNillableProblemNumber sets the "problem_number" field if the given value is not nil.
func (_u *UserStatUpdate) SetNillableProblemNumber(v *int) *UserStatUpdate {
	if v != nil {
		_u.SetProblemNumber(*v)
	}
	return _u
}

// AddProblemNumber adds value to the "problem_number" field.
func (_u *UserStatUpdate) AddProblemNumber(v int) *UserStatUpdate {
	_u.mutation.AddProblemNumber(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *UserStatUpdate) SetTotalAttempts(v int) *UserStatUpdate {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *UserStatUpdate) SetNillableTotalAttempts(v *int) *UserStatUpdate {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *UserStatUpdate) AddTotalAttempts(v int) *UserStatUpdate {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_u *UserStatUpdate) SetCorrectAttempts(v int) *UserStatUpdate {
	_u.mutation.ResetCorrectAttempts()
	_u.mutation.SetCorrectAttempts(v)
	return _u
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_u *UserStatUpdate) SetNillableCorrectAttempts(v *int) *UserStatUpdate {
	if v != nil {
		_u.SetCorrectAttempts(*v)
	}
	return _u
}

// AddCorrectAttempts adds value to the "correct_attempts" field.
func (_u *UserStatUpdate) AddCorrectAttempts(v int) *UserStatUpdate {
	_u.mutation.AddCorrectAttempts(v)
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *UserStatUpdate) SetLastAttemptAt(v time.Time) *UserStatUpdate {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_u *UserStatUpdate) SetNillableLastAttemptAt(v *time.Time) *UserStatUpdate {
	if v != nil {
		_u.SetLastAttemptAt(*v)
	}
	return _u
}

// Mutation returns the UserStatMutation object of the builder.
func (_u *UserStatUpdate) Mutation() *UserStatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserStatUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserStatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserStatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserStatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserStatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userstat.Table, userstat.Columns, sqlgraph.NewFieldSpec(userstat.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userstat.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(userstat.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProblemNumber(); ok {
		_spec.SetField(userstat.FieldProblemNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemNumber(); ok {
		_spec.AddField(userstat.FieldProblemNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(userstat.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(userstat.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAttempts(); ok {
		_spec.SetField(userstat.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAttempts(); ok {
		_spec.AddField(userstat.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(userstat.FieldLastAttemptAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserStatUpdateOne is the builder for updating a single UserStat entity.
type UserStatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserStatMutation
}

// SetUserID sets the "user_id" field.
func (_u *UserStatUpdateOne) SetUserID(v int) *UserStatUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *UserStatUpdateOne) SetNillableUserID(v *int) *UserStatUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *UserStatUpdateOne) AddUserID(v int) *UserStatUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetProblemNumber sets the "problem_number" field.
func (_u *UserStatUpdateOne) SetProblemNumber(v int) *UserStatUpdateOne {
	_u.mutation.ResetProblemNumber()
	_u.mutation.SetProblemNumber(v)
	return _u
}

// SetNillableProblemNumber sets the "problem_number" field if the given value is not nil.
func (_u *UserStatUpdateOne) SetNillableProblemNumber(v *int) *UserStatUpdateOne {
	if v != nil {
		_u.SetProblemNumber(*v)
	}
	return _u
}

// AddProblemNumber adds value to the "problem_number" field.
func (_u *UserStatUpdateOne) AddProblemNumber(v int) *UserStatUpdateOne {
	_u.mutation.AddProblemNumber(v)
	return _u
}

// SetTotalAttempts sets the "total_attempts" field.
func (_u *UserStatUpdateOne) SetTotalAttempts(v int) *UserStatUpdateOne {
	_u.mutation.ResetTotalAttempts()
	_u.mutation.SetTotalAttempts(v)
	return _u
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_u *UserStatUpdateOne) SetNillableTotalAttempts(v *int) *UserStatUpdateOne {
	if v != nil {
		_u.SetTotalAttempts(*v)
	}
	return _u
}

// AddTotalAttempts adds value to the "total_attempts" field.
func (_u *UserStatUpdateOne) AddTotalAttempts(v int) *UserStatUpdateOne {
	_u.mutation.AddTotalAttempts(v)
	return _u
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_u *UserStatUpdateOne) SetCorrectAttempts(v int) *UserStatUpdateOne {
	_u.mutation.ResetCorrectAttempts()
	_u.mutation.SetCorrectAttempts(v)
	return _u
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_u *UserStatUpdateOne) SetNillableCorrectAttempts(v *int) *UserStatUpdateOne {
	if v != nil {
		_u.SetCorrectAttempts(*v)
	}
	return _u
}

// AddCorrectAttempts adds value to the "correct_attempts" field.
func (_u *UserStatUpdateOne) AddCorrectAttempts(v int) *UserStatUpdateOne {
	_u.mutation.AddCorrectAttempts(v)
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *UserStatUpdateOne) SetLastAttemptAt(v time.Time) *UserStatUpdateOne {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_u *UserStatUpdateOne) SetNillableLastAttemptAt(v *time.Time) *UserStatUpdateOne {
	if v != nil {
		_u.SetLastAttemptAt(*v)
	}
	return _u
}

// Mutation returns the UserStatMutation object of the builder.
func (_u *UserStatUpdateOne) Mutation() *UserStatMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserStatUpdate builder.
func (_u *UserStatUpdateOne) Where(ps ...predicate.UserStat) *UserStatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserStatUpdateOne) Select(field string, fields ...string) *UserStatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserStat entity.
func (_u *UserStatUpdateOne) Save(ctx context.Context) (*UserStat, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserStatUpdateOne) SaveX(ctx context.Context) *UserStat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserStatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserStatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserStatUpdateOne) sqlSave(ctx context.Context) (_node *UserStat, err error) {
	_spec := sqlgraph.NewUpdateSpec(userstat.Table, userstat.Columns, sqlgraph.NewFieldSpec(userstat.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserStat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userstat.FieldID)
		for _, f := range fields {
			if !userstat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userstat.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(userstat.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(userstat.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProblemNumber(); ok {
		_spec.SetField(userstat.FieldProblemNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProblemNumber(); ok {
		_spec.AddField(userstat.FieldProblemNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAttempts(); ok {
		_spec.SetField(userstat.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempts(); ok {
		_spec.AddField(userstat.FieldTotalAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAttempts(); ok {
		_spec.SetField(userstat.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAttempts(); ok {
		_spec.AddField(userstat.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(userstat.FieldLastAttemptAt, field.TypeTime, value)
	}
	_node = &UserStat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
