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
	"github.com/abhisek/mathtutor/ent/userstat"
)

// UserStatCreate is the builder for creating a UserStat entity.
type UserStatCreate struct {
	config
	mutation *UserStatMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *UserStatCreate) SetUserID(v int) *UserStatCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetProblemNumber sets the "problem_number" field.
func (_c *UserStatCreate) SetProblemNumber(v int) *UserStatCreate {
	_c.mutation.SetProblemNumber(v)
	return _c
}

// SetTotalAttempts sets the "total_attempts" field.
func (_c *UserStatCreate) SetTotalAttempts(v int) *UserStatCreate {
	_c.mutation.SetTotalAttempts(v)
	return _c
}

// SetNillableTotalAttempts sets the "total_attempts" field if the given value is not nil.
func (_c *UserStatCreate) SetNillableTotalAttempts(v *int) *UserStatCreate {
	if v != nil {
		_c.SetTotalAttempts(*v)
	}
	return _c
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_c *UserStatCreate) SetCorrectAttempts(v int) *UserStatCreate {
	_c.mutation.SetCorrectAttempts(v)
	return _c
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_c *UserStatCreate) SetNillableCorrectAttempts(v *int) *UserStatCreate {
	if v != nil {
		_c.SetCorrectAttempts(*v)
	}
	return _c
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_c *UserStatCreate) SetLastAttemptAt(v time.Time) *UserStatCreate {
	_c.mutation.SetLastAttemptAt(v)
	return _c
}

// Mutation returns the UserStatMutation object of the builder.
func (_c *UserStatCreate) Mutation() *UserStatMutation {
	return _c.mutation
}

// Save creates the UserStat in the database.
func (_c *UserStatCreate) Save(ctx context.Context) (*UserStat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserStatCreate) SaveX(ctx context.Context) *UserStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserStatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserStatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserStatCreate) defaults() {
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		v := userstat.DefaultTotalAttempts
		_c.mutation.SetTotalAttempts(v)
	}
	if _, ok := _c.mutation.CorrectAttempts(); !ok {
		v := userstat.DefaultCorrectAttempts
		_c.mutation.SetCorrectAttempts(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserStatCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserStat.user_id"`)}
	}
	if _, ok := _c.mutation.ProblemNumber(); !ok {
		return &ValidationError{Name: "problem_number", err: errors.New(`ent: missing required field "UserStat.problem_number"`)}
	}
	if _, ok := _c.mutation.TotalAttempts(); !ok {
		return &ValidationError{Name: "total_attempts", err: errors.New(`ent: missing required field "UserStat.total_attempts"`)}
	}
	if _, ok := _c.mutation.CorrectAttempts(); !ok {
		return &ValidationError{Name: "correct_attempts", err: errors.New(`ent: missing required field "UserStat.correct_attempts"`)}
	}
	if _, ok := _c.mutation.LastAttemptAt(); !ok {
		return &ValidationError{Name: "last_attempt_at", err: errors.New(`ent: missing required field "UserStat.last_attempt_at"`)}
	}
	return nil
}

func (_c *UserStatCreate) sqlSave(ctx context.Context) (*UserStat, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserStatCreate) createSpec() (*UserStat, *sqlgraph.CreateSpec) {
	var (
		_node = &UserStat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userstat.Table, sqlgraph.NewFieldSpec(userstat.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userstat.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ProblemNumber(); ok {
		_spec.SetField(userstat.FieldProblemNumber, field.TypeInt, value)
		_node.ProblemNumber = value
	}
	if value, ok := _c.mutation.TotalAttempts(); ok {
		_spec.SetField(userstat.FieldTotalAttempts, field.TypeInt, value)
		_node.TotalAttempts = value
	}
	if value, ok := _c.mutation.CorrectAttempts(); ok {
		_spec.SetField(userstat.FieldCorrectAttempts, field.TypeInt, value)
		_node.CorrectAttempts = value
	}
	if value, ok := _c.mutation.LastAttemptAt(); ok {
		_spec.SetField(userstat.FieldLastAttemptAt, field.TypeTime, value)
		_node.LastAttemptAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserStat.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserStatUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserStatCreate) OnConflict(opts ...sql.ConflictOption) *UserStatUpsertOne {
	_c.conflict = opts
	return &UserStatUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserStat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserStatCreate) OnConflictColumns(columns ...string) *UserStatUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserStatUpsertOne{
		create: _c,
	}
}

type (
	// UserStatUpsertOne is the builder for "upsert"-ing
	//  one UserStat node.
	UserStatUpsertOne struct {
		create *UserStatCreate
	}

	// UserStatUpsert is the "OnConflict" setter.
	UserStatUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *UserStatUpsert) SetUserID(v int) *UserStatUpsert {
	u.Set(userstat.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserStatUpsert) UpdateUserID() *UserStatUpsert {
	u.SetExcluded(userstat.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *UserStatUpsert) AddUserID(v int) *UserStatUpsert {
	u.Add(userstat.FieldUserID, v)
	return u
}

// SetProblemNumber sets the "problem_number" field.
func (u *UserStatUpsert) SetProblemNumber(v int) *UserStatUpsert {
	u.Set(userstat.FieldProblemNumber, v)
	return u
}

// UpdateProblemNumber sets the "problem_number" field to the value that was provided on create.
func (u *UserStatUpsert) UpdateProblemNumber() *UserStatUpsert {
	u.SetExcluded(userstat.FieldProblemNumber)
	return u
}

// AddProblemNumber adds v to the "problem_number" field.
func (u *UserStatUpsert) AddProblemNumber(v int) *UserStatUpsert {
	u.Add(userstat.FieldProblemNumber, v)
	return u
}

// SetTotalAttempts sets the "total_attempts" field.
func (u *UserStatUpsert) SetTotalAttempts(v int) *UserStatUpsert {
	u.Set(userstat.FieldTotalAttempts, v)
	return u
}

// UpdateTotalAttempts sets the "total_attempts" field to the value that was provided on create.
func (u *UserStatUpsert) UpdateTotalAttempts() *UserStatUpsert {
	u.SetExcluded(userstat.FieldTotalAttempts)
	return u
}

// AddTotalAttempts adds v to the "total_attempts" field.
func (u *UserStatUpsert) AddTotalAttempts(v int) *UserStatUpsert {
	u.Add(userstat.FieldTotalAttempts, v)
	return u
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (u *UserStatUpsert) SetCorrectAttempts(v int) *UserStatUpsert {
	u.Set(userstat.FieldCorrectAttempts, v)
	return u
}

// UpdateCorrectAttempts sets the "correct_attempts" field to the value that was provided on create.
func (u *UserStatUpsert) UpdateCorrectAttempts() *UserStatUpsert {
	u.SetExcluded(userstat.FieldCorrectAttempts)
	return u
}

// AddCorrectAttempts adds v to the "correct_attempts" field.
func (u *UserStatUpsert) AddCorrectAttempts(v int) *UserStatUpsert {
	u.Add(userstat.FieldCorrectAttempts, v)
	return u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (u *UserStatUpsert) SetLastAttemptAt(v time.Time) *UserStatUpsert {
	u.Set(userstat.FieldLastAttemptAt, v)
	return u
}

// UpdateLastAttemptAt sets the "last_attempt_at" field to the value that was provided on create.
func (u *UserStatUpsert) UpdateLastAttemptAt() *UserStatUpsert {
	u.SetExcluded(userstat.FieldLastAttemptAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.UserStat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserStatUpsertOne) UpdateNewValues() *UserStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserStat.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserStatUpsertOne) Ignore() *UserStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserStatUpsertOne) DoNothing() *UserStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserStatCreate.OnConflict
// documentation for more info.
func (u *UserStatUpsertOne) Update(set func(*UserStatUpsert)) *UserStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserStatUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserStatUpsertOne) SetUserID(v int) *UserStatUpsertOne {
	return u.Update(func(s *UserStatUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *UserStatUpsertOne) AddUserID(v int) *UserStatUpsertOne {
	return u.Update(func(s *UserStatUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserStatUpsertOne) UpdateUserID() *UserStatUpsertOne {
	return u.Update(func(s *UserStatUpsert) {
		s.UpdateUserID()
	})
}

// SetProblemNumber sets the "problem_number" field.
func (u *UserStatUpsertOne) SetProblemNumber(v int) *UserStatUpsertOne {
	return u.Update(func(s *UserStatUpsert) {
		s.SetProblemNumber(v)
	})
}

// AddProblemNumber adds v to the "problem_number" field.
func (u *UserStatUpsertOne) AddProblemNumber(v int) *UserStatUpsertOne {
	return u.Update(func(s *UserStatUpsert) {
		s.AddProblemNumber(v)
	})
}

// UpdateProblemNumber sets the "problem_number" field to the value that was provided on create.
func (u *UserStatUpsertOne) UpdateProblemNumber() *UserStatUpsertOne {
	return u.Update(func(s *UserStatUpsert) {
		s.UpdateProblemNumber()
	})
}

// SetTotalAttempts sets the "total_attempts" field.
func (u *UserStatUpsertOne) SetTotalAttempts(v int) *UserStatUpsertOne {
	return u.Update(func(s *UserStatUpsert) {
		s.SetTotalAttempts(v)
	})
}

// AddTotalAttempts adds v to the "total_attempts" field.
func (u *UserStatUpsertOne) AddTotalAttempts(v int) *UserStatUpsertOne {
	return u.Update(func(s *UserStatUpsert) {
		s.AddTotalAttempts(v)
	})
}

// UpdateTotalAttempts sets the "total_attempts" field to the value that was provided on create.
func (u *UserStatUpsertOne) UpdateTotalAttempts() *UserStatUpsertOne {
	return u.Update(func(s *UserStatUpsert) {
		s.UpdateTotalAttempts()
	})
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (u *UserStatUpsertOne) SetCorrectAttempts(v int) *UserStatUpsertOne {
	return u.Update(func(s *UserStatUpsert) {
		s.SetCorrectAttempts(v)
	})
}

// AddCorrectAttempts adds v to the "correct_attempts" field.
func (u *UserStatUpsertOne) AddCorrectAttempts(v int) *UserStatUpsertOne {
	return u.Update(func(s *UserStatUpsert) {
		s.AddCorrectAttempts(v)
	})
}

// UpdateCorrectAttempts sets the "correct_attempts" field to the value that was provided on create.
func (u *UserStatUpsertOne) UpdateCorrectAttempts() *UserStatUpsertOne {
	return u.Update(func(s *UserStatUpsert) {
		s.UpdateCorrectAttempts()
	})
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (u *UserStatUpsertOne) SetLastAttemptAt(v time.Time) *UserStatUpsertOne {
	return u.Update(func(s *UserStatUpsert) {
		s.SetLastAttemptAt(v)
	})
}

// UpdateLastAttemptAt sets the "last_attempt_at" field to the value that was provided on create.
func (u *UserStatUpsertOne) UpdateLastAttemptAt() *UserStatUpsertOne {
	return u.Update(func(s *UserStatUpsert) {
		s.UpdateLastAttemptAt()
	})
}

// Exec executes the query.
func (u *UserStatUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserStatCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserStatUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserStatUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserStatUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserStatCreateBulk is the builder for creating many UserStat entities in bulk.
type UserStatCreateBulk struct {
	config
	err      error
	builders []*UserStatCreate
	conflict []sql.ConflictOption
}

// Save creates the UserStat entities in the database.
func (_c *UserStatCreateBulk) Save(ctx context.Context) ([]*UserStat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserStat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserStatMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *UserStatCreateBulk) SaveX(ctx context.Context) []*UserStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserStatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserStatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UserStat.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserStatUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *UserStatCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserStatUpsertBulk {
	_c.conflict = opts
	return &UserStatUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UserStat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserStatCreateBulk) OnConflictColumns(columns ...string) *UserStatUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserStatUpsertBulk{
		create: _c,
	}
}

// UserStatUpsertBulk is the builder for "upsert"-ing
// a bulk of UserStat nodes.
type UserStatUpsertBulk struct {
	create *UserStatCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UserStat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserStatUpsertBulk) UpdateNewValues() *UserStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UserStat.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserStatUpsertBulk) Ignore() *UserStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserStatUpsertBulk) DoNothing() *UserStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserStatCreateBulk.OnConflict
// documentation for more info.
func (u *UserStatUpsertBulk) Update(set func(*UserStatUpsert)) *UserStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserStatUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *UserStatUpsertBulk) SetUserID(v int) *UserStatUpsertBulk {
	return u.Update(func(s *UserStatUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *UserStatUpsertBulk) AddUserID(v int) *UserStatUpsertBulk {
	return u.Update(func(s *UserStatUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *UserStatUpsertBulk) UpdateUserID() *UserStatUpsertBulk {
	return u.Update(func(s *UserStatUpsert) {
		s.UpdateUserID()
	})
}

// SetProblemNumber sets the "problem_number" field.
func (u *UserStatUpsertBulk) SetProblemNumber(v int) *UserStatUpsertBulk {
	return u.Update(func(s *UserStatUpsert) {
		s.SetProblemNumber(v)
	})
}

// AddProblemNumber adds v to the "problem_number" field.
func (u *UserStatUpsertBulk) AddProblemNumber(v int) *UserStatUpsertBulk {
	return u.Update(func(s *UserStatUpsert) {
		s.AddProblemNumber(v)
	})
}

// UpdateProblemNumber sets the "problem_number" field to the value that was provided on create.
func (u *UserStatUpsertBulk) UpdateProblemNumber() *UserStatUpsertBulk {
	return u.Update(func(s *UserStatUpsert) {
		s.UpdateProblemNumber()
	})
}

// SetTotalAttempts sets the "total_attempts" field.
func (u *UserStatUpsertBulk) SetTotalAttempts(v int) *UserStatUpsertBulk {
	return u.Update(func(s *UserStatUpsert) {
		s.SetTotalAttempts(v)
	})
}

// AddTotalAttempts adds v to the "total_attempts" field.
func (u *UserStatUpsertBulk) AddTotalAttempts(v int) *UserStatUpsertBulk {
	return u.Update(func(s *UserStatUpsert) {
		s.AddTotalAttempts(v)
	})
}

// UpdateTotalAttempts sets the "total_attempts" field to the value that was provided on create.
func (u *UserStatUpsertBulk) UpdateTotalAttempts() *UserStatUpsertBulk {
	return u.Update(func(s *UserStatUpsert) {
		s.UpdateTotalAttempts()
	})
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (u *UserStatUpsertBulk) SetCorrectAttempts(v int) *UserStatUpsertBulk {
	return u.Update(func(s *UserStatUpsert) {
		s.SetCorrectAttempts(v)
	})
}

// AddCorrectAttempts adds v to the "correct_attempts" field.
func (u *UserStatUpsertBulk) AddCorrectAttempts(v int) *UserStatUpsertBulk {
	return u.Update(func(s *UserStatUpsert) {
		s.AddCorrectAttempts(v)
	})
}

// UpdateCorrectAttempts sets the "correct_attempts" field to the value that was provided on create.
func (u *UserStatUpsertBulk) UpdateCorrectAttempts() *UserStatUpsertBulk {
	return u.Update(func(s *UserStatUpsert) {
		s.UpdateCorrectAttempts()
	})
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (u *UserStatUpsertBulk) SetLastAttemptAt(v time.Time) *UserStatUpsertBulk {
	return u.Update(func(s *UserStatUpsert) {
		s.SetLastAttemptAt(v)
	})
}

// UpdateLastAttemptAt sets the "last_attempt_at" field to the value that was provided on create.
func (u *UserStatUpsertBulk) UpdateLastAttemptAt() *UserStatUpsertBulk {
	return u.Update(func(s *UserStatUpsert) {
		s.UpdateLastAttemptAt()
	})
}

// Exec executes the query.
func (u *UserStatUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserStatCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserStatCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserStatUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
