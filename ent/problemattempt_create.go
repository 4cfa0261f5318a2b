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
	"github.com/abhisek/mathtutor/ent/problemattempt"
)

// ProblemAttemptCreate is the builder for creating a ProblemAttempt entity.
type ProblemAttemptCreate struct {
	config
	mutation *ProblemAttemptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *ProblemAttemptCreate) SetUserID(v int) *ProblemAttemptCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetProblemNumber sets the "problem_number" field.
func (_c *ProblemAttemptCreate) SetProblemNumber(v int) *ProblemAttemptCreate {
	_c.mutation.SetProblemNumber(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *ProblemAttemptCreate) SetAnswer(v string) *ProblemAttemptCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *ProblemAttemptCreate) SetIsCorrect(v bool) *ProblemAttemptCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProblemAttemptCreate) SetCreatedAt(v time.Time) *ProblemAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProblemAttemptCreate) SetNillableCreatedAt(v *time.Time) *ProblemAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ProblemAttemptMutation object of the builder.
func (_c *ProblemAttemptCreate) Mutation() *ProblemAttemptMutation {
	return _c.mutation
}

// Save creates the ProblemAttempt in the database.
func (_c *ProblemAttemptCreate) Save(ctx context.Context) (*ProblemAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProblemAttemptCreate) SaveX(ctx context.Context) *ProblemAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProblemAttemptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := problemattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProblemAttemptCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ProblemAttempt.user_id"`)}
	}
	if _, ok := _c.mutation.ProblemNumber(); !ok {
		return &ValidationError{Name: "problem_number", err: errors.New(`ent: missing required field "ProblemAttempt.problem_number"`)}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "ProblemAttempt.answer"`)}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "ProblemAttempt.is_correct"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProblemAttempt.created_at"`)}
	}
	return nil
}

func (_c *ProblemAttemptCreate) sqlSave(ctx context.Context) (*ProblemAttempt, error) {
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

func (_c *ProblemAttemptCreate) createSpec() (*ProblemAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &ProblemAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(problemattempt.Table, sqlgraph.NewFieldSpec(problemattempt.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(problemattempt.FieldUserID, field.TypeInt, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ProblemNumber(); ok {
		_spec.SetField(problemattempt.FieldProblemNumber, field.TypeInt, value)
		_node.ProblemNumber = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(problemattempt.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(problemattempt.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(problemattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProblemAttempt.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProblemAttemptUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProblemAttemptCreate) OnConflict(opts ...sql.ConflictOption) *ProblemAttemptUpsertOne {
	_c.conflict = opts
	return &ProblemAttemptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProblemAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProblemAttemptCreate) OnConflictColumns(columns ...string) *ProblemAttemptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProblemAttemptUpsertOne{
		create: _c,
	}
}

type (
	// ProblemAttemptUpsertOne is the builder for "upsert"-ing
	//  one ProblemAttempt node.
	ProblemAttemptUpsertOne struct {
		create *ProblemAttemptCreate
	}

	// ProblemAttemptUpsert is the "OnConflict" setter.
	ProblemAttemptUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ProblemAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProblemAttemptUpsertOne) UpdateNewValues() *ProblemAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(problemattempt.FieldUserID)
		}
		if _, exists := u.create.mutation.ProblemNumber(); exists {
			s.SetIgnore(problemattempt.FieldProblemNumber)
		}
		if _, exists := u.create.mutation.Answer(); exists {
			s.SetIgnore(problemattempt.FieldAnswer)
		}
		if _, exists := u.create.mutation.IsCorrect(); exists {
			s.SetIgnore(problemattempt.FieldIsCorrect)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(problemattempt.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProblemAttempt.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProblemAttemptUpsertOne) Ignore() *ProblemAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProblemAttemptUpsertOne) DoNothing() *ProblemAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProblemAttemptCreate.OnConflict
// documentation for more info.
func (u *ProblemAttemptUpsertOne) Update(set func(*ProblemAttemptUpsert)) *ProblemAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProblemAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ProblemAttemptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProblemAttemptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProblemAttemptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProblemAttemptUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProblemAttemptUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProblemAttemptCreateBulk is the builder for creating many ProblemAttempt entities in bulk.
type ProblemAttemptCreateBulk struct {
	config
	err      error
	builders []*ProblemAttemptCreate
	conflict []sql.ConflictOption
}

// Save creates the ProblemAttempt entities in the database.
func (_c *ProblemAttemptCreateBulk) Save(ctx context.Context) ([]*ProblemAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProblemAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProblemAttemptMutation)
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
func (_c *ProblemAttemptCreateBulk) SaveX(ctx context.Context) []*ProblemAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProblemAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProblemAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProblemAttempt.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProblemAttemptUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProblemAttemptCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProblemAttemptUpsertBulk {
	_c.conflict = opts
	return &ProblemAttemptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProblemAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProblemAttemptCreateBulk) OnConflictColumns(columns ...string) *ProblemAttemptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProblemAttemptUpsertBulk{
		create: _c,
	}
}

// ProblemAttemptUpsertBulk is the builder for "upsert"-ing
// a bulk of ProblemAttempt nodes.
type ProblemAttemptUpsertBulk struct {
	create *ProblemAttemptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProblemAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProblemAttemptUpsertBulk) UpdateNewValues() *ProblemAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(problemattempt.FieldUserID)
			}
			if _, exists := b.mutation.ProblemNumber(); exists {
				s.SetIgnore(problemattempt.FieldProblemNumber)
			}
			if _, exists := b.mutation.Answer(); exists {
				s.SetIgnore(problemattempt.FieldAnswer)
			}
			if _, exists := b.mutation.IsCorrect(); exists {
				s.SetIgnore(problemattempt.FieldIsCorrect)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(problemattempt.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProblemAttempt.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProblemAttemptUpsertBulk) Ignore() *ProblemAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProblemAttemptUpsertBulk) DoNothing() *ProblemAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProblemAttemptCreateBulk.OnConflict
// documentation for more info.
func (u *ProblemAttemptUpsertBulk) Update(set func(*ProblemAttemptUpsert)) *ProblemAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProblemAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ProblemAttemptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProblemAttemptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProblemAttemptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProblemAttemptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
