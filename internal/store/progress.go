package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/abhisek/mathtutor/ent"
	"github.com/abhisek/mathtutor/ent/chatmessage"
	"github.com/abhisek/mathtutor/ent/user"
	"github.com/abhisek/mathtutor/ent/userstat"
)

const (
	defaultChatLimit = 10
	defaultWeakLimit = 3
)

type progressRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *progressRepo) GetOrCreateUser(ctx context.Context, name string) (*User, error) {
	u, err := r.client.User.Query().
		Where(user.Name(name)).
		Only(ctx)
	if err == nil {
		return &User{ID: u.ID, Name: u.Name}, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query user: %w", err)
	}

	created, err := r.client.User.Create().
		SetName(name).
		Save(ctx)
	if err == nil {
		return &User{ID: created.ID, Name: created.Name}, nil
	}

	// Another session inserted the same name first. The unique
	// constraint guarantees a single row, so retry as a lookup.
	if ent.IsConstraintError(err) {
		u, err := r.client.User.Query().
			Where(user.Name(name)).
			Only(ctx)
		if err != nil {
			return nil, fmt.Errorf("lookup user after conflict: %w", err)
		}
		return &User{ID: u.ID, Name: u.Name}, nil
	}

	return nil, fmt.Errorf("create user: %w", err)
}

func (r *progressRepo) RecordAttempt(ctx context.Context, userID, problemNumber int, answer string, isCorrect bool) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin attempt tx: %w", err)
	}

	now := time.Now().UTC()
	correct := 0
	if isCorrect {
		correct = 1
	}

	err = tx.ProblemAttempt.Create().
		SetUserID(userID).
		SetProblemNumber(problemNumber).
		SetAnswer(answer).
		SetIsCorrect(isCorrect).
		SetCreatedAt(now).
		Exec(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("append attempt log: %w", err))
	}

	// Single-statement upsert guarded by the (user_id, problem_number)
	// unique index: insert counters (1, 0|1) on first attempt, increment
	// on every later one.
	err = tx.UserStat.Create().
		SetUserID(userID).
		SetProblemNumber(problemNumber).
		SetTotalAttempts(1).
		SetCorrectAttempts(correct).
		SetLastAttemptAt(now).
		OnConflictColumns(userstat.FieldUserID, userstat.FieldProblemNumber).
		Update(func(u *ent.UserStatUpsert) {
			u.AddTotalAttempts(1)
			u.AddCorrectAttempts(correct)
			u.SetLastAttemptAt(now)
		}).
		Exec(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("upsert user stat: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit attempt tx: %w", err)
	}
	return nil
}

func (r *progressRepo) RecordChat(ctx context.Context, userID, problemNumber int, role, content string) error {
	err := r.client.ChatMessage.Create().
		SetUserID(userID).
		SetProblemNumber(problemNumber).
		SetRole(role).
		SetContent(content).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("append chat message: %w", err)
	}
	return nil
}

func (r *progressRepo) Stats(ctx context.Context, userID int) ([]Stat, error) {
	rows, err := r.client.UserStat.Query().
		Where(userstat.UserID(userID)).
		Order(ent.Desc(userstat.FieldTotalAttempts), ent.Asc(userstat.FieldProblemNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}

	stats := make([]Stat, 0, len(rows))
	for _, row := range rows {
		s := Stat{
			ProblemNumber:   row.ProblemNumber,
			TotalAttempts:   row.TotalAttempts,
			CorrectAttempts: row.CorrectAttempts,
			LastAttemptAt:   row.LastAttemptAt,
		}
		if row.TotalAttempts > 0 {
			s.SuccessRate = float64(row.CorrectAttempts) / float64(row.TotalAttempts)
		}
		stats = append(stats, s)
	}
	return stats, nil
}

func (r *progressRepo) RecentChat(ctx context.Context, userID, limit int) ([]ChatMessage, error) {
	if limit <= 0 {
		limit = defaultChatLimit
	}

	// created_at has second granularity in SQLite, so the id is the
	// final key: same-timestamp rows (a user/assistant pair) keep
	// insertion order.
	rows, err := r.client.ChatMessage.Query().
		Where(chatmessage.UserID(userID)).
		Order(ent.Desc(chatmessage.FieldCreatedAt), ent.Desc(chatmessage.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chat history: %w", err)
	}

	msgs := make([]ChatMessage, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, ChatMessage{
			ProblemNumber: row.ProblemNumber,
			Role:          row.Role,
			Content:       row.Content,
			CreatedAt:     row.CreatedAt,
		})
	}
	return msgs, nil
}

// WeakProblems orders by an arithmetic expression over two columns, which
// ent's query builder can't express, so it drops to raw SQL over the same
// connection.
func (r *progressRepo) WeakProblems(ctx context.Context, userID, limit int) ([]int, error) {
	if limit <= 0 {
		limit = defaultWeakLimit
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT problem_number
		FROM user_stats
		WHERE user_id = ? AND total_attempts > 0
		ORDER BY CAST(correct_attempts AS REAL) / total_attempts ASC, problem_number ASC
		LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query weak problems: %w", err)
	}
	defer rows.Close()

	var problems []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan weak problem: %w", err)
		}
		problems = append(problems, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weak problems: %w", err)
	}
	return problems, nil
}

// rollback rolls the transaction back and wraps its error, if any, around
// the original failure.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback: %v)", err, rerr)
	}
	return err
}
