package functions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrFunctionNotFound = errors.New("function not found")
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create saves a newly generated function together with its first code
// version and opens a fresh chat session for follow-ups.
func (r *Repository) Create(ctx context.Context, userID string, req CreateFunctionRequest) (*Function, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck

	fn := Function{
		LatestVersion: 1,
		LatestCode:    req.Code,
		LatestUsage:   req.UsageInstructions,
	}

	err = tx.QueryRow(
		ctx,
		queryCreateFunction,
		uuid.NewString(),
		userID,
		req.Name,
		uuid.NewString(),
	).Scan(
		&fn.ID,
		&fn.UserID,
		&fn.Name,
		&fn.ChatSessionID,
		&fn.CreatedAt,
		&fn.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	var version int

	err = tx.QueryRow(
		ctx,
		queryInsertVersion,
		uuid.NewString(),
		fn.ID,
		fn.ChatSessionID,
		req.Code,
		req.UsageInstructions,
		req.Prompt,
		time.Now().UTC(),
	).Scan(&version)

	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &fn, nil
}

// Get returns a function with its latest code version. A missing row and a
// row owned by someone else are indistinguishable to the caller.
func (r *Repository) Get(ctx context.Context, functionID, userID string) (*Function, error) {
	var fn Function

	err := r.db.QueryRow(ctx, queryGetWithLatest, functionID, userID).Scan(
		&fn.ID,
		&fn.UserID,
		&fn.Name,
		&fn.ChatSessionID,
		&fn.CreatedAt,
		&fn.UpdatedAt,
		&fn.LatestVersion,
		&fn.LatestCode,
		&fn.LatestUsage,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFunctionNotFound
		}

		return nil, err
	}

	return &fn, nil
}

func (r *Repository) List(ctx context.Context, userID string) ([]Function, error) {
	rows, err := r.db.Query(ctx, queryList, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var fns []Function

	for rows.Next() {
		var fn Function

		err := rows.Scan(
			&fn.ID,
			&fn.UserID,
			&fn.Name,
			&fn.ChatSessionID,
			&fn.CreatedAt,
			&fn.UpdatedAt,
			&fn.LatestVersion,
			&fn.LatestUsage,
		)
		if err != nil {
			return nil, err
		}

		fns = append(fns, fn)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fns, nil
}

func (r *Repository) Delete(ctx context.Context, functionID, userID string) error {
	tag, err := r.db.Exec(ctx, queryDelete, functionID, userID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrFunctionNotFound
	}

	return nil
}

// AppendCodeVersion writes one code version and its chat message pair in a
// single transaction and returns the version number the database assigned.
// Versions are append-only; existing rows are never touched.
func (r *Repository) AppendCodeVersion(ctx context.Context, version CodeVersion, messages []ChatMessage) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck

	var assigned int

	err = tx.QueryRow(
		ctx,
		queryInsertVersion,
		version.ID,
		version.FunctionID,
		version.ChatSessionID,
		version.Code,
		version.UsageInstructions,
		version.Prompt,
		version.CreatedAt,
	).Scan(&assigned)

	if err != nil {
		return 0, err
	}

	for _, msg := range messages {
		_, err := tx.Exec(
			ctx,
			queryInsertMessage,
			msg.ID,
			msg.ChatSessionID,
			msg.FunctionID,
			msg.Role,
			msg.Content,
			msg.IsCode,
			msg.CreatedAt,
		)
		if err != nil {
			return 0, err
		}
	}

	if _, err := tx.Exec(ctx, queryTouchFunction, version.FunctionID); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return assigned, nil
}

// ListVersions returns a function's code versions oldest-first; the last
// element is the current version.
func (r *Repository) ListVersions(ctx context.Context, functionID, userID string) ([]CodeVersion, error) {
	rows, err := r.db.Query(ctx, queryListVersions, functionID, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var versions []CodeVersion

	for rows.Next() {
		var v CodeVersion

		err := rows.Scan(
			&v.ID,
			&v.FunctionID,
			&v.ChatSessionID,
			&v.Version,
			&v.Code,
			&v.UsageInstructions,
			&v.Prompt,
			&v.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		versions = append(versions, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return versions, nil
}

func (r *Repository) ListMessages(ctx context.Context, functionID, userID string) ([]ChatMessage, error) {
	rows, err := r.db.Query(ctx, queryListMessages, functionID, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var msgs []ChatMessage

	for rows.Next() {
		var m ChatMessage

		err := rows.Scan(
			&m.ID,
			&m.ChatSessionID,
			&m.FunctionID,
			&m.Role,
			&m.Content,
			&m.IsCode,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		msgs = append(msgs, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return msgs, nil
}
