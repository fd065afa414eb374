package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/artem13815/ragguard/pkg/prompt"
)

// VariableRepository is the single-node prompt store used for local runs.
type VariableRepository struct {
	db *sql.DB
}

func NewVariableRepository(db *sql.DB) *VariableRepository {
	return &VariableRepository{db: db}
}

func (r *VariableRepository) Get(ctx context.Context, name string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM variables WHERE name = ?`, name).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", prompt.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (r *VariableRepository) Set(ctx context.Context, name, value string) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO variables (name, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`, name, value, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

func (r *VariableRepository) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM variables WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return prompt.ErrNotFound
	}
	return nil
}
