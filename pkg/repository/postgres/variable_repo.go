package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/ragguard/pkg/prompt"
)

// VariableRepository stores runtime-editable prompts in the variables table.
type VariableRepository struct {
	pool *pgxpool.Pool
}

func NewVariableRepository(pool *pgxpool.Pool) *VariableRepository {
	return &VariableRepository{pool: pool}
}

func (r *VariableRepository) Get(ctx context.Context, name string) (string, error) {
	var value string
	err := r.pool.QueryRow(ctx, `SELECT value FROM variables WHERE name = $1`, name).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", prompt.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (r *VariableRepository) Set(ctx context.Context, name, value string) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO variables (name, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
`, name, value)
	return err
}

func (r *VariableRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM variables WHERE name = $1`, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return prompt.ErrNotFound
	}
	return nil
}
