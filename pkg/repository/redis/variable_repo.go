package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/artem13815/ragguard/pkg/prompt"
)

// VariableRepository keeps prompt overrides as plain string keys under a prefix.
type VariableRepository struct {
	rdb    goredis.UniversalClient
	prefix string
}

func NewVariableRepository(rdb goredis.UniversalClient, prefix string) *VariableRepository {
	return &VariableRepository{rdb: rdb, prefix: prefix}
}

func (r *VariableRepository) key(name string) string { return r.prefix + name }

func (r *VariableRepository) Get(ctx context.Context, name string) (string, error) {
	v, err := r.rdb.Get(ctx, r.key(name)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", prompt.ErrNotFound
		}
		return "", err
	}
	return v, nil
}

func (r *VariableRepository) Set(ctx context.Context, name, value string) error {
	return r.rdb.Set(ctx, r.key(name), value, 0).Err()
}

func (r *VariableRepository) Delete(ctx context.Context, name string) error {
	n, err := r.rdb.Del(ctx, r.key(name)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return prompt.ErrNotFound
	}
	return nil
}
