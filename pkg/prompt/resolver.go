package prompt

import (
	"context"
	"errors"
	"strings"

	"github.com/artem13815/ragguard/pkg/logger"
)

// Resolver reads prompt overrides on every call. There is no cache: the
// store can be edited at any time.
type Resolver interface {
	Resolve(ctx context.Context, key string) (string, bool)
	ResolveOr(ctx context.Context, key, fallback string) string
}

type resolver struct {
	store Store
	log   *logger.Logger
}

func NewResolver(store Store, log *logger.Logger) Resolver {
	if log == nil {
		log = logger.Nop()
	}
	return &resolver{store: store, log: log.With("stage", "prompt_resolver")}
}

// Resolve returns the override for key. A store failure counts as "no override".
func (r *resolver) Resolve(ctx context.Context, key string) (string, bool) {
	if r.store == nil {
		return "", false
	}
	v, err := r.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.log.Ctx(ctx).Warn("prompt store read failed, using default", "key", key, "error", err)
		}
		return "", false
	}
	if strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

func (r *resolver) ResolveOr(ctx context.Context, key, fallback string) string {
	if v, ok := r.Resolve(ctx, key); ok {
		return v
	}
	return fallback
}
