package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/ragguard/pkg/prompt"
	sqlitestorage "github.com/artem13815/ragguard/pkg/storage/sqlite"
)

func newRepo(t *testing.T) *VariableRepository {
	t.Helper()
	db, err := sqlitestorage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewVariableRepository(db)
}

func TestVariableRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.Get(ctx, prompt.KeyPreFilter)
	assert.ErrorIs(t, err, prompt.ErrNotFound)

	require.NoError(t, repo.Set(ctx, prompt.KeyPreFilter, "v1"))
	require.NoError(t, repo.Set(ctx, prompt.KeyPreFilter, "v2"))
	v, err := repo.Get(ctx, prompt.KeyPreFilter)
	require.NoError(t, err)
	assert.Equal(t, "v2", v)

	require.NoError(t, repo.Delete(ctx, prompt.KeyPreFilter))
	assert.ErrorIs(t, repo.Delete(ctx, prompt.KeyPreFilter), prompt.ErrNotFound)
}

func TestVariableRepositoryFeedsResolver(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	r := prompt.NewResolver(repo, nil)

	assert.Equal(t, "default", r.ResolveOr(ctx, prompt.KeyRelevance, "default"))
	require.NoError(t, repo.Set(ctx, prompt.KeyRelevance, "dari database"))
	assert.Equal(t, "dari database", r.ResolveOr(ctx, prompt.KeyRelevance, "default"))
}
