package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/ragguard/pkg/prompt"
	pgstorage "github.com/artem13815/ragguard/pkg/storage/postgres"
)

// Requires a disposable database: TEST_DATABASE_URL=postgres://... go test ./...
func TestVariableRepository(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := pgstorage.Connect(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, pgstorage.Migrate(ctx, pool))

	repo := NewVariableRepository(pool)
	_ = repo.Delete(ctx, prompt.KeyPreFilter)

	_, err = repo.Get(ctx, prompt.KeyPreFilter)
	assert.ErrorIs(t, err, prompt.ErrNotFound)

	require.NoError(t, repo.Set(ctx, prompt.KeyPreFilter, "v1"))
	require.NoError(t, repo.Set(ctx, prompt.KeyPreFilter, "v2"))
	v, err := repo.Get(ctx, prompt.KeyPreFilter)
	require.NoError(t, err)
	assert.Equal(t, "v2", v)

	require.NoError(t, repo.Delete(ctx, prompt.KeyPreFilter))
	assert.ErrorIs(t, repo.Delete(ctx, prompt.KeyPreFilter), prompt.ErrNotFound)
}
