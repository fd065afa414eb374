package redis

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/ragguard/pkg/prompt"
)

// Requires a disposable Redis: TEST_REDIS_ADDR=localhost:6379 go test ./...
func TestVariableRepository(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	rdb, err := Connect(ctx, addr)
	require.NoError(t, err)
	defer rdb.Close()

	repo := NewVariableRepository(rdb, "test:"+uuid.NewString()+":")

	_, err = repo.Get(ctx, prompt.KeyRelevance)
	assert.ErrorIs(t, err, prompt.ErrNotFound)

	require.NoError(t, repo.Set(ctx, prompt.KeyRelevance, "cek relevansi"))
	v, err := repo.Get(ctx, prompt.KeyRelevance)
	require.NoError(t, err)
	assert.Equal(t, "cek relevansi", v)

	require.NoError(t, repo.Delete(ctx, prompt.KeyRelevance))
	assert.ErrorIs(t, repo.Delete(ctx, prompt.KeyRelevance), prompt.ErrNotFound)
}

func TestConnectRequiresAddr(t *testing.T) {
	_, err := Connect(context.Background(), "")
	assert.Error(t, err)
}
