package checkers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqlitestorage "github.com/artem13815/ragguard/pkg/storage/sqlite"
)

func TestSQLChecker(t *testing.T) {
	db, err := sqlitestorage.Open(context.Background(), ":memory:")
	require.NoError(t, err)

	c := NewSQLChecker("sqlite", db)
	assert.Equal(t, "sqlite", c.Name())
	assert.NoError(t, c.Check(context.Background()))

	require.NoError(t, db.Close())
	assert.Error(t, c.Check(context.Background()))
}
