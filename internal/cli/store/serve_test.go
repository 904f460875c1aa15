package store

import (
	"testing"

	"github.com/flke/flke/internal/cli"
	"github.com/flke/flke/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDSN(t *testing.T) {
	dsn, err := resolveDSN("", true)
	require.NoError(t, err)
	assert.Equal(t, database.MemoryDSN, dsn)

	dsn, err = resolveDSN("/tmp/store.db", false)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/store.db", dsn)

	t.Setenv("HOME", t.TempDir())
	dsn, err = resolveDSN("", false)
	require.NoError(t, err)
	assert.Contains(t, dsn, "store.db")

	_, err = resolveDSN("/tmp/store.db", true)
	assert.ErrorIs(t, err, cli.ErrUsage)
}
