package cmd

import (
	"context"
	"testing"

	"url-reconciler/core/config"
	"url-reconciler/core/database"
	"url-reconciler/feature/sources"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestConnections_CloseReleasesDatabase tests that closing the connections
// also closes the table source database handle.
func TestConnections_CloseReleasesDatabase(t *testing.T) {
	cfg := &config.Config{
		SourceA:  sources.Config{Kind: string(sources.KindTable), Location: "links_a"},
		SourceB:  sources.Config{Kind: string(sources.KindTable), Location: "links_b"},
		Database: database.Config{Driver: database.DriverSQLite, Name: ":memory:"},
	}

	conns, err := connect(context.Background(), cfg, zap.NewNop(), true)
	require.NoError(t, err)
	require.NotNil(t, conns.deps.DB)

	sqlDB, err := conns.deps.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())

	conns.Close()

	assert.Error(t, sqlDB.Ping())
}

// TestConnections_CloseEmpty tests that closing with no clients opened is a no-op.
func TestConnections_CloseEmpty(t *testing.T) {
	conns := &connections{}
	assert.NotPanics(t, conns.Close)
}
