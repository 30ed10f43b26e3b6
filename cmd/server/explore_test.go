package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/anonto42/travel-discover/backend/internal/app"
	"github.com/anonto42/travel-discover/backend/internal/services"
	"github.com/anonto42/travel-discover/backend/pkg/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	cfg := &config.Config{
		DBDriver:         "sqlite",
		SQLitePath:       filepath.Join(t.TempDir(), "cli.db"),
		HistoryBackend:   "sql",
		DiscoveryTimeout: time.Second,
	}
	db, err := config.InitDB(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.CloseDB(zap.NewNop()) })
	require.NoError(t, config.Migrate(db.SQL))
	a, err := app.New(cfg, db, zap.NewNop())
	require.NoError(t, err)
	return a
}

func runExplore(t *testing.T, a *app.App, userID, input string) string {
	t.Helper()
	var out bytes.Buffer
	x := &explorer{
		session: services.NewSearchSession(a.Explorer, userID),
		saved:   a.SavedPlaces,
		history: a.History,
		userID:  userID,
		out:     &out,
	}
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	require.NoError(t, x.run(cmd, strings.NewReader(input)))
	return out.String()
}

func TestExploreSearchSaveAndList(t *testing.T) {
	a := newTestApp(t)
	out := runExplore(t, a, "cli-user", "paris\nsave 1\nsaved\nhistory\nparis\nquit\n")

	assert.Contains(t, out, "Paris (curated)")
	assert.Contains(t, out, "Places:")
	assert.Contains(t, out, "saved Eiffel Tower")
	assert.Contains(t, out, "  Eiffel Tower (place)")
	assert.Contains(t, out, "[*] Eiffel Tower", "second search shows the saved mark")
}

func TestExploreReportsErrors(t *testing.T) {
	a := newTestApp(t)
	out := runExplore(t, a, "", "save 1\n"+strings.Repeat("x", 101)+"\natlantis\nsave 99\nsave 2\n")

	assert.Contains(t, out, "search for a location first")
	assert.Contains(t, out, "! Location is too long")
	assert.Contains(t, out, "Atlantis (generated)")
	assert.Contains(t, out, "pick an item between 1 and 9")
	assert.Contains(t, out, "! user not authenticated")
}
