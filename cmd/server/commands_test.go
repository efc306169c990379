package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "migrate")
}

func TestMigrateCommand_CreatesSQLiteSchema(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", filepath.Join(t.TempDir(), "nested", "planner.db"))
	t.Setenv("DB_LOG_LEVEL", "silent")
	t.Setenv("PLANNER_TIMEZONE", "UTC")

	root := newRootCommand()
	root.SetArgs([]string{"migrate"})

	require.NoError(t, root.Execute())
}
