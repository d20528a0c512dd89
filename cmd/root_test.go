package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tabula/internal/cli"
	"github.com/thenoetrevino/tabula/internal/testutil"
)

// isolate points config, logs and the default database at a temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("TABULA_DB", "")
	t.Setenv("TABULA_THEME_FILE", "")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	testutil.SetupCobraCommand(root, args)
	return testutil.ExecuteCommand(t, root)
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tabula dev")
}

func TestRoot_DBFlag(t *testing.T) {
	dir := isolate(t)
	dbPath := filepath.Join(dir, "shop.db")

	_, err := run(t, "--db", dbPath, "table", "create", "products", "id INTEGER, name VARCHAR(20), price INTEGER, qty INTEGER")
	require.NoError(t, err)

	_, err = run(t, "--db", dbPath, "row", "insert", "--table", "products", "--row", "1,Product X,100,10")
	require.NoError(t, err)

	out, err := run(t, "--db", dbPath, "query", "SELECT * FROM products", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "1,Product X,100,10\n", out)
	assert.FileExists(t, dbPath)
}

func TestRoot_EnvDatabase(t *testing.T) {
	dir := isolate(t)
	dbPath := filepath.Join(dir, "env.db")
	t.Setenv("TABULA_DB", dbPath)

	_, err := run(t, "table", "create", "notes", "body TEXT")
	require.NoError(t, err)
	assert.FileExists(t, dbPath)
}

func TestRoot_ErrorsCarryExitCodes(t *testing.T) {
	dir := isolate(t)
	dbPath := filepath.Join(dir, "shop.db")

	_, err := run(t, "--db", dbPath, "table", "describe", "missing")
	require.Error(t, err)
	assert.True(t, cli.IsReported(err))
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))

	_, err = run(t, "--db", dbPath, "table", "list", "--no-such-flag")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
}
