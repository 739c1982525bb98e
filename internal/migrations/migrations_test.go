package migrations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	assert.Equal(t, "1", parseVersion("V1__schema.sql"))
	assert.Equal(t, "12", parseVersion("V12__add_index.sql"))
	assert.Equal(t, "", parseVersion("schema.sql"))
	assert.Equal(t, "", parseVersion("V3.sql"))

	n, ok := parseVersionNumber("V10__x.sql")
	assert.True(t, ok)
	assert.Equal(t, 10, n)

	_, ok = parseVersionNumber("Vx__x.sql")
	assert.False(t, ok)
}

func TestListMigrationsOrdersNumerically(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"V10__late.sql", "V2__second.sql", "V1__first.sql", "adhoc.sql", "README.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "V3__dir.sql"), 0o755))

	migs, err := listMigrations(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(migs))
	for _, mig := range migs {
		names = append(names, mig.Name)
	}
	assert.Equal(t, []string{"V1__first.sql", "V2__second.sql", "V10__late.sql", "adhoc.sql"}, names)
}

func TestRepositoryMigrationsAreVersioned(t *testing.T) {
	migs, err := listMigrations(filepath.Join("..", "..", "migrations"))
	require.NoError(t, err)
	require.NotEmpty(t, migs)
	for _, mig := range migs {
		_, ok := parseVersionNumber(mig.Name)
		assert.True(t, ok, "migration %s must be named V<n>__name.sql", mig.Name)
	}
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty("  "))
	assert.Equal(t, "4", nullIfEmpty("4"))
}
