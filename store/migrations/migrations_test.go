package migrations

import (
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_EmbeddedMigrations_ComeInUpDownPairs(t *testing.T) {
	// arrange
	ups, err := fs.Glob(files, "sql/*.up.sql")
	require.NoError(t, err)

	downs, err := fs.Glob(files, "sql/*.down.sql")
	require.NoError(t, err)

	// assert
	assert.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))

	for _, up := range ups {
		assert.Contains(t, downs, strings.TrimSuffix(up, ".up.sql")+".down.sql")
	}
}

func Test_EmbeddedMigrations_AreReadableBySource(t *testing.T) {
	// arrange
	source, err := iofs.New(files, sqlDir)
	require.NoError(t, err)
	defer func() { _ = source.Close() }()

	// act
	first, err := source.First()

	// assert
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	reader, identifier, err := source.ReadUp(first)
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "create_books", identifier)
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS books")
}

func Test_EmbeddedMigrations_CreateActiveCheckoutIndex(t *testing.T) {
	// act
	body, err := fs.ReadFile(files, "sql/000003_create_checkouts.up.sql")

	// assert
	require.NoError(t, err)
	assert.Contains(t, string(body), "CREATE UNIQUE INDEX IF NOT EXISTS checkouts_one_active_per_user_book")
	assert.Contains(t, string(body), "WHERE return_date IS NULL AND status IN ('pending', 'approved')")
}
