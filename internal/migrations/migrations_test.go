package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	b, err := fs.ReadFile(Migrations, "00001_init.sql")
	require.NoError(t, err)
	for _, table := range []string{"accounts", "profiles", "experiences", "skills", "tools", "technologies", "projects", "project_technologies", "contacts"} {
		assert.Contains(t, string(b), "CREATE TABLE "+table+" ")
	}
	assert.Contains(t, string(b), "uniq_project_technology UNIQUE (project_id, technology_id)")
	assert.Contains(t, string(b), "CHECK (percentage BETWEEN 0 AND 100)")
}

func TestUpUsesEmbeddedDir(t *testing.T) {
	orig := upContext
	t.Cleanup(func() { upContext = orig })

	var gotDir string
	upContext = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		gotDir = dir
		return errors.New("stop")
	}
	err := Up(context.Background(), nil)
	assert.EqualError(t, err, "stop")
	assert.Equal(t, ".", gotDir)
}
