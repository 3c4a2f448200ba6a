package load

import (
	"context"
	"database/sql"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSQLite(t *testing.T) string {
	t.Helper()
	return seedSQLiteAt(t, filepath.Join(t.TempDir(), "bench.db"))
}

func seedSQLiteAt(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	// a plain DSN is cut at '?', so seed through an escaped URI too
	u := &url.URL{Scheme: "file", Path: filepath.ToSlash(path), RawQuery: "mode=rwc"}
	db, err := sql.Open("sqlite3", u.String())
	require.NoError(t, err)
	defer db.Close()

	stmts := []string{
		"CREATE TABLE accounts (id INTEGER PRIMARY KEY, name TEXT NOT NULL, balance REAL)",
		"CREATE TABLE events (id INTEGER PRIMARY KEY, payload BLOB)",
		"INSERT INTO accounts (name, balance) VALUES ('ada', 10.5), ('bob', NULL), ('cy', 3)",
		"INSERT INTO events (payload) VALUES (x'00ff')",
	}
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	return path
}

func TestSQLiteTarget(t *testing.T) {
	path := seedSQLite(t)

	t.Run("all tables", func(t *testing.T) {
		target, err := OpenSQLite(context.Background(), path, Options{})
		require.NoError(t, err)
		defer target.Close()

		require.NoError(t, target.Load(context.Background()))
		require.NoError(t, target.Load(context.Background()))
	})

	t.Run("one table", func(t *testing.T) {
		target, err := OpenSQLite(context.Background(), path, Options{Table: "accounts"})
		require.NoError(t, err)
		defer target.Close()

		require.NoError(t, target.Load(context.Background()))
	})

	t.Run("missing table", func(t *testing.T) {
		target, err := OpenSQLite(context.Background(), path, Options{Table: "nope"})
		require.NoError(t, err)
		defer target.Close()

		err = target.Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read table nope")
	})
}

func TestDrainRows(t *testing.T) {
	path := seedSQLite(t)
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	n, err := DrainRows(context.Background(), db, "SELECT * FROM "+QuoteIdent("accounts"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestSQLiteTargetSpecialCharacters(t *testing.T) {
	for _, name := range []string{"run#1.db", "what?.db", "50%.db", "with space.db"} {
		t.Run(name, func(t *testing.T) {
			path := seedSQLiteAt(t, filepath.Join(t.TempDir(), name))

			target, err := OpenSQLite(context.Background(), path, Options{Table: "accounts"})
			require.NoError(t, err)
			defer target.Close()

			require.NoError(t, target.Load(context.Background()))
		})
	}
}

func TestSQLiteTargetRelativePath(t *testing.T) {
	dir := t.TempDir()
	seedSQLiteAt(t, filepath.Join(dir, "data", "bench.db"))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	target, err := OpenSQLite(context.Background(), filepath.Join("data", "bench.db"), Options{})
	require.NoError(t, err)
	defer target.Close()

	require.NoError(t, target.Load(context.Background()))
}

func TestReadOnlyURI(t *testing.T) {
	uri, err := readOnlyURI("/tmp/run#1?.db")
	require.NoError(t, err)
	assert.Equal(t, "file:///tmp/run%231%3F.db?mode=ro", uri)
}
