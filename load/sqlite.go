package load

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// sqliteTarget scans every row of one table, or of every user table
// when no table is named.
type sqliteTarget struct {
	path  string
	table string
	db    *sql.DB
}

// OpenSQLite prepares a SQLite target. The file is opened read-only and
// is not touched until the first Load.
func OpenSQLite(_ context.Context, path string, opts Options) (Target, error) {
	return &sqliteTarget{path: path, table: opts.Table}, nil
}

func (t *sqliteTarget) Load(ctx context.Context) error {
	if t.db == nil {
		// sqlite3 would happily create a missing file; surface it instead
		if _, err := os.Stat(t.path); err != nil {
			return err
		}
		dsn, err := readOnlyURI(t.path)
		if err != nil {
			return err
		}
		db, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		t.db = db
	}

	tables := []string{t.table}
	if t.table == "" {
		var err error
		if tables, err = listSQLiteTables(ctx, t.db); err != nil {
			return err
		}
	}
	for _, name := range tables {
		if _, err := DrainRows(ctx, t.db, "SELECT * FROM "+QuoteIdent(name)); err != nil {
			return fmt.Errorf("read table %s: %w", name, err)
		}
	}
	return nil
}

func (t *sqliteTarget) Close() error {
	if t.db == nil {
		return nil
	}
	return t.db.Close()
}

func listSQLiteTables(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// readOnlyURI builds a file: URI for path. '#', '?' and '%' in the name
// are escaped, and the path is made absolute so it never reads as a host.
func readOnlyURI(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := &url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: "mode=ro"}
	return u.String(), nil
}
