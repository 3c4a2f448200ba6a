// Package load turns a target path into a benchmarkable operation. Each
// format delegates the actual reading and decoding to an existing parser;
// the result is discarded.
package load

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format string

const (
	FormatAuto     Format = "auto"
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatCUE      Format = "cue"
	FormatMarkdown Format = "markdown"
	FormatSQLite   Format = "sqlite"
	FormatPostgres Format = "postgres"
	FormatMySQL    Format = "mysql"
)

// ValidFormats lists the accepted --format values.
var ValidFormats = []Format{
	FormatAuto, FormatYAML, FormatJSON, FormatCSV, FormatCUE,
	FormatMarkdown, FormatSQLite, FormatPostgres, FormatMySQL,
}

var (
	ErrUnknownFormat = errors.New("unknown target format")
	ErrTableRequired = errors.New("a --table is required for database targets")
)

// Target is an opened benchmark target. Load performs one full load and
// discards the result.
type Target interface {
	Load(ctx context.Context) error
	Close() error
}

// Options carries per-target settings from the command line.
type Options struct {
	Table string
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "", FormatAuto:
		return FormatAuto, nil
	case "yml":
		return FormatYAML, nil
	case "md":
		return FormatMarkdown, nil
	case "sqlite3":
		return FormatSQLite, nil
	case "postgresql", "pg":
		return FormatPostgres, nil
	}
	for _, v := range ValidFormats {
		if f == v {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of %v", ErrUnknownFormat, s, ValidFormats)
}

// Detect picks a format from a URL scheme or file extension.
func Detect(path string) (Format, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return FormatPostgres, nil
	case strings.HasPrefix(lower, "mysql://"):
		return FormatMySQL, nil
	}

	switch filepath.Ext(lower) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".csv", ".tsv":
		return FormatCSV, nil
	case ".cue":
		return FormatCUE, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	}
	return "", fmt.Errorf("%w: cannot detect format of %q, use --format", ErrUnknownFormat, path)
}

// Resolve returns f, or the detected format when f is FormatAuto.
func Resolve(f Format, path string) (Format, error) {
	if f == FormatAuto || f == "" {
		return Detect(path)
	}
	return f, nil
}

// OpenFile opens one of the file-backed formats. Database formats are
// opened by their own packages.
func OpenFile(ctx context.Context, f Format, path string, opts Options) (Target, error) {
	switch f {
	case FormatYAML, FormatJSON, FormatCSV, FormatCUE, FormatMarkdown:
		return newFileTarget(f, path), nil
	case FormatSQLite:
		return OpenSQLite(ctx, path, opts)
	}
	return nil, fmt.Errorf("%w: %q is not a file format", ErrUnknownFormat, f)
}
