package load

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// fileTarget reads the whole file on every Load and hands the bytes to a
// decoder. Nothing is checked before the first Load, so a missing file
// surfaces as the first trial's error.
type fileTarget struct {
	path   string
	decode func(path string, data []byte) error
}

func newFileTarget(f Format, path string) *fileTarget {
	t := &fileTarget{path: path}
	switch f {
	case FormatYAML:
		t.decode = decodeYAML
	case FormatJSON:
		t.decode = decodeJSON
	case FormatCSV:
		t.decode = decodeCSV
	case FormatCUE:
		t.decode = decodeCUE
	case FormatMarkdown:
		md := goldmark.New()
		t.decode = func(_ string, data []byte) error {
			md.Parser().Parse(text.NewReader(data))
			return nil
		}
	}
	return t
}

func (t *fileTarget) Load(_ context.Context) error {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return err
	}
	return t.decode(t.path, data)
}

func (t *fileTarget) Close() error { return nil }

func decodeYAML(path string, data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}
}

func decodeJSON(path string, data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func decodeCSV(path string, data []byte) error {
	r := csv.NewReader(bytes.NewReader(data))
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		r.Comma = '\t'
	}
	r.ReuseRecord = true
	for {
		_, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}
}

func decodeCUE(path string, data []byte) error {
	v := cuecontext.New().CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if err := v.Validate(); err != nil {
		return fmt.Errorf("evaluate %s: %w", path, err)
	}
	return nil
}
