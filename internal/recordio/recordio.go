// Package recordio reads and writes schema records on a filesystem.  Records
// are JSON or YAML; since JSON is a subset of YAML one decoder reads both.
package recordio

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
	"github.com/tidwall/pretty"

	rel "github.com/JoseManuelVargas/ud-mcic-db-t4"
)

// Format is the encoding of a record file.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatOf picks the format from the file extension; anything other than
// .yaml or .yml is JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Decode parses a record.  Fields absent from data stay nil, so LoadSchema
// can report them; a present but empty list decodes to an empty slice.
func Decode(data []byte) (rel.Record, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return rel.Record{}, fmt.Errorf("rel: invalid schema record: %w", err)
	}
	var rec rel.Record
	if v, ok := raw["t_set"]; ok {
		t, err := stringList(v)
		if err != nil {
			return rel.Record{}, fmt.Errorf("rel: invalid t_set: %w", err)
		}
		rec.TSet = t
	}
	if v, ok := raw["l_set"]; ok {
		items, ok := v.([]any)
		if !ok && v != nil {
			return rel.Record{}, fmt.Errorf("rel: invalid l_set: expected a list, found %T", v)
		}
		rec.LSet = make([][]string, len(items))
		for i, item := range items {
			pair, err := stringList(item)
			if err != nil {
				return rel.Record{}, &rel.MalformedDependencyError{Index: i, Err: err}
			}
			rec.LSet[i] = pair
		}
	}
	return rec, nil
}

// stringList converts a decoded list of scalars into strings.
func stringList(v any) ([]string, error) {
	if v == nil {
		return []string{}, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list, found %T", v)
	}
	strs := make([]string, len(items))
	for i, item := range items {
		switch x := item.(type) {
		case string:
			strs[i] = x
		case nil:
			return nil, fmt.Errorf("element %d is empty", i)
		default:
			strs[i] = fmt.Sprint(x)
		}
	}
	return strs, nil
}

// Encode writes rec in the given format.  JSON output is indented.
func Encode(rec rel.Record, format Format) ([]byte, error) {
	if format == YAML {
		return yaml.Marshal(rec)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(data), nil
}

// Load reads the record at path.  A read failure is an *rel.IOError.
func Load(fs afero.Fs, path string) (rel.Record, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return rel.Record{}, &rel.IOError{Op: "read", Path: path, Err: err}
	}
	return Decode(data)
}

// LoadSchema reads and validates the schema at path.
func LoadSchema(fs afero.Fs, path string) (*rel.Schema, error) {
	rec, err := Load(fs, path)
	if err != nil {
		return nil, err
	}
	return rel.LoadSchema(rec)
}

// Save writes rec to path, in the format its extension names.  A write
// failure is an *rel.IOError.
func Save(fs afero.Fs, path string, rec rel.Record) error {
	data, err := Encode(rec, FormatOf(path))
	if err != nil {
		return &rel.IOError{Op: "encode", Path: path, Err: err}
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return &rel.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// SaveSchema writes s to path.
func SaveSchema(fs afero.Fs, path string, s *rel.Schema) error {
	return Save(fs, path, rel.SaveSchema(s))
}
