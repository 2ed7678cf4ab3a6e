package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	rel "github.com/JoseManuelVargas/ud-mcic-db-t4"
	"github.com/JoseManuelVargas/ud-mcic-db-t4/internal/logger"
	"github.com/JoseManuelVargas/ud-mcic-db-t4/internal/recordio"
)

var (
	// ErrNoInput is returned when neither a schema file nor a manual schema
	// is given.
	ErrNoInput = errors.New("no schema given: use --file, or --attrs and --deps")
	// ErrConflictingInput is returned when both a file and a manual schema
	// are given.
	ErrConflictingInput = errors.New("--file cannot be combined with --attrs or --deps")
)

// Input is where a schema comes from.  It is resolved once from the flags;
// past that point only the Record it produces is used.
type Input interface {
	Record(fs afero.Fs) (rel.Record, error)
}

// FileInput reads a persisted schema record.
type FileInput struct {
	Path string
}

func (in FileInput) Record(fs afero.Fs) (rel.Record, error) {
	return recordio.Load(fs, in.Path)
}

// ManualInput is a schema typed on the command line, like "ABCDE" and
// "AB->C,C->DE".
type ManualInput struct {
	Attributes   string
	Dependencies string
}

func (in ManualInput) Record(afero.Fs) (rel.Record, error) {
	rec := rel.Record{
		TSet: rel.ParseAttributes(in.Attributes).Strings(),
		LSet: [][]string{},
	}
	if in.Dependencies == "" {
		return rec, nil
	}
	l, err := rel.ParseDependencies(in.Dependencies)
	if err != nil {
		return rel.Record{}, err
	}
	for _, fd := range l {
		rec.LSet = append(rec.LSet, []string{fd.LHS.Concat(), fd.RHS.Concat()})
	}
	return rec, nil
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Schema record to read (JSON or YAML)")
	cmd.Flags().StringP("attrs", "t", "", "Attributes of a manual schema, like ABCDE")
	cmd.Flags().StringP("deps", "l", "", "Dependencies of a manual schema, like AB->C,C->DE")
}

// resolveInput picks the input variant from the flags.
func resolveInput(cmd *cobra.Command) (Input, error) {
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, fmt.Errorf("failed to get file flag: %w", err)
	}
	attrs, err := cmd.Flags().GetString("attrs")
	if err != nil {
		return nil, fmt.Errorf("failed to get attrs flag: %w", err)
	}
	deps, err := cmd.Flags().GetString("deps")
	if err != nil {
		return nil, fmt.Errorf("failed to get deps flag: %w", err)
	}
	switch {
	case file != "" && (attrs != "" || deps != ""):
		return nil, ErrConflictingInput
	case file != "":
		return FileInput{Path: file}, nil
	case attrs != "":
		return ManualInput{Attributes: attrs, Dependencies: deps}, nil
	default:
		return nil, ErrNoInput
	}
}

// loadSchema resolves the input of cmd and builds its schema.
func (a *app) loadSchema(cmd *cobra.Command) (*rel.Schema, error) {
	in, err := resolveInput(cmd)
	if err != nil {
		return nil, err
	}
	rec, err := in.Record(a.fs)
	if err != nil {
		return nil, err
	}
	s, err := rel.LoadSchema(rec)
	if err != nil {
		return nil, err
	}
	logger.FromContext(cmd.Context()).Debug("schema loaded", "input", fmt.Sprintf("%T", in), "attributes", s.Deg(), "dependencies", len(s.Dependencies()))
	return s, nil
}
