package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
	"github.com/tidwall/pretty"

	rel "github.com/JoseManuelVargas/ud-mcic-db-t4"
	"github.com/JoseManuelVargas/ud-mcic-db-t4/att"
)

// Output format constants
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// printer writes command results in the configured format.  Text output is
// styled for the terminal it is written to; colors are dropped when w is not
// a terminal.
type printer struct {
	w      io.Writer
	format string
	title  lipgloss.Style
	pass   lipgloss.Style
	fail   lipgloss.Style
}

func newPrinter(w io.Writer, format string) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:      w,
		format: format,
		title:  r.NewStyle().Bold(true),
		pass:   r.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		fail:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
	}
}

func (p *printer) structured() bool {
	return p.format == OutputFormatJSON || p.format == OutputFormatYAML
}

// encode writes v as indented JSON or as YAML.
func (p *printer) encode(v any) error {
	var (
		data []byte
		err  error
	)
	switch p.format {
	case OutputFormatYAML:
		data, err = yaml.Marshal(v)
	default:
		data, err = json.Marshal(v)
		data = pretty.Pretty(data)
	}
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = p.w.Write(data)
	return err
}

// verdict renders msg in the pass or the fail style.
func (p *printer) verdict(ok bool, msg string) string {
	if ok {
		return p.pass.Render(msg)
	}
	return p.fail.Render(msg)
}

func (p *printer) println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// analysisReport is the structured form of an analysis.
type analysisReport struct {
	Attributes   []string        `json:"t_set"               yaml:"t_set"`
	Dependencies [][]string      `json:"l_set"               yaml:"l_set"`
	Cover        [][]string      `json:"cover"               yaml:"cover"`
	Necessary    []string        `json:"necessary"           yaml:"necessary"`
	Useless      []string        `json:"useless"             yaml:"useless"`
	Middle       []string        `json:"middle"              yaml:"middle"`
	Keys         [][]string      `json:"candidate_keys"      yaml:"candidate_keys"`
	NormalForms  rel.NormalForms `json:"normal_forms"        yaml:"normal_forms"`
	Highest      string          `json:"highest_normal_form" yaml:"highest_normal_form"`
}

func newAnalysisReport(a *rel.Analysis) analysisReport {
	rec := rel.SaveSchema(a.Schema)
	return analysisReport{
		Attributes:   rec.TSet,
		Dependencies: rec.LSet,
		Cover:        rel.SaveSchema(a.Cover).LSet,
		Necessary:    a.Partition.Necessary.Strings(),
		Useless:      a.Partition.Useless.Strings(),
		Middle:       a.Partition.Middle.Strings(),
		Keys:         keyStrings(a.Keys),
		NormalForms:  a.NormalForms,
		Highest:      a.NormalForms.Highest(),
	}
}

func keyStrings(cks att.CandKeys) [][]string {
	out := make([][]string, len(cks))
	for i, k := range cks {
		out[i] = k.Strings()
	}
	return out
}

// equivalenceReport is the structured form of an equivalence check.
type equivalenceReport struct {
	Equivalent bool       `json:"equivalent" yaml:"equivalent"`
	Reason     string     `json:"reason"     yaml:"reason"`
	Cover      [][]string `json:"cover"      yaml:"cover"`
	Reduced    [][]string `json:"reduced"    yaml:"reduced"`
}

func dependencyPairs(l rel.Dependencies) [][]string {
	out := make([][]string, len(l))
	for i, fd := range l {
		out[i] = []string{fd.LHS.Concat(), fd.RHS.Concat()}
	}
	return out
}

// checkReport is the structured form of a single normal form check.
type checkReport struct {
	Form      string `json:"form"      yaml:"form"`
	Satisfied bool   `json:"satisfied" yaml:"satisfied"`
}

// closureReport is the structured form of a closure query.
type closureReport struct {
	Seed     []string `json:"seed"     yaml:"seed"`
	Closure  []string `json:"closure"  yaml:"closure"`
	Superkey bool     `json:"superkey" yaml:"superkey"`
}
