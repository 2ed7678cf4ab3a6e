package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	rel "github.com/JoseManuelVargas/ud-mcic-db-t4"
	"github.com/JoseManuelVargas/ud-mcic-db-t4/att"
	"github.com/JoseManuelVargas/ud-mcic-db-t4/internal/logger"
	"github.com/JoseManuelVargas/ud-mcic-db-t4/internal/recordio"
)

// ErrNoOther is returned by equiv when there is nothing to compare with.
var ErrNoOther = errors.New("no dependencies to compare with: use --other or --with")

func (a *app) analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Show the canonical cover, candidate keys and normal forms of a schema",
		Args:  cobra.NoArgs,
		RunE:  a.runAnalyze,
	}
	addInputFlags(cmd)
	return cmd
}

func (a *app) runAnalyze(cmd *cobra.Command, _ []string) error {
	s, err := a.loadSchema(cmd)
	if err != nil {
		return err
	}
	an := rel.Analyze(s, a.options()...)
	p := a.printer(cmd)
	if p.structured() {
		return p.encode(newAnalysisReport(an))
	}
	p.println(an)
	p.println(p.verdict(an.NormalForms.IsBCNF, "highest normal form: "+an.NormalForms.Highest()))
	return nil
}

func (a *app) coverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cover",
		Short: "Reduce the dependencies of a schema to a canonical cover",
		Args:  cobra.NoArgs,
		RunE:  a.runCover,
	}
	addInputFlags(cmd)
	cmd.Flags().String("out", "", "Save the irreducible schema to this record file")
	return cmd
}

func (a *app) runCover(cmd *cobra.Command, _ []string) error {
	s, err := a.loadSchema(cmd)
	if err != nil {
		return err
	}
	cover := rel.CanonicalCover(s, a.options()...)

	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	if out != "" {
		if err := recordio.SaveSchema(a.fs, out, cover); err != nil {
			return err
		}
		logger.FromContext(cmd.Context()).Info("canonical cover saved", "path", out)
	}

	p := a.printer(cmd)
	if p.structured() {
		return p.encode(rel.SaveSchema(cover))
	}
	p.println(p.title.Render(cover.String()))
	p.println(rel.DependencyTable(cover.Dependencies()))
	return nil
}

func (a *app) keysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the candidate keys of a schema",
		Args:  cobra.NoArgs,
		RunE:  a.runKeys,
	}
	addInputFlags(cmd)
	return cmd
}

func (a *app) runKeys(cmd *cobra.Command, _ []string) error {
	s, err := a.loadSchema(cmd)
	if err != nil {
		return err
	}
	cks := rel.CandidateKeys(s, a.options()...)
	p := a.printer(cmd)
	if p.structured() {
		return p.encode(keyStrings(cks))
	}
	p.println(rel.KeyTable(cks))
	return nil
}

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Tell whether a schema is in a given normal form",
		Args:  cobra.NoArgs,
		RunE:  a.runCheck,
	}
	addInputFlags(cmd)
	cmd.Flags().String("form", "bcnf", "Normal form to check (2nf, 3nf, bcnf)")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, _ []string) error {
	name, err := cmd.Flags().GetString("form")
	if err != nil {
		return fmt.Errorf("failed to get form flag: %w", err)
	}
	form, err := rel.ParseForm(name)
	if err != nil {
		return err
	}
	s, err := a.loadSchema(cmd)
	if err != nil {
		return err
	}
	ok := rel.ClassifyNormalForms(s, a.options()...).Satisfies(form)
	p := a.printer(cmd)
	if p.structured() {
		return p.encode(checkReport{Form: form.String(), Satisfied: ok})
	}
	if ok {
		p.println(p.verdict(true, "The relation is in "+form.String()))
	} else {
		p.println(p.verdict(false, "The relation is not in "+form.String()))
	}
	return nil
}

func (a *app) closureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "closure",
		Short: "Compute the closure of a set of attributes",
		Args:  cobra.NoArgs,
		RunE:  a.runClosure,
	}
	addInputFlags(cmd)
	cmd.Flags().String("seed", "", "Attributes to compute the closure of, like AB")
	_ = cmd.MarkFlagRequired("seed")
	return cmd
}

func (a *app) runClosure(cmd *cobra.Command, _ []string) error {
	str, err := cmd.Flags().GetString("seed")
	if err != nil {
		return fmt.Errorf("failed to get seed flag: %w", err)
	}
	s, err := a.loadSchema(cmd)
	if err != nil {
		return err
	}
	seed := rel.ParseAttributes(str)
	if err := att.EnsureSubDomain(seed, s.Attributes()); err != nil {
		return err
	}
	closure := rel.Closure(seed, s.Dependencies())
	superkey := closure.Equal(s.Attributes())
	p := a.printer(cmd)
	if p.structured() {
		return p.encode(closureReport{Seed: seed.Strings(), Closure: closure.Strings(), Superkey: superkey})
	}
	p.println(p.title.Render(fmt.Sprintf("%v+ = %v", seed, closure)))
	if superkey {
		p.println(p.verdict(true, seed.String()+" is a superkey"))
	} else {
		p.println(p.verdict(false, seed.String()+" is not a superkey"))
	}
	return nil
}

func (a *app) equivCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equiv",
		Short: "Check other dependencies against the canonical cover of a schema",
		Args:  cobra.NoArgs,
		RunE:  a.runEquiv,
	}
	addInputFlags(cmd)
	cmd.Flags().String("other", "", "Record file whose l_set is compared")
	cmd.Flags().StringP("with", "w", "", "Dependencies to compare, like A->B,B->C")
	cmd.MarkFlagsMutuallyExclusive("other", "with")
	return cmd
}

func (a *app) runEquiv(cmd *cobra.Command, _ []string) error {
	s, err := a.loadSchema(cmd)
	if err != nil {
		return err
	}
	other, err := a.otherDependencies(cmd)
	if err != nil {
		return err
	}
	eq, err := rel.CheckEquivalence(s, other, a.options()...)
	if err != nil {
		return err
	}
	p := a.printer(cmd)
	if p.structured() {
		return p.encode(equivalenceReport{
			Equivalent: eq.Equivalent,
			Reason:     eq.Reason.String(),
			Cover:      dependencyPairs(eq.Cover),
			Reduced:    dependencyPairs(eq.Reduced),
		})
	}
	p.println(p.verdict(eq.Equivalent && eq.Reason == rel.ReasonEquivalent, eq.Reason.String()))
	p.println("cover:   " + eq.Cover.String())
	p.println("reduced: " + eq.Reduced.String())
	return nil
}

// otherDependencies reads the dependencies equiv compares with.
func (a *app) otherDependencies(cmd *cobra.Command) (rel.Dependencies, error) {
	path, err := cmd.Flags().GetString("other")
	if err != nil {
		return nil, fmt.Errorf("failed to get other flag: %w", err)
	}
	with, err := cmd.Flags().GetString("with")
	if err != nil {
		return nil, fmt.Errorf("failed to get with flag: %w", err)
	}
	switch {
	case path != "":
		rec, err := recordio.Load(a.fs, path)
		if err != nil {
			return nil, err
		}
		return rel.LoadDependencies(rec)
	case with != "":
		return rel.ParseDependencies(with)
	default:
		return nil, ErrNoOther
	}
}
