// Package cli is the fdcheck command tree.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	rel "github.com/JoseManuelVargas/ud-mcic-db-t4"
	"github.com/JoseManuelVargas/ud-mcic-db-t4/internal/config"
	"github.com/JoseManuelVargas/ud-mcic-db-t4/internal/logger"
	"github.com/JoseManuelVargas/ud-mcic-db-t4/internal/metrics"
)

// flagKeys maps the persistent flags onto the configuration keys they
// override.
var flagKeys = map[string]string{
	"concurrency": "analysis.concurrency",
	"log-level":   "log.level",
	"log-json":    "log.json",
	"format":      "output.format",
	"metrics":     "metrics.enabled",
}

// app is the state shared by the commands of one invocation.
type app struct {
	fs      afero.Fs
	cfg     *config.Config
	log     logger.Logger
	metrics *metrics.Metrics
}

// RootCmd builds the command tree.  Schema, configuration and output files
// are read from and written to fs.
func RootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}
	root := &cobra.Command{
		Use:   "fdcheck",
		Short: "Analyse relation schemas through their functional dependencies",
		Long: `fdcheck computes attribute closures, canonical covers and candidate keys of
a relation schema, and checks it against 2NF, 3NF and BCNF.

A schema is read from a record file with --file, or typed in with --attrs
and --deps:

  fdcheck analyze --attrs ABCD --deps "AB->C,C->D"`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	f := root.PersistentFlags()
	f.String("config", "", "YAML configuration file")
	f.IntP("concurrency", "c", config.DefaultConcurrency, "Candidate key search workers")
	f.String("log-level", "info", "Log level (debug, info, warn, error, disabled)")
	f.Bool("log-json", false, "Write logs as JSON")
	f.StringP("format", "o", OutputFormatText, "Output format (text, json, yaml)")
	f.Bool("metrics", false, "Write analysis metrics to stderr when done")

	root.AddCommand(
		a.analyzeCmd(),
		a.coverCmd(),
		a.keysCmd(),
		a.checkCmd(),
		a.closureCmd(),
		a.equivCmd(),
	)
	return root
}

// setup loads the configuration, with flags set on the command line taking
// precedence, and builds the logger and metrics from it.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	overrides := make(map[string]any)
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}
	cfg, err := config.Load(a.fs, path, overrides)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		Output:     cmd.ErrOrStderr(),
		JSON:       cfg.Log.JSON,
		AddSource:  cfg.Log.Source,
		TimeFormat: "15:04:05",
	})
	if cfg.Metrics.Enabled {
		a.metrics = metrics.New()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logger.ContextWithLogger(ctx, a.log))
	a.log.Debug("configuration loaded", "concurrency", cfg.Analysis.Concurrency, "format", cfg.Output.Format)
	return nil
}

func (a *app) teardown(cmd *cobra.Command, _ []string) error {
	return a.metrics.WriteText(cmd.ErrOrStderr())
}

// options are the analysis options the configuration asks for.
func (a *app) options() []rel.Option {
	return []rel.Option{
		rel.WithConcurrency(a.cfg.Analysis.Concurrency),
		rel.WithLogger(a.log),
		rel.WithMetrics(a.metrics),
	}
}

func (a *app) printer(cmd *cobra.Command) *printer {
	return newPrinter(cmd.OutOrStdout(), a.cfg.Output.Format)
}
