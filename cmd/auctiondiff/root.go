package main

import (
	"errors"
	"fmt"
	"io"

	"auction-diff/internal/config"
	"auction-diff/internal/domain"
	"auction-diff/internal/gateway"
	"auction-diff/internal/presenter"
	"auction-diff/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// errFindings signals a completed run whose report contains mismatches,
// failures or one-sided deals.
var errFindings = errors.New("comparison has findings")

type cliOptions struct {
	configPath string
	verbose    bool
	dialect    string
	boundary   string
	starMode   string
	format     string
	boards     string
	samples    int
	workers    int
}

type app struct {
	opts   cliOptions
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "auctiondiff",
		Short: "Compare bridge auctions between PBN files and bidding results",
		Long: `auctiondiff parses PBN deal files and JSON result sets, matches deals by
their hand string and reports where the auctions diverge.

The exit status is 1 when any common deal differs, a deal failed to bid, or a
deal is present on one side only.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			zcfg := zap.NewProductionConfig()
			zcfg.Encoding = "console"
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if a.opts.verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.opts.configPath, "config", "auctiondiff.yaml", "Path to the YAML config file")
	pf.BoolVarP(&a.opts.verbose, "verbose", "v", false, "Verbose logging and notes in the report")
	pf.StringVar(&a.opts.dialect, "dialect", "", "PBN dialect preset: event or board")
	pf.StringVar(&a.opts.boundary, "boundary", "", "Deal boundary override: event or board")
	pf.StringVar(&a.opts.starMode, "star-mode", "", "Star handling override: terminate or separate")

	root.AddCommand(a.newCompareCmd(), a.newParseCmd())
	return root
}

func (a *app) newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <reference> <candidate>",
		Short: "Compare the auctions of two deal sources",
		Long: `Compares a reference PBN file against a second PBN file or a JSON result
set (files ending in .json).

Example:
  auctiondiff compare bba/Smolen.pbn out/Smolen.json --boards 1-10`,
		Args: cobra.ExactArgs(2),
		RunE: a.runCompare,
	}
	f := cmd.Flags()
	f.StringVar(&a.opts.format, "format", "", "Output format: text or json")
	f.StringVar(&a.opts.boards, "boards", "", "Board selection such as 1-3,5 or all")
	f.IntVar(&a.opts.samples, "samples", 0, "Maximum mismatch samples to report (negative for all)")
	f.IntVar(&a.opts.workers, "workers", 0, "Goroutines used to compare deal pairs")
	return cmd
}

func (a *app) newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Print the deals parsed from a source as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			parser, err := newParser(cfg)
			if err != nil {
				return err
			}
			set, err := gateway.NewFileDealRepository(parser).GetDeals(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("parsed deal source",
				zap.String("source", set.Source),
				zap.Int("deals", len(set.Deals)),
				zap.Int("failures", len(set.Failures)))
			return presenter.RenderDeals(cmd.OutOrStdout(), set.Deals)
		},
	}
}

func (a *app) runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}
	parser, err := newParser(cfg)
	if err != nil {
		return err
	}
	boards, err := usecase.ParseBoardSelection(cfg.Boards)
	if err != nil {
		return err
	}

	// --- Dependency Injection (Wiring the application) ---
	repo := gateway.NewFileDealRepository(parser)
	comparison := usecase.NewComparisonUseCase(repo, a.logger, usecase.Options{
		SampleLimit: cfg.SampleLimit,
		Workers:     cfg.Workers,
		Boards:      boards,
	})

	// --- Execute the Usecase ---
	report, err := comparison.Compare(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	// --- Present the Output ---
	if err := a.render(cmd.OutOrStdout(), cfg.Format, report); err != nil {
		return err
	}
	if report.HasFindings() {
		return errFindings
	}
	return nil
}

func (a *app) render(w io.Writer, format string, report *domain.ComparisonReport) error {
	if format == config.FormatJSON {
		return presenter.RenderJSON(w, report)
	}
	return presenter.NewTextRenderer(w, presenter.TextOptions{ShowNotes: a.opts.verbose}).Render(report)
}

// loadConfig reads the config file and applies the flags the user set.
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("dialect") {
		cfg.Dialect = a.opts.dialect
	}
	if flags.Changed("boundary") {
		cfg.Boundary = a.opts.boundary
	}
	if flags.Changed("star-mode") {
		cfg.StarMode = a.opts.starMode
	}
	if flags.Changed("format") {
		cfg.Format = a.opts.format
	}
	if flags.Changed("boards") {
		cfg.Boards = a.opts.boards
	}
	if flags.Changed("samples") {
		cfg.SampleLimit = a.opts.samples
	}
	if flags.Changed("workers") {
		cfg.Workers = a.opts.workers
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newParser builds a parser from the dialect preset and its overrides.
func newParser(cfg *config.Config) (*gateway.PBNParser, error) {
	dialect, err := gateway.ParseDialect(cfg.Dialect)
	if err != nil {
		return nil, err
	}
	if cfg.Boundary != "" {
		if dialect.Boundary, err = gateway.ParseBoundary(cfg.Boundary); err != nil {
			return nil, err
		}
	}
	if cfg.StarMode != "" {
		if dialect.Star, err = gateway.ParseStarMode(cfg.StarMode); err != nil {
			return nil, err
		}
	}
	return gateway.NewPBNParser(dialect), nil
}
