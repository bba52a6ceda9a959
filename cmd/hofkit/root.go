package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kbukum/hofkit/config"
	"github.com/kbukum/hofkit/internal/app"
	"github.com/kbukum/hofkit/logger"
	"github.com/kbukum/hofkit/version"
)

// cli holds state shared by every subcommand once the root pre-run has loaded it.
type cli struct {
	configFile string
	logLevel   string
	jsonOutput bool

	cfg *app.Config
	log *logger.Logger
	svc *app.Service
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "hofkit",
		Short: "Fold operation pipelines and select extremes",
		Long: `hofkit folds chains of named binary operations over operand lists and
picks the longest, shortest, greatest or least element with an explicit
tie-break policy.

Operands that start with "-" must follow "--", e.g. hofkit zip --ops add -- -1 2.`,
		Version:           version.GetShortVersion(),
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configFile, "config", "c", "", "config file (default: ./config.yml and standard locations)")
	flags.StringVar(&c.logLevel, "log-level", "", "override logging.level")
	flags.BoolVar(&c.jsonOutput, "json", false, "print results as JSON")

	root.AddCommand(
		c.zipCmd(),
		c.evaluateCmd(),
		c.longestCmd(),
		c.selectCmd(),
		c.capitalizedCmd(),
		c.flattenCmd(),
		c.operationsCmd(),
		c.serveCmd(),
		versionCmd(),
	)
	return root
}

// setup loads config, initializes logging and builds the service.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	var opts []config.LoaderOption
	if c.configFile != "" {
		opts = append(opts, config.WithConfigFile(c.configFile))
	}
	cfg, err := app.Load(opts...)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if c.logLevel != "" {
		cfg.Logging.Level = c.logLevel
		if err := cfg.Logging.Validate(); err != nil {
			return err
		}
	}

	c.log = logger.NewWithWriter(&cfg.Logging, cfg.Name, cmd.ErrOrStderr())
	logger.SetGlobalLogger(c.log)

	svc, err := app.NewService(cfg, c.log, nil)
	if err != nil {
		return err
	}
	c.cfg, c.svc = cfg, svc
	return nil
}

// print writes v as indented JSON when --json is set, else runs text.
func (c *cli) print(w io.Writer, v any, text func(io.Writer)) error {
	if c.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// Skips config loading.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetVersionInfo().String())
		},
	}
}
