package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/featuredag/internal/app"
	"github.com/specialistvlad/featuredag/internal/registry"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// flags holds the values of the persistent flags.
type flags struct {
	configPath  string
	specPaths   []string
	logFormat   string
	logLevel    string
	workers     int
	metricsAddr string
}

// NewRootCmd builds the featuredag command tree. Command output is written
// to outW, logs to errW. When modules is empty the core modules are used.
func NewRootCmd(outW, errW io.Writer, modules ...registry.Module) *cobra.Command {
	f := &flags{}
	defaults := app.DefaultConfig()

	root := &cobra.Command{
		Use:   "featuredag",
		Short: "Resolve, link and evaluate feature dependency graphs",
		Long: `featuredag reads feature dependency specifications, resolves every
feature into an ordered evaluation plan, links the plans against the
compiled-in feature libraries and evaluates them per input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(errW)

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "Path to a YAML configuration file.")
	pf.StringSliceVarP(&f.specPaths, "spec", "s", nil, "Dependency specification files or directories (repeatable).")
	pf.StringVar(&f.logFormat, "log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	pf.StringVar(&f.logLevel, "log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.IntVar(&f.workers, "workers", defaults.Workers, "Number of inputs processed concurrently.")
	pf.StringVar(&f.metricsAddr, "metrics-addr", "", "Address to serve Prometheus metrics on during a run. Empty disables it.")

	newApp := func(cmd *cobra.Command) (*app.App, error) {
		cfg, err := f.config(cmd)
		if err != nil {
			return nil, err
		}
		return app.NewApp(cmd.Context(), outW, errW, cfg, modules...)
	}

	root.AddCommand(
		newDepsCmd(newApp),
		newPlanCmd(newApp),
		newLinkCmd(newApp),
		newRunCmd(newApp),
	)
	return root
}

// config merges defaults, the optional config file and explicitly set flags,
// in that order.
func (f *flags) config(cmd *cobra.Command) (*app.Config, error) {
	cfg := app.DefaultConfig()
	if f.configPath != "" {
		var err error
		cfg, err = app.LoadConfigFile(f.configPath, cfg)
		if err != nil {
			return nil, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	set := cmd.Flags().Changed
	if set("spec") {
		cfg.SpecPaths = f.specPaths
	}
	if set("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if set("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if set("workers") {
		cfg.Workers = f.workers
	}
	if set("metrics-addr") {
		cfg.MetricsAddr = f.metricsAddr
	}

	c, err := app.NewConfig(cfg)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	return c, nil
}

type appFactory func(cmd *cobra.Command) (*app.App, error)

func newDepsCmd(newApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Print the merged dependency specification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.Deps()
		},
	}
}

func newPlanCmd(newApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "plan [feature...]",
		Short: "Print evaluation plans, dependencies first",
		Long:  "Print the evaluation plan of each named feature, or of every declared feature when none are named.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.Plan(args...)
		},
	}
}

func newLinkCmd(newApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "link",
		Short: "Link every declared feature and print the dispatch table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			table, err := a.Link(cmd.Context())
			if err != nil {
				return err
			}
			a.WriteTable(table)
			return nil
		},
	}
}

func newRunCmd(newApp appFactory) *cobra.Command {
	var inputsPath string

	cmd := &cobra.Command{
		Use:   "run --inputs FILE [feature...]",
		Short: "Evaluate features for every input and print a YAML report",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			inputs, err := app.LoadInputs(inputsPath)
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			return a.Run(cmd.Context(), inputs, args)
		},
	}
	cmd.Flags().StringVarP(&inputsPath, "inputs", "i", "", "YAML file with the inputs to evaluate.")
	_ = cmd.MarkFlagRequired("inputs")
	return cmd
}

// Execute runs the command tree with args and maps errors to exit codes.
func Execute(ctx context.Context, args []string, outW, errW io.Writer, modules ...registry.Module) error {
	root := NewRootCmd(outW, errW, modules...)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		if _, ok := err.(*ExitError); ok {
			return err
		}
		return fmt.Errorf("featuredag: %w", err)
	}
	return nil
}
