// Package main implements the loxc front-end driver.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/lox/internal/config"
	"github.com/you-not-fish/lox/internal/diag"
)

// Version information
const Version = "0.1.0-dev"

// options holds the persistent flags shared by all subcommands.
type options struct {
	cfgFile string
	verbose bool
	color   string
	format  string
}

// env is what a subcommand runs with once flags and config are resolved.
type env struct {
	cfg    *config.Config
	log    *slog.Logger
	diag   *diag.Printer
	stdout io.Writer
	stderr io.Writer
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	code := 0
	root := newRootCmd(stdout, stderr, &code)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return code
}

func newRootCmd(stdout, stderr io.Writer, code *int) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "loxc",
		Short: "Lox expression front end",
		Long: `loxc scans and parses Lox source files.

Each semicolon-terminated expression becomes one syntax tree. Malformed
expressions are reported on stderr and skipped.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $LOXC_CONFIG or ./loxc.toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVar(&opts.color, "color", "", "diagnostic color: auto, always or never")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "output format: text, json or yaml")

	// run wraps a per-file action with config and logger setup.
	run := func(action func(e *env, filename string) int) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd, opts, stdout, stderr)
			if err != nil {
				return err
			}
			*code = action(e, args[0])
			return nil
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "tokens <file>",
			Short: "Print the token sequence of a source file",
			Args:  cobra.ExactArgs(1),
			RunE:  run(runTokens),
		},
		&cobra.Command{
			Use:   "ast <file>",
			Short: "Print the syntax trees of a source file",
			Args:  cobra.ExactArgs(1),
			RunE:  run(runAST),
		},
		&cobra.Command{
			Use:   "check <file>",
			Short: "Report parse errors without printing trees",
			Args:  cobra.ExactArgs(1),
			RunE:  run(runCheck),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(stdout, "loxc version %s\n", Version)
				fmt.Fprintf(stdout, "go version %s\n", runtime.Version())
			},
		},
	)

	return root
}

// newEnv loads the config file and applies flag overrides on top of it.
func newEnv(cmd *cobra.Command, opts *options, stdout, stderr io.Writer) (*env, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.cfgFile != "" {
		cfg, err = config.Load(opts.cfgFile)
	} else {
		cfg, _, err = config.Discover()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if flags.Changed("color") {
		cfg.Diagnostics.Color = opts.color
	}
	if opts.verbose {
		cfg.Diagnostics.Verbose = true
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mode, err := diag.ParseColorMode(cfg.Diagnostics.Color)
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:    cfg,
		log:    newLogger(stderr, cfg.Log.Level),
		diag:   diag.NewPrinter(stderr, mode, cfg.Diagnostics.Verbose),
		stdout: stdout,
		stderr: stderr,
	}, nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
