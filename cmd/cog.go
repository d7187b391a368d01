package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/superloach/cog/pkg/cog"
)

const Version = "0.1.0"

const HelpMessage = `
Cog is a minimal, line-oriented scripting language.
	cog v%s

By default, cog interprets from stdin.
	cog < main.cog
Run Cog programs from source files by passing them to the interpreter.
	cog main.cog other.cog
Start an interactive repl with --repl.
	cog --repl
	> ___
Run from the command line with --eval.
	cog --eval "x = 5"

`

type options struct {
	verbose     bool
	debugLexer  bool
	debugParser bool
	dump        bool

	repl       bool
	eval       string
	configPath string
	color      string
}

func bindFlags(flags *pflag.FlagSet, opts *options) {
	// cli arguments
	flags.BoolVar(&opts.verbose, "verbose", false, "Log all interpreter debug information")
	flags.BoolVar(&opts.debugLexer, "debug-lex", false, "Log lexer output")
	flags.BoolVar(&opts.debugParser, "debug-parse", false, "Log parser output")
	flags.BoolVar(&opts.dump, "dump", false, "Dump the environment after eval")

	flags.BoolVar(&opts.repl, "repl", false, "Run as an interactive repl")
	flags.StringVarP(&opts.eval, "eval", "e", "", "Evaluate argument as a Cog program")
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML config file (default "+cog.DefaultConfigFile+" if present)")
	flags.StringVar(&opts.color, "color", string(cog.ColorAuto), "Colorize log output: auto, always or never")
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "cog [flags] [files...]",
		Short:         "Run Cog programs",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, files []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd.Flags(), opts, cfg); err != nil {
				return err
			}

			cog.SetColorMode(cfg.Color)
			cog.SetLogOutput(stdout, stderr)

			// execution environment
			eng := &cog.Engine{
				Debug:  cfg.Debug,
				Stdout: stdout,
			}

			switch {
			case opts.repl:
				return runRepl(eng, cfg, stdout)
			case opts.eval != "":
				ctx := eng.CreateContext()
				_, err := ctx.Exec(strings.NewReader(opts.eval))
				return err
			case len(files) > 0:
				return runFiles(eng, files)
			default:
				ctx := eng.CreateContext()
				_, err := ctx.Exec(stdin)
				return err
			}
		},
	}
	cmd.SetVersionTemplate("cog v{{.Version}}\n")
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		fmt.Fprintf(c.OutOrStdout(), HelpMessage, Version)
		fmt.Fprint(c.OutOrStdout(), c.Flags().FlagUsages())
	})

	bindFlags(cmd.Flags(), opts)
	return cmd
}

// loadConfig reads an explicit config path, or the default file in the
// working directory when one exists.
func loadConfig(configPath string) (*cog.Config, error) {
	if configPath != "" {
		return cog.LoadConfig(configPath)
	}
	if _, err := os.Stat(cog.DefaultConfigFile); err == nil {
		return cog.LoadConfig(cog.DefaultConfigFile)
	}
	return cog.DefaultConfig(), nil
}

// applyFlags layers explicitly set flags over the loaded config.
func applyFlags(flags *pflag.FlagSet, opts *options, cfg *cog.Config) error {
	if flags.Changed("color") {
		mode := cog.ColorMode(opts.color)
		switch mode {
		case cog.ColorAuto, cog.ColorAlways, cog.ColorNever:
			cfg.Color = mode
		default:
			return fmt.Errorf("invalid --color %q: want auto, always or never", opts.color)
		}
	}

	cfg.Debug.Lex = cfg.Debug.Lex || opts.debugLexer || opts.verbose
	cfg.Debug.Parse = cfg.Debug.Parse || opts.debugParser || opts.verbose
	cfg.Debug.Dump = cfg.Debug.Dump || opts.dump || opts.verbose
	return nil
}

// runFiles executes each file in its own Context, stopping at the first
// file that fails.
func runFiles(eng *cog.Engine, files []string) error {
	for _, filePath := range files {
		// execution context is one-per-file
		ctx := eng.CreateContext()

		// expand out ~ for $HOME, which is not done by shells
		if strings.HasPrefix(filePath, "~"+string(os.PathSeparator)) {
			filePath = os.Getenv("HOME") + string(os.PathSeparator) + filePath[2:]
		}

		// canonicalize relative paths, but not absolute ones
		if !path.IsAbs(filePath) {
			filePath = path.Join(ctx.Cwd, filePath)
		}

		if err := ctx.ExecPath(filePath); err != nil {
			return err
		}
	}
	return nil
}

// exitCode maps an execution error to the process exit status.
func exitCode(err error) int {
	var e cog.Err
	if errors.As(err, &e) && e.Reason() != cog.ErrUnknown {
		return e.Reason()
	}
	return 1
}

func main() {
	cmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		var e cog.Err
		if !errors.As(err, &e) {
			// interpreter errors are already logged by their Context
			cog.LogSafeErr(cog.ErrSystem, err.Error())
		}
		os.Exit(exitCode(err))
	}
}
