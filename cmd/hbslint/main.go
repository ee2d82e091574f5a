// Package main is the entry point for hbslint.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/donaldgifford/hbslint/internal/linter"
	_ "github.com/donaldgifford/hbslint/internal/rules" // Register rules via init().
	"github.com/donaldgifford/hbslint/internal/runner"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type rootFlags struct {
	configPath string
	format     string
	quiet      bool
	verbose    bool
	jobs       int
	noColor    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	exitCode := runner.ExitOK
	if err := newRootCmd(&exitCode).ExecuteContext(ctx); err != nil {
		exitCode = runner.ExitError
	}

	stop()
	os.Exit(exitCode)
}

// newRootCmd builds the command tree. The lint exit code is stored in
// exitCode; command errors (bad flags, unknown format) are returned from
// Execute instead.
func newRootCmd(exitCode *int) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "hbslint [flags] [paths...]",
		Short: "Lint the layout of Handlebars templates rendered in tests",
		Long: `hbslint checks this.render(hbs` + "`...`" + `) calls in JavaScript test files
for consistent template formatting. Directories are searched recursively.
With no paths, or "-", source is read from stdin.`,
		Args:         cobra.ArbitraryArgs,
		Version:      fmt.Sprintf("%s (%s) %s", version, commit, date),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := linter.ParseFormat(flags.format)
			if err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			logger := runner.NewLogger(cmd.ErrOrStderr(), flags.verbose)
			defer func() { _ = logger.Sync() }()

			*exitCode = runner.Run(cmd.Context(), &runner.Options{
				Paths:      args,
				ConfigPath: flags.configPath,
				Format:     format,
				Jobs:       flags.jobs,
				Quiet:      flags.quiet,
				Color:      !flags.noColor && isTerminal(stdout),
				Stdin:      cmd.InOrStdin(),
				Stdout:     stdout,
				Stderr:     cmd.ErrOrStderr(),
				Logger:     logger,
			})
			return nil
		},
	}
	cmd.SetVersionTemplate("hbslint {{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to config file")

	f := cmd.Flags()
	f.StringVar(&flags.format, "format", string(linter.FormatText), "output format (text|json)")
	f.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress the summary line")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "log progress to stderr")
	f.IntVarP(&flags.jobs, "jobs", "j", 0, "files linted in parallel (0 = config or GOMAXPROCS)")
	f.BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newRulesCmd(flags))
	return cmd
}

// isTerminal reports whether w is a terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
