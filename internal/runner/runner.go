// Package runner orchestrates the discover -> parse -> lint -> report
// pipeline.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"

	"github.com/itsatony/go-cuserr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/hbslint/internal/config"
	"github.com/donaldgifford/hbslint/internal/linter"
	"github.com/donaldgifford/hbslint/internal/parser"
	"github.com/donaldgifford/hbslint/internal/rules"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitLintErrors = 1
	ExitError      = 2
)

// StdinName is the file name reported for source read from stdin.
const StdinName = "<stdin>"

// Options configures the runner behavior.
type Options struct {
	Paths      []string
	ConfigPath string
	Format     linter.Format
	Jobs       int
	Quiet      bool
	Color      bool
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *zap.Logger
}

// fileResult holds the outcome of linting one file.
type fileResult struct {
	diags []linter.Diagnostic
	err   error
}

// Run executes the lint pipeline and returns an exit code.
func Run(ctx context.Context, opts *Options) int {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Format == "" {
		opts.Format = linter.FormatText
	}
	logger := opts.Logger

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		writeErr(opts.Stderr, "hbslint: %v\n", err)
		return ExitError
	}
	logger.Debug(LogMsgConfigLoaded, zap.String(LogKeyPath, opts.ConfigPath))

	for name := range cfg.Lint.Rules {
		if _, ok := rules.Lookup(name); !ok {
			logger.Warn(LogMsgUnknownRule, zap.String(LogKeyRule, name))
		}
	}

	lintRules := rules.LintRules()

	var (
		diags    []linter.Diagnostic
		exitCode = ExitOK
	)

	if isStdin(opts.Paths) {
		src, err := io.ReadAll(opts.Stdin)
		if err != nil {
			writeErr(opts.Stderr, "hbslint: reading stdin: %v\n", err)
			return ExitError
		}
		d, err := lintSource(StdinName, string(src), cfg, lintRules)
		if err != nil {
			writeErr(opts.Stderr, "hbslint: %s\n", describeError(StdinName, err))
			exitCode = ExitError
		}
		diags = d
	} else {
		files, errs := discover(opts.Paths, &cfg.Lint, logger)
		for _, err := range errs {
			writeErr(opts.Stderr, "hbslint: %v\n", err)
			exitCode = ExitError
		}

		jobs := resolveJobs(opts.Jobs, cfg.Lint.Jobs)
		logger.Debug(LogMsgFilesFound, zap.Int(LogKeyFiles, len(files)), zap.Int(LogKeyJobs, jobs))

		results, err := lintFiles(ctx, files, jobs, cfg, lintRules, logger)
		if err != nil {
			logger.Debug(LogMsgLintCancelled, zap.Error(err))
			writeErr(opts.Stderr, "hbslint: %v\n", err)
			return ExitError
		}

		for i, r := range results {
			if r.err != nil {
				writeErr(opts.Stderr, "hbslint: %s\n", describeError(files[i], r.err))
				exitCode = ExitError
			}
			diags = append(diags, r.diags...)
		}
	}

	if err := linter.Write(opts.Stdout, diags, linter.WriteOptions{Format: opts.Format, Color: opts.Color}); err != nil {
		writeErr(opts.Stderr, "hbslint: writing output: %v\n", err)
		return ExitError
	}
	if opts.Format == linter.FormatText && !opts.Quiet {
		if err := linter.WriteSummary(opts.Stdout, diags, opts.Color); err != nil {
			writeErr(opts.Stderr, "hbslint: writing output: %v\n", err)
			return ExitError
		}
	}

	if errCount, _ := linter.Count(diags); errCount > 0 && exitCode < ExitLintErrors {
		exitCode = ExitLintErrors
	}
	return exitCode
}

// lintFiles lints files concurrently, at most jobs at a time. Results are
// indexed like files. A failure to read or parse one file is recorded in its
// result and does not stop the others; only cancellation aborts the run.
func lintFiles(
	ctx context.Context,
	files []string,
	jobs int,
	cfg *config.Config,
	lintRules []linter.Rule,
	logger *zap.Logger,
) ([]fileResult, error) {
	results := make([]fileResult, len(files))
	if len(files) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			src, err := os.ReadFile(path)
			if err != nil {
				results[i] = fileResult{err: err}
				logger.Debug(LogMsgFileFailed, zap.String(LogKeyPath, path), zap.Error(err))
				return nil
			}

			diags, err := lintSource(path, string(src), cfg, lintRules)
			results[i] = fileResult{diags: diags, err: err}
			if err != nil {
				logger.Debug(LogMsgFileFailed, zap.String(LogKeyPath, path), zap.Error(err))
				return nil
			}
			logger.Debug(LogMsgFileLinted,
				zap.String(LogKeyPath, path),
				zap.Int(LogKeyDiagnostics, len(diags)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// lintSource parses src and applies the rules to every call found.
func lintSource(name, src string, cfg *config.Config, lintRules []linter.Rule) ([]linter.Diagnostic, error) {
	calls, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return linter.Run(name, calls, cfg, lintRules), nil
}

// describeError prefixes err with the file name and, for parse errors, the
// position the scanner stopped at.
func describeError(path string, err error) string {
	var customErr *cuserr.CustomError
	if errors.As(err, &customErr) {
		line, hasLine := customErr.GetMetadata(parser.MetaKeyLine)
		col, hasCol := customErr.GetMetadata(parser.MetaKeyColumn)
		if hasLine && hasCol {
			return fmt.Sprintf("%s:%s:%s: %v", path, line, col, err)
		}
	}
	return fmt.Sprintf("%s: %v", path, err)
}

func resolveJobs(flagJobs, cfgJobs int) int {
	switch {
	case flagJobs > 0:
		return flagJobs
	case cfgJobs > 0:
		return cfgJobs
	default:
		return runtime.GOMAXPROCS(0)
	}
}

func isStdin(paths []string) bool {
	return len(paths) == 0 || slices.Equal(paths, []string{"-"})
}

// writeErr formats and writes to stderr.
func writeErr(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
