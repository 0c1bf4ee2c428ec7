package cli

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/metriclines/pkg/buildinfo"
	"github.com/matzehuels/metriclines/pkg/cache"
	errs "github.com/matzehuels/metriclines/pkg/errors"
	"github.com/matzehuels/metriclines/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories.
	appName = "metriclines"

	// cmdName is the binary name.
	cmdName = "dbe"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogError = log.ErrorLevel
)

// Exit codes returned by ExitCode.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitUsage     = 2
	ExitInterrupt = 130 // shell convention for SIGINT
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	In     io.Reader // graph input when no FILE is given
	Out    io.Writer // results

	verbose    bool
	quiet      bool
	configPath string
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself runs the line analysis.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.analyzeCommand()
	root.Version = buildinfo.Version
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetVersionTemplate(buildinfo.Template())
	root.SetGlobalNormalizationFunc(normalizeFlagName)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errs.Wrap(errs.ErrCodeUsage, err, "%s", cmd.CommandPath())
	})

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVarP(&c.quiet, "quiet", "q", false, "only log errors")
	pf.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/metriclines/config.toml)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := c.loadConfig(cmd); err != nil {
			return err
		}
		c.SetLogLevel(c.logLevel())
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	root.AddCommand(c.distCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Execute runs the command tree with args, which are rewritten by
// [NormalizeArgs] first.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(NormalizeArgs(args))
	root.SetOut(c.Out)
	return root.ExecuteContext(ctx)
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupt
	case errs.IsUsage(err):
		return ExitUsage
	}
	return ExitFailure
}

func (c *CLI) logLevel() log.Level {
	switch {
	case c.quiet:
		return LogError
	case c.verbose:
		return LogDebug
	}
	return LogInfo
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool, size int) (*pipeline.Runner, error) {
	ch, err := newCache(noCache, size)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(ch, c.Logger), nil
}

func newCache(noCache bool, size int) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	return cache.NewMemoryCache(size)
}

// =============================================================================
// Input
// =============================================================================

// openInput opens the FILE argument, or standard input when it is absent
// or "-".
func (c *CLI) openInput(args []string) (io.ReadCloser, string, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	if err := errs.ValidateInputPath(path); err != nil {
		return nil, "", err
	}
	if path == "" || path == "-" {
		return io.NopCloser(c.In), "stdin", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", errs.Wrap(errs.ErrCodeUsage, err, "open input")
	}
	return f, path, nil
}

// fileArg accepts at most one FILE argument.
func fileArg(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return errs.New(errs.ErrCodeUsage, "%s accepts at most one FILE, got %d arguments", cmd.CommandPath(), len(args))
	}
	return nil
}
