// Package cli implements the ghsq command tree.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/rjsky311/GHS-label-quick-search/internal/config"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/database/redis"
	"github.com/rjsky311/GHS-label-quick-search/internal/infrastructure/monitoring/logging"
	"github.com/rjsky311/GHS-label-quick-search/pkg/errors"
)

// Build-time variables injected via ldflags.
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Output formats accepted by --output.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputTable = "table"
)

// DefaultConfigFile is read when --config is not given and the file exists.
const DefaultConfigFile = "ghs.yaml"

type cliContextKey struct{}

// RootOptions holds the global flags.
type RootOptions struct {
	ConfigPath   string
	LogLevel     string
	OutputFormat string
	Verbose      bool
	Timeout      time.Duration
	ServerAddr   string
}

// CLIContext carries initialized dependencies through the command tree.
type CLIContext struct {
	Config       *config.Config
	Logger       logging.Logger
	OutputFormat string
	Timeout      time.Duration
	ServerAddr   string

	opts *RootOptions
	deps *dependencies
}

// Option overrides how commands reach their collaborators.
type Option func(*dependencies)

type dependencies struct {
	backend func(*CLIContext) (Backend, error)
	remote  func(*CLIContext) (redis.Cache, func(), error)
	logger  logging.Logger
}

// WithBackend makes every command use b instead of building one from flags.
func WithBackend(b Backend) Option {
	return func(d *dependencies) {
		d.backend = func(*CLIContext) (Backend, error) { return b, nil }
	}
}

// WithLogger replaces the stderr logger.
func WithLogger(l logging.Logger) Option {
	return func(d *dependencies) { d.logger = l }
}

// NewRootCommand creates the root command with its flags and subcommands.
func NewRootCommand(opts ...Option) *cobra.Command {
	ro := &RootOptions{}
	deps := &dependencies{backend: newBackend, remote: openRemoteCache}
	for _, opt := range opts {
		opt(deps)
	}

	cmd := &cobra.Command{
		Use:   "ghsq",
		Short: "GHS label quick search",
		Long: "ghsq looks up GHS hazard labels (pictograms, signal word, H-statements) for\n" +
			"chemicals by CAS number or name, in-process against PubChem or through a\n" +
			"running API server.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", config.Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, ro, deps)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&ro.ConfigPath, "config", "c", "", "config file path (default: ./"+DefaultConfigFile+" when present)")
	pf.StringVar(&ro.LogLevel, "log-level", "", "log level (debug, info, warn, error; default warn)")
	pf.StringVarP(&ro.OutputFormat, "output", "o", OutputText, "output format (text, json, table)")
	pf.BoolVarP(&ro.Verbose, "verbose", "v", false, "enable debug logging")
	pf.DurationVar(&ro.Timeout, "timeout", 2*time.Minute, "overall operation timeout")
	pf.StringVar(&ro.ServerAddr, "server", "", "API server base URL; searches run in-process when empty")

	cmd.AddCommand(
		newSearchCmd(),
		newNameCmd(),
		newPictogramsCmd(),
		newExportCmd(),
		newServeCmd(),
		newMCPCmd(),
		newCacheCmd(),
	)
	return cmd
}

func persistentPreRun(cmd *cobra.Command, ro *RootOptions, deps *dependencies) error {
	switch ro.OutputFormat {
	case OutputText, OutputJSON, OutputTable:
	default:
		return errors.Errorf(errors.ErrCodeBadRequest, "unsupported output format %q (text, json, table)", ro.OutputFormat)
	}

	cfg, err := initConfig(ro)
	if err != nil {
		return err
	}

	logger := deps.logger
	if logger == nil {
		if logger, err = initLogger(ro); err != nil {
			return fmt.Errorf("logger initialization failed: %w", err)
		}
	}

	cliCtx := &CLIContext{
		Config:       cfg,
		Logger:       logger,
		OutputFormat: ro.OutputFormat,
		Timeout:      ro.Timeout,
		ServerAddr:   ro.ServerAddr,
		opts:         ro,
		deps:         deps,
	}
	cmd.SetContext(context.WithValue(cmd.Context(), cliContextKey{}, cliCtx))
	return nil
}

// initConfig loads --config, else ./ghs.yaml when present, else the
// environment.
func initConfig(ro *RootOptions) (*config.Config, error) {
	path := ro.ConfigPath
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	return config.LoadOrDefault(path)
}

// initLogger creates a console logger on stderr so stdout carries only
// command output.  The CLI logs warnings and above unless asked otherwise;
// log.level in the config file applies to the servers.
func initLogger(ro *RootOptions) (logging.Logger, error) {
	level := logging.LevelWarn
	if ro.LogLevel != "" {
		level = strings.ToLower(ro.LogLevel)
	}
	if ro.Verbose {
		level = logging.LevelDebug
	}
	return logging.NewLogger(logging.LogConfig{
		Level:            level,
		Format:           "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	})
}

// ServerLogger returns the logger for long-running commands: the configured
// log section unless --log-level or --verbose was given.  stdout is reserved
// for the protocol when toStderr is set.
func (c *CLIContext) ServerLogger(toStderr bool) (logging.Logger, error) {
	if c.deps.logger != nil || c.opts.LogLevel != "" || c.opts.Verbose {
		return c.Logger, nil
	}
	lc := logging.LogConfig{Level: c.Config.Log.Level, Format: c.Config.Log.Format}
	if toStderr {
		lc.OutputPaths = []string{"stderr"}
		lc.ErrorOutputPaths = []string{"stderr"}
	}
	return logging.NewLogger(lc)
}

// GetCLIContext extracts the CLIContext stored by the root command.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errors.New(errors.ErrCodeInternal, "command context is nil")
	}
	cliCtx, ok := ctx.Value(cliContextKey{}).(*CLIContext)
	if !ok || cliCtx == nil {
		return nil, errors.New(errors.ErrCodeInternal, "CLIContext not found in command context")
	}
	return cliCtx, nil
}

// Backend opens the search backend selected by --server.
func (c *CLIContext) Backend() (Backend, error) {
	return c.deps.backend(c)
}

// Execute runs the command tree.  ctx is usually canceled on SIGINT/SIGTERM.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		PrintError(rootCmd, err)
		return err
	}
	return nil
}

// commandContext bounds ctx by the --timeout flag.
func commandContext(cmd *cobra.Command, cliCtx *CLIContext) (context.Context, context.CancelFunc) {
	if cliCtx.Timeout <= 0 {
		return context.WithCancel(cmd.Context())
	}
	return context.WithTimeout(cmd.Context(), cliCtx.Timeout)
}

// printJSON outputs data as indented JSON.
func printJSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(data)
}

// PrintError writes a formatted error message to stderr.
func PrintError(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err.Error())
}

// FormatTable renders headers and rows as a bordered table.  Column widths
// follow display width, so CJK text and emoji stay aligned.
func FormatTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	var buf strings.Builder
	table := tablewriter.NewWriter(&buf)
	table.Header(headers)
	for _, row := range rows {
		_ = table.Append(row)
	}
	_ = table.Render()
	return buf.String()
}
