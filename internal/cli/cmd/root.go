package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"capacity/internal/config"
	"capacity/internal/logging"
	"capacity/pkg/capacity"
)

const (
	ExitOK         = 0
	ExitCLIError   = 1
	ExitParseError = 2
	ExitOverflow   = 3
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "capacity",
		Short:         "Convert, format and parse binary byte counts",
		Long:          "Capacity works with byte counts in binary units: it scales counts by 1024 per unit step, renders them with a one-letter suffix such as 1.5K, and parses strings like 4K back into bytes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupApp(cmd, v)
		},
	}

	// Persistent flags available to all subcommands
	config.AddFlags(root.PersistentFlags())

	// Subcommands
	root.AddCommand(newFormatCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newTableCmd())
	root.AddCommand(newTuiCmd())
	root.AddCommand(newConfigCmd(v))
	root.AddCommand(newCompletionCmd())

	return root
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	return root.ExecuteContext(ctx)
}

type ctxKey string

const appKey ctxKey = "app"

// app carries the per-invocation settings resolved in PersistentPreRunE.
type app struct {
	cfg config.Config
	log *slog.Logger
}

func setupApp(cmd *cobra.Command, v *viper.Viper) error {
	if err := config.Init(v, cmd.Root().PersistentFlags()); err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	cfg, err := config.Load(v)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	a := &app{cfg: cfg, log: logging.New(cmd.ErrOrStderr(), cfg.Verbose)}
	a.log.Debug("configuration loaded", "file", v.ConfigFileUsed(), "lenient", cfg.Lenient, "warn_above", cfg.WarnAbove)
	cmd.SetContext(context.WithValue(cmd.Context(), appKey, a))
	return nil
}

func appFrom(cmd *cobra.Command) *app {
	if a, ok := cmd.Context().Value(appKey).(*app); ok {
		return a
	}
	return &app{log: logging.Discard()}
}

// parse reads a byte count using the parser selected by configuration and
// maps failures to ExitParseError.
func (a *app) parse(s string) (capacity.ByteCount, error) {
	parse := capacity.Parse
	if a.cfg.Lenient {
		parse = capacity.ParseLenient
	}
	b, err := parse(s)
	if err != nil {
		return 0, &ExitError{Code: ExitParseError, Err: err}
	}
	a.log.Debug("parsed", "input", s, "bytes", int64(b), "lenient", a.cfg.Lenient)
	a.checkSize(s, b)
	return b, nil
}

func (a *app) checkSize(input string, b capacity.ByteCount) {
	if a.cfg.WarnAbove > 0 && b > a.cfg.WarnAbove {
		a.log.Warn("value exceeds warn-above threshold", "input", input, "bytes", int64(b), "threshold", a.cfg.WarnAbove.Capacity())
	}
}
