package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"capacity/internal/ui"
)

var errNotTerminal = errors.New("tui requires an interactive terminal; use 'capacity parse' or 'capacity format' instead")

func newTuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "tui",
		Short:         "Interactive converter: type a size, see it in every form",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal() {
				return &ExitError{Code: ExitCLIError, Err: errNotTerminal}
			}
			a := appFrom(cmd)
			a.log.Debug("starting tui", "lenient", a.cfg.Lenient)
			if err := ui.Run(cmd.Context(), ui.Options{Lenient: a.cfg.Lenient}); err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			return nil
		},
	}
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
