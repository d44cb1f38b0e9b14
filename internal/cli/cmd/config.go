package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"capacity/internal/config"
)

func newConfigCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:           "show",
		Short:         "Print the effective configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFrom(cmd)
			out := cmd.OutOrStdout()
			file := v.ConfigFileUsed()
			if file == "" {
				file = "(none)"
			}
			fmt.Fprintf(out, "file:       %s\n", file)
			fmt.Fprintf(out, "verbose:    %v\n", a.cfg.Verbose)
			fmt.Fprintf(out, "lenient:    %v\n", a.cfg.Lenient)
			fmt.Fprintf(out, "comma:      %v\n", a.cfg.Comma)
			fmt.Fprintf(out, "warn_above: %s\n", a.cfg.WarnAbove)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "init [path]",
		Short:         "Write the current settings to a new config file",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			written, err := config.WriteDefault(v, path)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s\n", written)
			return nil
		},
	})
	return cmd
}
