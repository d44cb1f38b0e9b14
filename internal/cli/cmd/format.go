package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <bytes>...",
		Short: "Render byte counts with a unit suffix (1536 -> 1.5K)",
		Example: `  capacity format 500 1024 1536
  capacity format --exact 4194304`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			exact, _ := cmd.Flags().GetBool("exact")
			for _, arg := range args {
				b, err := a.parse(arg)
				if err != nil {
					return err
				}
				if exact {
					fmt.Fprintln(cmd.OutOrStdout(), b.Exact())
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), b.Capacity())
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("exact", false, "Print the exact form (4K, 1536) that parses back losslessly")
	return cmd
}
