package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"capacity/pkg/capacity"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <count>...",
		Short: "Express a count of some unit in bytes (4 --unit K -> 4096)",
		Example: `  capacity convert 4 --unit K
  capacity convert 3 --unit gigabytes --checked`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			name, _ := cmd.Flags().GetString("unit")
			checked, _ := cmd.Flags().GetBool("checked")
			u, ok := capacity.ParseUnit(name)
			if !ok {
				return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("invalid --unit: %q (valid: B|K|M|G|T|P|E or a unit name)", name)}
			}
			for _, arg := range args {
				b, err := a.parse(arg)
				if err != nil {
					return err
				}
				v, err := b.InChecked(u)
				if err != nil {
					if checked {
						return &ExitError{Code: ExitOverflow, Err: fmt.Errorf("%s %ss: %w", arg, u, err)}
					}
					a.log.Warn("result saturated", "input", arg, "unit", u.String())
				}
				a.log.Debug("converted", "input", arg, "unit", u.String(), "bytes", v)
				fmt.Fprintln(cmd.OutOrStdout(), a.number(v))
			}
			return nil
		},
	}
	cmd.Flags().StringP("unit", "u", "K", "Unit of the input counts")
	cmd.Flags().Bool("checked", false, "Fail instead of saturating when the result overflows")
	return cmd
}
