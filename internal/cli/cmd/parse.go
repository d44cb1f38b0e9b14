package cmd

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <size>...",
		Short: "Convert sizes such as 4K or 1048576 into byte counts",
		Example: `  capacity parse 4K 2G
  capacity parse --lenient 1.5K`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			for _, arg := range args {
				b, err := a.parse(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), a.number(int64(b)))
			}
			return nil
		},
	}
}

// number renders n, grouping digits when comma output is configured.
func (a *app) number(n int64) string {
	if a.cfg.Comma {
		return humanize.Comma(n)
	}
	return strconv.FormatInt(n, 10)
}
