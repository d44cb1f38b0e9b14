package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"capacity/pkg/capacity"
)

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "table <count>...",
		Short:         "Show a count scaled through every unit from bytes to exabytes",
		Example:       "  capacity table 1 3",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Input", "Unit", "Bytes", "Capacity", "Exact"})
			t.SetColumnConfigs([]table.ColumnConfig{
				{Name: "Input", AutoMerge: true},
				{Name: "Bytes", Align: text.AlignRight},
			})
			for _, arg := range args {
				b, err := a.parse(arg)
				if err != nil {
					return err
				}
				for _, u := range capacity.Units() {
					v, err := b.InChecked(u)
					if err != nil {
						t.AppendRow(table.Row{arg, u.String(), "overflow", "-", "-"})
						continue
					}
					scaled := capacity.ByteCount(v)
					t.AppendRow(table.Row{arg, u.String(), a.number(v), scaled.Capacity(), scaled.Exact()})
				}
				t.AppendSeparator()
			}
			t.Render()
			return nil
		},
	}
}
