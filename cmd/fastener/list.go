package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/soypat/fasteners"
	"github.com/soypat/fasteners/standard"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [TYPE]",
	Short: "List fastener types or the size table of one type",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, t := range standard.Types() {
			fmt.Fprintf(tw, "%s\t%s\t%d sizes\n", t, fasteners.UnitsOf(t), len(standard.Sizes(t)))
		}
		return tw.Flush()
	}
	t, err := standard.ParseType(args[0])
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	var roles []standard.Role
	for _, size := range standard.Sizes(t) {
		row, err := standard.Lookup(t, size)
		if err != nil {
			return err
		}
		if roles == nil {
			roles = row.Roles()
			header := []string{"size"}
			for _, r := range roles {
				header = append(header, r.String())
			}
			fmt.Fprintln(tw, strings.Join(header, "\t"))
		}
		cells := []string{size}
		for _, r := range roles {
			cells = append(cells, rangeCell(row, r))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// rangeCell formats the value of r in row as "v" or "lo..hi".
func rangeCell(row standard.Tuple, r standard.Role) string {
	lo, hi, ok := row.Range(r)
	switch {
	case !ok:
		return "-"
	case lo == hi:
		return strconv.FormatFloat(lo, 'g', -1, 64)
	}
	return strconv.FormatFloat(lo, 'g', -1, 64) + ".." + strconv.FormatFloat(hi, 'g', -1, 64)
}
