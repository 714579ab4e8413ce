package cmd

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/spacemeshos/bits/transmission"
)

// versionsCmd represents the versions command.
var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "Sum the versions of all packets in each transmission",
	Long: `Decodes every transmission and adds up the version numbers of the
outermost packet and all of its sub-packets.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, renderVersions)
	},
}

func init() {
	rootCmd.AddCommand(versionsCmd)
}

func renderVersions(w io.Writer, results []transmission.Result) error {
	table := newTable(w, "#", "Transmission", "Bits", "Version Sum")
	for _, res := range results {
		row := []string{strconv.Itoa(res.Index + 1), res.Label()}
		if res.DecodeErr != nil {
			row = append(row, "-", res.DecodeErr.Error())
		} else {
			row = append(row, strconv.FormatUint(uint64(res.Bits), 10), strconv.FormatUint(res.Versions, 10))
		}
		table.Append(row)
	}
	table.Render()
	return nil
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}
