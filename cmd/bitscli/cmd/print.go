package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/bits/packet"
	"github.com/spacemeshos/bits/transmission"
)

// printCmd represents the print command.
var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the decoded packet tree of each transmission",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, renderTrees)
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
}

func renderTrees(w io.Writer, results []transmission.Result) error {
	for _, res := range results {
		if _, err := fmt.Fprintln(w, res.Label()); err != nil {
			return err
		}
		if res.DecodeErr != nil {
			if _, err := fmt.Fprintf(w, "decode: %v\n\n", res.DecodeErr); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\nsum versions = %d\n\n", packet.Format(res.Packet), res.Versions); err != nil {
			return err
		}
	}
	return nil
}
