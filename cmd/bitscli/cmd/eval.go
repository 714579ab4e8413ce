package cmd

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/bits/transmission"
)

// evalCmd represents the eval command.
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the expression encoded by each transmission",
	Long: `Decodes every transmission and evaluates the packet tree as an
expression: sums, products, minimums, maximums and comparisons over the
literal values. A transmission that fails to evaluate is reported and the
remaining ones are still processed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, renderValues)
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func renderValues(w io.Writer, results []transmission.Result) error {
	table := newTable(w, "#", "Transmission", "Value")
	for _, res := range results {
		value := strconv.FormatUint(res.Value, 10)
		if err := res.Err(); err != nil {
			value = err.Error()
		}
		table.Append([]string{strconv.Itoa(res.Index + 1), res.Label(), value})
	}
	table.Render()
	return nil
}
