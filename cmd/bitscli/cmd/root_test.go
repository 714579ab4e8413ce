package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const input = `8A004A801A8002F478
C200B40A82

D2FE2
9C0141080250320F1802104A08
`

// execute runs the root command with args. Flags keep their values between
// runs, so the ones the tests vary are always reset first.
func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()

	out := bytes.NewBuffer(nil)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{
		args[0],
		"--input=-",
		"--output=",
		"--logLevel=error",
		"--printConfig=false",
		"--maxDepth=256",
	}, args[1:]...))

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestVersionsCmd(t *testing.T) {
	r := require.New(t)

	out := execute(t, input, "versions")
	r.Contains(out, "8A004A801A8002F478")
	r.Contains(out, "| 16 ")
	r.Contains(out, "| 69 ")
	r.Contains(out, "| 20 ")
	r.Contains(out, "invalid hex")
}

func TestEvalCmd(t *testing.T) {
	r := require.New(t)

	out := execute(t, input, "eval")
	lines := strings.Split(out, "\n")

	row := func(label string) string {
		for _, l := range lines {
			if strings.Contains(l, label) {
				return l
			}
		}
		return ""
	}
	r.Contains(row("8A004A801A8002F478"), "| 15 ")
	r.Contains(row("C200B40A82"), "| 3 ")
	r.Contains(row("D2FE2 "), "invalid hex")
	r.Contains(row("9C0141080250320F1802..."), "| 1 ")
}

func TestPrintCmd(t *testing.T) {
	r := require.New(t)

	out := execute(t, "38006F45291200\n", "print")
	r.Equal(strings.Join([]string{
		"38006F45291200",
		"{Ver: 1, Type: Operator(<), Packets: [",
		"  {Ver: 6, Type: Literal, Value: 10},",
		"  {Ver: 2, Type: Literal, Value: 20},",
		"]}",
		"sum versions = 9",
		"",
		"",
	}, "\n"), out)
}

func TestEvalCmd_FileInputAndOutput(t *testing.T) {
	r := require.New(t)

	dir := t.TempDir()
	in := filepath.Join(dir, "input.txt")
	report := filepath.Join(dir, "report.txt")
	r.NoError(os.WriteFile(in, []byte("04005AC33890\n"), 0o600))

	out := execute(t, "", "eval", "--input", in, "--output", report)
	r.Empty(out)

	data, err := os.ReadFile(report)
	r.NoError(err)
	r.Contains(string(data), "04005AC33890")
	r.Contains(string(data), "| 54 ")
}

func TestPrintConfig(t *testing.T) {
	out := execute(t, "", "eval", "--printConfig", "--maxDepth", "17")
	require.Contains(t, out, "MaxDepth: (uint) 17")
}

func TestInvalidConfig(t *testing.T) {
	rootCmd.SetOut(bytes.NewBuffer(nil))
	rootCmd.SetErr(bytes.NewBuffer(nil))
	rootCmd.SetArgs([]string{"eval", "--input=-", "--maxDepth=0"})
	require.Error(t, rootCmd.ExecuteContext(context.Background()))
}
