package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"code.cloudfoundry.org/bytefmt"
	"github.com/davecgh/go-spew/spew"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/bits/config"
	"github.com/spacemeshos/bits/transmission"
)

var (
	// Version is the version of the binary.
	Version string
	// Commit is the commit hash of the binary.
	Commit string

	printConfig bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bitscli",
	Short: "Decode and evaluate BITS transmissions",
	Long: `bitscli decodes hexadecimal BITS transmissions, one per input line,
into packet trees. The subcommands sum the packet versions, evaluate the
expressions, or print the decoded trees.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (%s)", Version, Commit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	config.SetFlags(flags, config.DefaultConfig())
	flags.BoolVar(&printConfig, "printConfig", false, "print the used config and exit")
}

// renderFunc writes the report of a command for the processed transmissions.
type renderFunc func(w io.Writer, results []transmission.Result) error

// run loads the config and the transmissions, processes them and writes the
// report produced by render.
func run(cmd *cobra.Command, render renderFunc) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	if printConfig {
		spew.Fdump(cmd.OutOrStdout(), cfg)
		return nil
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	lines, err := readInput(cmd, cfg)
	if err != nil {
		return err
	}

	var size uint64
	for _, line := range lines {
		size += uint64(len(line))
	}
	logger.Info("transmissions loaded",
		zap.String("input", cfg.Input),
		zap.Int("count", len(lines)),
		zap.String("size", bytefmt.ByteSize(size)),
	)

	results, err := transmission.Process(cmd.Context(), lines,
		transmission.WithConfig(cfg),
		transmission.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	failed := 0
	for i := range results {
		if results[i].Err() != nil {
			failed++
		}
	}
	if failed > 0 {
		logger.Warn("some transmissions failed", zap.Int("failed", failed), zap.Int("total", len(results)))
	}

	buf := bytes.NewBuffer(nil)
	if err := render(buf, results); err != nil {
		return err
	}

	if cfg.Output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := atomic.WriteFile(cfg.Output, buf); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	logger.Info("report written", zap.String("output", cfg.Output))
	return nil
}

func readInput(cmd *cobra.Command, cfg *config.Config) ([]string, error) {
	if cfg.Input == config.StdinInput {
		return transmission.Read(cmd.InOrStdin())
	}
	return transmission.ReadFile(cfg.Input)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Encoding = "console"
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapCfg.Build()
}
