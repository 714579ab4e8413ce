package config

import (
	"fmt"
	"path/filepath"

	"github.com/spacemeshos/smutil"
	"go.uber.org/zap/zapcore"
)

const (
	MaxDepthLimit  = 1 << 12
	MaxParallelism = 256
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultLogLevel       = "info"
	DefaultMaxDepth       = 256
	DefaultParallelism    = 4

	// StdinInput reads transmissions from the standard input.
	StdinInput = "-"
)

var (
	DefaultHomeDir    = filepath.Join(smutil.GetUserHomeDirectory(), ".bits")
	DefaultConfigFile = filepath.Join(DefaultHomeDir, DefaultConfigFileName)
)

type Config struct {
	// Input is the file holding one hex transmission per line.
	Input string `mapstructure:"input"`

	// Output is the file the report is written to. Empty means stdout.
	Output string `mapstructure:"output"`

	LogLevel    string `mapstructure:"loglevel"`
	MaxDepth    uint   `mapstructure:"maxdepth"`
	Parallelism uint   `mapstructure:"parallel"`
}

func DefaultConfig() *Config {
	return &Config{
		Input:       StdinInput,
		LogLevel:    DefaultLogLevel,
		MaxDepth:    DefaultMaxDepth,
		Parallelism: DefaultParallelism,
	}
}

func (cfg *Config) Validate() error {
	if cfg.Input == "" {
		return fmt.Errorf("invalid `Input`; expected: a file path or %q, given: empty", StdinInput)
	}

	if cfg.MaxDepth == 0 {
		return fmt.Errorf("invalid `MaxDepth`; expected: > 0, given: %d", cfg.MaxDepth)
	}
	if cfg.MaxDepth > MaxDepthLimit {
		return fmt.Errorf("invalid `MaxDepth`; expected: <= %d, given: %d", MaxDepthLimit, cfg.MaxDepth)
	}

	if cfg.Parallelism == 0 {
		return fmt.Errorf("invalid `Parallelism`; expected: > 0, given: %d", cfg.Parallelism)
	}
	if cfg.Parallelism > MaxParallelism {
		return fmt.Errorf("invalid `Parallelism`; expected: <= %d, given: %d", MaxParallelism, cfg.Parallelism)
	}

	if _, err := cfg.Level(); err != nil {
		return fmt.Errorf("invalid `LogLevel`: %w", err)
	}

	return nil
}

// Level returns the parsed log level.
func (cfg *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(cfg.LogLevel)
}
