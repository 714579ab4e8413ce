package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spacemeshos/smutil"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ConfigFlag names the flag holding an alternative config file path.
const ConfigFlag = "config"

// SetFlags declares the config flags on flags, using cfg values as defaults.
func SetFlags(flags *pflag.FlagSet, cfg *Config) {
	flags.String(ConfigFlag, "", "Path to configuration file (default "+DefaultConfigFile+")")

	flags.StringVarP(&cfg.Input, "input", "i", cfg.Input,
		"File with one hex transmission per line, or - for stdin")

	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output,
		"File to write the report to (default stdout)")

	flags.StringVar(&cfg.LogLevel, "logLevel", cfg.LogLevel,
		"log level (debug, info, warn, error)")

	flags.UintVar(&cfg.MaxDepth, "maxDepth", cfg.MaxDepth,
		"Deepest packet nesting accepted")

	flags.UintVar(&cfg.Parallelism, "parallel", cfg.Parallelism,
		"Number of transmissions processed concurrently")
}

// Load builds the effective config: defaults, overridden by the config
// file, overridden by flags set on the command line.
func Load(flags *pflag.FlagSet) (*Config, error) {
	vip := viper.New()
	if err := vip.BindPFlags(flags); err != nil {
		return nil, err
	}

	if err := loadConfigFile(vip.GetString(ConfigFlag), vip); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Input != StdinInput {
		cfg.Input = smutil.GetCanonicalPath(cfg.Input)
	}
	if cfg.Output != "" {
		cfg.Output = smutil.GetCanonicalPath(cfg.Output)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFile reads fileLocation into vip. A missing default config file
// is not an error; a missing explicit one is.
func loadConfigFile(fileLocation string, vip *viper.Viper) error {
	explicit := fileLocation != ""
	if !explicit {
		fileLocation = DefaultConfigFile
	}

	vip.SetConfigFile(smutil.GetCanonicalPath(fileLocation))
	if err := vip.ReadInConfig(); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}
