package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = ".canonhash.yaml"

type fileConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Algorithm string `yaml:"algorithm"`
}

// applyFileConfig folds a yaml config file into opts. Flags set on the
// command line win over the file; the file wins over environment defaults.
// The implicit .canonhash.yaml may be absent, an explicit --config may not.
func applyFileConfig(cmd *cobra.Command, opts *RootOptions) error {
	path := opts.ConfigPath
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.LogLevel != "" && !flagChanged(cmd, "log-level") {
		opts.LogLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !flagChanged(cmd, "log-format") {
		opts.LogFormat = cfg.LogFormat
	}
	if cfg.Algorithm != "" {
		opts.Algorithm = cfg.Algorithm
	}
	return nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	flag := cmd.Root().PersistentFlags().Lookup(name)
	return flag != nil && flag.Changed
}
