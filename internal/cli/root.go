package cli

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/osvaldoandrade/canonhash/internal/platform"
)

type RootOptions struct {
	Algorithm  string
	JSONOutput bool
	LogLevel   string
	LogFormat  string
	ConfigPath string
}

func newRootCmd() *cobra.Command {
	opts := &RootOptions{
		Algorithm: envDefault("CANONHASH_ALGORITHM", "sha256"),
		LogLevel:  envDefault("CANONHASH_LOG_LEVEL", "info"),
		LogFormat: envDefault("CANONHASH_LOG_FORMAT", "text"),
	}
	cmd := &cobra.Command{
		Use:           "canonhash",
		Short:         "Canonical JSON serialization and digests",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyFileConfig(cmd, opts); err != nil {
				return err
			}
			logger, err := platform.ConfigureLogger(platform.LoggerOptions{
				Level:  opts.LogLevel,
				Format: opts.LogFormat,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			runID, err := newRunID()
			if err != nil {
				return err
			}
			slog.SetDefault(logger.With("run_id", runID))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.JSONOutput, "json", false, "Emit JSON output")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", opts.LogFormat, "Log format (text, json)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Path to a yaml config file")

	cmd.AddCommand(
		newCanonCmd(opts),
		newDigestCmd(opts),
		newAlgorithmsCmd(opts),
	)

	return cmd
}

func newRunID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), entropy)
	if err != nil {
		return "", fmt.Errorf("generate run id: %w", err)
	}
	return id.String(), nil
}

func envDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
