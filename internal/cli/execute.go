package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func Execute() int {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		exitErr := NormalizeError(err)
		_ = writeCLIError(cmd.ErrOrStderr(), exitErr, flagBool(cmd, "json"))
		return exitErr.Code
	}
	return 0
}

func flagBool(cmd *cobra.Command, name string) bool {
	flags := cmd.PersistentFlags()
	if flags.Lookup(name) == nil {
		return false
	}
	value, err := flags.GetBool(name)
	if err != nil {
		return false
	}
	return value
}
