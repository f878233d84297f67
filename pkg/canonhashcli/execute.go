package canonhashcli

import "github.com/osvaldoandrade/canonhash/internal/cli"

// Execute runs the canonhash CLI entrypoint.
func Execute() int {
	return cli.Execute()
}
