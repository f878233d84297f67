package main

import (
	"os"

	"github.com/osvaldoandrade/canonhash/pkg/canonhashcli"
)

func main() {
	os.Exit(canonhashcli.Execute())
}
