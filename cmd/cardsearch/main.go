package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/cardsearch/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// Commands report their own failures; anything else is a usage error.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
