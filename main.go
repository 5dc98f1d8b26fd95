package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/hecho/cmd"
	"github.com/thenoetrevino/hecho/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}

	var exitErr *cli.CommandError
	if !errors.As(err, &exitErr) || !exitErr.Reported {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
