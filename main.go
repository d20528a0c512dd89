package main

import (
	"context"
	"os"

	"github.com/thenoetrevino/tabula/cmd"
	"github.com/thenoetrevino/tabula/internal/cli"
)

func main() {
	if err := cmd.Execute(context.Background()); err != nil {
		os.Exit(cli.ExitCodeFor(err))
	}
}
