package main

import (
	"fmt"
	"os"

	"github.com/pkgmap/pkgmap/internal/cli"
)

func main() {
	cmd := cli.New()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pkg-map:", err)
		os.Exit(cli.ExitCode(err))
	}
}
