package main

import (
	"os"

	"github.com/m-mizutani/appveyor-status/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
