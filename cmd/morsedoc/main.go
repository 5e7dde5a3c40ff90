package main

import (
	"os"

	"github.com/toyz/morsedoc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		cli.ReportError(err)
		os.Exit(1)
	}
}
