package main

import (
	"os"

	"github.com/dshills/ghgists/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
