package main

import (
	"os"

	"regexnfa/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
