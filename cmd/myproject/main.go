package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/macropower/myproject/cmd/myproject/commands"
)

const (
	cmdName = "myproject"

	shortDesc = "The myproject Command Line Interface (CLI)."
	longDesc  = `The myproject Command Line Interface (CLI).

Prints greetings and reports the version of the build.

Flags may also be set through MYPROJECT_* environment variables,
e.g. MYPROJECT_LOG_LEVEL=debug.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
