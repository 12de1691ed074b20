// curioso probes the host operating system and prints a JSON report of
// system facts to stdout.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/curioso-agent/curioso/cmd"
)

func main() {
	if err := fang.Execute(context.Background(), cmd.RootCmd()); err != nil {
		os.Exit(1)
	}
}
