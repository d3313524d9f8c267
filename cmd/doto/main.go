// Command doto scans a workspace for TODO-style marks inside comments.
package main

import (
	"fmt"
	"os"

	"github.com/utakotoba/doto/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
