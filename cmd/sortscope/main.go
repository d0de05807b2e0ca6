// Command sortscope records sorting algorithms against an instrumented
// array and plays the operation logs back.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/sortscope/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
