package main

import (
	"fmt"
	"os"

	"github.com/sitharaj88/git-nova/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main executes the git-nova command-line application.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(1)
	}
}
