package main

import (
	"fmt"
	"os"

	"github.com/UnendingLoop/gremp/internal/parser"
	"github.com/UnendingLoop/gremp/internal/runner"
)

func main() {
	// resolve launch parameters - pattern, filename, flags, environment
	gp, err := parser.Build(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Problem parsing arguments: %s\n", err)
		os.Exit(1)
	}

	// run the search; zero matches is a success, only I/O failures are not
	if err := runner.Run(gp, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Encountered an error: %s\n", err)
		os.Exit(1)
	}
}
