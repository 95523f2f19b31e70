package main

import (
	"fmt"
	"os"

	"github.com/loanscope/loan-compare/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "loan-compare: %v\n", err)
		os.Exit(1)
	}
}
