package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd(defaultDependencies(), os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		_, _ = color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildInfo() string {
	return fmt.Sprintf("secretctl %s (%s, %s)", orNA(buildVersion), orNA(buildCommit), orNA(buildDate))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
