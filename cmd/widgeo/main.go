// Package main provides the CLI tool for widgeo tree definitions.
//
// Usage:
//
//	widgeo solve [file...]    Solve layout trees and print their ranges
//	widgeo check [file...]    Validate layout trees without solving
//	widgeo help               Show help
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `widgeo - constraint layout solver for widget trees

Usage:
  widgeo <command> [options] [file...]

Commands:
  solve       Solve the trees in YAML definition files and print ranges
  check       Validate definition files without assigning positions
  version     Print version information
  help        Show this help message

Options:
  -v          Verbose output
  -parallel   Solve axes concurrently (solve only)

Examples:
  widgeo solve layout.yaml        Solve a tree and print per-axis ranges
  widgeo solve -v a.yaml b.yaml   Solve several trees with verbose output
  widgeo check layout.yaml        Validate demands and capacity only

For more information, see https://github.com/grindlemire/widgeo
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "solve":
		if err := runSolve(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := runCheck(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("widgeo %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}
