package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/grindlemire/widgeo/pkg/geometry"
	"github.com/grindlemire/widgeo/pkg/treedef"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// runSolve implements the solve subcommand. It loads each definition,
// solves every axis, and prints the resolved range tree.
func runSolve(args []string) error {
	verbose := false
	parallel := false
	var paths []string

	for _, arg := range args {
		switch arg {
		case "-v", "--verbose":
			verbose = true
		case "-parallel", "--parallel":
			parallel = true
		default:
			paths = append(paths, arg)
		}
	}

	if len(paths) == 0 {
		return fmt.Errorf("no definition files given")
	}

	for _, path := range paths {
		if verbose {
			fmt.Printf("Solving %s\n", path)
		}

		def, err := treedef.LoadFile(path)
		if err != nil {
			return err
		}
		arena, err := def.Build()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		var opts []geometry.Option
		if parallel {
			opts = append(opts, geometry.WithParallelAxes())
		}
		solver, err := arena.Solve(opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		fmt.Println(headerStyle.Render(path))
		fmt.Println(solver.Dump())
	}
	return nil
}
