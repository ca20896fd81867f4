package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/widgeo/pkg/geometry"
	"github.com/grindlemire/widgeo/pkg/treedef"
)

// runCheck implements the check subcommand. It builds each tree and runs
// the construction-time validation (demand legality, root extents, buffer
// values) plus the per-axis capacity pre-check, without assigning any
// positions.
func runCheck(args []string) error {
	verbose := false
	var paths []string

	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
		} else {
			paths = append(paths, arg)
		}
	}

	if len(paths) == 0 {
		return fmt.Errorf("no definition files given")
	}

	var errorCount int
	for _, path := range paths {
		if verbose {
			fmt.Printf("Checking %s\n", path)
		}

		if err := checkFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			errorCount++
			continue
		}

		if verbose {
			fmt.Printf("%s: ok\n", path)
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation", errorCount, len(paths))
	}
	return nil
}

func checkFile(path string) error {
	def, err := treedef.LoadFile(path)
	if err != nil {
		return err
	}
	arena, err := def.Build()
	if err != nil {
		return err
	}

	solver, err := geometry.NewSolver(arena.RootWidget())
	if err != nil {
		return err
	}
	for di := 0; di < arena.AxisCount(); di++ {
		if err := solver.Check(di); err != nil {
			return err
		}
	}
	return nil
}
