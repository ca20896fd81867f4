package widget

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/grindlemire/widgeo/pkg/geometry"
)

func sz(d geometry.Demand, ext float64, j geometry.Justify) *geometry.Size {
	return geometry.MustSize(d, ext, geometry.World(0), geometry.World(0), j)
}

// buildSplit builds a 2-axis arena with a fixed sidebar and an expanding
// main panel.
func buildSplit(t *testing.T) (*Arena, Handle, Handle) {
	t.Helper()
	a := NewArena(2)
	root, err := a.Root("root", 0,
		sz(geometry.DemandExact, 10, geometry.ToLowest),
		sz(geometry.DemandExact, 6, geometry.Centre),
	)
	if err != nil {
		t.Fatalf("Root: %v", err)
	}
	sidebar, err := a.Leaf(root, "sidebar",
		sz(geometry.DemandExact, 3, geometry.Spread),
		sz(geometry.DemandExact, 6, geometry.Spread),
	)
	if err != nil {
		t.Fatalf("Leaf: %v", err)
	}
	main, err := a.Leaf(root, "main",
		sz(geometry.DemandExpand, -1, geometry.Spread),
		sz(geometry.DemandExact, 6, geometry.Spread),
	)
	if err != nil {
		t.Fatalf("Leaf: %v", err)
	}
	return a, sidebar, main
}

func TestArena_Build(t *testing.T) {
	a, sidebar, main := buildSplit(t)

	if a.Len() != 3 {
		t.Errorf("Len() = %d, want 3", a.Len())
	}
	if a.Parent(sidebar) != 0 || a.Parent(main) != 0 {
		t.Error("children do not point at the root")
	}
	if got := a.ChildrenOf(0); len(got) != 2 || got[0] != sidebar || got[1] != main {
		t.Errorf("ChildrenOf(root) = %v, want [%d %d] in declaration order", got, sidebar, main)
	}
	if a.Name(main) != "main" {
		t.Errorf("Name(main) = %q", a.Name(main))
	}
}

func TestArena_BuildErrors(t *testing.T) {
	type tc struct {
		build func(a *Arena) error
	}

	rooted := func(a *Arena) Handle {
		h, err := a.Root("root", 0, sz(geometry.DemandExact, 10, geometry.Spread))
		if err != nil {
			panic(err)
		}
		return h
	}

	tests := map[string]tc{
		"child before root": {
			build: func(a *Arena) error {
				_, err := a.Leaf(0, "a", sz(geometry.DemandExact, 1, geometry.Spread))
				return err
			},
		},
		"second root": {
			build: func(a *Arena) error {
				rooted(a)
				_, err := a.Root("again", 0, sz(geometry.DemandExact, 1, geometry.Spread))
				return err
			},
		},
		"unknown parent": {
			build: func(a *Arena) error {
				rooted(a)
				_, err := a.Leaf(99, "a", sz(geometry.DemandExact, 1, geometry.Spread))
				return err
			},
		},
		"leaf cannot parent": {
			build: func(a *Arena) error {
				root := rooted(a)
				leaf, err := a.Leaf(root, "a", sz(geometry.DemandExact, 1, geometry.Spread))
				if err != nil {
					return err
				}
				_, err = a.Leaf(leaf, "b", sz(geometry.DemandExact, 1, geometry.Spread))
				return err
			},
		},
		"duplicate sibling name": {
			build: func(a *Arena) error {
				root := rooted(a)
				if _, err := a.Leaf(root, "a", sz(geometry.DemandExact, 1, geometry.Spread)); err != nil {
					return err
				}
				_, err := a.Leaf(root, "a", sz(geometry.DemandExact, 2, geometry.Spread))
				return err
			},
		},
		"wrong size count": {
			build: func(a *Arena) error {
				root := rooted(a)
				_, err := a.Leaf(root, "a",
					sz(geometry.DemandExact, 1, geometry.Spread),
					sz(geometry.DemandExact, 1, geometry.Spread),
				)
				return err
			},
		},
		"nil size": {
			build: func(a *Arena) error {
				root := rooted(a)
				_, err := a.Leaf(root, "a", nil)
				return err
			},
		},
		"empty name": {
			build: func(a *Arena) error {
				root := rooted(a)
				_, err := a.Leaf(root, "", sz(geometry.DemandExact, 1, geometry.Spread))
				return err
			},
		},
		"sequence axis out of range": {
			build: func(a *Arena) error {
				root := rooted(a)
				_, err := a.Frame(root, "a", 1, sz(geometry.DemandExact, 1, geometry.Spread))
				return err
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if err := tt.build(NewArena(1)); err == nil {
				t.Fatal("build succeeded, want error")
			}
		})
	}
}

func TestArena_Solve(t *testing.T) {
	a, sidebar, main := buildSplit(t)

	if _, ok := a.Range(main, 0); ok {
		t.Error("Range reports ok for an unsolved expandToFit size")
	}

	if _, err := a.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	r, ok := a.Range(sidebar, 0)
	if !ok || r.Lo != 0 || r.Hi != 3 {
		t.Errorf("sidebar axis 0 = %v, %v, want [0, 3]", r, ok)
	}
	r, ok = a.Range(main, 0)
	if !ok || !scalar.EqualWithinAbs(r.Lo, 3, 1e-9) || !scalar.EqualWithinAbs(r.Hi, 10, 1e-9) {
		t.Errorf("main axis 0 = %v, %v, want [3, 10]", r, ok)
	}
}

func TestArena_ResetAndResolve(t *testing.T) {
	a, _, main := buildSplit(t)

	if _, err := a.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	first, ok := a.Range(main, 0)
	if !ok {
		t.Fatal("main not resolved after Solve")
	}

	// Reset restores the declared demands so the tree can be solved again.
	a.Reset()
	if a.Size(main, 0).Demand != geometry.DemandExpand {
		t.Errorf("Reset did not restore the declared demand, got %v", a.Size(main, 0).Demand)
	}
	if _, ok := a.Range(main, 0); ok {
		t.Error("Range reports ok after Reset")
	}

	if _, err := a.Solve(); err != nil {
		t.Fatalf("second Solve: %v", err)
	}
	second, ok := a.Range(main, 0)
	if !ok || first != second {
		t.Errorf("re-solve gave %v, want %v", second, first)
	}
}

func TestArena_SolveReportsLayoutErrors(t *testing.T) {
	a := NewArena(1)
	root, err := a.Root("root", 0, sz(geometry.DemandExact, 1, geometry.Spread))
	if err != nil {
		t.Fatalf("Root: %v", err)
	}
	if _, err := a.Leaf(root, "wide", sz(geometry.DemandExact, 2, geometry.Spread)); err != nil {
		t.Fatalf("Leaf: %v", err)
	}

	if _, err := a.Solve(); !errors.Is(err, geometry.ErrInsufficientSpace) {
		t.Fatalf("Solve error = %v, want ErrInsufficientSpace", err)
	}
}

func TestArena_DeclarationsAreCopied(t *testing.T) {
	decl := sz(geometry.DemandExact, 3, geometry.Spread)
	a := NewArena(1)
	root, err := a.Root("root", 0, sz(geometry.DemandExact, 10, geometry.Centre))
	if err != nil {
		t.Fatalf("Root: %v", err)
	}
	leaf, err := a.Leaf(root, "a", decl)
	if err != nil {
		t.Fatalf("Leaf: %v", err)
	}

	if _, err := a.Solve(); err != nil {
		t.Fatalf("Solve: %v", err)
	}

	// The caller's Size is never positioned; only the working copy is.
	if decl.Range.Lo != 0 || decl.Range.Hi != 3 {
		t.Errorf("solver mutated the caller's declaration: %v", decl.Range)
	}
	if r, _ := a.Range(leaf, 0); !scalar.EqualWithinAbs(r.Lo, 3.5, 1e-9) || !scalar.EqualWithinAbs(r.Hi, 6.5, 1e-9) {
		t.Errorf("leaf range = %v, want [3.5, 6.5]", r)
	}
}
