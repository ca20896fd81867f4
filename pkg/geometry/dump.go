package geometry

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"
)

// DumpAxis renders the tree's ranges along one axis as indented text, for
// debugging. The format is not stable.
func (s *Solver) DumpAxis(axis int) string {
	if axis < 0 || axis >= s.axes {
		return fmt.Sprintf("axis %d out of range", axis)
	}
	return s.dumpWidget(s.root, axis).String()
}

// Dump renders every axis of the tree, one section per axis.
func (s *Solver) Dump() string {
	var b strings.Builder
	for di := 0; di < s.axes; di++ {
		fmt.Fprintf(&b, "Ranges for axis %d\n", di)
		b.WriteString(s.DumpAxis(di))
		b.WriteString("\n")
		if di < s.axes-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *Solver) dumpWidget(w Widget, di int) *tree.Tree {
	sz := w.Size(di)
	label := fmt.Sprintf("%s: none  %s", w.Name(), sz.Demand)
	if sz.Range != nil {
		label = fmt.Sprintf("%s: %s  %s", w.Name(), sz.Range, sz.Demand)
	}

	t := tree.Root(label)
	if ch := w.Children(); ch != nil {
		for _, child := range ch.List {
			t.Child(s.dumpWidget(child, di))
		}
	}
	return t
}
