package widget

import (
	"fmt"

	"github.com/grindlemire/widgeo/pkg/geometry"
)

// Handle addresses a widget record within an Arena. Handles are stable for
// the lifetime of the arena; the root is always handle 0.
type Handle int

// None is the null handle.
const None Handle = -1

type record struct {
	name     string
	parent   Handle
	children []Handle
	seqAxis  int
	isFrame  bool

	// decl holds the caller's declared preferences; sizes is the working
	// copy the solver mutates. Reset re-derives sizes from decl.
	decl  []*geometry.Size
	sizes []*geometry.Size
}

// Arena stores a widget tree as a flat slice of records. Children arrays
// are appended only by the builder methods, never by the solver, so the
// tree contains no cycles by construction.
type Arena struct {
	axes  int
	nodes []record
}

// NewArena creates an empty arena for trees with the given number of
// spatial axes (2 for the usual X/Y layout).
func NewArena(axisCount int) *Arena {
	return &Arena{axes: axisCount}
}

// AxisCount returns the number of axes widgets in this arena carry.
func (a *Arena) AxisCount() int {
	return a.axes
}

// Len returns the number of widgets in the arena.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Root creates the root widget. It must be called before any other builder
// method and exactly once. The root is a frame whose children, if any, are
// laid out along seqAxis. Every axis needs an exact extent on the root;
// the solver enforces this at construction.
func (a *Arena) Root(name string, seqAxis int, sizes ...*geometry.Size) (Handle, error) {
	if len(a.nodes) != 0 {
		return None, fmt.Errorf("arena already has a root widget %q", a.nodes[0].name)
	}
	if err := a.checkSpec(name, seqAxis, sizes); err != nil {
		return None, err
	}

	a.nodes = append(a.nodes, newRecord(name, None, seqAxis, true, sizes))
	return 0, nil
}

// Frame adds a container widget under parent. Its children are laid out
// along seqAxis; on every other axis they stack in parallel. A frame may
// stay childless.
func (a *Arena) Frame(parent Handle, name string, seqAxis int, sizes ...*geometry.Size) (Handle, error) {
	return a.add(parent, name, seqAxis, true, sizes)
}

// Leaf adds a childless widget under parent. Leaves may not demand
// shrinkToFit on any axis; the solver rejects such trees.
func (a *Arena) Leaf(parent Handle, name string, sizes ...*geometry.Size) (Handle, error) {
	return a.add(parent, name, 0, false, sizes)
}

func (a *Arena) add(parent Handle, name string, seqAxis int, isFrame bool, sizes []*geometry.Size) (Handle, error) {
	if len(a.nodes) == 0 {
		return None, fmt.Errorf("arena has no root widget yet")
	}
	if parent < 0 || int(parent) >= len(a.nodes) {
		return None, fmt.Errorf("parent handle %d does not exist", parent)
	}
	p := &a.nodes[parent]
	if !p.isFrame {
		return None, fmt.Errorf("widget %q is a leaf and cannot have children", p.name)
	}
	for _, ch := range p.children {
		if a.nodes[ch].name == name {
			return None, fmt.Errorf("widget %q already has a child named %q", p.name, name)
		}
	}
	if isFrame {
		if err := a.checkSpec(name, seqAxis, sizes); err != nil {
			return None, err
		}
	} else if err := a.checkSpec(name, 0, sizes); err != nil {
		return None, err
	}

	h := Handle(len(a.nodes))
	a.nodes = append(a.nodes, newRecord(name, parent, seqAxis, isFrame, sizes))
	p = &a.nodes[parent] // re-take, append may have moved the backing array
	p.children = append(p.children, h)
	return h, nil
}

func (a *Arena) checkSpec(name string, seqAxis int, sizes []*geometry.Size) error {
	if name == "" {
		return fmt.Errorf("widget needs a name")
	}
	if len(sizes) != a.axes {
		return fmt.Errorf("widget %q declares %d sizes, arena has %d axes", name, len(sizes), a.axes)
	}
	for i, sz := range sizes {
		if sz == nil {
			return fmt.Errorf("widget %q has a nil size for axis %d", name, i)
		}
	}
	if seqAxis < 0 || seqAxis >= a.axes {
		return fmt.Errorf("widget %q sequence axis %d out of range", name, seqAxis)
	}
	return nil
}

func newRecord(name string, parent Handle, seqAxis int, isFrame bool, sizes []*geometry.Size) record {
	rec := record{
		name:    name,
		parent:  parent,
		seqAxis: seqAxis,
		isFrame: isFrame,
		decl:    sizes,
		sizes:   make([]*geometry.Size, len(sizes)),
	}
	for i, sz := range sizes {
		rec.sizes[i] = sz.Copy()
	}
	return rec
}

// Reset discards all solver state, restoring every widget to its declared
// preferences. Call it before re-solving a tree after a failed solve or a
// declaration change.
func (a *Arena) Reset() {
	for i := range a.nodes {
		rec := &a.nodes[i]
		for j, sz := range rec.decl {
			rec.sizes[j] = sz.Copy()
		}
	}
}

// Widget adapts a handle to the solver's Widget interface.
func (a *Arena) Widget(h Handle) geometry.Widget {
	return node{a: a, h: h}
}

// RootWidget adapts the root. It panics if the arena is empty.
func (a *Arena) RootWidget() geometry.Widget {
	if len(a.nodes) == 0 {
		panic("widget: arena has no root")
	}
	return node{a: a, h: 0}
}

// Name returns the widget's name.
func (a *Arena) Name(h Handle) string {
	return a.nodes[h].name
}

// Parent returns the widget's parent handle, or None for the root.
func (a *Arena) Parent(h Handle) Handle {
	return a.nodes[h].parent
}

// ChildrenOf returns the widget's child handles in declaration order.
// The returned slice is owned by the arena.
func (a *Arena) ChildrenOf(h Handle) []Handle {
	return a.nodes[h].children
}

// Size returns the working size for one widget and axis, the same value
// the solver resolves in place.
func (a *Arena) Size(h Handle, axis int) *geometry.Size {
	return a.nodes[h].sizes[axis]
}

// Range returns the range for one widget and axis. ok is false while the
// size is unresolved: shrinkToFit and expandToFit sizes have no range until
// the axis has been solved, and exact sizes hold [0, extent] until then.
func (a *Arena) Range(h Handle, axis int) (geometry.Range, bool) {
	r := a.nodes[h].sizes[axis].Range
	if r == nil || a.nodes[h].sizes[axis].Demand != geometry.DemandExact {
		return geometry.Range{}, false
	}
	return *r, true
}

// Solve constructs a solver over the arena's tree and resolves every axis.
// The returned solver can be kept for diagnostics (Dump).
func (a *Arena) Solve(opts ...geometry.Option) (*geometry.Solver, error) {
	s, err := geometry.NewSolver(a.RootWidget(), opts...)
	if err != nil {
		return nil, err
	}
	if err := s.CalcAllRanges(); err != nil {
		return nil, err
	}
	return s, nil
}

// node adapts an arena record to geometry.Widget. It is a small comparable
// value so the solver can identify the root by interface equality.
type node struct {
	a *Arena
	h Handle
}

func (n node) Name() string {
	return n.a.nodes[n.h].name
}

func (n node) AxisCount() int {
	return n.a.axes
}

func (n node) Size(axis int) *geometry.Size {
	return n.a.nodes[n.h].sizes[axis]
}

func (n node) Children() *geometry.Children {
	rec := &n.a.nodes[n.h]
	if !rec.isFrame {
		return nil
	}
	list := make([]geometry.Widget, len(rec.children))
	for i, ch := range rec.children {
		list[i] = node{a: n.a, h: ch}
	}
	return &geometry.Children{List: list, SequenceAxis: rec.seqAxis}
}
