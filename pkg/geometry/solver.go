package geometry

import (
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/widgeo/pkg/debug"
)

// defaultEpsilon is the numerical tolerance applied to the capacity
// pre-check, absorbing float rounding in buffer and extent sums.
const defaultEpsilon = 1e-7

// Option is a functional option for configuring a Solver.
type Option func(*Solver) error

// WithEpsilon sets the tolerance used by the capacity pre-check.
// Must be non-negative.
func WithEpsilon(eps float64) Option {
	return func(s *Solver) error {
		if eps < 0 {
			return newError(KindNegativeBuffer, -1, "", "epsilon %v is negative", eps)
		}
		s.epsilon = eps
		return nil
	}
}

// WithParallelAxes makes CalcAllRanges solve each axis on its own
// goroutine. Axis solves never read or write another axis's state, so the
// result is identical to the sequential order.
func WithParallelAxes() Option {
	return func(s *Solver) error {
		s.parallel = true
		return nil
	}
}

// Solver computes concrete per-axis ranges for every widget in a tree.
//
// Construction validates demand legality for every axis and converts every
// fractional buffer in the tree to world units, scaled by the root's
// maximum extent across all axes. The tree is borrowed, not owned: the
// solver mutates Size values in place and must have exclusive use of the
// tree for the duration of each solve.
type Solver struct {
	root     Widget
	axes     int
	epsilon  float64
	parallel bool
}

// NewSolver validates the tree rooted at root and prepares it for solving.
// It fails if the root declares expandToFit on any axis, if any leaf
// declares shrinkToFit, if any shrinkToFit widget has an expandToFit child
// on the same axis, or if the root lacks a concrete extent on any axis.
func NewSolver(root Widget, opts ...Option) (*Solver, error) {
	s := &Solver{
		root:    root,
		axes:    root.AxisCount(),
		epsilon: defaultEpsilon,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.axes < 1 {
		return nil, newError(KindPreconditionViolated, -1, root.Name(), "widget tree declares %d axes", s.axes)
	}

	for di := 0; di < s.axes; di++ {
		if err := s.checkDemands(root, di); err != nil {
			return nil, err
		}
		if root.Size(di).Range == nil {
			return nil, newError(KindMissingExtent, di, root.Name(),
				"the root widget needs a concrete extent before ranges can be calculated")
		}
	}

	// All fractional buffers in the tree share a single scale: the root's
	// largest extent across every axis, not a per-parent local extent.
	maxRoot := 0.0
	for di := 0; di < s.axes; di++ {
		if ext := root.Size(di).Range.Extent(); ext > maxRoot {
			maxRoot = ext
		}
	}
	s.setBuffers(root, maxRoot)

	return s, nil
}

// checkDemands screens out the parent-child demand combinations that have
// no solution. It reports the first failure in depth-first declaration
// order.
func (s *Solver) checkDemands(w Widget, di int) error {
	if w == s.root && w.Size(di).Demand == DemandExpand {
		return newError(KindRootCannotExpand, di, w.Name(),
			"the root widget may not demand expandToFit")
	}

	ch := w.Children()
	if ch == nil {
		// A leaf has nothing to shrink around.
		if w.Size(di).Demand == DemandShrink {
			return newError(KindLeafCannotShrink, di, w.Name(),
				"a widget without children may not demand shrinkToFit")
		}
		return nil
	}

	for _, child := range ch.List {
		// A container shrinking onto a child that wants all available
		// space has no fixed point.
		if w.Size(di).Demand == DemandShrink && child.Size(di).Demand == DemandExpand {
			return newError(KindExpandUnderShrink, di, child.Name(),
				"parent %s demands shrinkToFit but child %s demands expandToFit", w.Name(), child.Name())
		}
		if err := s.checkDemands(child, di); err != nil {
			return err
		}
	}
	return nil
}

// setBuffers converts every fractional buffer in the subtree to world
// units. Runs once for the whole tree, covering all axes, before any axis
// is solved. SetWorld is idempotent, so re-running a solve on the same tree
// does not rescale.
func (s *Solver) setBuffers(w Widget, scale float64) {
	for di := 0; di < s.axes; di++ {
		sz := w.Size(di)
		sz.Outer.SetWorld(scale)
		sz.Inner.SetWorld(scale)
	}

	ch := w.Children()
	if ch == nil {
		return
	}
	for _, child := range ch.List {
		s.setBuffers(child, scale)
	}
}

// CalcRanges resolves extents and positions for every widget along the
// given axis. Axes may be solved in any order; every axis must be solved
// before the tree's ranges are read.
//
// On failure the tree may hold partially resolved state for the axis and
// should be rebuilt (or reset) before another attempt.
func (s *Solver) CalcRanges(axis int) error {
	if axis < 0 || axis >= s.axes {
		return newError(KindPreconditionViolated, axis, s.root.Name(),
			"axis %d out of range, tree has %d axes", axis, s.axes)
	}

	debug.Logf("calcRanges axis=%d: capacity pre-check", axis)
	if err := s.checkCapacity(s.root, axis); err != nil {
		return err
	}

	debug.Logf("calcRanges axis=%d: shrink resolution", axis)
	if err := s.shrink(s.root, axis); err != nil {
		return err
	}

	debug.Logf("calcRanges axis=%d: expand resolution", axis)
	if err := s.expand(s.root, axis); err != nil {
		return err
	}

	debug.Logf("calcRanges axis=%d: position assignment", axis)
	return s.positions(s.root, axis)
}

// CalcAllRanges solves every axis. With WithParallelAxes set, axes are
// solved concurrently; per-axis read/write sets do not alias, so this is
// equivalent to the sequential order.
func (s *Solver) CalcAllRanges() error {
	if !s.parallel {
		for di := 0; di < s.axes; di++ {
			if err := s.CalcRanges(di); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	for di := 0; di < s.axes; di++ {
		di := di
		g.Go(func() error {
			return s.CalcRanges(di)
		})
	}
	return g.Wait()
}

// Check runs the capacity pre-check for one axis without mutating the
// tree. Demand legality was already validated by NewSolver. A tree that
// passes Check on every axis can still fail with NoSpaceToExpand during a
// solve, since expandable extents are only known then.
func (s *Solver) Check(axis int) error {
	if axis < 0 || axis >= s.axes {
		return newError(KindPreconditionViolated, axis, s.root.Name(),
			"axis %d out of range, tree has %d axes", axis, s.axes)
	}
	return s.checkCapacity(s.root, axis)
}

// checkCapacity verifies that no exact container is declared smaller than
// its exact children plus buffers. Containers that are still shrinkToFit
// size themselves to their contents and are skipped.
func (s *Solver) checkCapacity(w Widget, di int) error {
	ch := w.Children()
	sz := w.Size(di)
	if ch == nil || len(ch.List) == 0 || sz.Demand != DemandExact {
		return nil
	}

	available := sz.Range.Extent() - 2.0*sz.Inner.Value()
	if ch.SequenceAxis == di {
		// Each child claims half its outer buffer on each side. The
		// outward-facing halves of the first and last child sit against
		// the inner buffer, not inside the run, so credit them back up
		// front and then charge every child its full outer buffer.
		available += 0.5 * ch.List[0].Size(di).Outer.Value()
		available += 0.5 * ch.List[len(ch.List)-1].Size(di).Outer.Value()
		for _, child := range ch.List {
			cs := child.Size(di)
			if cs.Demand == DemandExact {
				available -= cs.Range.Extent()
			}
			available -= cs.Outer.Value()
		}

		if available+s.epsilon < 0.0 {
			return newError(KindInsufficientSpace, di, w.Name(),
				"no space for children in widget %s", w.Name())
		}
	} else {
		// Children are stacked in parallel on this axis; each one must
		// fit the interior on its own.
		for _, child := range ch.List {
			cs := child.Size(di)
			if cs.Demand == DemandExact && cs.Range.Extent()-s.epsilon > available {
				return newError(KindInsufficientSpace, di, child.Name(),
					"no space for child %s in widget %s", child.Name(), w.Name())
			}
		}
	}

	for _, child := range ch.List {
		if err := s.checkCapacity(child, di); err != nil {
			return err
		}
	}
	return nil
}

// shrink resolves shrinkToFit demands bottom-up: children first, so a
// container's value is computed only once all of its children are exact.
// Containers with an expandToFit child are left for the expand phase.
func (s *Solver) shrink(w Widget, di int) error {
	ch := w.Children()
	if ch == nil {
		// Leaves may not shrink; screened out at construction.
		return nil
	}

	numExpand := 0
	for _, child := range ch.List {
		if err := s.shrink(child, di); err != nil {
			return err
		}
		if child.Size(di).Demand == DemandExpand {
			numExpand++
		}
	}

	// With an expanding child present this widget is exact or expandToFit
	// (shrinkToFit was screened out at construction); nothing to compute.
	if numExpand > 0 {
		return nil
	}

	sz := w.Size(di)
	if sz.Demand != DemandShrink {
		return nil
	}

	total := 0.0
	if ch.SequenceAxis == di {
		for _, child := range ch.List {
			cs := child.Size(di)
			total += cs.Range.Extent()
			total += cs.Outer.Value()
		}
		if len(ch.List) > 0 {
			total -= 0.5 * ch.List[0].Size(di).Outer.Value()
			total -= 0.5 * ch.List[len(ch.List)-1].Size(di).Outer.Value()
		}
	} else if len(ch.List) > 0 {
		for _, child := range ch.List {
			if ext := child.Size(di).Range.Extent(); ext > total {
				total = ext
			}
		}
	}

	sz.Range = NewRange(0, total+2.0*sz.Inner.Value())
	sz.Demand = DemandExact
	debug.Logf("shrink axis=%d: %s resolved to extent %v", di, w.Name(), sz.Range.Extent())
	return nil
}

// expand resolves expandToFit demands top-down. The shrink phase has
// already run, so by the time a container is visited its own extent is
// exact and its children are either exact or expandToFit.
func (s *Solver) expand(w Widget, di int) error {
	ch := w.Children()
	if ch == nil || len(ch.List) == 0 {
		return nil
	}

	numExpand := 0
	for _, child := range ch.List {
		if child.Size(di).Demand == DemandExpand {
			numExpand++
		}
	}

	if numExpand > 0 {
		sz := w.Size(di)
		available := sz.Range.Extent() - 2.0*sz.Inner.Value()

		if ch.SequenceAxis == di {
			// Same half-buffer accounting as the capacity check: credit
			// the end halves, charge every child its full outer buffer,
			// then split what is left between the expanding children.
			available += 0.5 * ch.List[0].Size(di).Outer.Value()
			available += 0.5 * ch.List[len(ch.List)-1].Size(di).Outer.Value()
			for _, child := range ch.List {
				cs := child.Size(di)
				if cs.Demand != DemandExpand {
					available -= cs.Range.Extent()
				}
				available -= cs.Outer.Value()
			}

			if available <= 0.0 {
				return newError(KindNoSpaceToExpand, di, w.Name(),
					"no space for expanding children in widget %s", w.Name())
			}

			perChild := available / float64(numExpand)
			for _, child := range ch.List {
				cs := child.Size(di)
				if cs.Demand != DemandExpand {
					continue
				}
				cs.Range = NewRange(0, perChild)
				cs.Demand = DemandExact
				debug.Logf("expand axis=%d: %s resolved to extent %v", di, child.Name(), perChild)
			}
		} else {
			// Cross axis: expanding children do not compete, each fills
			// the whole interior.
			if available <= 0.0 {
				return newError(KindNoSpaceToExpand, di, w.Name(),
					"no space for expanding children in widget %s", w.Name())
			}
			for _, child := range ch.List {
				cs := child.Size(di)
				if cs.Demand != DemandExpand {
					continue
				}
				cs.Range = NewRange(0, available)
				cs.Demand = DemandExact
				debug.Logf("expand axis=%d: %s resolved to extent %v", di, child.Name(), available)
			}
		}
	}

	for _, child := range ch.List {
		if err := s.expand(child, di); err != nil {
			return err
		}
	}
	return nil
}

// positions assigns concrete [lo, hi] ranges to children, parent before
// children. It requires the whole subtree to be exact on this axis; the
// shrink and expand phases guarantee that on any successful solve.
func (s *Solver) positions(w Widget, di int) error {
	ch := w.Children()
	if ch == nil || len(ch.List) == 0 {
		return nil
	}

	sz := w.Size(di)
	if sz.Demand != DemandExact || sz.Range == nil {
		return newError(KindPreconditionViolated, di, w.Name(),
			"position assignment on unresolved widget %s (demand %s)", w.Name(), sz.Demand)
	}
	for _, child := range ch.List {
		cs := child.Size(di)
		if cs.Demand != DemandExact || cs.Range == nil {
			return newError(KindPreconditionViolated, di, child.Name(),
				"position assignment on unresolved child %s (demand %s)", child.Name(), cs.Demand)
		}
	}

	n := len(ch.List)
	if ch.SequenceAxis == di {
		switch sz.Justify {
		case ToLowest:
			s.packForward(ch.List, di, sz.Range.Lo+sz.Inner.Value(), 0)

		case ToHighest:
			x := sz.Range.Hi - sz.Inner.Value() + 0.5*ch.List[n-1].Size(di).Outer.Value()
			for i := n - 1; i >= 0; i-- {
				cs := ch.List[i].Size(di)
				x -= 0.5 * cs.Outer.Value()
				delta := cs.Range.Extent()
				cs.Range.Lo = x - delta
				cs.Range.Hi = x
				x -= delta
				x -= 0.5 * cs.Outer.Value()
			}

		case Centre:
			run := s.runWidth(ch.List, di)
			s.packForward(ch.List, di, sz.Range.Mid()-0.5*run, 0)

		case Spread:
			// Leftover interior space becomes n+1 equal extra gaps: one
			// between each pair of children and one at each end. A single
			// spread child therefore lands exactly where centre puts it.
			run := s.runWidth(ch.List, di)
			available := sz.Range.Extent() - 2.0*sz.Inner.Value()
			extra := (available - run) / float64(n+1)
			s.packForward(ch.List, di, sz.Range.Lo+sz.Inner.Value()+extra, extra)
		}
	} else {
		// Cross axis: children do not compete for space, each is aligned
		// independently. Spread has no distinct meaning here and behaves
		// as centre.
		switch sz.Justify {
		case ToLowest:
			x := sz.Range.Lo + sz.Inner.Value()
			for _, child := range ch.List {
				cs := child.Size(di)
				delta := cs.Range.Extent()
				cs.Range.Lo = x
				cs.Range.Hi = x + delta
			}

		case ToHighest:
			x := sz.Range.Hi - sz.Inner.Value()
			for _, child := range ch.List {
				cs := child.Size(di)
				delta := cs.Range.Extent()
				cs.Range.Lo = x - delta
				cs.Range.Hi = x
			}

		case Centre, Spread:
			x := sz.Range.Mid()
			for _, child := range ch.List {
				cs := child.Size(di)
				delta := cs.Range.Extent()
				cs.Range.Lo = x - 0.5*delta
				cs.Range.Hi = x + 0.5*delta
			}
		}
	}

	for _, child := range ch.List {
		if err := s.positions(child, di); err != nil {
			return err
		}
	}
	return nil
}

// runWidth returns the total extent of a child run laid end-to-end:
// child extents plus the between-gaps, excluding the outward-facing
// buffer halves at the two ends.
func (s *Solver) runWidth(list []Widget, di int) float64 {
	total := 0.0
	for _, child := range list {
		cs := child.Size(di)
		total += cs.Range.Extent()
		total += cs.Outer.Value()
	}
	total -= 0.5 * list[0].Size(di).Outer.Value()
	total -= 0.5 * list[len(list)-1].Size(di).Outer.Value()
	return total
}

// packForward places children left to right starting at the given edge,
// inserting each child's outer-buffer halves and an optional extra gap
// after every child.
func (s *Solver) packForward(list []Widget, di int, start, extra float64) {
	x := start - 0.5*list[0].Size(di).Outer.Value()
	for _, child := range list {
		cs := child.Size(di)
		x += 0.5 * cs.Outer.Value()
		delta := cs.Range.Extent()
		cs.Range.Lo = x
		cs.Range.Hi = x + delta
		x += delta
		x += 0.5 * cs.Outer.Value()
		x += extra
	}
}
