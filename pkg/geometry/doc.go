// Package geometry implements a constraint-based layout engine for trees of
// rectangular widgets.
//
// Each widget declares, per spatial axis, a size demand (exact, shrink to
// fit, or expand to fit), spacing buffers, and a justification mode for its
// children. The [Solver] resolves the tree one axis at a time: demands are
// validated, fractional buffers are converted to world units against a single
// root-derived scale, shrinking containers are sized bottom-up, expanding
// widgets are sized top-down from the remaining free space, and finally
// concrete [Range] extents are assigned to every widget.
//
// Axes are fully independent; a 2D layout is two 1D solves over the same
// tree. The solver mutates [Size] values in place and does not own the tree.
//
// The main entry points are [NewSolver] and [Solver.CalcRanges].
package geometry
