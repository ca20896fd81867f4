package geometry

// Children describes a container widget's ordered children and the axis
// along which they are laid end-to-end. On every other axis the children
// are stacked in parallel ("cross" axes for that container).
type Children struct {
	List         []Widget
	SequenceAxis int
}

// Widget is the interface the solver requires of tree nodes. The solver is
// polymorphic over this interface; it never assumes a concrete widget kind.
//
// Implementations must return stable values: the solver compares the root
// widget by interface equality, reads Size repeatedly during a solve, and
// mutates the returned *Size in place. Children must be populated by the
// tree builder only, never during a solve, and must contain no cycles.
type Widget interface {
	// Name identifies the widget in error messages and diagnostics.
	// It should be unique among the widget's siblings.
	Name() string

	// AxisCount returns the number of spatial axes the widget carries
	// size preferences for. All widgets in one tree share the same count.
	AxisCount() int

	// Size returns the size preferences for the given axis. The solver
	// writes resolved demands and ranges through this pointer.
	Size(axis int) *Size

	// Children returns the widget's children descriptor, or nil for a
	// leaf. A container with an empty List is still a container.
	Children() *Children
}
