package geometry

// Unit specifies how a Buffer value is interpreted.
type Unit uint8

const (
	UnitFrac  Unit = iota // Fraction of the root widget's maximum extent
	UnitWorld             // Absolute world units
)

// Buffer is a non-negative spacing quantity. An inner buffer is the minimum
// gap between a container and its children; an outer buffer is the spacing a
// widget contributes toward the gaps between itself and its siblings, half
// on each side.
//
// Buffers are normally created in fractional units and converted to world
// units exactly once by the solver, using the root widget's maximum extent
// as the scale.
type Buffer struct {
	value float64
	unit  Unit
}

// Frac returns a Buffer expressed as a fraction of the root's maximum extent.
func Frac(v float64) Buffer {
	return Buffer{value: v, unit: UnitFrac}
}

// World returns a Buffer expressed directly in world units.
func World(v float64) Buffer {
	return Buffer{value: v, unit: UnitWorld}
}

// SetWorld converts a fractional buffer to world units by multiplying its
// value by scale. Calling it on a buffer already in world units is a no-op,
// so conversion is idempotent.
func (b *Buffer) SetWorld(scale float64) {
	if b.unit == UnitWorld {
		return
	}
	b.value *= scale
	b.unit = UnitWorld
}

// Value returns the current numeric value. Meaningful as a distance only
// once the buffer is in world units.
func (b Buffer) Value() float64 {
	return b.value
}

// Unit returns the buffer's current unit.
func (b Buffer) Unit() Unit {
	return b.unit
}

// Copy returns an independent buffer with the same value and unit.
func (b Buffer) Copy() Buffer {
	return b
}
