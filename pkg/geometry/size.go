package geometry

// Demand specifies how a widget's extent along one axis is decided.
type Demand uint8

const (
	DemandExact  Demand = iota // Extent supplied by the caller
	DemandShrink               // As small as the children allow (containers only)
	DemandExpand               // Consume the free space in the parent
)

func (d Demand) String() string {
	switch d {
	case DemandExact:
		return "exact"
	case DemandShrink:
		return "shrinkToFit"
	case DemandExpand:
		return "expandToFit"
	default:
		return "invalid"
	}
}

// ParseDemand converts the wire spelling of a demand into its tag.
func ParseDemand(s string) (Demand, error) {
	switch s {
	case "exact":
		return DemandExact, nil
	case "shrinkToFit":
		return DemandShrink, nil
	case "expandToFit":
		return DemandExpand, nil
	default:
		return 0, newError(KindInvalidDemand, -1, "", "demand %q is not recognized", s)
	}
}

// Justify specifies how a container places its children along one axis once
// their extents are fixed. It only has meaning on widgets with children.
type Justify uint8

const (
	ToLowest Justify = iota // Pack against the low edge
	ToHighest               // Pack against the high edge
	Centre                  // Centre on the container midpoint
	Spread                  // Distribute leftover space as extra gaps
)

func (j Justify) String() string {
	switch j {
	case ToLowest:
		return "toLowest"
	case ToHighest:
		return "toHighest"
	case Centre:
		return "centre"
	case Spread:
		return "spread"
	default:
		return "invalid"
	}
}

// ParseJustify converts the wire spelling of a justify mode into its tag.
func ParseJustify(s string) (Justify, error) {
	switch s {
	case "toLowest":
		return ToLowest, nil
	case "toHighest":
		return ToHighest, nil
	case "centre":
		return Centre, nil
	case "spread":
		return Spread, nil
	default:
		return 0, newError(KindInvalidJustify, -1, "", "justify %q is not recognized", s)
	}
}

// Size holds a widget's declared size preferences for a single axis, and
// after a successful solve, its resolved extent.
//
// The Range field starts nil for shrinkToFit and expandToFit demands and is
// populated by the solver. For exact demands it carries the declared extent
// as [0, extent] until position assignment overwrites it with the final
// placement. After [Solver.CalcRanges] succeeds for an axis, every Size on
// that axis has DemandExact and a non-nil Range with Hi >= Lo.
type Size struct {
	Demand Demand
	Range  *Range

	// Inner is the minimum gap between this widget and its children,
	// applied in full on each side of the interior.
	Inner Buffer

	// Outer is this widget's contribution to the gaps separating it from
	// its siblings, half on each side. Adjacent siblings a and b are kept
	// at least (a.Outer+b.Outer)/2 apart.
	Outer Buffer

	// Justify controls placement of children along this axis.
	Justify Justify
}

const maxDemand = DemandExpand
const maxJustify = Spread

// NewSize validates and builds a Size. The extent argument is consulted only
// for DemandExact, where it must be non-negative; it is ignored for the
// other demands.
func NewSize(demand Demand, extent float64, outer, inner Buffer, justify Justify) (*Size, error) {
	if demand > maxDemand {
		return nil, newError(KindInvalidDemand, -1, "", "demand %d is not recognized", uint8(demand))
	}
	if justify > maxJustify {
		return nil, newError(KindInvalidJustify, -1, "", "justify %d is not recognized", uint8(justify))
	}
	if demand == DemandExact && extent < 0 {
		return nil, newError(KindMissingExtent, -1, "", "an exact demand requires a non-negative extent, got %v", extent)
	}
	if outer.Value() < 0 {
		return nil, newError(KindNegativeBuffer, -1, "", "outer buffer %v is negative", outer.Value())
	}
	if inner.Value() < 0 {
		return nil, newError(KindNegativeBuffer, -1, "", "inner buffer %v is negative", inner.Value())
	}

	s := &Size{
		Demand:  demand,
		Outer:   outer,
		Inner:   inner,
		Justify: justify,
	}
	if demand == DemandExact {
		s.Range = NewRange(0, extent)
	}
	return s, nil
}

// MustSize is NewSize that panics on validation failure. Intended for
// statically known specs (tests, fixtures).
func MustSize(demand Demand, extent float64, outer, inner Buffer, justify Justify) *Size {
	s, err := NewSize(demand, extent, outer, inner, justify)
	if err != nil {
		panic(err)
	}
	return s
}

// Copy deep-copies the declared preferences. A previously resolved position
// is not preserved: an exact size keeps its extent, normalized to
// [0, extent], and other demands come back with a nil Range. A copied tree
// must be re-solved before its ranges are read.
func (s *Size) Copy() *Size {
	out := &Size{
		Demand:  s.Demand,
		Outer:   s.Outer.Copy(),
		Inner:   s.Inner.Copy(),
		Justify: s.Justify,
	}
	if s.Range != nil {
		out.Range = NewRange(0, s.Range.Extent())
	}
	return out
}

// Extent returns the resolved extent, or 0 if the size is unresolved.
func (s *Size) Extent() float64 {
	if s.Range == nil {
		return 0
	}
	return s.Range.Extent()
}
