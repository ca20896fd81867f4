package geometry

import "fmt"

// Kind classifies a layout error. Every kind is a configuration or
// programmer error; no failure is a runtime transient and none is
// recoverable mid-solve.
type Kind uint8

const (
	KindInvalidDemand        Kind = iota + 1 // Unrecognized size demand
	KindMissingExtent                        // Exact demand without an extent
	KindInvalidJustify                       // Unrecognized justify mode
	KindNegativeBuffer                       // Buffer with a negative value
	KindRootCannotExpand                     // Root declares expandToFit
	KindLeafCannotShrink                     // Childless widget declares shrinkToFit
	KindExpandUnderShrink                    // expandToFit child under a shrinkToFit parent
	KindInsufficientSpace                    // Exact children do not fit their container
	KindNoSpaceToExpand                      // No free space for expandToFit children
	KindPreconditionViolated                 // Internal solver invariant breached
)

func (k Kind) String() string {
	switch k {
	case KindInvalidDemand:
		return "invalid demand"
	case KindMissingExtent:
		return "missing extent"
	case KindInvalidJustify:
		return "invalid justify"
	case KindNegativeBuffer:
		return "negative buffer"
	case KindRootCannotExpand:
		return "root cannot expand"
	case KindLeafCannotShrink:
		return "leaf cannot shrink"
	case KindExpandUnderShrink:
		return "expand under shrink"
	case KindInsufficientSpace:
		return "insufficient space"
	case KindNoSpaceToExpand:
		return "no space to expand"
	case KindPreconditionViolated:
		return "precondition violated"
	default:
		return fmt.Sprintf("unknown kind %d", uint8(k))
	}
}

// Sentinel errors for matching with errors.Is. Each matches any *Error
// carrying the same Kind, regardless of axis or widget.
var (
	ErrInvalidDemand        = &Error{Kind: KindInvalidDemand, Axis: -1}
	ErrMissingExtent        = &Error{Kind: KindMissingExtent, Axis: -1}
	ErrInvalidJustify       = &Error{Kind: KindInvalidJustify, Axis: -1}
	ErrNegativeBuffer       = &Error{Kind: KindNegativeBuffer, Axis: -1}
	ErrRootCannotExpand     = &Error{Kind: KindRootCannotExpand, Axis: -1}
	ErrLeafCannotShrink     = &Error{Kind: KindLeafCannotShrink, Axis: -1}
	ErrExpandUnderShrink    = &Error{Kind: KindExpandUnderShrink, Axis: -1}
	ErrInsufficientSpace    = &Error{Kind: KindInsufficientSpace, Axis: -1}
	ErrNoSpaceToExpand      = &Error{Kind: KindNoSpaceToExpand, Axis: -1}
	ErrPreconditionViolated = &Error{Kind: KindPreconditionViolated, Axis: -1}
)

// Error is a layout failure, reported with the offending axis and widget
// where known. Axis is -1 for failures that are not axis-specific.
type Error struct {
	Kind   Kind
	Axis   int
	Widget string
	detail string
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.detail != "" {
		msg = e.detail
	}
	switch {
	case e.Axis >= 0 && e.Widget != "":
		return fmt.Sprintf("axis %d: widget %s: %s", e.Axis, e.Widget, msg)
	case e.Axis >= 0:
		return fmt.Sprintf("axis %d: %s", e.Axis, msg)
	case e.Widget != "":
		return fmt.Sprintf("widget %s: %s", e.Widget, msg)
	default:
		return msg
	}
}

// Is reports whether target is a *Error with the same Kind, so that
// errors.Is(err, ErrInsufficientSpace) matches any insufficient-space
// failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind Kind, axis int, widget, format string, args ...any) *Error {
	return &Error{
		Kind:   kind,
		Axis:   axis,
		Widget: widget,
		detail: fmt.Sprintf(format, args...),
	}
}
