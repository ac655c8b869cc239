package types

import "fmt"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat   ErrKind = iota // malformed file-level structure (e.g. short buffer)
	ErrKindCorrupt                 // structural corruption (bad sizes/offsets/tags)
	ErrKindRegister                // the trailing register could not be located
	ErrKindNotFound                // missing element/entry
	ErrKindState                   // invalid operation for current state
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrNoRegister indicates the trailing register index could not be located.
	// Without it no hierarchy is derivable, so the parse fails as a whole.
	ErrNoRegister = &Error{Kind: ErrKindRegister, Msg: "register section not found"}
	// ErrTruncatedFile indicates the buffer is too short to hold the fixed header.
	ErrTruncatedFile = &Error{Kind: ErrKindFormat, Msg: "file too short for BGUI header"}
	// ErrNotFound indicates a missing element or register entry.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
)

// -----------------------------------------------------------------------------
// Shared model primitives
// -----------------------------------------------------------------------------

// Span locates a decoded field inside the original byte stream. Presentation
// layers use it for offset-based highlighting.
type Span struct {
	Offset int
	Length int
}

// End returns the exclusive end offset of the span.
func (s Span) End() int { return s.Offset + s.Length }

// Valid reports whether the span points at actual bytes.
func (s Span) Valid() bool { return s.Length > 0 }

// ElementKind discriminates the two element record formats. The value is the
// marker word's low byte.
type ElementKind uint32

const (
	KindType3 ElementKind = 3
	KindType4 ElementKind = 4
)

func (k ElementKind) String() string {
	switch k {
	case KindType3:
		return "Type3"
	case KindType4:
		return "Type4"
	default:
		return fmt.Sprintf("Type%d", uint32(k))
	}
}

// RegisterEntry is one row of the trailing flat index. The register is the
// sole reliable source of parent/child structure: entries appear in pre-order
// and each carries the number of immediate children.
type RegisterEntry struct {
	Index      int
	ElementID  uint32
	ChildCount uint32
	FileOffset int
}
