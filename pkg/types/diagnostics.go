package types

import "fmt"

// -----------------------------------------------------------------------------
// Diagnostics
// -----------------------------------------------------------------------------
//
// Parsing is deliberately tolerant: field- and record-level problems degrade
// to defaults instead of failing the file. Diagnostics preserve what was
// absorbed so callers can still report it. Only Severity SevError conditions
// change behavior (partial results); everything else is informational.

// Severity classifies how serious a diagnostic issue is.
type Severity int

const (
	SevInfo    Severity = iota // unusual but harmless
	SevWarning                 // decoded with a fallback or default
	SevError                   // data was lost or a structure is partial
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	default:
		return fmt.Sprintf("SEVERITY(%d)", int(s))
	}
}

// Structure tags name the file section a diagnostic refers to.
const (
	StructHead     = "HEAD"
	StructElement  = "ELEM"
	StructRegister = "REG"
	StructTree     = "TREE"
)

// Diagnostic records a single absorbed issue with its byte position.
type Diagnostic struct {
	Severity  Severity
	Structure string // one of the Struct* tags
	Offset    int    // absolute file offset of the affected bytes
	Message   string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s @0x%X: %s", d.Severity, d.Structure, d.Offset, d.Message)
}
