package format

import (
	"bytes"
	"fmt"

	"github.com/RangeyRover/AMS2-BGUI-Editor/internal/buf"
	"github.com/RangeyRover/AMS2-BGUI-Editor/pkg/types"
)

// Candidate describes a marker hit that passed the plausibility predicate.
// Offsets are absolute.
type Candidate struct {
	Start     int // record start: marker minus the opaque header words
	MarkerOff int
	Kind      types.ElementKind
	NameLen   int
	NameOff   int
	BodyOff   int // where the id field begins
	ID        uint32
}

// KindAt reads the marker word at off and maps it to an element kind.
func KindAt(b []byte, off int) (types.ElementKind, bool) {
	m, ok := buf.Slice(b, off, MarkerSize)
	if !ok {
		return 0, false
	}
	switch {
	case bytes.Equal(m, Marker3):
		return types.KindType3, true
	case bytes.Equal(m, Marker4):
		return types.KindType4, true
	default:
		return 0, false
	}
}

// ValidateCandidate applies the false-positive filter to a marker hit at
// markerOff. Marker values recur incidentally inside resource blobs and
// padding, so every rule here must hold before the hit becomes a record:
//
//   - name length in [1, MaxNameLen]
//   - name bytes printable ASCII
//   - room for the minimum fixed body fields
//   - element id below MaxElementID and, when inRegister is non-nil,
//     present in the register's id set (the primary filter)
//
// windowStart bounds the record start: the opaque header words must not reach
// back before the scan window.
func ValidateCandidate(b []byte, markerOff, windowStart int, inRegister func(uint32) bool) (Candidate, bool) {
	kind, ok := KindAt(b, markerOff)
	if !ok {
		return Candidate{}, false
	}
	start := markerOff - RecordHeaderSize
	if start < windowStart {
		return Candidate{}, false
	}
	nameLen, ok := buf.CheckedByte(b, markerOff+MarkerSize)
	if !ok || nameLen < 1 || int(nameLen) > MaxNameLen {
		return Candidate{}, false
	}
	nameOff := markerOff + MarkerSize + 1
	name, ok := buf.Slice(b, nameOff, int(nameLen))
	if !ok || !IsPrintableASCII(name) {
		return Candidate{}, false
	}
	bodyOff := nameOff + int(nameLen) + NameHashSize
	if !buf.Has(b, bodyOff, 16) {
		return Candidate{}, false
	}
	id, ok := buf.CheckedU32(b, bodyOff+BodyIDOffset)
	if !ok || id > MaxElementID {
		return Candidate{}, false
	}
	if inRegister != nil && !inRegister(id) {
		return Candidate{}, false
	}
	return Candidate{
		Start:     start,
		MarkerOff: markerOff,
		Kind:      kind,
		NameLen:   int(nameLen),
		NameOff:   nameOff,
		BodyOff:   bodyOff,
		ID:        id,
	}, true
}

// Fields holds the fixed-offset fields of a record body plus the opaque
// header words. Heuristic fields (color, resource) decode separately.
type Fields struct {
	ID             uint32
	NameHash       uint32
	X, Y, Scale    float32
	ColorWord      uint32 // raw word at the color-bearing offset
	Reserved       []byte // ReservedSize bytes, shorter near a clipped extent
	HeadChildCount uint32 // in-record duplicate; register value wins
	ResourceOuter  uint32 // declared outer length of the resource sub-block
}

// DecodeFields reads the fixed-offset fields for a validated candidate.
// Reads past the buffer degrade to zero values; a partially garbled record
// still contributes a usable id and position.
func DecodeFields(b []byte, c Candidate) Fields {
	var f Fields
	f.ID = c.ID
	f.NameHash, _ = buf.CheckedU32(b, c.BodyOff-NameHashSize)
	f.X, _ = buf.CheckedF32(b, c.BodyOff+BodyXOffset)
	f.Y, _ = buf.CheckedF32(b, c.BodyOff+BodyYOffset)
	f.Scale, _ = buf.CheckedF32(b, c.BodyOff+BodyScaleOffset)
	f.ColorWord, _ = buf.CheckedU32(b, c.BodyOff+BodyColorOffset)
	f.HeadChildCount, _ = buf.CheckedU32(b, c.Start+HeadChildCountOffset)
	f.ResourceOuter, _ = buf.CheckedU32(b, c.BodyOff+BodyResourceOffset)
	if reserved, ok := buf.Slice(b, c.BodyOff+BodyReservedOffset, ReservedSize); ok {
		f.Reserved = append([]byte(nil), reserved...)
	}
	return f
}

// RecordSpec carries the fields needed to re-encode an edited element.
type RecordSpec struct {
	RawHeader   []byte // the 8 opaque bytes before the marker, preserved
	Kind        types.ElementKind
	Name        string
	NameHash    uint32
	ID          uint32
	X, Y, Scale float32
	Color       uint32
	Reserved    []byte
	Resource    string
}

// EncodeRecord serializes a record in the canonical shape. The resource
// sub-header is normalized to one layout on write, trading byte-fidelity on
// edited records for decodable, simpler output. Untouched records are never
// routed through here.
func EncodeRecord(spec RecordSpec) ([]byte, error) {
	header := spec.RawHeader
	if len(header) != RecordHeaderSize {
		header = make([]byte, RecordHeaderSize)
	}
	out := append([]byte(nil), header...)
	switch spec.Kind {
	case types.KindType3:
		out = append(out, Marker3...)
	case types.KindType4:
		out = append(out, Marker4...)
	default:
		return nil, fmt.Errorf("record kind %d: %w", spec.Kind, ErrSignatureMismatch)
	}
	var err error
	out, err = AppendString(out, spec.Name)
	if err != nil {
		return nil, err
	}
	out = buf.AppendU32LE(out, spec.NameHash)
	out = buf.AppendU32LE(out, spec.ID)
	out = buf.AppendF32LE(out, spec.X)
	out = buf.AppendF32LE(out, spec.Y)
	out = buf.AppendF32LE(out, spec.Scale)
	out = buf.AppendU32LE(out, spec.Color)

	reserved := spec.Reserved
	if len(reserved) > ReservedSize {
		reserved = reserved[:ReservedSize]
	}
	out = append(out, reserved...)
	for i := len(reserved); i < ReservedSize; i++ {
		out = append(out, 0)
	}

	res, err := EncodeLatin1(spec.Resource)
	if err != nil {
		return nil, err
	}
	maxInner := ResourceBlockCanonicalSize - ResourceFlagsSize - 1
	if len(res) > maxInner {
		return nil, fmt.Errorf("resource %d bytes, block holds %d: %w", len(res), maxInner, ErrSanityLimit)
	}
	out = buf.AppendU32LE(out, ResourceBlockCanonicalSize)
	out = append(out, 0x00, 0x01, 0x00, 0x00, 0x00)
	out = append(out, byte(len(res)))
	out = append(out, res...)
	for i := ResourceFlagsSize + 1 + len(res); i < ResourceBlockCanonicalSize; i++ {
		out = append(out, 0)
	}
	return out, nil
}
