package format

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/RangeyRover/AMS2-BGUI-Editor/internal/buf"
	"github.com/RangeyRover/AMS2-BGUI-Editor/pkg/types"
)

// buildRecord assembles a minimal record with the marker at offset 8.
func buildRecord(id uint32, name string, childCount uint32) []byte {
	var b []byte
	b = buf.AppendU32LE(b, 0x11111111)
	b = buf.AppendU32LE(b, childCount)
	b = append(b, Marker3...)
	b = append(b, byte(len(name)))
	b = append(b, name...)
	b = buf.AppendU32LE(b, 0xAABBCCDD) // name hash word
	b = buf.AppendU32LE(b, id)
	b = buf.AppendF32LE(b, 120.5)
	b = buf.AppendF32LE(b, -32.25)
	b = buf.AppendF32LE(b, 1.5)
	b = buf.AppendU32LE(b, 0xDEADBEEF) // color-bearing word
	b = append(b, bytes.Repeat([]byte{0xCC}, ReservedSize)...)
	b = buf.AppendU32LE(b, 0) // resource outer length
	return b
}

func inSet(ids ...uint32) func(uint32) bool {
	set := make(map[uint32]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return func(id uint32) bool {
		_, ok := set[id]
		return ok
	}
}

func TestValidateCandidateAccepts(t *testing.T) {
	b := buildRecord(42, "SpeedReadout", 3)
	c, ok := ValidateCandidate(b, RecordHeaderSize, 0, inSet(42))
	if !ok {
		t.Fatalf("valid record rejected")
	}
	if c.Start != 0 || c.ID != 42 || c.Kind != types.KindType3 {
		t.Fatalf("candidate %+v", c)
	}
	if c.NameLen != len("SpeedReadout") || string(b[c.NameOff:c.NameOff+c.NameLen]) != "SpeedReadout" {
		t.Fatalf("name fields %+v", c)
	}
}

func TestValidateCandidateRejectsUnregisteredID(t *testing.T) {
	b := buildRecord(42, "SpeedReadout", 0)
	if _, ok := ValidateCandidate(b, RecordHeaderSize, 0, inSet(7, 8)); ok {
		t.Fatalf("id outside the register accepted")
	}
}

func TestValidateCandidateRejectsBadName(t *testing.T) {
	b := buildRecord(42, "Spd", 0)
	b[NameOffset+1] = 0x01 // control byte inside the name
	if _, ok := ValidateCandidate(b, RecordHeaderSize, 0, nil); ok {
		t.Fatalf("non-printable name accepted")
	}

	b = buildRecord(42, "Spd", 0)
	b[NameLenOffset] = 0
	if _, ok := ValidateCandidate(b, RecordHeaderSize, 0, nil); ok {
		t.Fatalf("zero name length accepted")
	}

	b = buildRecord(42, "Spd", 0)
	b[NameLenOffset] = MaxNameLen + 1
	if _, ok := ValidateCandidate(b, RecordHeaderSize, 0, nil); ok {
		t.Fatalf("oversized name length accepted")
	}
}

func TestValidateCandidateRejectsHugeID(t *testing.T) {
	b := buildRecord(MaxElementID+1, "Spd", 0)
	if _, ok := ValidateCandidate(b, RecordHeaderSize, 0, nil); ok {
		t.Fatalf("id above the sanity ceiling accepted")
	}
}

func TestValidateCandidateRejectsHeaderBeforeWindow(t *testing.T) {
	b := buildRecord(42, "Spd", 0)
	// The opaque header words would start before the scan window.
	if _, ok := ValidateCandidate(b, RecordHeaderSize, RecordHeaderSize-2, nil); ok {
		t.Fatalf("record reaching before the window accepted")
	}
}

func TestDecodeFields(t *testing.T) {
	b := buildRecord(42, "Spd", 3)
	c, ok := ValidateCandidate(b, RecordHeaderSize, 0, nil)
	if !ok {
		t.Fatalf("candidate rejected")
	}
	f := DecodeFields(b, c)
	if f.ID != 42 || f.NameHash != 0xAABBCCDD || f.HeadChildCount != 3 {
		t.Fatalf("fields %+v", f)
	}
	if f.X != 120.5 || f.Y != -32.25 || f.Scale != 1.5 {
		t.Fatalf("transform %v %v %v", f.X, f.Y, f.Scale)
	}
	if f.ColorWord != 0xDEADBEEF {
		t.Fatalf("color word %#x", f.ColorWord)
	}
	if len(f.Reserved) != ReservedSize || f.Reserved[0] != 0xCC {
		t.Fatalf("reserved %d bytes", len(f.Reserved))
	}
}

func TestEncodeRecordCanonical(t *testing.T) {
	spec := RecordSpec{
		RawHeader: []byte{1, 2, 3, 4, 5, 6, 7, 8},
		Kind:      types.KindType4,
		Name:      "GearIndicator",
		NameHash:  0xAABBCCDD,
		ID:        42,
		X:         10,
		Y:         20,
		Scale:     2,
		Color:     0xFF336699,
		Reserved:  bytes.Repeat([]byte{0xCC}, ReservedSize),
		Resource:  "hud/gear.dds",
	}
	out, err := EncodeRecord(spec)
	if err != nil {
		t.Fatalf("EncodeRecord: %v", err)
	}

	wantLen := RecordHeaderSize + MarkerSize + 1 + len(spec.Name) + NameHashSize +
		BodyResourceOffset + 4 + ResourceBlockCanonicalSize
	if len(out) != wantLen {
		t.Fatalf("length %d want %d", len(out), wantLen)
	}
	if !bytes.Equal(out[:RecordHeaderSize], spec.RawHeader) {
		t.Fatalf("opaque header not preserved")
	}
	if !bytes.Equal(out[RecordHeaderSize:RecordHeaderSize+MarkerSize], Marker4) {
		t.Fatalf("marker % X", out[RecordHeaderSize:RecordHeaderSize+MarkerSize])
	}

	c, ok := ValidateCandidate(out, RecordHeaderSize, 0, inSet(42))
	if !ok {
		t.Fatalf("re-encoded record failed validation")
	}
	f := DecodeFields(out, c)
	if f.ID != 42 || f.X != 10 || f.Y != 20 || f.Scale != 2 {
		t.Fatalf("fields %+v", f)
	}
	if f.ResourceOuter != ResourceBlockCanonicalSize {
		t.Fatalf("outer length %d", f.ResourceOuter)
	}

	// The canonical outer length doubles as the resource tag, so the
	// heuristic extractor must recover the edited path.
	res, _, tagged := ExtractResource(out, c.BodyOff, len(out))
	if !tagged || res != spec.Resource {
		t.Fatalf("resource %q tagged=%v", res, tagged)
	}
}

func TestEncodeRecordRejectsUnknownKind(t *testing.T) {
	_, err := EncodeRecord(RecordSpec{Kind: 9, Name: "Spd"})
	if !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("expected ErrSignatureMismatch, got %v", err)
	}
}

func TestEncodeRecordRejectsOversizedResource(t *testing.T) {
	maxInner := ResourceBlockCanonicalSize - ResourceFlagsSize - 1
	_, err := EncodeRecord(RecordSpec{
		Kind:     types.KindType3,
		Name:     "Spd",
		Resource: strings.Repeat("x", maxInner+1),
	})
	if !errors.Is(err, ErrSanityLimit) {
		t.Fatalf("expected ErrSanityLimit, got %v", err)
	}
}

func TestKindAt(t *testing.T) {
	if k, ok := KindAt(Marker3, 0); !ok || k != types.KindType3 {
		t.Fatalf("Marker3 -> %v %v", k, ok)
	}
	if k, ok := KindAt(Marker4, 0); !ok || k != types.KindType4 {
		t.Fatalf("Marker4 -> %v %v", k, ok)
	}
	if _, ok := KindAt([]byte{0x05, 0, 0, 0}, 0); ok {
		t.Fatalf("unknown marker accepted")
	}
	if _, ok := KindAt(Marker3, math.MaxInt-1); ok {
		t.Fatalf("out-of-range offset accepted")
	}
}
