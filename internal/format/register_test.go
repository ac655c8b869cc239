package format

import (
	"bytes"
	"testing"

	"github.com/RangeyRover/AMS2-BGUI-Editor/internal/buf"
	"github.com/RangeyRover/AMS2-BGUI-Editor/pkg/types"
)

func appendEntries(out []byte, pairs ...[2]uint32) []byte {
	for _, p := range pairs {
		out = buf.AppendU32LE(out, p[0])
		out = buf.AppendU32LE(out, p[1])
	}
	return out
}

func TestFindRegisterBySignature(t *testing.T) {
	b := make([]byte, 100)
	b = append(b, RegisterSignature...)
	b = appendEntries(b, [2]uint32{0, 2}, [2]uint32{1, 0}, [2]uint32{2, 1}, [2]uint32{3, 0})

	start, ok := FindRegister(b)
	if !ok {
		t.Fatalf("register not found")
	}
	if start != 100+RegisterSignatureSize {
		t.Fatalf("start %d want %d", start, 100+RegisterSignatureSize)
	}
	if got := RegisterBlockStart(b, start); got != 100 {
		t.Fatalf("block start %d want 100", got)
	}

	entries, end := DecodeRegister(b, start)
	if len(entries) != 4 || end != len(b) {
		t.Fatalf("entries %d end %d", len(entries), end)
	}
	want := []types.RegisterEntry{
		{Index: 0, ElementID: 0, ChildCount: 2, FileOffset: start},
		{Index: 1, ElementID: 1, ChildCount: 0, FileOffset: start + 8},
		{Index: 2, ElementID: 2, ChildCount: 1, FileOffset: start + 16},
		{Index: 3, ElementID: 3, ChildCount: 0, FileOffset: start + 24},
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Fatalf("entry %d: %+v want %+v", i, entries[i], want[i])
		}
	}
}

func TestFindRegisterByScan(t *testing.T) {
	// No signature anywhere. The heuristic must find the root-shaped entry:
	// id 0, a child count whose entries fit, zeroed padding just before it.
	b := bytes.Repeat([]byte{0xFF}, 60)
	b = append(b, 0x00, 0x00, 0x00, 0x00)
	b = appendEntries(b, [2]uint32{0, 1}, [2]uint32{5, 0})

	start, ok := FindRegister(b)
	if !ok {
		t.Fatalf("register not found")
	}
	if start != 64 {
		t.Fatalf("start %d want 64", start)
	}
	// Without a signature the block starts at the body itself.
	if got := RegisterBlockStart(b, start); got != 64 {
		t.Fatalf("block start %d want 64", got)
	}
}

func TestFindRegisterScanRejectsOversizedCount(t *testing.T) {
	// Root claims 5 children but only one entry follows; the fit check must
	// reject it and the whole search must fail.
	b := bytes.Repeat([]byte{0xFF}, 60)
	b = append(b, 0x00, 0x00, 0x00, 0x00)
	b = appendEntries(b, [2]uint32{0, 5}, [2]uint32{5, 0})

	if start, ok := FindRegister(b); ok {
		t.Fatalf("unexpected register at %d", start)
	}
}

func TestFindRegisterAbsent(t *testing.T) {
	b := bytes.Repeat([]byte{0xFF}, 2048)
	if _, ok := FindRegister(b); ok {
		t.Fatalf("register found in noise")
	}
}

func TestEncodeRegisterRoundTrip(t *testing.T) {
	in := []types.RegisterEntry{
		{ElementID: 0, ChildCount: 2},
		{ElementID: 10, ChildCount: 0},
		{ElementID: 11, ChildCount: 0},
	}
	out := EncodeRegister(in)
	if !bytes.HasPrefix(out, RegisterSignature) {
		t.Fatalf("missing signature prefix")
	}
	entries, end := DecodeRegister(out, RegisterSignatureSize)
	if len(entries) != 3 || end != len(out) {
		t.Fatalf("entries %d end %d", len(entries), end)
	}
	for i, e := range entries {
		if e.ElementID != in[i].ElementID || e.ChildCount != in[i].ChildCount {
			t.Fatalf("entry %d: %+v", i, e)
		}
	}
}
