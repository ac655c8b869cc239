package format

import "testing"

func TestExtractColor(t *testing.T) {
	b := make([]byte, 64)
	// RGB D3 9F 10 terminated by float 1.0 at offset 33.
	copy(b[30:], []byte{0xD3, 0x9F, 0x10})
	copy(b[33:], ColorTerminator)

	color, off, ok := ExtractColor(b, 0, len(b))
	if !ok {
		t.Fatalf("terminator not found")
	}
	if color != 0xFFD39F10 {
		t.Fatalf("color %#08x want 0xFFD39F10", color)
	}
	if off != 30 {
		t.Fatalf("offset %d want 30 (the R byte)", off)
	}
}

func TestExtractColorLastOccurrenceWins(t *testing.T) {
	b := make([]byte, 80)
	copy(b[21:], []byte{0x01, 0x02, 0x03})
	copy(b[24:], ColorTerminator)
	copy(b[50:], []byte{0x10, 0x20, 0x30})
	copy(b[53:], ColorTerminator)

	color, off, ok := ExtractColor(b, 0, len(b))
	if !ok || off != 50 {
		t.Fatalf("off %d ok %v, want the later tuple", off, ok)
	}
	if color != 0xFF102030 {
		t.Fatalf("color %#08x", color)
	}
}

func TestExtractColorSkipsScaleField(t *testing.T) {
	// A 1.0 scale in the fixed transform fields sits before the search window
	// and must not be mistaken for a color terminator.
	b := make([]byte, 64)
	copy(b[BodyScaleOffset:], ColorTerminator)

	if _, _, ok := ExtractColor(b, 0, len(b)); ok {
		t.Fatalf("scale field matched as color terminator")
	}
}

func TestExtractColorRespectsLimit(t *testing.T) {
	b := make([]byte, 64)
	copy(b[40:], ColorTerminator)

	// A terminator belonging to the next record is outside the limit.
	if _, _, ok := ExtractColor(b, 0, 40); ok {
		t.Fatalf("terminator beyond the record extent accepted")
	}
}
