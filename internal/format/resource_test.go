package format

import "testing"

func TestExtractResource(t *testing.T) {
	b := make([]byte, 80)
	tagPos := 30
	copy(b[tagPos:], ResourceTag)
	copy(b[tagPos+4:], []byte{0x01, 0x02, 0x03, 0x04, 0x05}) // sub-header noise
	b[tagPos+9] = 9
	copy(b[tagPos+10:], "image.dds")

	s, off, tagged := ExtractResource(b, 0, len(b))
	if !tagged {
		t.Fatalf("tag not found")
	}
	if s != "image.dds" {
		t.Fatalf("resource %q", s)
	}
	if off != tagPos+10 {
		t.Fatalf("offset %d want %d (the first path byte)", off, tagPos+10)
	}
}

func TestExtractResourceNoTag(t *testing.T) {
	b := make([]byte, 80)
	s, _, tagged := ExtractResource(b, 0, len(b))
	if tagged || s != "" {
		t.Fatalf("got %q tagged=%v from empty record", s, tagged)
	}
}

func TestExtractResourceTagWithoutString(t *testing.T) {
	b := make([]byte, 80)
	copy(b[30:], ResourceTag)
	// Nothing decodable after the tag.
	s, _, tagged := ExtractResource(b, 0, len(b))
	if !tagged {
		t.Fatalf("tag not reported")
	}
	if s != "" {
		t.Fatalf("got %q from garbage sub-block", s)
	}
}

func TestExtractResourceBeforeSkipIgnored(t *testing.T) {
	// A tag inside the fixed fields is outside the search window.
	b := make([]byte, 80)
	copy(b[10:], ResourceTag)
	if _, _, tagged := ExtractResource(b, 0, len(b)); tagged {
		t.Fatalf("tag before the search window reported")
	}
}

func TestPlausibleResourceString(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{"image.dds", true},
		{"fonts/main.bfont", true},
		{"texture.custom", true}, // unknown suffix, length in the cautious band
		{"a.b", false},           // unknown suffix, too short to trust
		{"noext", false},
		{"", false},
		{"bad\x01name.dds", false},
	}
	for _, c := range cases {
		if got := PlausibleResourceString(c.s); got != c.want {
			t.Fatalf("PlausibleResourceString(%q) = %v want %v", c.s, got, c.want)
		}
	}
}
