package format

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeStringASCII(t *testing.T) {
	b := []byte{0x05, 'h', 'e', 'l', 'l', 'o', 0xFF}
	s, end, err := DecodeString(b, 0)
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if s != "hello" || end != 6 {
		t.Fatalf("got %q end=%d", s, end)
	}
}

func TestDecodeStringLatin1(t *testing.T) {
	b := []byte{0x04, 'c', 'a', 'f', 0xE9}
	s, end, err := DecodeString(b, 0)
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if s != "café" || end != 5 {
		t.Fatalf("got %q end=%d", s, end)
	}
}

func TestDecodeStringTruncated(t *testing.T) {
	if _, _, err := DecodeString([]byte{0x08, 'a', 'b'}, 0); err == nil {
		t.Fatalf("expected truncation error")
	}
	if _, _, err := DecodeString(nil, 0); err == nil {
		t.Fatalf("expected truncation error on empty buffer")
	}
}

func TestAppendStringRoundTrip(t *testing.T) {
	out, err := AppendString(nil, "café")
	if err != nil {
		t.Fatalf("AppendString: %v", err)
	}
	s, end, err := DecodeString(out, 0)
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if s != "café" || end != len(out) {
		t.Fatalf("got %q end=%d want end=%d", s, end, len(out))
	}
}

func TestAppendStringNonLatin1(t *testing.T) {
	if _, err := AppendString(nil, "世界"); err == nil {
		t.Fatalf("expected encode error for non-Latin-1 input")
	}
}

func TestAppendStringTooLong(t *testing.T) {
	_, err := AppendString(nil, strings.Repeat("a", 256))
	if !errors.Is(err, ErrSanityLimit) {
		t.Fatalf("expected ErrSanityLimit, got %v", err)
	}
}

func TestIsPrintableASCII(t *testing.T) {
	if !IsPrintableASCII([]byte("HudMapMarker_01")) {
		t.Fatalf("printable name rejected")
	}
	if IsPrintableASCII([]byte{'a', 0x07, 'b'}) {
		t.Fatalf("control byte accepted")
	}
	if IsPrintableASCII(nil) {
		t.Fatalf("empty accepted")
	}
}
