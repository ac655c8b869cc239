package format

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/RangeyRover/AMS2-BGUI-Editor/internal/buf"
)

// isASCII reports whether every byte is 7-bit.
func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

// IsPrintableASCII reports whether every byte is in the printable range.
// Names and resource paths are rejected otherwise.
func IsPrintableASCII(b []byte) bool {
	for _, c := range b {
		if c < 0x20 || c > 0x7E {
			return false
		}
	}
	return len(b) > 0
}

// DecodeLatin1 decodes Latin-1 bytes to a string. Every byte value is valid
// Latin-1, so this never fails; the ASCII fast path avoids the decoder.
func DecodeLatin1(b []byte) string {
	if isASCII(b) {
		return string(b)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		// Unreachable for ISO 8859-1, but degrade rather than drop the field.
		return string(b)
	}
	return string(decoded)
}

// EncodeLatin1 encodes s as Latin-1 bytes. Code points outside Latin-1 are an
// error; the caller decides whether to reject the edit.
func EncodeLatin1(s string) ([]byte, error) {
	if isASCII([]byte(s)) {
		return []byte(s), nil
	}
	encoded, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("string not representable as Latin-1: %w", err)
	}
	return encoded, nil
}

// DecodeString reads a length-prefixed Latin-1 string at off: one unsigned
// length byte followed by that many bytes. Returns the string and the offset
// of the first byte after it.
func DecodeString(b []byte, off int) (string, int, error) {
	n, ok := buf.CheckedByte(b, off)
	if !ok {
		return "", 0, fmt.Errorf("string length at %d: %w", off, ErrTruncated)
	}
	s, ok := buf.Slice(b, off+1, int(n))
	if !ok {
		return "", 0, fmt.Errorf("string body at %d (%d bytes): %w", off+1, n, ErrTruncated)
	}
	return DecodeLatin1(s), off + 1 + int(n), nil
}

// AppendString appends a length-prefixed Latin-1 string. Strings longer than
// 255 bytes cannot be represented in the single length byte and are rejected;
// the format never carries longer ones.
func AppendString(out []byte, s string) ([]byte, error) {
	encoded, err := EncodeLatin1(s)
	if err != nil {
		return out, err
	}
	if len(encoded) > 0xFF {
		return out, fmt.Errorf("string %d bytes over the length prefix: %w", len(encoded), ErrSanityLimit)
	}
	out = append(out, byte(len(encoded)))
	return append(out, encoded...), nil
}
