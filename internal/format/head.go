package format

import (
	"bytes"
	"fmt"

	"github.com/RangeyRover/AMS2-BGUI-Editor/internal/buf"
)

// Head captures the fixed section at the start of a BGUI file.
//
//	Offset  Size  Field
//	0x00    4     Magic
//	0x04    4     Sprite flag (1 = sprite path block follows)
//	...     1+n   Sprite path (length-prefixed Latin-1), if flagged
//	...     8     Sprite marker, if flagged
//	...     1+n   Container label (length-prefixed Latin-1)
//	...     ...   Opaque prelude up to the first element record
type Head struct {
	MagicRaw       []byte // the 4 magic bytes, preserved verbatim
	StandardMagic  bool   // true for either known magic value
	SpritePresent  bool
	SpritePath     string
	SpriteMissing  bool // sprite flagged but the 8-byte marker was absent
	ContainerLabel string

	SpritePathOffset int // offset of the first path byte (0 when absent)
	LabelOffset      int // offset of the first label byte
	PreludeOffset    int // where the opaque prelude begins
}

// DecodeHead parses the head section. The returned Head.PreludeOffset is the
// first byte not consumed; the caller bounds the prelude by locating the
// first valid element record.
func DecodeHead(b []byte) (Head, error) {
	if len(b) < MagicSize+4 {
		return Head{}, fmt.Errorf("head: %w", ErrTruncated)
	}
	h := Head{
		MagicRaw: append([]byte(nil), b[:MagicSize]...),
	}
	h.StandardMagic = bytes.Equal(h.MagicRaw, MagicStandard) || bytes.Equal(h.MagicRaw, MagicAlternate)

	off := MagicSize
	flag, _ := buf.CheckedU32(b, off)
	h.SpritePresent = flag == 1
	off += 4

	if h.SpritePresent {
		path, end, err := DecodeString(b, off)
		if err != nil {
			return Head{}, fmt.Errorf("head sprite path: %w", err)
		}
		h.SpritePath = path
		h.SpritePathOffset = off + 1
		off = end
		if marker, ok := buf.Slice(b, off, len(SpriteMarker)); ok && bytes.Equal(marker, SpriteMarker) {
			off += len(SpriteMarker)
		} else {
			// Loose files omit the marker; note it and keep going.
			h.SpriteMissing = true
		}
	}

	label, end, err := DecodeString(b, off)
	if err != nil {
		return Head{}, fmt.Errorf("head container label: %w", err)
	}
	h.ContainerLabel = label
	h.LabelOffset = off + 1
	h.PreludeOffset = end
	return h, nil
}

// HeadSpec carries the fields needed to re-encode an edited head.
type HeadSpec struct {
	MagicRaw       []byte
	SpritePresent  bool
	SpritePath     string
	ContainerLabel string
	Prelude        []byte // opaque bytes after the label, preserved
}

// EncodeHead serializes the head section. Untouched heads are emitted from
// their preserved raw block instead; this path only runs after an edit.
func EncodeHead(spec HeadSpec) ([]byte, error) {
	magic := spec.MagicRaw
	if len(magic) != MagicSize {
		magic = MagicStandard
	}
	out := append([]byte(nil), magic...)
	if spec.SpritePresent {
		out = buf.AppendU32LE(out, 1)
	} else {
		out = buf.AppendU32LE(out, 0)
	}
	var err error
	if spec.SpritePresent {
		out, err = AppendString(out, spec.SpritePath)
		if err != nil {
			return nil, fmt.Errorf("head sprite path: %w", err)
		}
		out = append(out, SpriteMarker...)
	}
	out, err = AppendString(out, spec.ContainerLabel)
	if err != nil {
		return nil, fmt.Errorf("head container label: %w", err)
	}
	return append(out, spec.Prelude...), nil
}
