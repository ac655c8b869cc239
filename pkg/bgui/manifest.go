package bgui

import (
	"github.com/RangeyRover/AMS2-BGUI-Editor/internal/buf"
	"github.com/RangeyRover/AMS2-BGUI-Editor/internal/format"
	"github.com/RangeyRover/AMS2-BGUI-Editor/pkg/types"
)

// manifestStringsOffset is where the packed string table begins relative to
// the manifest record's marker.
const manifestStringsOffset = 64

// scanManifest looks for the manifest record: a Type3-marked record with a
// zero name length whose body carries a count-prefixed table of packed ASCII
// strings (fonts, sprite sheets, shared assets). Most files have exactly one,
// as the first record; some have none. Absence is normal, so this never
// produces an error or a diagnostic.
func scanManifest(data []byte, windowStart, windowEnd int) []ManifestString {
	cursor := windowStart
	for cursor < windowEnd {
		markerOff := buf.Find(data, format.Marker3, cursor, windowEnd)
		if markerOff < 0 {
			return nil
		}
		cursor = markerOff + format.MarkerSize
		nameLen, ok := buf.CheckedByte(data, markerOff+format.MarkerSize)
		if !ok || nameLen != 0 {
			continue
		}
		count, ok := buf.CheckedU32(data, markerOff+format.MarkerSize+1)
		if !ok || count == 0 || count > format.MaxManifestStrings {
			continue
		}
		if out := readManifestTable(data, markerOff, windowEnd, int(count)); len(out) > 0 {
			return out
		}
	}
	return nil
}

// readManifestTable walks the packed string table. Strings are length-prefixed
// with optional zero padding between entries; the walk stops at the first byte
// that fits neither shape.
func readManifestTable(data []byte, markerOff, windowEnd, count int) []ManifestString {
	var out []ManifestString
	cur := markerOff + manifestStringsOffset
	for len(out) < count && cur < windowEnd {
		n, ok := buf.CheckedByte(data, cur)
		if !ok {
			break
		}
		if n == 0 {
			cur++
			continue
		}
		if int(n) > format.MaxNameLen {
			break
		}
		raw, ok := buf.Slice(data, cur+1, int(n))
		if !ok || !format.IsPrintableASCII(raw) {
			break
		}
		out = append(out, ManifestString{
			Value: string(raw),
			Span:  types.Span{Offset: cur + 1, Length: int(n)},
		})
		cur += 1 + int(n)
	}
	return out
}
