package format

import "github.com/RangeyRover/AMS2-BGUI-Editor/internal/buf"

// ExtractColor finds the RGB bytes of a record by locating the last
// ColorTerminator (float 1.0) before limit and taking the three bytes
// immediately preceding it. The constant terminates a color-and-homogeneous-
// coordinate tuple; taking the last occurrence inside the record bounds
// avoids matching an unrelated earlier scale field.
//
// Returns the packed 0xAARRGGBB value (alpha fixed to 0xFF), the offset of
// the R byte, and whether a terminator was found at all.
func ExtractColor(b []byte, bodyOff, limit int) (uint32, int, bool) {
	searchStart := bodyOff + ColorSearchSkip
	markerPos := buf.RFind(b, ColorTerminator, searchStart, limit)
	if markerPos < 0 {
		return 0, 0, false
	}
	rgbOff := markerPos - 3
	rgb, ok := buf.Slice(b, rgbOff, 3)
	if !ok {
		return 0, 0, false
	}
	rgba := uint32(0xFF)<<24 | uint32(rgb[0])<<16 | uint32(rgb[1])<<8 | uint32(rgb[2])
	return rgba, rgbOff, true
}
