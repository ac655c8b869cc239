package bgui

import (
	"github.com/RangeyRover/AMS2-BGUI-Editor/internal/buf"
	"github.com/RangeyRover/AMS2-BGUI-Editor/internal/format"
)

// scanElements walks [windowStart, windowEnd) for element record markers and
// returns the candidates that survive validation, in file order. Rejected
// marker hits are skipped silently; they are expected noise, not corruption.
//
// Record extents are derived from neighbors, not from declared lengths: each
// accepted candidate ends where the next one starts. A surviving marker inside
// another record's declared length therefore splits it, which matches how the
// files actually nest overlapping length fields.
func scanElements(data []byte, windowStart, windowEnd int, inRegister func(uint32) bool) []format.Candidate {
	var out []format.Candidate
	cursor := windowStart
	// Each marker value is searched at most once per consumed match; a
	// pending hit past the cursor is reused, an exhausted marker stays -1.
	m3 := buf.Find(data, format.Marker3, cursor, windowEnd)
	m4 := buf.Find(data, format.Marker4, cursor, windowEnd)
	for cursor < windowEnd {
		if m3 >= 0 && m3 < cursor {
			m3 = buf.Find(data, format.Marker3, cursor, windowEnd)
		}
		if m4 >= 0 && m4 < cursor {
			m4 = buf.Find(data, format.Marker4, cursor, windowEnd)
		}
		markerOff := m3
		if markerOff < 0 || (m4 >= 0 && m4 < markerOff) {
			markerOff = m4
		}
		if markerOff < 0 {
			break
		}
		if c, ok := format.ValidateCandidate(data, markerOff, windowStart, inRegister); ok {
			out = append(out, c)
		}
		cursor = markerOff + format.MarkerSize
	}
	return out
}
