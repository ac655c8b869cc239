package format

import (
	"strings"

	"github.com/RangeyRover/AMS2-BGUI-Editor/internal/buf"
)

// resourceLenOffsets are the candidate positions of the length byte relative
// to the resource tag. The sub-header width is not fixed across element kinds
// and file revisions; these cover every observed case plus a few safe extras.
// The true canonical layout was never determined, so decoding stays a ranked
// heuristic: the first plausible candidate wins.
var resourceLenOffsets = [...]int{5, 6, 8, 9, 10, 11, 12, 13, 14}

// resourceSuffixes are the asset extensions commonly referenced by layouts.
var resourceSuffixes = [...]string{".dds", ".bfont", ".bspr", ".png", ".jpg", ".jpeg", ".bmp"}

// PlausibleResourceString is the acceptance predicate for a decoded resource
// path candidate.
func PlausibleResourceString(s string) bool {
	if s == "" || !IsPrintableASCII([]byte(s)) {
		return false
	}
	if !strings.Contains(s, ".") {
		return false
	}
	lowered := strings.ToLower(s)
	for _, suffix := range resourceSuffixes {
		if strings.HasSuffix(lowered, suffix) {
			return true
		}
	}
	// Unknown extensions are allowed inside a cautious length band.
	return len(s) >= 5 && len(s) <= MaxResourceLen
}

// ExtractResource finds the tagged resource sub-block within the record
// bounds and decodes its length-prefixed string. Strict ASCII decoding is
// tried at every candidate offset first; if none succeeds, a lossy pass runs
// as a lower-confidence fallback. Absence of the tag, or no plausible
// candidate, yields an empty string rather than an error.
//
// Returns the decoded string, the offset of its first byte, and whether the
// tag itself was present.
func ExtractResource(b []byte, bodyOff, limit int) (string, int, bool) {
	start := bodyOff + ResourceSearchSkip
	if start >= limit {
		return "", 0, false
	}
	tagPos := buf.Find(b, ResourceTag, start, limit)
	if tagPos < 0 {
		return "", 0, false
	}
	if s, off, ok := resourceAt(b, tagPos, true); ok {
		return s, off, true
	}
	if s, off, ok := resourceAt(b, tagPos, false); ok {
		return s, off, true
	}
	return "", 0, true
}

func resourceAt(b []byte, tagPos int, strict bool) (string, int, bool) {
	for _, rel := range resourceLenOffsets {
		lenOff := tagPos + rel
		n, ok := buf.CheckedByte(b, lenOff)
		if !ok || n < 1 || int(n) > MaxResourceLen {
			continue
		}
		raw, ok := buf.Slice(b, lenOff+1, int(n))
		if !ok {
			continue
		}
		if strict && !isASCII(raw) {
			continue
		}
		var s string
		if strict {
			s = string(raw)
		} else {
			s = lossyASCII(raw)
		}
		if PlausibleResourceString(s) {
			return s, lenOff + 1, true
		}
	}
	return "", 0, false
}

// lossyASCII replaces non-ASCII bytes with '?' so a mostly-clean path still
// passes the printable check on the fallback pass.
func lossyASCII(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 0x80 {
			out[i] = '?'
		} else {
			out[i] = c
		}
	}
	return string(out)
}
