package buf

import "bytes"

// Find returns the offset of the first occurrence of pattern within
// b[start:end], or -1 when absent. The window is clamped to the buffer so an
// out-of-range request means "not found" rather than a panic. Searches are
// always bounded to keep scans from ranging into adjacent, unrelated sections.
func Find(b, pattern []byte, start, end int) int {
	start = Clamp(start, 0, len(b))
	end = Clamp(end, start, len(b))
	if len(pattern) == 0 || end-start < len(pattern) {
		return -1
	}
	i := bytes.Index(b[start:end], pattern)
	if i < 0 {
		return -1
	}
	return start + i
}

// RFind returns the offset of the last occurrence of pattern within
// b[start:end], or -1 when absent.
func RFind(b, pattern []byte, start, end int) int {
	start = Clamp(start, 0, len(b))
	end = Clamp(end, start, len(b))
	if len(pattern) == 0 || end-start < len(pattern) {
		return -1
	}
	i := bytes.LastIndex(b[start:end], pattern)
	if i < 0 {
		return -1
	}
	return start + i
}
