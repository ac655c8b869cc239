package format

import (
	"bytes"

	"github.com/RangeyRover/AMS2-BGUI-Editor/internal/buf"
	"github.com/RangeyRover/AMS2-BGUI-Editor/pkg/types"
)

// FindRegister locates the start of the register body (the first 8-byte
// entry). Two strategies run in order; the first success wins.
//
// Strategy 1 searches backward near end-of-file for the fixed 14-byte
// signature and validates the entry that follows it. Strategy 2 scans
// backward in 2-byte steps for a root-shaped entry: id 0, a sane child count
// whose entries fit before end-of-file, and zeroed padding just before it.
//
// Failure is a hard parse failure for the caller: without the register no
// hierarchy is derivable.
func FindRegister(b []byte) (int, bool) {
	if start, ok := findRegisterBySignature(b); ok {
		return start, true
	}
	return findRegisterByScan(b)
}

func findRegisterBySignature(b []byte) (int, bool) {
	windowStart := len(b) - RegisterSigWindow
	if windowStart < 0 {
		windowStart = 0
	}
	sig := buf.RFind(b, RegisterSignature, windowStart, len(b))
	if sig < 0 {
		return 0, false
	}
	candidate := sig + RegisterSignatureSize
	id, ok := buf.CheckedU32(b, candidate)
	if !ok {
		return 0, false
	}
	count, ok := buf.CheckedU32(b, candidate+4)
	if !ok {
		return 0, false
	}
	if id != 0 || count >= MaxChildCount {
		return 0, false
	}
	return candidate, true
}

func findRegisterByScan(b []byte) (int, bool) {
	start := (len(b) - RegisterEntrySize) &^ 1
	end := len(b) - RegisterScanWindow
	if end < 0 {
		end = 0
	}
	for off := start; off > end; off -= 2 {
		id, ok := buf.CheckedU32(b, off)
		if !ok || id != 0 {
			continue
		}
		count, ok := buf.CheckedU32(b, off+4)
		if !ok || count >= MaxChildCount {
			continue
		}
		remaining := len(b) - (off + RegisterEntrySize)
		if int(count)*RegisterEntrySize > remaining {
			continue
		}
		// Root entries are preceded by four zero bytes of padding.
		if off >= 4 {
			if prev, ok := buf.CheckedU32(b, off-4); !ok || prev != 0 {
				continue
			}
		}
		return off, true
	}
	return 0, false
}

// RegisterBlockStart returns the offset where the raw register block begins:
// the signature when one precedes the body, else the body itself. The element
// scan window ends here so body and register spans tile the file exactly.
func RegisterBlockStart(b []byte, bodyStart int) int {
	sigStart := bodyStart - RegisterSignatureSize
	if sig, ok := buf.Slice(b, sigStart, RegisterSignatureSize); ok && bytes.Equal(sig, RegisterSignature) {
		return sigStart
	}
	return bodyStart
}

// DecodeRegister reads tightly packed (id, child_count) pairs from bodyStart
// to end-of-file. The final decoded offset is the register end.
func DecodeRegister(b []byte, bodyStart int) ([]types.RegisterEntry, int) {
	var entries []types.RegisterEntry
	curr := bodyStart
	for curr+RegisterEntrySize <= len(b) {
		id := buf.U32LE(b[curr:])
		count := buf.U32LE(b[curr+4:])
		entries = append(entries, types.RegisterEntry{
			Index:      len(entries),
			ElementID:  id,
			ChildCount: count,
			FileOffset: curr,
		})
		curr += RegisterEntrySize
	}
	return entries, curr
}

// EncodeRegister serializes the signature block followed by the flat
// (id, child_count) sequence.
func EncodeRegister(entries []types.RegisterEntry) []byte {
	out := make([]byte, 0, RegisterSignatureSize+len(entries)*RegisterEntrySize)
	out = append(out, RegisterSignature...)
	for _, e := range entries {
		out = buf.AppendU32LE(out, e.ElementID)
		out = buf.AppendU32LE(out, e.ChildCount)
	}
	return out
}
