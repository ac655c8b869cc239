// Package buf contains helpers for endian-safe decoding routines and
// bounded pattern searches over raw file buffers.
package buf

import (
	"encoding/binary"
	"math"
)

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// F32LE reads a little-endian float32 from b. Returns 0 when b is too short.
func F32LE(b []byte) float32 {
	if len(b) < 4 {
		return 0
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// CheckedU32 reads a little-endian uint32 at off, reporting ok = false when
// the read would exceed the buffer. Callers treat a failed read as "candidate
// invalid", never as fatal.
func CheckedU32(b []byte, off int) (uint32, bool) {
	s, ok := Slice(b, off, 4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(s), true
}

// CheckedF32 reads a little-endian float32 at off with bounds checking.
func CheckedF32(b []byte, off int) (float32, bool) {
	v, ok := CheckedU32(b, off)
	if !ok {
		return 0, false
	}
	return math.Float32frombits(v), true
}

// CheckedByte reads a single byte at off with bounds checking.
func CheckedByte(b []byte, off int) (byte, bool) {
	if off < 0 || off >= len(b) {
		return 0, false
	}
	return b[off], true
}

// PutU32LE writes a little-endian uint32 to the buffer at off.
func PutU32LE(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}

// PutF32LE writes a little-endian float32 to the buffer at off.
func PutF32LE(b []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(b[off:off+4], math.Float32bits(v))
}

// AppendU32LE appends v to b in little-endian order.
func AppendU32LE(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}

// AppendF32LE appends v to b in little-endian order.
func AppendF32LE(b []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
}
