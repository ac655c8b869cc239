package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrSignatureMismatch indicates a structure had an unexpected magic or tag.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrSanityLimit indicates a decoded count or length exceeded its limit.
	ErrSanityLimit = errors.New("format: sanity limit exceeded")
	// ErrNoRegister indicates neither location strategy found the register.
	ErrNoRegister = errors.New("format: register not found")
)
