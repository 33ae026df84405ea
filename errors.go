// errors.go defines the public error values for the fastmask package.

package fastmask

import "errors"

// Public error values for encoding, decoding, and inspecting masks.
var (
	// ErrInvalidInput indicates a mask handed to Encode cannot be encoded:
	// a zero height or width, a Pix length that does not match
	// Height*Width, or run statistics that overflow the format's 32-bit
	// width fields. Info also returns it for an unsupported source type.
	ErrInvalidInput = errors.New("fastmask: invalid input")

	// ErrInvalidFormat indicates a byte stream handed to Decode or Info is
	// not a valid encoding: too short, bad magic, unknown version,
	// inconsistent row length, a symbol index out of range, a zero-length
	// run, or a truncated bit stream.
	ErrInvalidFormat = errors.New("fastmask: invalid format")

	// ErrIO indicates a filesystem failure in WriteFile, ReadFile, or Info
	// given a path. The
	// core encode/decode routines never return it themselves.
	ErrIO = errors.New("fastmask: io error")

	// errTruncated is the bitReader's internal "ran out of bits" signal.
	// Callers never see it directly; decode.go wraps it into
	// ErrInvalidFormat before it crosses the package boundary.
	errTruncated = errors.New("fastmask: truncated bit stream")
)
