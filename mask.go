package fastmask

import "fmt"

// Mask is a rectangular array of 8-bit samples in row-major order: the
// sample at row r, column c lives at Pix[r*int(Width)+c]. It is the unit of
// exchange for Encode/Decode — the Go realization of spec.md's "two-
// dimensional array of 8-bit samples", since the codec deliberately avoids
// depending on image.Image (see SPEC_FULL.md §3).
type Mask struct {
	Height uint32
	Width  uint32
	Pix    []byte
}

// row returns the i'th row of m as a sub-slice of Pix, without copying.
func (m Mask) row(i uint32) []byte {
	w := int(m.Width)
	start := int(i) * w
	return m.Pix[start : start+w]
}

// NewMask validates height, width, and pix and returns a Mask wrapping pix
// directly (no copy). It is the entry point a caller holding a flat,
// contiguous row-major buffer should use.
func NewMask(height, width uint32, pix []byte) (Mask, error) {
	if height == 0 || width == 0 {
		return Mask{}, fmt.Errorf("fastmask: height and width must be positive: %w", ErrInvalidInput)
	}
	want := uint64(height) * uint64(width)
	if uint64(len(pix)) != want {
		return Mask{}, fmt.Errorf("fastmask: pix length %d does not match %dx%d: %w", len(pix), height, width, ErrInvalidInput)
	}
	return Mask{Height: height, Width: width, Pix: pix}, nil
}

// MaskFromRows builds a Mask from a slice of rows, the natural shape of a
// "2D array" in Go when no image or numpy-like dependency is wanted. All
// rows must share one width. Rows are copied into one contiguous buffer,
// which is the Go realization of spec.md §6's "otherwise the shim makes a
// contiguous copy" for input that isn't already one flat row-major slice.
//
// A caller holding a rank-3 array with a trailing axis of size 1 (the numpy
// shape (H, W, 1) spec.md §6 also accepts) should reslice it to [][]byte
// before calling MaskFromRows; Go has no ambient N-dimensional array type to
// squeeze generically.
func MaskFromRows(rows [][]byte) (Mask, error) {
	height := len(rows)
	if height == 0 {
		return Mask{}, fmt.Errorf("fastmask: no rows: %w", ErrInvalidInput)
	}
	width := len(rows[0])
	if width == 0 {
		return Mask{}, fmt.Errorf("fastmask: zero width: %w", ErrInvalidInput)
	}
	pix := make([]byte, height*width)
	for i, row := range rows {
		if len(row) != width {
			return Mask{}, fmt.Errorf("fastmask: row %d has width %d, want %d: %w", i, len(row), width, ErrInvalidInput)
		}
		copy(pix[i*width:(i+1)*width], row)
	}
	return Mask{Height: uint32(height), Width: uint32(width), Pix: pix}, nil
}

// Equal reports whether m and other have identical shape and samples.
func (m Mask) Equal(other Mask) bool {
	if m.Height != other.Height || m.Width != other.Width {
		return false
	}
	if len(m.Pix) != len(other.Pix) {
		return false
	}
	for i := range m.Pix {
		if m.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}
