package fastmask

import "fmt"

// Decode parses data (header + bit-packed payload) and returns the
// reconstructed Mask. Any parse error aborts the call and returns no
// partial mask (spec.md §4.5's "Failure semantics").
func Decode(data []byte) (Mask, error) {
	return DecodeInto(nil, data)
}

// DecodeInto behaves like Decode but reuses dst as the output pixel buffer
// when it is already exactly height*width bytes, avoiding an allocation —
// the "borrowing variant" spec.md §9 calls for. dst may be nil, in which
// case a new buffer is allocated.
func DecodeInto(dst []byte, data []byte) (Mask, error) {
	h, payloadOff, err := parseHeader(data)
	if err != nil {
		return Mask{}, err
	}

	want := uint64(h.height) * uint64(h.width)
	if uint64(int(want)) != want {
		return Mask{}, fmt.Errorf("fastmask: dimensions %dx%d overflow int: %w", h.height, h.width, ErrInvalidFormat)
	}
	n := int(want)
	if uint64(len(dst)) != want {
		dst = make([]byte, n)
	}

	s := len(h.symbolTable)
	br := newBitReader(data[payloadOff:])

	width := int(h.width)
	wLine := uint(h.wLine)
	wSymbol := uint(h.wSymbol)
	wCount := uint(h.wCount)

	for r := uint32(0); r < h.height; r++ {
		k, err := br.readBits(wLine)
		if err != nil {
			return Mask{}, wrapTruncated(err)
		}
		rowStart := int(r) * width
		c := 0
		for i := uint32(0); i < k; i++ {
			var idx uint32
			if wSymbol > 0 {
				idx, err = br.readBits(wSymbol)
				if err != nil {
					return Mask{}, wrapTruncated(err)
				}
			}
			count, err := br.readBits(wCount)
			if err != nil {
				return Mask{}, wrapTruncated(err)
			}
			if int(idx) >= s {
				return Mask{}, fmt.Errorf("fastmask: symbol index %d out of range [0,%d): %w", idx, s, ErrInvalidFormat)
			}
			if count == 0 {
				return Mask{}, fmt.Errorf("fastmask: zero-length run at row %d: %w", r, ErrInvalidFormat)
			}
			if c+int(count) > width {
				return Mask{}, fmt.Errorf("fastmask: run overruns row %d (width %d): %w", r, width, ErrInvalidFormat)
			}
			fillRun(dst[rowStart+c:rowStart+c+int(count)], h.symbolTable[idx])
			c += int(count)
		}
		if c != width {
			return Mask{}, fmt.Errorf("fastmask: row %d covers %d of %d samples: %w", r, c, width, ErrInvalidFormat)
		}
	}

	return Mask{Height: h.height, Width: h.width, Pix: dst}, nil
}

// wrapTruncated turns the bitReader's internal sentinel into the single
// caller-visible ErrInvalidFormat (spec.md §7 only defines three error
// kinds; a truncated bit stream is a format error, not a new kind).
func wrapTruncated(err error) error {
	if err == errTruncated {
		return fmt.Errorf("fastmask: %w: %v", ErrInvalidFormat, err)
	}
	return err
}

// fillRun writes value across dst. Go has no portable memset intrinsic
// exposed to pure Go, but copy compiles to a runtime memmove, and doubling
// the already-filled prefix turns an n-byte fill into O(log n) calls to it
// instead of a byte-at-a-time scalar loop — the idiomatic Go realization of
// spec.md §9's "vectorized fill" guidance without cgo or assembly.
func fillRun(dst []byte, value byte) {
	if len(dst) == 0 {
		return
	}
	dst[0] = value
	for filled := 1; filled < len(dst); filled *= 2 {
		copy(dst[filled:], dst[:filled])
	}
}
