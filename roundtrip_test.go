package fastmask

import (
	"math/rand"
	"testing"
	"testing/quick"
)

// TestRoundTripProperty checks spec.md §8's central law — decode(encode(M))
// == M — over randomly generated masks, in the style of this corpus's
// round-trip tests (table_test.go's TestRebuildTableRoundtrip) but using
// testing/quick for broader input coverage instead of a handful of fixed
// cases (all of which are also covered individually in decode_test.go).
func TestRoundTripProperty(t *testing.T) {
	f := func(seed int64, heightSeed, widthSeed uint8) bool {
		rng := rand.New(rand.NewSource(seed))
		height := uint32(heightSeed)%40 + 1
		width := uint32(widthSeed)%40 + 1

		// Bias toward a small alphabet so most rows contain real runs,
		// matching the segmentation masks this codec targets.
		alphabet := uint32(rng.Intn(5) + 1)
		pix := make([]byte, height*width)
		for i := range pix {
			pix[i] = byte(rng.Intn(int(alphabet)))
		}

		m, err := NewMask(height, width, pix)
		if err != nil {
			t.Fatalf("NewMask: %v", err)
		}
		buf, err := Encode(m)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		got, err := Decode(buf)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		return got.Equal(m)
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Fatal(err)
	}
}

// TestHeaderRoundTripProperty checks spec.md §8's "info(encode(M)).shape ==
// M.shape" law.
func TestHeaderRoundTripProperty(t *testing.T) {
	f := func(seed int64, heightSeed, widthSeed uint8) bool {
		rng := rand.New(rand.NewSource(seed))
		height := uint32(heightSeed)%40 + 1
		width := uint32(widthSeed)%40 + 1
		pix := make([]byte, height*width)
		rng.Read(pix)

		m, err := NewMask(height, width, pix)
		if err != nil {
			t.Fatalf("NewMask: %v", err)
		}
		buf, err := Encode(m)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		info, err := Info(buf)
		if err != nil {
			t.Fatalf("Info: %v", err)
		}
		return info.Height == height && info.Width == width
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Fatal(err)
	}
}

// TestBitWidthMinimalityProperty checks spec.md §8's bit-width minimality
// law directly against the formulas in header.go.
func TestBitWidthMinimalityProperty(t *testing.T) {
	f := func(seed int64, heightSeed, widthSeed uint8) bool {
		rng := rand.New(rand.NewSource(seed))
		height := uint32(heightSeed)%20 + 1
		width := uint32(widthSeed)%20 + 1
		alphabet := uint32(rng.Intn(6) + 1)
		pix := make([]byte, height*width)
		for i := range pix {
			pix[i] = byte(rng.Intn(int(alphabet)))
		}

		m, err := NewMask(height, width, pix)
		if err != nil {
			t.Fatalf("NewMask: %v", err)
		}
		buf, err := Encode(m)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		h, _, err := parseHeader(buf)
		if err != nil {
			t.Fatalf("parseHeader: %v", err)
		}

		var present [256]bool
		var maxRuns, maxCount uint32
		for r := uint32(0); r < height; r++ {
			row := m.row(r)
			var runsInRow uint32
			forEachRun(row, func(symbol uint8, count uint32) {
				present[symbol] = true
				runsInRow++
				if count > maxCount {
					maxCount = count
				}
			})
			if runsInRow > maxRuns {
				maxRuns = runsInRow
			}
		}
		s := 0
		for _, p := range present {
			if p {
				s++
			}
		}

		return int(h.wSymbol) == int(minSymbolWidth(s)) &&
			h.wCount == minWidthFor(maxCount) &&
			h.wLine == minWidthFor(maxRuns)
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Fatal(err)
	}
}
