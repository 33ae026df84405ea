package fastmask

import "fmt"

// Encode runs the two-pass encoder spec.md §4.4 describes over m and
// returns a self-describing byte stream: header followed by the bit-packed
// per-row payload.
//
// Pass 1 scans the whole mask once to build the symbol table (ascending
// numeric order, spec.md §9) and the per-file bit widths w_symbol, w_count,
// w_line. Pass 2 streams the header and then each row's runs directly into
// a bitWriter — no per-run slice is ever materialized.
func Encode(m Mask) ([]byte, error) {
	if m.Height == 0 || m.Width == 0 {
		return nil, fmt.Errorf("fastmask: height and width must be positive: %w", ErrInvalidInput)
	}
	if uint64(len(m.Pix)) != uint64(m.Height)*uint64(m.Width) {
		return nil, fmt.Errorf("fastmask: pix length %d does not match %dx%d: %w", len(m.Pix), m.Height, m.Width, ErrInvalidInput)
	}

	var present [256]bool
	var maxRuns, maxCount uint32
	rowRuns := make([]uint32, m.Height)

	for r := uint32(0); r < m.Height; r++ {
		row := m.row(r)
		var runsInRow uint32
		forEachRun(row, func(symbol uint8, count uint32) {
			present[symbol] = true
			runsInRow++
			if count > maxCount {
				maxCount = count
			}
		})
		rowRuns[r] = runsInRow
		if runsInRow > maxRuns {
			maxRuns = runsInRow
		}
	}

	symbolTable := make([]byte, 0, maxSymbols)
	var symbolIndex [256]uint8
	for v := 0; v < 256; v++ {
		if present[v] {
			symbolIndex[v] = uint8(len(symbolTable))
			symbolTable = append(symbolTable, byte(v))
		}
	}
	s := len(symbolTable)

	wSymbol := minSymbolWidth(s)
	wCount := minWidthFor(maxCount)
	wLine := minWidthFor(maxRuns)
	if wCount > 32 || wLine > 32 {
		return nil, fmt.Errorf("fastmask: run statistics exceed 32-bit widths: %w", ErrInvalidInput)
	}

	h := header{
		height:      m.Height,
		width:       m.Width,
		symbolTable: symbolTable,
		wSymbol:     wSymbol,
		wCount:      wCount,
		wLine:       wLine,
	}

	out := make([]byte, 0, headerSize(s)+int(m.Height)*2)
	out = writeHeader(out, h)

	bw := newBitWriter()
	for r := uint32(0); r < m.Height; r++ {
		row := m.row(r)
		bw.writeBits(rowRuns[r], uint(wLine))
		forEachRun(row, func(symbol uint8, count uint32) {
			bw.writeBits(uint32(symbolIndex[symbol]), uint(wSymbol))
			bw.writeBits(count, uint(wCount))
		})
	}
	bw.flush()

	out = append(out, bw.bytes()...)
	return out, nil
}
