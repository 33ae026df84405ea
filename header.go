package fastmask

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
	"os"
)

// magic is the literal ASCII preamble every encoded stream starts with.
const magic = "pfmf"

// formatVersion is the only version byte this package writes or accepts.
const formatVersion = 1

// maxSymbols is the largest legal symbol-table size: symbols are 8-bit
// sample values, so there can never be more than 256 distinct ones, even
// though symbol_count is stored in 16 bits (spec.md §9, "open question:
// maximum S").
const maxSymbols = 256

// Byte widths of the header's fixed-size fields, in on-the-wire order.
// Their sum plus len(symbolTable) is the total header size; see headerSize.
const (
	magicSize       = 4
	versionSize     = 1
	heightSize      = 4
	widthSize       = 4
	symbolCountSize = 2
	// prefixSize is how many bytes must be present before the symbol count
	// (and therefore the symbol table length) can be known.
	prefixSize = magicSize + versionSize + heightSize + widthSize + symbolCountSize
	// suffixSize is the three single-byte width fields that follow the
	// symbol table.
	suffixSize = 3 // w_symbol, w_count, w_line
)

// headerSize returns the total byte length of a header whose symbol table
// holds s entries.
func headerSize(s int) int {
	return prefixSize + s + suffixSize
}

// header is the fixed preamble spec.md §4.2 describes, plus the per-file
// symbol table. It is unexported: callers see it only through HeaderInfo.
type header struct {
	height      uint32
	width       uint32
	symbolTable []byte // length S, ascending numeric order, S in [1, 256]
	wSymbol     uint8
	wCount      uint8
	wLine       uint8
}

// writeHeader appends the serialized header to buf and returns the result.
func writeHeader(buf []byte, h header) []byte {
	buf = append(buf, magic...)
	buf = append(buf, formatVersion)

	var u32 [4]byte
	binary.LittleEndian.PutUint32(u32[:], h.height)
	buf = append(buf, u32[:]...)
	binary.LittleEndian.PutUint32(u32[:], h.width)
	buf = append(buf, u32[:]...)

	var u16 [2]byte
	binary.LittleEndian.PutUint16(u16[:], uint16(len(h.symbolTable)))
	buf = append(buf, u16[:]...)

	buf = append(buf, h.symbolTable...)
	buf = append(buf, h.wSymbol, h.wCount, h.wLine)
	return buf
}

// parseHeader parses the header at the start of buf and returns it along
// with the byte offset where the bit-packed payload begins. Every failure
// is ErrInvalidFormat per spec.md §4.2.
func parseHeader(buf []byte) (header, int, error) {
	if len(buf) < prefixSize {
		return header{}, 0, fmt.Errorf("fastmask: buffer too short for header: %w", ErrInvalidFormat)
	}
	if string(buf[:magicSize]) != magic {
		return header{}, 0, fmt.Errorf("fastmask: bad magic %q: %w", buf[:magicSize], ErrInvalidFormat)
	}
	version := buf[magicSize]
	if version != formatVersion {
		return header{}, 0, fmt.Errorf("fastmask: unsupported version %d: %w", version, ErrInvalidFormat)
	}

	off := magicSize + versionSize
	height := binary.LittleEndian.Uint32(buf[off:])
	off += heightSize
	width := binary.LittleEndian.Uint32(buf[off:])
	off += widthSize
	s := int(binary.LittleEndian.Uint16(buf[off:]))
	off += symbolCountSize

	if s == 0 || s > maxSymbols {
		return header{}, 0, fmt.Errorf("fastmask: invalid symbol count %d: %w", s, ErrInvalidFormat)
	}
	if len(buf) < headerSize(s) {
		return header{}, 0, fmt.Errorf("fastmask: buffer too short for %d-symbol header: %w", s, ErrInvalidFormat)
	}
	if height == 0 || width == 0 {
		return header{}, 0, fmt.Errorf("fastmask: zero height or width: %w", ErrInvalidFormat)
	}

	symbolTable := make([]byte, s)
	copy(symbolTable, buf[off:off+s])
	off += s

	wSymbol := buf[off]
	wCount := buf[off+1]
	wLine := buf[off+2]
	off += suffixSize

	minWSymbol := minSymbolWidth(s)
	if wSymbol < minWSymbol {
		return header{}, 0, fmt.Errorf("fastmask: w_symbol %d narrower than required %d: %w", wSymbol, minWSymbol, ErrInvalidFormat)
	}
	if wCount == 0 || wCount > 32 {
		return header{}, 0, fmt.Errorf("fastmask: w_count %d out of range: %w", wCount, ErrInvalidFormat)
	}
	if wLine == 0 || wLine > 32 {
		return header{}, 0, fmt.Errorf("fastmask: w_line %d out of range: %w", wLine, ErrInvalidFormat)
	}

	return header{
		height:      height,
		width:       width,
		symbolTable: symbolTable,
		wSymbol:     wSymbol,
		wCount:      wCount,
		wLine:       wLine,
	}, off, nil
}

// minSymbolWidth computes ceil(log2(s)), with the special case that a
// single-symbol table needs zero bits (spec.md §3/§4.4).
func minSymbolWidth(s int) uint8 {
	if s <= 1 {
		return 0
	}
	return uint8(bits.Len(uint(s - 1)))
}

// minWidthFor computes max(1, ceil(log2(maxVal+1))), the formula spec.md
// §4.4 uses for both w_count (maxVal = max run length) and w_line (maxVal =
// max runs per row).
func minWidthFor(maxVal uint32) uint8 {
	w := bits.Len32(maxVal)
	if w < 1 {
		w = 1
	}
	return uint8(w)
}

// HeaderInfo is the read-only projection of a parsed header: the fields
// spec.md §6 names for Info.
type HeaderInfo struct {
	Height             uint32
	Width              uint32
	UniqueSymbolsCount int
	LineCountBitWidth  uint8
	CountBitWidth      uint8
	SymbolBitWidth     uint8
}

// Info parses only the header of source and returns its fields, without
// decoding the payload. source may be a file path (string), an in-memory
// buffer ([]byte), or an io.Reader.
func Info(source any) (HeaderInfo, error) {
	switch v := source.(type) {
	case string:
		data, err := os.ReadFile(v)
		if err != nil {
			return HeaderInfo{}, fmt.Errorf("fastmask: reading %s: %w", v, joinIO(err))
		}
		return infoFromBytes(data)
	case []byte:
		return infoFromBytes(v)
	case io.Reader:
		// The header's fixed prefix tells us S, and therefore the exact
		// number of remaining bytes to read; avoid slurping a whole
		// large file just to read its preamble.
		head := make([]byte, prefixSize)
		if _, err := io.ReadFull(v, head); err != nil {
			return HeaderInfo{}, fmt.Errorf("fastmask: reading header: %w", ErrInvalidFormat)
		}
		s := int(binary.LittleEndian.Uint16(head[prefixSize-symbolCountSize:]))
		if s == 0 || s > maxSymbols {
			return HeaderInfo{}, fmt.Errorf("fastmask: invalid symbol count %d: %w", s, ErrInvalidFormat)
		}
		rest := make([]byte, s+suffixSize)
		if _, err := io.ReadFull(v, rest); err != nil {
			return HeaderInfo{}, fmt.Errorf("fastmask: reading header: %w", ErrInvalidFormat)
		}
		return infoFromBytes(append(head, rest...))
	default:
		return HeaderInfo{}, fmt.Errorf("fastmask: unsupported source type %T: %w", source, ErrInvalidInput)
	}
}

func infoFromBytes(data []byte) (HeaderInfo, error) {
	h, _, err := parseHeader(data)
	if err != nil {
		return HeaderInfo{}, err
	}
	return HeaderInfo{
		Height:             h.height,
		Width:              h.width,
		UniqueSymbolsCount: len(h.symbolTable),
		LineCountBitWidth:  h.wLine,
		CountBitWidth:      h.wCount,
		SymbolBitWidth:     h.wSymbol,
	}, nil
}
