// Package fastmask implements a compact binary codec for 8-bit grayscale
// raster masks — the low-entropy, single-channel label maps semantic
// segmentation produces, where every pixel is one of a small number of
// class indices and long horizontal runs of the same value are the norm.
//
// # Overview
//
// The codec trades generality for decode throughput. It is a per-row
// run-length encoding, bit-packed at sub-byte boundaries with file-wide bit
// widths chosen from a single statistics pass, aimed at making a
// previously written mask faster to read back than the equivalent PNG,
// QOI, or BMP file while staying smaller on realistic segmentation output.
//
// # When to Use fastmask
//
// fastmask excels at:
//   - Semantic/instance segmentation masks with few distinct classes
//   - Label maps with long horizontal runs (most real segmentation output)
//   - Pipelines where decode speed dominates (training data loaders,
//     inference post-processing)
//
// # When NOT to Use fastmask
//
// fastmask is not suitable for:
//   - Multi-channel (RGB/RGBA) images — use PNG or QOI instead
//   - Photographic or continuous-tone content (no run structure to exploit)
//   - Sample widths other than 8 bits
//   - Anything needing random access or partial/streaming decode
//
// # Tradeoffs vs Other Formats
//
// Compared to PNG:
//   - Much faster decode (no DEFLATE, no filter-byte undoing)
//   - Smaller on masks with long runs; larger on masks with none
//   - No general-purpose compression fallback — arbitrary noise may grow
//
// Compared to QOI/BMP:
//   - Exploits run structure QOI's pixel-diff coding and BMP's raw storage
//     do not
//   - Narrower domain: only single-channel, 8-bit label data
//
// # Basic Usage
//
//	mask, _ := fastmask.NewMask(100, 100, pixels)
//	buf, err := fastmask.Encode(mask)
//
//	decoded, err := fastmask.Decode(buf)
//
//	info, err := fastmask.Info(buf)
//	// info.Shape-equivalent fields: info.Height, info.Width
//
// # Performance Characteristics
//
// Encoding is two-pass and O(H×W): one pass to compute the symbol table and
// bit widths, one to emit. Decoding is single-pass and O(H×W), dominated by
// a contiguous fill per run rather than a per-pixel loop — the format's
// layout exists specifically to keep that fill path on the memory-bandwidth
// side of the ledger rather than the branch-prediction side.
package fastmask
