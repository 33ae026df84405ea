// Command fastmaskbench compares this codec's encode size and decode
// throughput against image/png on synthetic segmentation-like masks — a
// runnable check of the claim in the package doc comment that decoding a
// previously written mask beats reading the equivalent PNG.
//
// Usage:
//
//	fastmaskbench [-height N] [-width N] [-classes N] [-seed N]
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"math/rand"
	"time"

	"github.com/axiomhq/fastmask"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("fastmaskbench: ")

	height := flag.Int("height", 1024, "mask height in pixels")
	width := flag.Int("width", 1024, "mask width in pixels")
	classes := flag.Int("classes", 6, "number of distinct class labels")
	seed := flag.Int64("seed", 1, "random seed for the synthetic mask")
	flag.Parse()

	mask, gray := syntheticSegmentationMask(*height, *width, *classes, *seed)

	fmBuf, err := fastmask.Encode(mask)
	if err != nil {
		log.Fatalf("fastmask encode: %v", err)
	}

	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, gray); err != nil {
		log.Fatalf("png encode: %v", err)
	}

	fmt.Printf("mask: %dx%d, %d classes\n", *height, *width, *classes)
	fmt.Printf("fastmask size: %d bytes\n", len(fmBuf))
	fmt.Printf("png size:      %d bytes\n", pngBuf.Len())

	const rounds = 20

	fmStart := time.Now()
	for i := 0; i < rounds; i++ {
		if _, err := fastmask.Decode(fmBuf); err != nil {
			log.Fatalf("fastmask decode: %v", err)
		}
	}
	fmElapsed := time.Since(fmStart) / rounds

	pngStart := time.Now()
	for i := 0; i < rounds; i++ {
		if _, err := png.Decode(bytes.NewReader(pngBuf.Bytes())); err != nil {
			log.Fatalf("png decode: %v", err)
		}
	}
	pngElapsed := time.Since(pngStart) / rounds

	fmt.Printf("fastmask decode: %v/iter\n", fmElapsed)
	fmt.Printf("png decode:      %v/iter\n", pngElapsed)
}

// syntheticSegmentationMask builds a low-entropy label map with contiguous
// blob-like regions (not uniform noise) so its run structure resembles real
// segmentation output, plus the equivalent image.Gray for the PNG baseline.
func syntheticSegmentationMask(height, width, classes int, seed int64) (fastmask.Mask, *image.Gray) {
	rng := rand.New(rand.NewSource(seed))
	pix := make([]byte, height*width)

	bands := classes
	if bands < 1 {
		bands = 1
	}
	bandHeight := height / bands
	if bandHeight < 1 {
		bandHeight = 1
	}
	for r := 0; r < height; r++ {
		class := byte((r / bandHeight) % classes)
		for c := 0; c < width; c++ {
			// Occasional noisy pixel keeps runs realistic instead of
			// perfectly uniform rows.
			if rng.Intn(200) == 0 {
				class = byte(rng.Intn(classes))
			}
			pix[r*width+c] = class
		}
	}

	mask, err := fastmask.NewMask(uint32(height), uint32(width), pix)
	if err != nil {
		log.Fatalf("NewMask: %v", err)
	}

	gray := image.NewGray(image.Rect(0, 0, width, height))
	copy(gray.Pix, pix)

	return mask, gray
}
