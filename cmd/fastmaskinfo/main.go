// Command fastmaskinfo prints the header fields of one or more .pfmf files
// without decoding their payloads.
//
// Usage:
//
//	fastmaskinfo <file.pfmf> [more.pfmf ...]
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/axiomhq/fastmask"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("fastmaskinfo: ")

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: fastmaskinfo <file.pfmf> [more.pfmf ...]")
		os.Exit(1)
	}

	status := 0
	for _, path := range os.Args[1:] {
		if err := printInfo(path); err != nil {
			log.Println(err)
			status = 1
		}
	}
	os.Exit(status)
}

func printInfo(path string) error {
	info, err := fastmask.Info(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Printf("%s: %dx%d, %d symbols, w_line=%d w_count=%d w_symbol=%d\n",
		path, info.Height, info.Width, info.UniqueSymbolsCount,
		info.LineCountBitWidth, info.CountBitWidth, info.SymbolBitWidth)
	return nil
}
