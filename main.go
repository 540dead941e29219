// Go-BMP reads, transforms and writes 24-bit uncompressed bitmaps
// (it's a hobby project and not to be used in production!)
package main

import (
	"os"

	"github.com/anas-shakeel/go-bmp/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
