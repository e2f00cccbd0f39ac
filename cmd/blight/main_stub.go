//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of blight requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/blight` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "Headless runs are available through ./cmd/blight-run.")
	os.Exit(2)
}
