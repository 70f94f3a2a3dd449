//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The room viewer requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/room-viewer` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a headless preview use `go run ./cmd/roomgen -tui`.")
	os.Exit(2)
}
