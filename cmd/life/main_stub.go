//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

// Without ebiten there is no window to open; point at the terminal board.
func main() {
	fmt.Fprintln(os.Stderr, "life: this binary was built without a window (missing -tags ebiten).")
	fmt.Fprintln(os.Stderr, "life: build it with `go build -tags ebiten ./cmd/life`, or play in the terminal with `go run ./cmd/life-term`.")
	os.Exit(2)
}
