//go:build !linux

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(
		os.Stderr,
		"ttywho is only supported on Linux.\n\nIt reads terminal devices from /dev and process metadata from /proc, neither of which exists on this platform.",
	)
	os.Exit(1)
}
