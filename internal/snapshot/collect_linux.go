//go:build linux

package snapshot

import (
	"github.com/ttywho/ttywho/internal/proc"
	"github.com/ttywho/ttywho/internal/tty"
)

// Collect takes one point-in-time view of the host: device registry and
// process table are enumerated independently, then joined. Only an
// unreadable /proc root fails the whole collection; every per-item
// failure degrades the snapshot's completeness, never its availability.
func Collect() (Result, error) {
	registry := tty.NewBuilder().Build()
	procs, err := proc.NewScanner().Scan()
	if err != nil {
		return Result{}, err
	}
	return Attribute(registry, procs), nil
}
