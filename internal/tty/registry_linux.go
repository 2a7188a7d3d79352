//go:build linux

package tty

import (
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"github.com/ttywho/ttywho/pkg/model"
)

// DeviceStat is the slice of lstat output the registry records.
type DeviceStat struct {
	Dev     uint64
	UID     uint32
	LastIn  time.Time
	LastOut time.Time
	Login   time.Time
}

// Builder enumerates terminal device special files. Globs and Stat are
// overridable for tests; the real Stat needs actual device files.
type Builder struct {
	Globs []string
	Stat  func(path string) (DeviceStat, error)
}

func NewBuilder() *Builder {
	return &Builder{
		Globs: []string{"/dev/tty*", "/dev/pts/*"},
		Stat:  statDevice,
	}
}

// Build maps every readable terminal device file to its kernel device
// number. Paths that fail to stat are skipped silently: devices come
// and go, and some are unreadable by policy. If two paths resolve to
// the same device number the later one wins; normal kernels never
// produce that, so it is documented rather than guarded.
func (b *Builder) Build() map[uint64]*model.Terminal {
	reg := make(map[uint64]*model.Terminal)
	seq := 0
	for _, glob := range b.Globs {
		paths, err := filepath.Glob(glob)
		if err != nil {
			continue
		}
		for _, path := range paths {
			ds, err := b.Stat(path)
			if err != nil {
				continue
			}
			reg[ds.Dev] = &model.Terminal{
				Dev:     ds.Dev,
				Name:    shortName(path),
				UID:     ds.UID,
				LastIn:  ds.LastIn,
				LastOut: ds.LastOut,
				Login:   ds.Login,
				Seq:     seq,
			}
			seq++
		}
	}
	return reg
}

// shortName abbreviates a device path for display: /dev/pts/3 -> pts/3.
func shortName(path string) string {
	return strings.TrimPrefix(path, "/dev/")
}

func statDevice(path string) (DeviceStat, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return DeviceStat{}, err
	}
	return DeviceStat{
		Dev:     uint64(st.Rdev),
		UID:     st.Uid,
		LastIn:  time.Unix(st.Atim.Sec, st.Atim.Nsec),
		LastOut: time.Unix(st.Mtim.Sec, st.Mtim.Nsec),
		Login:   time.Unix(st.Ctim.Sec, st.Ctim.Nsec),
	}, nil
}
