//go:build linux

package proc

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/ttywho/ttywho/pkg/model"
)

// Scanner reads the process table from a proc filesystem root. Root is
// overridable so tests can point it at a fake tree.
type Scanner struct {
	Root string
}

func NewScanner() *Scanner {
	return &Scanner{Root: "/proc"}
}

// Scan enumerates every live process and returns a record for each one
// that survived to a full read. A pid whose stat, cmdline or ownership
// read fails is dropped whole: processes exit mid-scan all the time,
// and a partial record is worse than none. The error return only fires
// when the proc root itself is unreadable.
func (s *Scanner) Scan() ([]model.Process, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, err
	}

	var procs []model.Process
	for _, e := range entries {
		pid, err := strconv.Atoi(e.Name())
		if err != nil {
			// Non-numeric entries are not processes.
			continue
		}
		p, ok := s.readProcess(pid)
		if !ok {
			continue
		}
		procs = append(procs, p)
	}
	return procs, nil
}

func (s *Scanner) readProcess(pid int) (model.Process, bool) {
	dir := filepath.Join(s.Root, strconv.Itoa(pid))

	stat, err := os.ReadFile(filepath.Join(dir, "stat"))
	if err != nil {
		return model.Process{}, false
	}
	ttyNr, tpgid, err := ParseStat(string(stat))
	if err != nil {
		// Malformed stat gets the same treatment as a vanished
		// process: skip, never abort the scan.
		return model.Process{}, false
	}

	cmdline, err := os.ReadFile(filepath.Join(dir, "cmdline"))
	if err != nil {
		return model.Process{}, false
	}

	info, err := os.Stat(dir)
	if err != nil {
		return model.Process{}, false
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return model.Process{}, false
	}

	return model.Process{
		PID:     pid,
		UID:     st.Uid,
		TTY:     ttyNr,
		TPGID:   tpgid,
		Cmdline: cleanCmdline(cmdline),
	}, true
}

// cleanCmdline maps the NUL separators and any other control bytes of a
// cmdline record to spaces and trims the trailing separator.
func cleanCmdline(raw []byte) string {
	b := make([]byte, len(raw))
	for i, c := range raw {
		if c < 0x20 || c == 0x7f {
			b[i] = ' '
		} else {
			b[i] = c
		}
	}
	return strings.TrimRight(string(b), " ")
}
