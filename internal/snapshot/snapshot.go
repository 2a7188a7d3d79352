package snapshot

import (
	"sort"
	"strings"

	"github.com/ttywho/ttywho/pkg/model"
)

// loginPromptPath is the conventional login-prompt binary. Processes
// running it are prompts waiting for a login, not sessions.
const loginPromptPath = "/sbin/getty"

// Result is the output of one attribution pass. Terminals is in report
// order; NoTTY counts detached processes per owning uid; Owners holds
// every uid seen during the scan.
type Result struct {
	Terminals []*model.Terminal
	NoTTY     map[uint32]int
	Owners    map[uint32]struct{}
}

// Attribute joins the device registry against the scanned process
// table. Each process resolves to exactly one of: terminal-less,
// excluded (login prompt), foreground occupant of a known terminal, or
// dropped (backgrounded, or on a device the registry couldn't stat).
// Terminal entries in the registry are mutated in place; a terminal
// with no qualifying foreground leader keeps an empty command list and
// still appears in the result.
func Attribute(registry map[uint64]*model.Terminal, procs []model.Process) Result {
	res := Result{
		NoTTY:  make(map[uint32]int),
		Owners: make(map[uint32]struct{}),
	}

	for _, p := range procs {
		res.Owners[p.UID] = struct{}{}

		switch {
		case p.TTY == 0 || p.TPGID == -1:
			res.NoTTY[p.UID]++
		case isLoginPrompt(p.Cmdline):
			// Neither attributed nor tallied.
		case p.TPGID == p.PID:
			if t, ok := registry[p.TTY]; ok {
				t.Commands = append(t.Commands, p.Cmdline)
			}
			// A process on an unknown device does have a
			// terminal, just one we couldn't stat: dropped,
			// not counted as terminal-less.
		}
	}

	res.Terminals = sortTerminals(registry)
	return res
}

// sortTerminals orders entries by last-input time ascending, ties
// broken by discovery order.
func sortTerminals(registry map[uint64]*model.Terminal) []*model.Terminal {
	terms := make([]*model.Terminal, 0, len(registry))
	for _, t := range registry {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].Seq < terms[j].Seq })
	sort.SliceStable(terms, func(i, j int) bool { return terms[i].LastIn.Before(terms[j].LastIn) })
	return terms
}

func isLoginPrompt(cmdline string) bool {
	return cmdline == loginPromptPath || strings.HasPrefix(cmdline, loginPromptPath+" ")
}
