package snapshot

import (
	"reflect"
	"testing"
	"time"

	"github.com/ttywho/ttywho/pkg/model"
)

func terminal(dev uint64, uid uint32, seq int, lastIn time.Time) *model.Terminal {
	return &model.Terminal{Dev: dev, UID: uid, Seq: seq, LastIn: lastIn}
}

func TestAttributeForegroundLeader(t *testing.T) {
	reg := map[uint64]*model.Terminal{
		5: terminal(5, 1000, 0, time.Time{}),
	}
	procs := []model.Process{
		{PID: 42, UID: 1000, TTY: 5, TPGID: 42, Cmdline: "/bin/bash"},
	}

	res := Attribute(reg, procs)
	if got := reg[5].Commands; !reflect.DeepEqual(got, []string{"/bin/bash"}) {
		t.Errorf("commands = %v, want [/bin/bash]", got)
	}
	if len(res.NoTTY) != 0 {
		t.Errorf("no terminal-less tally expected, got %v", res.NoTTY)
	}
	if _, ok := res.Owners[1000]; !ok {
		t.Error("owner 1000 missing from owner set")
	}
}

func TestAttributeTerminalLess(t *testing.T) {
	tests := []struct {
		name string
		proc model.Process
	}{
		{"null tty", model.Process{PID: 9, UID: 1000, TTY: 0, TPGID: 9, Cmdline: "daemon"}},
		{"tpgid -1", model.Process{PID: 9, UID: 1000, TTY: 5, TPGID: -1, Cmdline: "daemon"}},
		{"both null", model.Process{PID: 9, UID: 1000, TTY: 0, TPGID: -1, Cmdline: "daemon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := map[uint64]*model.Terminal{5: terminal(5, 1000, 0, time.Time{})}
			res := Attribute(reg, []model.Process{tt.proc})
			if res.NoTTY[1000] != 1 {
				t.Errorf("NoTTY[1000] = %d, want 1", res.NoTTY[1000])
			}
			if len(reg[5].Commands) != 0 {
				t.Errorf("terminal must stay unattributed, got %v", reg[5].Commands)
			}
		})
	}
}

func TestAttributeLoginPromptExcluded(t *testing.T) {
	reg := map[uint64]*model.Terminal{
		5: terminal(5, 0, 0, time.Time{}),
	}
	procs := []model.Process{
		// Would otherwise qualify as the foreground leader.
		{PID: 77, UID: 0, TTY: 5, TPGID: 77, Cmdline: "/sbin/getty -8 tty1"},
	}

	res := Attribute(reg, procs)
	if len(reg[5].Commands) != 0 {
		t.Errorf("getty must be excluded, got %v", reg[5].Commands)
	}
	if len(res.NoTTY) != 0 {
		t.Errorf("getty must not be tallied, got %v", res.NoTTY)
	}
	if _, ok := res.Owners[0]; !ok {
		t.Error("excluded processes still count toward the owner set")
	}
}

func TestAttributeGettyPrefixNeedsTerminator(t *testing.T) {
	reg := map[uint64]*model.Terminal{5: terminal(5, 1000, 0, time.Time{})}
	procs := []model.Process{
		{PID: 8, UID: 1000, TTY: 5, TPGID: 8, Cmdline: "/sbin/gettysburg"},
	}
	Attribute(reg, procs)
	if got := reg[5].Commands; !reflect.DeepEqual(got, []string{"/sbin/gettysburg"}) {
		t.Errorf("bare prefix without terminator must not be excluded, got %v", got)
	}
}

func TestAttributeBareGettyExcluded(t *testing.T) {
	reg := map[uint64]*model.Terminal{5: terminal(5, 0, 0, time.Time{})}
	Attribute(reg, []model.Process{{PID: 8, UID: 0, TTY: 5, TPGID: 8, Cmdline: "/sbin/getty"}})
	if len(reg[5].Commands) != 0 {
		t.Errorf("bare getty (terminator stripped with the argument separator) must be excluded, got %v", reg[5].Commands)
	}
}

func TestAttributeBackgroundDropped(t *testing.T) {
	reg := map[uint64]*model.Terminal{5: terminal(5, 1000, 0, time.Time{})}
	res := Attribute(reg, []model.Process{
		{PID: 10, UID: 1000, TTY: 5, TPGID: 99, Cmdline: "sleep 100"},
	})
	if len(reg[5].Commands) != 0 {
		t.Errorf("background process must not be attributed, got %v", reg[5].Commands)
	}
	if len(res.NoTTY) != 0 {
		t.Errorf("background process must not be tallied, got %v", res.NoTTY)
	}
}

func TestAttributeUnknownDeviceDropped(t *testing.T) {
	reg := map[uint64]*model.Terminal{}
	res := Attribute(reg, []model.Process{
		// Self-led foreground leader on a device we couldn't stat.
		{PID: 10, UID: 1000, TTY: 999, TPGID: 10, Cmdline: "bash"},
	})
	if len(res.NoTTY) != 0 {
		t.Errorf("process with an unstattable terminal is not terminal-less, got %v", res.NoTTY)
	}
	if _, ok := res.Owners[1000]; !ok {
		t.Error("dropped processes still count toward the owner set")
	}
}

func TestAttributeSharedTerminalKeepsScanOrder(t *testing.T) {
	reg := map[uint64]*model.Terminal{5: terminal(5, 1000, 0, time.Time{})}
	Attribute(reg, []model.Process{
		{PID: 11, UID: 1000, TTY: 5, TPGID: 11, Cmdline: "first"},
		{PID: 22, UID: 1000, TTY: 5, TPGID: 22, Cmdline: "second"},
	})
	if got := reg[5].Commands; !reflect.DeepEqual(got, []string{"first", "second"}) {
		t.Errorf("commands = %v, want scan order [first second]", got)
	}
}

func TestAttributeClassificationIsTotal(t *testing.T) {
	reg := map[uint64]*model.Terminal{5: terminal(5, 1000, 0, time.Time{})}
	procs := []model.Process{
		{PID: 1, UID: 0, TTY: 0, TPGID: -1, Cmdline: "init"},
		{PID: 2, UID: 0, TTY: 5, TPGID: 2, Cmdline: "/sbin/getty tty1"},
		{PID: 3, UID: 1000, TTY: 5, TPGID: 3, Cmdline: "bash"},
		{PID: 4, UID: 1001, TTY: 5, TPGID: 99, Cmdline: "sleep"},
	}
	res := Attribute(reg, procs)

	attributed := len(reg[5].Commands)
	tallied := 0
	for _, n := range res.NoTTY {
		tallied += n
	}
	// 1 attributed + 1 tallied + 1 excluded + 1 dropped = 4 processes;
	// every owner is recorded regardless of outcome.
	if attributed != 1 || tallied != 1 {
		t.Errorf("attributed=%d tallied=%d, want 1/1", attributed, tallied)
	}
	if len(res.Owners) != 3 {
		t.Errorf("owner set size = %d, want 3", len(res.Owners))
	}
}

func TestTerminalOrdering(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	reg := map[uint64]*model.Terminal{
		1: terminal(1, 0, 0, base.Add(2*time.Minute)),
		2: terminal(2, 0, 1, base),
		3: terminal(3, 0, 2, base.Add(time.Minute)),
		4: terminal(4, 0, 3, base), // same input time as dev 2
	}

	res := Attribute(reg, nil)
	var devs []uint64
	for _, t := range res.Terminals {
		devs = append(devs, t.Dev)
	}
	// Oldest input first; the tie between 2 and 4 keeps discovery order.
	want := []uint64{2, 4, 3, 1}
	if !reflect.DeepEqual(devs, want) {
		t.Errorf("terminal order = %v, want %v", devs, want)
	}
}

func TestAttributeEmptySnapshot(t *testing.T) {
	res := Attribute(map[uint64]*model.Terminal{}, nil)
	if len(res.Terminals) != 0 || len(res.Owners) != 0 || len(res.NoTTY) != 0 {
		t.Errorf("empty inputs must produce an empty result: %+v", res)
	}
}
