package model

import "time"

// Terminal is one terminal device file observed during registry
// enumeration, keyed by its kernel device number. Commands is filled in
// by the attribution pass and read-only afterwards.
type Terminal struct {
	Dev      uint64    `json:"dev"`
	Name     string    `json:"tty"` // device path minus "/dev/"
	UID      uint32    `json:"uid"`
	LastIn   time.Time `json:"last_input"`  // atime
	LastOut  time.Time `json:"last_output"` // mtime
	Login    time.Time `json:"login"`       // ctime
	Seq      int       `json:"-"`           // discovery order, sort tie-break
	Commands []string  `json:"commands"`    // foreground command lines, scan order
}

// Process is one fully-read entry from the process table. A record is
// only constructed when the stat, cmdline and ownership reads all
// succeed; a pid that exits mid-scan never produces a partial record.
type Process struct {
	PID     int
	UID     uint32
	TTY     uint64 // controlling terminal device number, 0 = none
	TPGID   int    // foreground process group id, -1 = none
	Cmdline string
}
