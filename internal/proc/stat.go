package proc

import (
	"errors"
	"strconv"
	"strings"
)

// Field positions after the comm field, 0-origin, per proc(5):
// state ppid pgrp session tty_nr tpgid ...
const (
	fieldTTYNr = 4
	fieldTPGID = 5
)

var errStatLayout = errors.New("broken process stat")

// ParseStat extracts the controlling-terminal device number and the
// foreground process group id from a /proc/<pid>/stat record.
//
// The comm field is enclosed in parentheses and may itself contain
// spaces or parentheses, so the record is split on the LAST ") "
// occurrence; everything after it is plain whitespace-separated fields.
func ParseStat(data string) (ttyNr uint64, tpgid int, err error) {
	i := strings.LastIndex(data, ") ")
	if i < 0 {
		return 0, 0, errStatLayout
	}
	fields := strings.Fields(data[i+2:])
	if len(fields) <= fieldTPGID {
		return 0, 0, errStatLayout
	}
	ttyNr, err = strconv.ParseUint(fields[fieldTTYNr], 10, 64)
	if err != nil {
		return 0, 0, errStatLayout
	}
	tpgid, err = strconv.Atoi(fields[fieldTPGID])
	if err != nil {
		return 0, 0, errStatLayout
	}
	return ttyNr, tpgid, nil
}
