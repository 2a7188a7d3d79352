package output

import (
	"encoding/json"
	"time"

	"github.com/ttywho/ttywho/internal/snapshot"
	"github.com/ttywho/ttywho/internal/sysinfo"
)

// ToJSON renders one snapshot for scripting consumers. Ages are
// emitted in whole seconds alongside the raw timestamps so callers
// don't have to re-derive them.
func ToJSON(res snapshot.Result, info sysinfo.Info, now time.Time) (string, error) {
	type jsonTerminal struct {
		TTY        string    `json:"tty"`
		User       string    `json:"user"`
		UID        uint32    `json:"uid"`
		Login      time.Time `json:"login"`
		LastInput  time.Time `json:"last_input"`
		LastOutput time.Time `json:"last_output"`
		InputAge   int64     `json:"input_age_seconds"`
		Commands   []string  `json:"commands"`
	}
	type jsonReport struct {
		UptimeSeconds int64          `json:"uptime_seconds"`
		Users         int            `json:"users"`
		Load          [3]float64     `json:"load"`
		Running       int            `json:"procs_running"`
		Total         int            `json:"procs_total"`
		Terminals     []jsonTerminal `json:"terminals"`
		NoTTY         map[string]int `json:"no_tty"`
	}

	report := jsonReport{
		UptimeSeconds: int64(info.Uptime.Seconds()),
		Users:         len(res.Owners),
		Load:          [3]float64{info.Load1, info.Load5, info.Load15},
		Running:       info.Running,
		Total:         info.Total,
		Terminals:     make([]jsonTerminal, 0, len(res.Terminals)),
		NoTTY:         make(map[string]int),
	}
	for _, t := range res.Terminals {
		cmds := t.Commands
		if cmds == nil {
			cmds = []string{}
		}
		report.Terminals = append(report.Terminals, jsonTerminal{
			TTY:        t.Name,
			User:       Username(t.UID),
			UID:        t.UID,
			Login:      t.Login,
			LastInput:  t.LastIn,
			LastOutput: t.LastOut,
			InputAge:   int64(now.Sub(t.LastIn).Seconds()),
			Commands:   cmds,
		})
	}
	for uid, n := range res.NoTTY {
		report.NoTTY[Username(uid)] = n
	}

	enc, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(enc), nil
}
