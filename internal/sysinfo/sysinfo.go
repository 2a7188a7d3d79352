package sysinfo

import (
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
)

// Info is the host-wide summary for the report's first line.
type Info struct {
	Uptime  time.Duration
	Load1   float64
	Load5   float64
	Load15  float64
	Running int
	Total   int
}

// Collect reads uptime and load figures. Unlike per-item scan failures
// these come from files the kernel always provides, so any error here
// is a broken environment and propagates to the caller.
func Collect() (Info, error) {
	up, err := host.Uptime()
	if err != nil {
		return Info{}, err
	}
	avg, err := load.Avg()
	if err != nil {
		return Info{}, err
	}
	misc, err := load.Misc()
	if err != nil {
		return Info{}, err
	}
	return Info{
		Uptime:  time.Duration(up) * time.Second,
		Load1:   avg.Load1,
		Load5:   avg.Load5,
		Load15:  avg.Load15,
		Running: misc.ProcsRunning,
		Total:   misc.ProcsTotal,
	}, nil
}
