package term

import (
	"os"
	"strconv"

	xterm "github.com/charmbracelet/x/term"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Size returns the reporting width and height. It tries the terminal on
// stdout first, then the COLUMNS/LINES environment, then the classic
// 80x24 fallback.
func Size() (width, height int) {
	if w, h, err := xterm.GetSize(os.Stdout.Fd()); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return fromEnv("COLUMNS", defaultWidth), fromEnv("LINES", defaultHeight)
}

func fromEnv(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
