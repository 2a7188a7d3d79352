package output

import (
	"fmt"
	"io"
	"os/user"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/ttywho/ttywho/internal/snapshot"
	"github.com/ttywho/ttywho/internal/sysinfo"
	"github.com/ttywho/ttywho/pkg/model"
)

// Column widths. WHAT takes whatever is left of the line.
const (
	colUser = 10
	colTTY  = 8
	colAge  = 7
)

// Renderer writes the fixed-width session report.
type Renderer struct {
	Out   io.Writer
	Width int
	Color bool
	Now   time.Time // report reference time; zero means time.Now()

	// Lookup resolves a uid to a display name. Overridable in tests.
	Lookup func(uid uint32) string
}

func NewRenderer(out io.Writer, width int, color bool) *Renderer {
	return &Renderer{Out: out, Width: width, Color: color, Lookup: Username}
}

// Render emits the uptime line, the column header, one row per
// attributed command (a terminal with no foreground leader still gets a
// row with an empty WHAT), and a summary row for every tallied owner
// that is visible through at least one terminal above.
func (r *Renderer) Render(res snapshot.Result, info sysinfo.Info) {
	now := r.Now
	if now.IsZero() {
		now = time.Now()
	}
	picker := newColorPicker()

	r.line(fmt.Sprintf("up %s, %d users, load %.2f %.2f %.2f, %d/%d running",
		FormatDuration(info.Uptime), len(res.Owners),
		info.Load1, info.Load5, info.Load15, info.Running, info.Total))
	r.renderHeader()

	for _, t := range res.Terminals {
		r.renderTerminal(t, now, picker.styleFor(t.UID))
	}

	// Owners with detached processes but no terminal entry at all are
	// invisible here: this is a report of terminal activity, not a
	// process census.
	reported := make(map[uint32]bool)
	for _, t := range res.Terminals {
		if reported[t.UID] {
			continue
		}
		reported[t.UID] = true
		n := res.NoTTY[t.UID]
		if n == 0 {
			continue
		}
		row := fmt.Sprintf("%s %d detached, no tty", pad(r.Lookup(t.UID), colUser), n)
		if r.Color {
			row = picker.styleFor(t.UID).Render(row)
		}
		r.line(row)
	}
}

func (r *Renderer) renderHeader() {
	cells := []string{
		pad("USER", colUser),
		pad("TTY", colTTY),
		pad("LOGIN", colAge),
		pad("INPUT", colAge),
		pad("OUTPUT", colAge),
		"WHAT",
	}
	if r.Color {
		cells[3] = headerUnderline.Render(cells[3])
	}
	r.line(strings.Join(cells, " "))
}

func (r *Renderer) renderTerminal(t *model.Terminal, now time.Time, style lipgloss.Style) {
	cmds := t.Commands
	if len(cmds) == 0 {
		cmds = []string{""}
	}
	for _, cmd := range cmds {
		row := fmt.Sprintf("%s %s %s %s %s %s",
			pad(r.Lookup(t.UID), colUser),
			pad(t.Name, colTTY),
			pad(FormatDuration(now.Sub(t.Login)), colAge),
			pad(FormatDuration(now.Sub(t.LastIn)), colAge),
			pad(FormatDuration(now.Sub(t.LastOut)), colAge),
			cmd)
		if r.Color {
			row = style.Render(row)
		}
		r.line(row)
	}
}

// line truncates to the reporting width (ANSI-aware, colored rows carry
// escape sequences) and writes with a trailing newline.
func (r *Renderer) line(s string) {
	if r.Width > 0 {
		s = truncate.String(s, uint(r.Width))
	}
	fmt.Fprintln(r.Out, s)
}

// pad truncates then right-pads a cell to a fixed display width.
func pad(s string, w int) string {
	s = truncate.String(s, uint(w))
	if n := w - lipgloss.Width(s); n > 0 {
		s += strings.Repeat(" ", n)
	}
	return s
}

// Username resolves a uid for display, falling back to the numeric id
// when the uid has no passwd entry.
func Username(uid uint32) string {
	u, err := user.LookupId(strconv.Itoa(int(uid)))
	if err != nil {
		return strconv.Itoa(int(uid))
	}
	return u.Username
}
