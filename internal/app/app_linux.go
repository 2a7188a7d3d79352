//go:build linux

package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ttywho/ttywho/internal/output"
	"github.com/ttywho/ttywho/internal/snapshot"
	"github.com/ttywho/ttywho/internal/sysinfo"
	"github.com/ttywho/ttywho/internal/term"
	"github.com/ttywho/ttywho/internal/tui"
)

var (
	flagJSON    bool
	flagNoColor bool
	flagWatch   bool
	flagWidth   int
)

var rootCmd = &cobra.Command{
	Use:   "ttywho",
	Short: "Report who is on which terminal and what they are running",
	Long: `ttywho reports every terminal device on the host: who owns it, when it
was last used, and the command currently in its foreground. Sessions
that have detached from utmp (tmux and screen panes, for example) are
still found, because attribution works from /proc and /dev alone.
Processes with no controlling terminal are tallied per user.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colors")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "interactive TUI mode with live refresh")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "report width (0 = detect from terminal)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	if flagWatch {
		return tui.Start()
	}

	res, err := snapshot.Collect()
	if err != nil {
		return err
	}
	info, err := sysinfo.Collect()
	if err != nil {
		return err
	}

	if flagJSON {
		s, err := output.ToJSON(res, info, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	}

	width := flagWidth
	if width <= 0 {
		width, _ = term.Size()
	}
	r := output.NewRenderer(cmd.OutOrStdout(), width, !flagNoColor)
	r.Render(res, info)
	return nil
}
