package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/jdearmas/stopwatch/config"
	"github.com/jdearmas/stopwatch/tui"
)

func main() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "stopwatch: stdout is not a terminal")
		os.Exit(1)
	}

	cfg := config.Load()
	if len(os.Args) > 1 {
		cfg.LogPath = os.Args[1]
	}

	m := tui.NewModel(cfg, time.Now)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
