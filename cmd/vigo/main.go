package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtudor/vigo/tui"
)

func main() {
	model := tui.New(80, 24)

	if len(os.Args) > 1 {
		if err := model.OpenFile(os.Args[1]); err != nil {
			fmt.Fprintln(os.Stderr, "vigo:", err)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "vigo:", err)
		os.Exit(1)
	}
}
