package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkuznetsova/habitadm/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	// A stale or missing token is fine here, the dashboard falls back to
	// the login form.
	ctx.Session.Restore(context.Background())

	p := tea.NewProgram(tui.NewModel(ctx.Client, ctx.Session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
