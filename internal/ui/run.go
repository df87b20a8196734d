package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/traces-dev/traces-tui/internal/coach"
	"github.com/traces-dev/traces-tui/internal/store"
	"github.com/traces-dev/traces-tui/internal/text"
	"github.com/traces-dev/traces-tui/internal/util"
)

// Run boots the TUI program and blocks until it exits.
func Run(ctx context.Context, db *store.DB, scribe text.Scribe, lifeCoach *coach.Coach, cfg util.Config) error {
	m := initialModel(ctx, db, scribe, lifeCoach, cfg)
	program := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
