package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/classpulse/classpulse/internal/api"
	"github.com/classpulse/classpulse/internal/dashboard"
)

// dashboardCommand starts the TUI dashboard for a role. Flag values of
// zero fall back to the configured per-view defaults.
func dashboardCommand(role dashboard.Role, intervalFlag string, trendFlag int) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Output.Color == "never" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	view := cfg.Student
	if role == dashboard.RoleInstructor {
		view = cfg.Instructor
	}

	interval, err := parseInterval(intervalFlag, view.Interval)
	if err != nil {
		return err
	}

	trendSize := view.TrendSize
	if trendFlag > 0 {
		trendSize = trendFlag
	}

	client := api.NewClient(cfg.BaseURL)
	model := dashboard.NewModel(client, role, interval, trendSize)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
