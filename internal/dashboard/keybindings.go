package dashboard

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit       = "q"
	KeyQuitAlt    = "ctrl+c"
	KeyRefresh    = "r"
	KeyToggleHelp = "?"
	KeyCloseHelp  = "esc"
)

// HandleKeyMsg processes keyboard input and returns updated model state
// and command. Returns true if the key was handled.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	if m.showHelp && key == KeyCloseHelp {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		m.Stop()
		return true, tea.Quit

	case KeyRefresh:
		if m.fetching {
			return true, nil
		}
		return true, m.fetchCmd()
	}

	return false, nil
}
