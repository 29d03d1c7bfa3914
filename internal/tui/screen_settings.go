package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var settingsActions = []string{"Export collection to file", "Merge cards from file", "Replace collection from file"}

func (m *appModel) openSettings() {
	m.settingsInput = newInput("cards.json", false)
	m.settingsInput.Focus()
	m.settingsActionIdx = 0
}

func (m appModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.deps.Nav.Back()
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.settingsActionIdx = (m.settingsActionIdx + 1) % len(settingsActions)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.settingsActionIdx = (m.settingsActionIdx + len(settingsActions) - 1) % len(settingsActions)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			path := strings.TrimSpace(m.settingsInput.Value())
			if path == "" {
				m.errMsg = "file path is required"
				return m, nil
			}
			m.errMsg = ""
			switch m.settingsActionIdx {
			case 0:
				m.deps.Sync.ExportToFile(m.ctx, path)
			case 1:
				m.deps.Sync.MergeFromFile(m.ctx, path)
			case 2:
				m.deps.Sync.OverwriteFromFile(m.ctx, path)
			}
			m.status = "running in the background..."
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.settingsInput, cmd = m.settingsInput.Update(msg)
	return m, cmd
}

func (m appModel) viewSettings() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString("File path\n")
	b.WriteString(m.settingsInput.View())
	b.WriteString("\n\n")

	for i, action := range settingsActions {
		line := action
		if i == m.settingsActionIdx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab choose action  enter run  esc back"))
	return b.String()
}
