package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jzupan/go-card-wallet/internal/nav"
	"github.com/jzupan/go-card-wallet/models"
)

func (m appModel) updateTemplates(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.deps.Nav.Back()
	case key.Matches(keyMsg, keys.up):
		if m.templateIdx > 0 {
			m.templateIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.templateIdx < len(models.Templates)-1 {
			m.templateIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		tpl := models.Templates[m.templateIdx]
		m.openForm(nil)
		m.formInputs[formFieldLabel].SetValue(tpl.Label)
		m.formInputs[formFieldColor].SetValue(tpl.Color)
		m.deps.Nav.NavigateTo(nav.ScreenAddCard, false, nil)
	}
	return m, nil
}

func (m appModel) viewTemplates() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Templates"))
	b.WriteString("\n\n")

	for i, tpl := range models.Templates {
		line := cardLabelStyle(tpl.Color).Render(tpl.Label)
		if i == m.templateIdx {
			line = selectedStyle.Render(tpl.Label)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter new card from template  esc back"))
	return b.String()
}
