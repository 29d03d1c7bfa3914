package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jzupan/go-card-wallet/internal/nav"
)

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	card := m.deps.Nav.Current().Card
	if card == nil {
		m.deps.Nav.Back()
		return m, nil
	}

	if m.confirmDelete {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.confirmDelete = false
			if err := m.deps.Nav.DeleteCard(m.ctx, card); err != nil {
				m.errMsg = "deleting card failed: " + err.Error()
				return m, nil
			}
			m.status = "card deleted"
			return m, clearStatusAfter()
		case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
			m.confirmDelete = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.deps.Nav.Back()
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(card.Number)
	case key.Matches(keyMsg, keys.edit):
		m.openForm(card)
		m.deps.Nav.NavigateTo(nav.ScreenAddCard, true, card)
	case key.Matches(keyMsg, keys.delete):
		m.confirmDelete = true
	case key.Matches(keyMsg, keys.regen):
		m.deps.Sync.RegenerateImage(*card)
		m.status = "regenerating barcode image"
		return m, clearStatusAfter()
	}
	return m, nil
}

func (m appModel) viewDetail() string {
	card := m.deps.Nav.Current().Card
	if card == nil {
		return "no card selected"
	}

	// Always render from the latest snapshot so worker updates show up.
	for _, c := range m.snapshot.Cards {
		if c.ID == card.ID {
			card = &c
			break
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(cardLabelStyle(card.Color).Render(card.Label)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Number:    %s\n", card.Number))
	b.WriteString(fmt.Sprintf("Holder:    %s\n", card.Name))
	b.WriteString(fmt.Sprintf("Barcode:   %s\n", card.Code))
	if card.Picture != "" {
		b.WriteString(fmt.Sprintf("Image:     %s\n", card.Picture))
	} else {
		b.WriteString("Image:     generating...\n")
	}

	if m.confirmDelete {
		b.WriteString("\n")
		b.WriteString(overlayBoxStyle.Render(fmt.Sprintf("Delete %q?\n\ny yes    n no", card.Label)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("c copy number  e edit  d delete  r regenerate image  esc back"))
	return b.String()
}
