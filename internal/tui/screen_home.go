package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jzupan/go-card-wallet/internal/nav"
	"github.com/jzupan/go-card-wallet/models"
)

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmDelete {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.confirmDelete = false
			card, ok := m.currentCard()
			if !ok {
				return m, nil
			}
			if err := m.deps.Nav.DeleteCard(m.ctx, &card); err != nil {
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
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.snapshot.Cards)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if card, ok := m.currentCard(); ok {
			m.deps.Nav.NavigateTo(nav.ScreenCardDetail, false, &card)
		}
	case key.Matches(keyMsg, keys.newCard):
		m.openForm(nil)
		m.deps.Nav.NavigateTo(nav.ScreenAddCard, false, nil)
	case key.Matches(keyMsg, keys.edit):
		if card, ok := m.currentCard(); ok {
			m.openForm(&card)
			m.deps.Nav.NavigateTo(nav.ScreenAddCard, true, &card)
		}
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.currentCard(); ok {
			m.confirmDelete = true
		}
	case key.Matches(keyMsg, keys.templates):
		m.templateIdx = 0
		m.deps.Nav.NavigateTo(nav.ScreenTemplates, false, nil)
	case key.Matches(keyMsg, keys.account):
		m.resetAccountState()
		m.deps.Nav.NavigateTo(nav.ScreenAccount, false, nil)
	case key.Matches(keyMsg, keys.settings):
		m.openSettings()
		m.deps.Nav.NavigateTo(nav.ScreenSettings, false, nil)
	}
	return m, nil
}

func (m appModel) viewHome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Cards"))
	b.WriteString("\n\n")

	if len(m.snapshot.Cards) == 0 {
		b.WriteString("No cards yet. Press n to add the first one.\n")
	}

	for i, card := range m.snapshot.Cards {
		line := cardListLine(card)
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.confirmDelete {
		if card, ok := m.currentCard(); ok {
			b.WriteString("\n")
			b.WriteString(overlayBoxStyle.Render(fmt.Sprintf("Delete %q?\n\ny yes    n no", card.Label)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter open  n new  e edit  d delete  t templates  a account  s settings  q quit"))
	return b.String()
}

func cardListLine(card models.Card) string {
	label := card.Label
	if label == "" {
		label = "(no label)"
	}
	marker := " "
	if card.Picture == "" {
		marker = "*"
	}
	return fmt.Sprintf("%s %s  %s", marker, cardLabelStyle(card.Color).Render(label), helpStyle.Render(card.Number))
}
