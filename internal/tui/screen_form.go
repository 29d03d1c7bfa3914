package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jzupan/go-card-wallet/models"
)

const defaultCardColor = "#018786"

const (
	formFieldLabel = iota
	formFieldNumber
	formFieldHolder
	formFieldColor
	formFieldCount
)

var formLabels = []string{"Label", "Number", "Holder name", "Color (empty = template match)"}

func (m *appModel) openForm(card *models.Card) {
	inputs := make([]textinput.Model, formFieldCount)
	inputs[formFieldLabel] = newInput("spar", false)
	inputs[formFieldNumber] = newInput("9001234567890", false)
	inputs[formFieldHolder] = newInput("Ana Novak", false)
	inputs[formFieldColor] = newInput(defaultCardColor, false)

	m.formCardID = ""
	m.formSymIdx = 0
	if card != nil {
		m.formCardID = card.ID
		inputs[formFieldLabel].SetValue(card.Label)
		inputs[formFieldNumber].SetValue(card.Number)
		inputs[formFieldHolder].SetValue(card.Name)
		inputs[formFieldColor].SetValue(card.Color)
		for i, sym := range symbologyOptions {
			if sym == card.Code {
				m.formSymIdx = i
			}
		}
	}

	m.formInputs = inputs
	m.formFocus = 0
	focusInput(m.formInputs, m.formFocus)
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.deps.Nav.Back()
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formFocus = (m.formFocus + 1) % len(m.formInputs)
			focusInput(m.formInputs, m.formFocus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formFocus = (m.formFocus + len(m.formInputs) - 1) % len(m.formInputs)
			focusInput(m.formInputs, m.formFocus)
			return m, nil
		case key.Matches(keyMsg, keys.left):
			m.formSymIdx = (m.formSymIdx + len(symbologyOptions) - 1) % len(symbologyOptions)
			return m, nil
		case key.Matches(keyMsg, keys.right):
			m.formSymIdx = (m.formSymIdx + 1) % len(symbologyOptions)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m.submitForm()
		}
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	number := strings.TrimSpace(m.formInputs[formFieldNumber].Value())
	if number == "" {
		m.errMsg = "card number is required"
		return m, nil
	}

	label := strings.TrimSpace(m.formInputs[formFieldLabel].Value())
	color := strings.TrimSpace(m.formInputs[formFieldColor].Value())
	if color == "" {
		if tpl, ok := models.MatchTemplate(label); ok {
			color = tpl.Color
		} else {
			color = defaultCardColor
		}
	}

	card := models.Card{
		ID:     m.formCardID,
		Number: number,
		Name:   strings.TrimSpace(m.formInputs[formFieldHolder].Value()),
		Label:  label,
		Code:   symbologyOptions[m.formSymIdx],
		Color:  color,
	}
	if card.ID == "" {
		card.ID = m.deps.IDs.Generate()
	} else {
		// Keep the current image path until the worker replaces it.
		for _, existing := range m.snapshot.Cards {
			if existing.ID == card.ID {
				card.Picture = existing.Picture
			}
		}
	}

	m.busy = true
	m.errMsg = ""
	return m, m.cmdSaveCard(card)
}

func (m appModel) viewForm() string {
	title := "New card"
	if m.formCardID != "" {
		title = "Edit card"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(renderInputs(formLabels, m.formInputs))
	b.WriteString("Barcode type: < " + symbologyOptions[m.formSymIdx].String() + " >\n\n")
	b.WriteString(helpStyle.Render("tab next field  left/right barcode type  enter save  esc cancel"))
	return b.String()
}
