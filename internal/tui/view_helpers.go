package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func newInput(placeholder string, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 128
	if secret {
		in.EchoMode = textinput.EchoPassword
	}
	return in
}

func focusInput(inputs []textinput.Model, focus int) {
	for i := range inputs {
		if i == focus {
			inputs[i].Focus()
		} else {
			inputs[i].Blur()
		}
	}
}

func renderInputs(labels []string, inputs []textinput.Model) string {
	var b strings.Builder
	for i, in := range inputs {
		b.WriteString(labels[i])
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m appModel) footer() string {
	out := "\n"
	if m.busy {
		out += helpStyle.Render("working...") + "\n"
	}
	if m.status != "" {
		out += statusStyle.Render(m.status) + "\n"
	}
	if m.errMsg != "" {
		out += errorStyle.Render(m.errMsg) + "\n"
	}
	return out
}
