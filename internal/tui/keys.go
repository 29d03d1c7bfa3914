package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	newCard   key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	check     key.Binding
	regen     key.Binding
	resend    key.Binding
	templates key.Binding
	account   key.Binding
	settings  key.Binding
	push      key.Binding
	pull      key.Binding
	verify    key.Binding
	logout    key.Binding
	wipe      key.Binding
	yes       key.Binding
	no        key.Binding
}

// left/right and tab/backtab stay letter-free on purpose: they are matched
// while a text input is focused, so any letter key must reach the input.
var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	newCard:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	check:     key.NewBinding(key.WithKeys("c")),
	regen:     key.NewBinding(key.WithKeys("r")),
	resend:    key.NewBinding(key.WithKeys("r")),
	templates: key.NewBinding(key.WithKeys("t")),
	account:   key.NewBinding(key.WithKeys("a")),
	settings:  key.NewBinding(key.WithKeys("s")),
	push:      key.NewBinding(key.WithKeys("p")),
	pull:      key.NewBinding(key.WithKeys("u")),
	verify:    key.NewBinding(key.WithKeys("v")),
	logout:    key.NewBinding(key.WithKeys("l")),
	wipe:      key.NewBinding(key.WithKeys("x")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
