package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	create    key.Binding
	buildInfo key.Binding
	newNote   key.Binding
	refresh   key.Binding
	delete    key.Binding
	save      key.Binding
	copy      key.Binding
	remove    key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	create:    key.NewBinding(key.WithKeys("ctrl+n")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+b")),
	newNote:   key.NewBinding(key.WithKeys("n")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	delete:    key.NewBinding(key.WithKeys("d")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	remove:    key.NewBinding(key.WithKeys("ctrl+d")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
