package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	copy     key.Binding
	info     key.Binding
	decrease key.Binding
	increase key.Binding
}

var keys = keyMap{
	left:     key.NewBinding(key.WithKeys("left", "h")),
	right:    key.NewBinding(key.WithKeys("right", "l")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	copy:     key.NewBinding(key.WithKeys("ctrl+y")),
	info:     key.NewBinding(key.WithKeys("v")),
	decrease: key.NewBinding(key.WithKeys("-")),
	increase: key.NewBinding(key.WithKeys("+", "=")),
}
