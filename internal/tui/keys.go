package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	AddForm key.Binding
	Find    key.Binding
	Focus   key.Binding
	Next    key.Binding
	Prev    key.Binding
	Toggle  key.Binding
	Submit  key.Binding
	Back    key.Binding
	Quit    key.Binding
	ForceQ  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:  key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "select/close")),
		AddForm: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add friend")),
		Find:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find")),
		Focus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus form")),
		Next:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Toggle:  key.NewBinding(key.WithKeys("left", "right", " ", "space"), key.WithHelp("←/→", "who pays")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to list")),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQ:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.AddForm, k.Find, k.Focus, k.Quit}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Back}
}

func (k keyMap) splitHelp() []key.Binding {
	return []key.Binding{k.Next, k.Toggle, k.Submit, k.Back}
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return dimStyle.Render(strings.Join(parts, "  "))
}
