package tui

// button is a clickable label. Pressing it runs onPress.
type button struct {
	label   string
	onPress func()
}

func (b button) press() {
	if b.onPress != nil {
		b.onPress()
	}
}

func (b button) view(focused bool) string {
	if focused {
		return buttonFocusStyle.Render(b.label)
	}
	return buttonStyle.Render(b.label)
}
