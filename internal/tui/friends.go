package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/splitbill/internal/ledger"
)

// renderFriendsList draws every friend in collection order. cursor marks the
// row the list keys act on; it is ignored when the list is not focused.
func (a *App) renderFriendsList(width int, focused bool) string {
	friends := a.session.Friends()
	if len(friends) == 0 {
		return dimStyle.Render("No friends yet")
	}
	rows := make([]string, 0, len(friends))
	for i, f := range friends {
		rows = append(rows, a.renderFriend(f, width, focused && i == a.cursor))
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderFriend(f ledger.Friend, width int, atCursor bool) string {
	selected := a.session.IsSelected(f.ID)

	marker := "  "
	if atCursor {
		marker = cursorStyle.Render("▸ ")
	}
	btn := button{label: "Select"}
	if selected {
		btn.label = "Close"
	}

	var status string
	switch f.Status() {
	case ledger.StatusOwe:
		status = oweStyle.Render(f.StatusText(a.currency))
	case ledger.StatusOwed:
		status = owedStyle.Render(f.StatusText(a.currency))
	default:
		status = f.StatusText(a.currency)
	}

	inner := max(width-4, 10)
	lines := []string{
		marker + nameStyle.Render(f.Name) + "  " + btn.view(atCursor),
		"  " + dimStyle.Render(ansi.Truncate(f.AvatarURL, inner-2, "…")),
		"  " + status,
	}
	style := rowStyle
	if selected {
		style = selectedStyle
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}
