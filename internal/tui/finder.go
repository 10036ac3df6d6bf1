package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/splitbill/internal/ledger"
)

const finderLimit = 5

// finder jumps to a friend by name.
type finder struct {
	input textinput.Model
}

func newFinder() *finder {
	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = "friend name"
	in.Focus()
	return &finder{input: in}
}

func (f *finder) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// best returns the top match for the current query, if any.
func (f *finder) best(friends []ledger.Friend) (ledger.Friend, bool) {
	if strings.TrimSpace(f.input.Value()) == "" {
		return ledger.Friend{}, false
	}
	ranked := ledger.Rank(f.input.Value(), friends)
	if len(ranked) == 0 {
		return ledger.Friend{}, false
	}
	return ranked[0].Friend, true
}

func (f *finder) view(friends []ledger.Friend) string {
	lines := []string{f.input.View()}
	if strings.TrimSpace(f.input.Value()) != "" {
		for i, m := range ledger.Rank(f.input.Value(), friends) {
			if i == finderLimit {
				break
			}
			line := "  " + m.Friend.Name
			if i == 0 {
				line = cursorStyle.Render("▸ " + m.Friend.Name)
			}
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
