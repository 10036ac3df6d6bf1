package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/splitbill/internal/ledger"
)

type focusArea int

const (
	focusList focusArea = iota
	focusAdd
	focusSplit
	focusFinder
)

// Options configure an App.
type Options struct {
	Currency      string
	AvatarBaseURL string
	NewID         func() string
	Logger        *slog.Logger
}

// App is the root tea.Model. It owns the session and routes key presses to
// the list or to whichever form has focus.
type App struct {
	ctx      context.Context
	session  *ledger.Session
	log      *slog.Logger
	keys     keyMap
	currency string

	addForm   *addFriendForm
	splitForm *splitBillForm
	finder    *finder
	addToggle button

	focus  focusArea
	cursor int
	status string
	width  int
	height int
}

func New(ctx context.Context, session *ledger.Session, opts Options) *App {
	if opts.Currency == "" {
		opts.Currency = "$"
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	a := &App{
		ctx:      ctx,
		session:  session,
		log:      opts.Logger,
		keys:     defaultKeys(),
		currency: opts.Currency,
		addForm:  newAddFriendForm(ledger.NewAddFriendForm(opts.AvatarBaseURL, opts.NewID)),
		width:    100,
	}
	a.addToggle = button{onPress: a.toggleAddForm}
	return a
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case tea.KeyMsg:
		if key.Matches(m, a.keys.ForceQ) {
			return a, tea.Quit
		}
		switch a.focus {
		case focusAdd:
			return a, a.handleAddKey(m)
		case focusSplit:
			return a, a.handleSplitKey(m)
		case focusFinder:
			return a, a.handleFinderKey(m)
		default:
			return a.handleListKey(m)
		}
	}
	return a, nil
}

func (a *App) handleListKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	friends := a.session.Friends()
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < len(friends)-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Select):
		if len(friends) > 0 {
			a.selectFriend(friends[a.cursor].ID)
		}
	case key.Matches(m, a.keys.AddForm):
		a.addToggle.press()
	case key.Matches(m, a.keys.Find):
		a.finder = newFinder()
		a.setFocus(focusFinder)
	case key.Matches(m, a.keys.Focus):
		if a.splitForm != nil {
			a.setFocus(focusSplit)
		} else if a.session.AddFormVisible() {
			a.setFocus(focusAdd)
		}
	}
	return a, nil
}

func (a *App) handleAddKey(m tea.KeyMsg) tea.Cmd {
	f := a.addForm
	switch {
	case key.Matches(m, a.keys.Back):
		a.setFocus(focusList)
	case key.Matches(m, a.keys.Next):
		f.setFocus(f.focus + 1)
	case key.Matches(m, a.keys.Prev):
		f.setFocus(f.focus - 1)
	case key.Matches(m, a.keys.Submit):
		friend, ok := f.trySubmit()
		if !ok {
			return nil
		}
		if err := a.session.AddFriend(a.ctx, friend); err != nil {
			f.restore()
			a.fail("add friend", err)
			return nil
		}
		f.reset()
		a.status = ""
		a.cursor = len(a.session.Friends()) - 1
		a.syncForms()
	default:
		return f.update(m)
	}
	return nil
}

func (a *App) handleSplitKey(m tea.KeyMsg) tea.Cmd {
	f := a.splitForm
	switch {
	case key.Matches(m, a.keys.Back):
		a.setFocus(focusList)
	case key.Matches(m, a.keys.Next):
		f.setFocus(f.focus + 1)
	case key.Matches(m, a.keys.Prev):
		f.setFocus(f.focus - 1)
	case f.focus == splitFieldPayer && key.Matches(m, a.keys.Toggle):
		f.form.TogglePayer()
	case key.Matches(m, a.keys.Submit):
		delta, ok := f.form.Submit()
		if !ok {
			return nil
		}
		if err := a.session.ApplySplit(a.ctx, delta); err != nil {
			a.fail("split bill", err)
			return nil
		}
		a.status = ""
		a.syncForms()
	default:
		return f.update(m)
	}
	return nil
}

func (a *App) handleFinderKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(m, a.keys.Back):
		a.finder = nil
		a.setFocus(focusList)
	case key.Matches(m, a.keys.Submit):
		friend, ok := a.finder.best(a.session.Friends())
		a.finder = nil
		a.setFocus(focusList)
		if !ok {
			return nil
		}
		a.moveCursorTo(friend.ID)
		if !a.session.IsSelected(friend.ID) {
			a.selectFriend(friend.ID)
		}
	default:
		return a.finder.update(m)
	}
	return nil
}

func (a *App) toggleAddForm() {
	a.session.ToggleAddForm()
	if a.session.AddFormVisible() {
		a.addForm.reset()
	}
	a.syncForms()
	if a.session.AddFormVisible() {
		a.setFocus(focusAdd)
	}
}

func (a *App) selectFriend(id string) {
	if err := a.session.SelectFriend(id); err != nil {
		a.fail("select friend", err)
		return
	}
	a.status = ""
	a.splitForm = nil
	a.syncForms()
	if a.splitForm != nil {
		a.setFocus(focusSplit)
	}
}

// syncForms drops form models whose session flag went away, creates the split
// form for a new selection, and sends focus back to the list when its form closed.
func (a *App) syncForms() {
	if _, ok := a.session.Selected(); ok {
		if a.splitForm == nil {
			a.splitForm = newSplitBillForm()
		}
	} else {
		a.splitForm = nil
	}
	if (a.focus == focusSplit && a.splitForm == nil) || (a.focus == focusAdd && !a.session.AddFormVisible()) {
		a.setFocus(focusList)
	}
}

func (a *App) setFocus(f focusArea) {
	a.focus = f
	a.addForm.blur()
	if a.splitForm != nil {
		a.splitForm.blur()
	}
	switch f {
	case focusAdd:
		a.addForm.setFocus(a.addForm.focus)
	case focusSplit:
		a.splitForm.setFocus(a.splitForm.focus)
	}
}

func (a *App) moveCursorTo(id string) {
	for i, f := range a.session.Friends() {
		if f.ID == id {
			a.cursor = i
			return
		}
	}
}

func (a *App) fail(op string, err error) {
	if errors.Is(err, ledger.ErrNoSelection) {
		return
	}
	a.log.Warn(op+" failed", "err", err)
	a.status = "error: " + err.Error()
}

func (a *App) View() string {
	sideWidth := min(max(a.width/2, 36), 56)

	var side []string
	side = append(side, titleStyle.Render("Friends"), "")
	side = append(side, a.renderFriendsList(sideWidth-4, a.focus == focusList))
	if a.session.AddFormVisible() {
		side = append(side, "", a.addForm.view(a.focus == focusAdd))
	}
	toggle := a.addToggle
	toggle.label = "Add friend"
	if a.session.AddFormVisible() {
		toggle.label = "Close"
	}
	side = append(side, "", toggle.view(false))
	sidebar := a.pane(a.focus == focusList || a.focus == focusAdd).Width(sideWidth).Render(strings.Join(side, "\n"))

	body := sidebar
	if friend, ok := a.session.Selected(); ok && a.splitForm != nil {
		panel := a.pane(a.focus == focusSplit).Render(a.splitForm.view(friend, a.focus == focusSplit))
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", panel)
	}

	out := []string{body}
	if a.finder != nil {
		out = append(out, a.pane(true).Render(a.finder.view(a.session.Friends())))
	}
	if a.status != "" {
		out = append(out, statusStyle.Render(a.status))
	}
	out = append(out, a.footer())
	return strings.Join(out, "\n")
}

func (a *App) pane(focused bool) lipgloss.Style {
	if focused {
		return focusPane
	}
	return paneStyle
}

func (a *App) footer() string {
	switch a.focus {
	case focusAdd:
		return helpLine(a.keys.formHelp())
	case focusSplit:
		return helpLine(a.keys.splitHelp())
	case focusFinder:
		return helpLine([]key.Binding{a.keys.Submit, a.keys.Back})
	default:
		return helpLine(a.keys.listHelp())
	}
}
