package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/splitbill/internal/ledger"
	"github.com/jask/splitbill/internal/logging"
)

func newTestApp(t *testing.T) (*App, *ledger.Session) {
	t.Helper()
	ctx := context.Background()
	store := ledger.NewMemoryStore(
		ledger.Friend{ID: "118836", Name: "Clark", AvatarURL: "https://i.pravatar.cc/48?u=118836", Balance: -7},
		ledger.Friend{ID: "933372", Name: "Sarah", AvatarURL: "https://i.pravatar.cc/48?u=933372", Balance: 20},
		ledger.Friend{ID: "499476", Name: "Anthony", AvatarURL: "https://i.pravatar.cc/48?u=499476", Balance: 0},
	)
	session, err := ledger.NewSession(ctx, store, logging.Discard())
	require.NoError(t, err)
	n := 0
	app := New(ctx, session, Options{
		NewID:  func() string { n++; return fmt.Sprintf("id-%d", n) },
		Logger: logging.Discard(),
	})
	return app, session
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"esc":       tea.KeyEsc,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
}

func press(a *App, keys ...string) {
	for _, k := range keys {
		if kt, ok := namedKeys[k]; ok {
			a.Update(tea.KeyMsg{Type: kt})
			continue
		}
		a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}
}

func typeText(a *App, s string) {
	for _, r := range s {
		a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func balance(t *testing.T, s *ledger.Session, id string) float64 {
	t.Helper()
	f, ok := s.Friend(id)
	require.True(t, ok)
	return f.Balance
}

func TestSplitBillWithClarkEndToEnd(t *testing.T) {
	app, session := newTestApp(t)

	press(app, "enter")
	require.True(t, session.IsSelected("118836"))
	require.Equal(t, focusSplit, app.focus)
	require.Contains(t, app.View(), "Split a bill with Clark")

	typeText(app, "20")
	press(app, "tab")
	typeText(app, "10")
	require.Contains(t, app.View(), "Clark's expense")

	press(app, "enter")
	require.Equal(t, 3.0, balance(t, session, "118836"))
	_, selected := session.Selected()
	require.False(t, selected)
	require.Equal(t, focusList, app.focus)
	require.Nil(t, app.splitForm)

	view := app.View()
	require.Contains(t, view, "Clark owes you 3 $")
	require.NotContains(t, view, "Split a bill with")
}

func TestSplitBillFriendPays(t *testing.T) {
	app, session := newTestApp(t)

	press(app, "enter")
	typeText(app, "100")
	press(app, "tab")
	typeText(app, "30")
	press(app, "tab", "right", "enter")

	require.Equal(t, -37.0, balance(t, session, "118836"))
}

func TestSplitBillExpenseClamp(t *testing.T) {
	app, session := newTestApp(t)

	press(app, "down", "enter")
	require.True(t, session.IsSelected("933372"))
	typeText(app, "50")
	press(app, "tab")
	typeText(app, "80")

	require.Equal(t, "8", app.splitForm.expense.Value())
	require.Equal(t, 8.0, app.splitForm.form.PaidByUser().Value)
}

func TestSplitBillIncompleteIsNoOp(t *testing.T) {
	app, session := newTestApp(t)

	press(app, "enter")
	typeText(app, "40")
	press(app, "enter")

	require.True(t, session.IsSelected("118836"))
	require.Equal(t, -7.0, balance(t, session, "118836"))
	require.Empty(t, app.status)
}

func TestSelectButtonLabels(t *testing.T) {
	app, _ := newTestApp(t)
	require.NotContains(t, app.View(), "Close")

	press(app, "enter")
	require.Contains(t, app.View(), "Close")

	press(app, "esc", "enter")
	require.NotContains(t, app.View(), "Close")
	require.Nil(t, app.splitForm)
}

func TestAddFriendFlow(t *testing.T) {
	app, session := newTestApp(t)

	press(app, "a")
	require.True(t, session.AddFormVisible())
	require.Equal(t, focusAdd, app.focus)
	require.Contains(t, app.View(), "Image URL")

	typeText(app, "Dee")
	press(app, "enter")

	friends := session.Friends()
	require.Len(t, friends, 4)
	require.Equal(t, ledger.Friend{ID: "id-1", Name: "Dee", AvatarURL: "https://i.pravatar.cc/48?=id-1"}, friends[3])
	require.False(t, session.AddFormVisible())
	require.Equal(t, focusList, app.focus)
	require.Equal(t, 3, app.cursor)
	require.Contains(t, app.View(), "You and Dee are even")
}

func TestAddFriendEmptyNameIsNoOp(t *testing.T) {
	app, session := newTestApp(t)

	press(app, "a", "enter")

	require.Len(t, session.Friends(), 3)
	require.True(t, session.AddFormVisible())
	require.Equal(t, focusAdd, app.focus)
}

func TestAddFriendToggleClose(t *testing.T) {
	app, session := newTestApp(t)

	press(app, "a")
	typeText(app, "Half typed")
	press(app, "esc", "a")
	require.False(t, session.AddFormVisible())

	press(app, "a")
	require.Empty(t, app.addForm.name.Value(), "reopened form starts empty")
	require.Equal(t, ledger.DefaultAvatarBaseURL, app.addForm.avatar.Value())
}

func TestOpeningAddFormClearsSelection(t *testing.T) {
	app, session := newTestApp(t)

	press(app, "enter", "esc", "a")

	_, selected := session.Selected()
	require.False(t, selected)
	require.Nil(t, app.splitForm)
	require.True(t, session.AddFormVisible())
}

func TestSelectingClosesAddForm(t *testing.T) {
	app, session := newTestApp(t)

	press(app, "a", "esc", "down", "enter")

	require.False(t, session.AddFormVisible())
	require.True(t, session.IsSelected("933372"))
}

func TestAddFriendDuplicateIDShowsStatus(t *testing.T) {
	app, session := newTestApp(t)
	app.addForm = newAddFriendForm(ledger.NewAddFriendForm("", func() string { return "118836" }))

	press(app, "a")
	typeText(app, "Clone")
	press(app, "enter")

	require.Len(t, session.Friends(), 3)
	require.Contains(t, app.status, "duplicate friend id")
	require.Contains(t, app.View(), "error:")
	require.Equal(t, "Clone", app.addForm.name.Value(), "typed name survives a failed add")
	require.Equal(t, "Clone", app.addForm.form.Name)
	require.Equal(t, focusAdd, app.focus)
}

func TestAddFriendWhitespaceName(t *testing.T) {
	app, session := newTestApp(t)

	press(app, "a")
	app.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	app.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	press(app, "enter")

	friends := session.Friends()
	require.Len(t, friends, 4)
	require.Equal(t, "  ", friends[3].Name)
	require.Empty(t, app.status)
	require.False(t, session.AddFormVisible())
}

func TestAddFormArrowKeysMoveFocus(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, "a", "down")
	require.Equal(t, addFieldAvatar, app.addForm.focus)
	typeText(app, "x")
	require.Empty(t, app.addForm.name.Value())
	require.Equal(t, ledger.DefaultAvatarBaseURL+"x", app.addForm.avatar.Value())

	press(app, "up")
	require.Equal(t, addFieldName, app.addForm.focus)
}

func TestTabFocusesOpenForm(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, "enter", "esc")
	require.Equal(t, focusList, app.focus)
	press(app, "tab")
	require.Equal(t, focusSplit, app.focus)
}

func TestFinderSelectsBestMatch(t *testing.T) {
	app, session := newTestApp(t)

	press(app, "/")
	require.Equal(t, focusFinder, app.focus)
	typeText(app, "sar")
	require.Contains(t, app.View(), "Sarah")
	press(app, "enter")

	require.True(t, session.IsSelected("933372"))
	require.Equal(t, 1, app.cursor)
	require.Nil(t, app.finder)
}

func TestFinderEscapeLeavesStateAlone(t *testing.T) {
	app, session := newTestApp(t)

	press(app, "/")
	typeText(app, "cl")
	press(app, "esc")

	_, selected := session.Selected()
	require.False(t, selected)
	require.Equal(t, focusList, app.focus)
}

func TestQuit(t *testing.T) {
	app, _ := newTestApp(t)
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}
