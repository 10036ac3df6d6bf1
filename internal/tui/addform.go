package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/splitbill/internal/ledger"
)

const (
	addFieldName = iota
	addFieldAvatar
	addFieldButton
	addFieldCount
)

// addFriendForm is the on-screen add-friend form. Field text is mirrored into
// the ledger form after every keystroke.
type addFriendForm struct {
	form   *ledger.AddFriendForm
	name   textinput.Model
	avatar textinput.Model
	submit button
	focus  int
}

func newAddFriendForm(form *ledger.AddFriendForm) *addFriendForm {
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "Friend name"

	avatar := textinput.New()
	avatar.Prompt = ""

	f := &addFriendForm{form: form, name: name, avatar: avatar, submit: button{label: "Add"}}
	f.reset()
	return f
}

// reset restores both fields to the form defaults and focuses the name.
func (f *addFriendForm) reset() {
	f.form.Reset()
	f.name.SetValue(f.form.Name)
	f.avatar.SetValue(f.form.AvatarURL)
	f.setFocus(addFieldName)
}

func (f *addFriendForm) setFocus(i int) {
	f.focus = (i + addFieldCount) % addFieldCount
	f.name.Blur()
	f.avatar.Blur()
	switch f.focus {
	case addFieldName:
		f.name.Focus()
	case addFieldAvatar:
		f.avatar.Focus()
	}
}

func (f *addFriendForm) blur() {
	f.name.Blur()
	f.avatar.Blur()
}

// trySubmit returns the new friend, or false when a field is empty. The
// on-screen fields are left alone; call reset once the friend is stored, or
// restore to undo the ledger form's own reset after a failed add.
func (f *addFriendForm) trySubmit() (ledger.Friend, bool) {
	return f.form.Submit()
}

// restore copies the on-screen field text back into the ledger form.
func (f *addFriendForm) restore() {
	f.form.Name = f.name.Value()
	f.form.AvatarURL = f.avatar.Value()
}

func (f *addFriendForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case addFieldName:
		f.name, cmd = f.name.Update(msg)
		f.form.Name = f.name.Value()
	case addFieldAvatar:
		f.avatar, cmd = f.avatar.Update(msg)
		f.form.AvatarURL = f.avatar.Value()
	}
	return cmd
}

func (f *addFriendForm) view(focused bool) string {
	lines := []string{
		labelStyle.Render("Friend name"),
		f.name.View(),
		labelStyle.Render("Image URL"),
		f.avatar.View(),
		f.submit.view(focused && f.focus == addFieldButton),
	}
	return strings.Join(lines, "\n")
}
