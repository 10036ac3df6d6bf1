package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/splitbill/internal/ledger"
)

const (
	splitFieldBill = iota
	splitFieldExpense
	splitFieldPayer
	splitFieldButton
	splitFieldCount
)

// splitBillForm is the on-screen split form for the selected friend.
type splitBillForm struct {
	form    *ledger.SplitBillForm
	bill    textinput.Model
	expense textinput.Model
	submit  button
	focus   int
}

func newSplitBillForm() *splitBillForm {
	bill := textinput.New()
	bill.Prompt = ""
	bill.Placeholder = "0"

	expense := textinput.New()
	expense.Prompt = ""
	expense.Placeholder = "0"

	f := &splitBillForm{form: ledger.NewSplitBillForm(), bill: bill, expense: expense, submit: button{label: "Split bill"}}
	f.setFocus(splitFieldBill)
	return f
}

func (f *splitBillForm) setFocus(i int) {
	f.focus = (i + splitFieldCount) % splitFieldCount
	f.bill.Blur()
	f.expense.Blur()
	switch f.focus {
	case splitFieldBill:
		f.bill.Focus()
	case splitFieldExpense:
		f.expense.Focus()
	}
}

func (f *splitBillForm) blur() {
	f.bill.Blur()
	f.expense.Blur()
}

func (f *splitBillForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case splitFieldBill:
		f.bill, cmd = f.bill.Update(msg)
		f.form.SetBill(f.bill.Value())
	case splitFieldExpense:
		f.expense, cmd = f.expense.Update(msg)
		if !f.form.SetPaidByUser(f.expense.Value()) {
			f.expense.SetValue(f.form.PaidByUser().Text)
		}
	}
	return cmd
}

func (f *splitBillForm) view(friend ledger.Friend, focused bool) string {
	friendShare := ""
	if v, ok := f.form.PaidByFriend(); ok {
		friendShare = ledger.FormatAmount(v)
	}
	payer := "You"
	if f.form.WhoPays() == ledger.PayerFriend {
		payer = friend.Name
	}
	if focused && f.focus == splitFieldPayer {
		payer = cursorStyle.Render("‹ " + payer + " ›")
	} else {
		payer = "‹ " + payer + " ›"
	}

	row := func(label, value string) string {
		return labelStyle.Width(24).Render(label) + " " + value
	}
	lines := []string{
		titleStyle.Render("Split a bill with " + friend.Name),
		"",
		row("Bill value", f.bill.View()),
		row("Your expense", f.expense.View()),
		row(friend.Name+"'s expense", dimStyle.Render(friendShare)),
		row("Who's paying the bill", payer),
		"",
		f.submit.view(focused && f.focus == splitFieldButton),
	}
	return strings.Join(lines, "\n")
}
