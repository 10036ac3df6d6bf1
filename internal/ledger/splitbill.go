package ledger

import (
	"math"
	"strconv"
	"strings"
)

// Payer is whoever paid the whole bill up front.
type Payer int

const (
	PayerUser Payer = iota
	PayerFriend
)

func (p Payer) String() string {
	if p == PayerFriend {
		return "friend"
	}
	return "user"
}

// Amount is a numeric form field: the text as typed plus its value.
// Text that does not parse counts as 0.
type Amount struct {
	Text  string
	Value float64
}

// ParseAmount converts field text to an Amount.
func ParseAmount(text string) Amount {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return Amount{Text: text, Value: v}
}

// Empty reports whether the field counts as unset: blank or zero.
func (a Amount) Empty() bool { return a.Value == 0 }

// SplitBillForm works out how a bill changes the selected friend's balance.
type SplitBillForm struct {
	bill       Amount
	paidByUser Amount
	whoPays    Payer
}

// NewSplitBillForm returns a form with empty amounts and the user paying.
func NewSplitBillForm() *SplitBillForm {
	return &SplitBillForm{whoPays: PayerUser}
}

func (f *SplitBillForm) Bill() Amount       { return f.bill }
func (f *SplitBillForm) PaidByUser() Amount { return f.paidByUser }
func (f *SplitBillForm) WhoPays() Payer     { return f.whoPays }

// SetBill replaces the bill amount.
func (f *SplitBillForm) SetBill(text string) {
	f.bill = ParseAmount(text)
}

// SetPaidByUser replaces the user's expense unless it exceeds the bill, in
// which case the previous value is kept and false is returned.
func (f *SplitBillForm) SetPaidByUser(text string) bool {
	next := ParseAmount(text)
	if next.Value > f.bill.Value {
		return false
	}
	f.paidByUser = next
	return true
}

// PaidByFriend is the bill minus the user's expense. It is absent while the bill is unset.
func (f *SplitBillForm) PaidByFriend() (float64, bool) {
	if f.bill.Empty() {
		return 0, false
	}
	return f.bill.Value - f.paidByUser.Value, true
}

// SetWhoPays records who paid the bill.
func (f *SplitBillForm) SetWhoPays(p Payer) { f.whoPays = p }

// TogglePayer switches between the user and the friend.
func (f *SplitBillForm) TogglePayer() {
	if f.whoPays == PayerUser {
		f.whoPays = PayerFriend
	} else {
		f.whoPays = PayerUser
	}
}

// Submit returns the delta to apply to the friend's balance. It reports false
// while the bill or the user's expense is unset.
func (f *SplitBillForm) Submit() (float64, bool) {
	if f.bill.Empty() || f.paidByUser.Empty() {
		return 0, false
	}
	if f.whoPays == PayerUser {
		paidByFriend, _ := f.PaidByFriend()
		return paidByFriend, true
	}
	return -f.paidByUser.Value, true
}
