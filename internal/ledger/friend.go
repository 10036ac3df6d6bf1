package ledger

import (
	"fmt"
	"math"
	"strconv"
)

// Friend is one person the user splits bills with.
// Balance < 0 means the user owes the friend, > 0 means the friend owes the user.
type Friend struct {
	ID        string
	Name      string
	AvatarURL string
	Balance   float64
}

// Status classifies a balance by sign.
type Status int

const (
	StatusEven Status = iota
	StatusOwe         // user owes the friend
	StatusOwed        // friend owes the user
)

func (s Status) String() string {
	switch s {
	case StatusOwe:
		return "owe"
	case StatusOwed:
		return "owed"
	default:
		return "even"
	}
}

// Status reports which of the three balance messages applies.
func (f Friend) Status() Status {
	switch {
	case f.Balance < 0:
		return StatusOwe
	case f.Balance > 0:
		return StatusOwed
	default:
		return StatusEven
	}
}

// StatusText renders the balance message, e.g. "You owe Clark 7 $".
func (f Friend) StatusText(currency string) string {
	amount := FormatAmount(math.Abs(f.Balance))
	switch f.Status() {
	case StatusOwe:
		return fmt.Sprintf("You owe %s %s %s", f.Name, amount, currency)
	case StatusOwed:
		return fmt.Sprintf("%s owes you %s %s", f.Name, amount, currency)
	default:
		return fmt.Sprintf("You and %s are even", f.Name)
	}
}

// FormatAmount prints the shortest decimal that round-trips v.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
