package ledger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFriendStatusText(t *testing.T) {
	cases := []struct {
		friend Friend
		status Status
		text   string
	}{
		{Friend{Name: "Clark", Balance: -7}, StatusOwe, "You owe Clark 7 $"},
		{Friend{Name: "Sarah", Balance: 20}, StatusOwed, "Sarah owes you 20 $"},
		{Friend{Name: "Anthony", Balance: 0}, StatusEven, "You and Anthony are even"},
		{Friend{Name: "Dee", Balance: 12.5}, StatusOwed, "Dee owes you 12.5 $"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.status, tc.friend.Status(), tc.friend.Name)
		require.Equal(t, tc.text, tc.friend.StatusText("$"), tc.friend.Name)
	}
}

func TestFormatAmount(t *testing.T) {
	require.Equal(t, "3", FormatAmount(3))
	require.Equal(t, "0.1", FormatAmount(0.1))
	require.Equal(t, "70.25", FormatAmount(70.25))
}
