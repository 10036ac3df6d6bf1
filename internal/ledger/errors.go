package ledger

import "errors"

var (
	// ErrNoSelection is returned by ApplySplit when no friend is selected.
	ErrNoSelection = errors.New("no friend selected")
	// ErrFriendNotFound is returned when an id does not name a friend in the collection.
	ErrFriendNotFound = errors.New("friend not found")
	// ErrDuplicateID is returned when adding a friend whose id is already taken.
	ErrDuplicateID = errors.New("duplicate friend id")
	// ErrInvalidFriend is returned when adding a friend with a blank id or an empty name.
	ErrInvalidFriend = errors.New("invalid friend")
)
