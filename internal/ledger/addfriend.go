package ledger

import "github.com/google/uuid"

// DefaultAvatarBaseURL is the avatar service prefix new friends start with.
const DefaultAvatarBaseURL = "https://i.pravatar.cc/48"

// AddFriendForm collects a name and avatar URL for a new friend.
type AddFriendForm struct {
	Name      string
	AvatarURL string

	baseURL string
	newID   func() string
}

// NewAddFriendForm returns an empty form whose avatar field starts at baseURL.
// newID defaults to uuid.NewString.
func NewAddFriendForm(baseURL string, newID func() string) *AddFriendForm {
	if baseURL == "" {
		baseURL = DefaultAvatarBaseURL
	}
	if newID == nil {
		newID = uuid.NewString
	}
	f := &AddFriendForm{baseURL: baseURL, newID: newID}
	f.Reset()
	return f
}

// Reset puts both fields back to their defaults.
func (f *AddFriendForm) Reset() {
	f.Name = ""
	f.AvatarURL = f.baseURL
}

// Submit builds the new friend. It reports false, leaving the form as is,
// when either field is empty.
func (f *AddFriendForm) Submit() (Friend, bool) {
	if f.Name == "" || f.AvatarURL == "" {
		return Friend{}, false
	}
	id := f.newID()
	friend := Friend{
		ID:        id,
		Name:      f.Name,
		AvatarURL: f.AvatarURL + "?=" + id,
		Balance:   0,
	}
	f.Reset()
	return friend, true
}
