package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Session is the application root: it owns the friends collection, the
// selected friend and the add-form flag. All changes go through its methods.
//
// The selection is kept as an id so it can never outlive the friend it names.
type Session struct {
	store    Store
	log      *slog.Logger
	friends  []Friend
	selected string
	addForm  bool
}

// NewSession loads the collection from store.
func NewSession(ctx context.Context, store Store, log *slog.Logger) (*Session, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &Session{store: store, log: log}
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Load refreshes the cached collection from the store.
func (s *Session) Load(ctx context.Context) error {
	friends, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("load friends: %w", err)
	}
	s.friends = friends
	if s.selected != "" && s.index(s.selected) < 0 {
		s.selected = ""
	}
	return nil
}

// Friends returns a copy of the collection in insertion order.
func (s *Session) Friends() []Friend {
	return append([]Friend(nil), s.friends...)
}

// Friend looks a friend up by id.
func (s *Session) Friend(id string) (Friend, bool) {
	i := s.index(id)
	if i < 0 {
		return Friend{}, false
	}
	return s.friends[i], true
}

// Selected returns the selected friend, if any.
func (s *Session) Selected() (Friend, bool) {
	if s.selected == "" {
		return Friend{}, false
	}
	return s.Friend(s.selected)
}

// IsSelected reports whether id is the current selection.
func (s *Session) IsSelected(id string) bool {
	return s.selected != "" && s.selected == id
}

// AddFormVisible reports whether the add-friend form is open.
func (s *Session) AddFormVisible() bool { return s.addForm }

// ToggleAddForm opens or closes the add-friend form. Opening it drops the selection.
func (s *Session) ToggleAddForm() {
	s.addForm = !s.addForm
	if s.addForm {
		s.selected = ""
	}
	s.log.Debug("add form toggled", "visible", s.addForm)
}

// AddFriend appends f with a zero balance and closes the add-friend form.
func (s *Session) AddFriend(ctx context.Context, f Friend) error {
	if strings.TrimSpace(f.ID) == "" || f.Name == "" {
		return fmt.Errorf("add friend: %w", ErrInvalidFriend)
	}
	if s.index(f.ID) >= 0 {
		return fmt.Errorf("add friend %s: %w", f.ID, ErrDuplicateID)
	}
	f.Balance = 0
	if err := s.store.Insert(ctx, f); err != nil {
		return fmt.Errorf("add friend %s: %w", f.ID, err)
	}
	s.friends = append(s.friends, f)
	s.addForm = false
	s.log.Debug("friend added", "id", f.ID, "name", f.Name)
	return nil
}

// SelectFriend selects the friend with id, or clears the selection when that
// friend is already selected. The add-friend form is always closed.
func (s *Session) SelectFriend(id string) error {
	if s.index(id) < 0 {
		return fmt.Errorf("select %s: %w", id, ErrFriendNotFound)
	}
	if s.selected == id {
		s.selected = ""
	} else {
		s.selected = id
	}
	s.addForm = false
	s.log.Debug("selection changed", "selected", s.selected)
	return nil
}

// ApplySplit adds delta to the selected friend's balance and clears the selection.
func (s *Session) ApplySplit(ctx context.Context, delta float64) error {
	if s.selected == "" {
		return ErrNoSelection
	}
	i := s.index(s.selected)
	if i < 0 {
		s.selected = ""
		return fmt.Errorf("apply split: %w", ErrFriendNotFound)
	}
	if err := s.store.AdjustBalance(ctx, s.selected, delta); err != nil {
		return fmt.Errorf("apply split to %s: %w", s.selected, err)
	}
	s.friends[i].Balance += delta
	s.log.Debug("split applied", "id", s.selected, "delta", delta, "balance", s.friends[i].Balance)
	s.selected = ""
	return nil
}

func (s *Session) index(id string) int {
	for i := range s.friends {
		if s.friends[i].ID == id {
			return i
		}
	}
	return -1
}
