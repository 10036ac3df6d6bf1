package ledger

import (
	"context"
	"fmt"
)

// Store holds the friends collection in insertion order.
type Store interface {
	List(ctx context.Context) ([]Friend, error)
	Insert(ctx context.Context, f Friend) error
	AdjustBalance(ctx context.Context, id string, delta float64) error
}

// MemoryStore is a slice-backed Store. The binary runs on the sqlite
// repository; this one backs tests and serves as the reference behaviour.
type MemoryStore struct {
	friends []Friend
}

// NewMemoryStore returns a store seeded with friends.
func NewMemoryStore(friends ...Friend) *MemoryStore {
	return &MemoryStore{friends: append([]Friend(nil), friends...)}
}

func (s *MemoryStore) List(ctx context.Context) ([]Friend, error) {
	return append([]Friend(nil), s.friends...), nil
}

func (s *MemoryStore) Insert(ctx context.Context, f Friend) error {
	if s.index(f.ID) >= 0 {
		return fmt.Errorf("insert %s: %w", f.ID, ErrDuplicateID)
	}
	s.friends = append(s.friends, f)
	return nil
}

func (s *MemoryStore) AdjustBalance(ctx context.Context, id string, delta float64) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("adjust %s: %w", id, ErrFriendNotFound)
	}
	s.friends[i].Balance += delta
	return nil
}

func (s *MemoryStore) index(id string) int {
	for i := range s.friends {
		if s.friends[i].ID == id {
			return i
		}
	}
	return -1
}
