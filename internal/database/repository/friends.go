package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/jask/splitbill/internal/ledger"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// FriendRepo handles friends. It implements ledger.Store.
type FriendRepo struct {
	db DBTX
}

func NewFriendRepo(db DBTX) *FriendRepo { return &FriendRepo{db: db} }

var _ ledger.Store = (*FriendRepo)(nil)

// List returns friends in insertion order.
func (r *FriendRepo) List(ctx context.Context) ([]ledger.Friend, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, avatar_url, balance FROM friends ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ledger.Friend
	for rows.Next() {
		var f ledger.Friend
		if err := rows.Scan(&f.ID, &f.Name, &f.AvatarURL, &f.Balance); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *FriendRepo) Insert(ctx context.Context, f ledger.Friend) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO friends(id, name, avatar_url, balance) VALUES (?, ?, ?, ?)
	`, f.ID, f.Name, f.AvatarURL, f.Balance)
	var se sqlite3.Error
	if errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique {
		return fmt.Errorf("insert %s: %w", f.ID, ledger.ErrDuplicateID)
	}
	return err
}

func (r *FriendRepo) AdjustBalance(ctx context.Context, id string, delta float64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE friends SET balance = balance + ? WHERE id = ?`, delta, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("adjust %s: %w", id, ledger.ErrFriendNotFound)
	}
	return nil
}
