package database

import (
	"context"
	"database/sql"

	"github.com/jask/splitbill/internal/database/repository"
	"github.com/jask/splitbill/internal/ledger"
)

// SeedFriends inserts friends in order when the table is empty.
// It is idempotent and safe to run on every startup.
func SeedFriends(ctx context.Context, db *sql.DB, friends []ledger.Friend) error {
	existing, err := repository.NewFriendRepo(db).List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		repo := repository.NewFriendRepo(tx)
		for _, f := range friends {
			if err := repo.Insert(ctx, f); err != nil {
				return err
			}
		}
		return nil
	})
}
