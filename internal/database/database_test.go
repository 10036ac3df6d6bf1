package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jask/splitbill/internal/database/repository"
	"github.com/jask/splitbill/internal/ledger"
)

func TestMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()
	db, err := OpenMemory("mig-" + uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM friends`).Scan(&n))
	require.Zero(t, n)
}

func TestSeedFriendsOnlyOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, err := OpenMemory("seed-" + uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrations(db))

	seed := []ledger.Friend{
		{ID: "118836", Name: "Clark", Balance: -7},
		{ID: "933372", Name: "Sarah", Balance: 20},
	}
	require.NoError(t, SeedFriends(ctx, db, seed))
	require.NoError(t, SeedFriends(ctx, db, []ledger.Friend{{ID: "other", Name: "Other"}}))

	got, err := repository.NewFriendRepo(db).List(ctx)
	require.NoError(t, err)
	require.Equal(t, seed, got)
}

func TestSeedFriendsRollsBackOnDuplicate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, err := OpenMemory("dup-" + uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrations(db))

	err = SeedFriends(ctx, db, []ledger.Friend{{ID: "a", Name: "A"}, {ID: "a", Name: "B"}})
	require.ErrorIs(t, err, ledger.ErrDuplicateID)

	got, err := repository.NewFriendRepo(db).List(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}
