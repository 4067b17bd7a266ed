package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/QueenCDN/AntiShmalala/internal/database"
)

func newTestStore(t *testing.T) database.Store {
	t.Helper()

	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { database.CloseDB(db) })

	return database.NewStore(db, nil)
}

func TestMuteUnmuteRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	const userID = int64(42)

	muted, err := store.IsMuted(ctx, userID)
	if err != nil {
		t.Fatalf("IsMuted failed: %v", err)
	}
	if muted {
		t.Fatal("fresh store reports user as muted")
	}

	changed, err := store.Mute(ctx, userID)
	if err != nil {
		t.Fatalf("Mute failed: %v", err)
	}
	if !changed {
		t.Error("first Mute should report a state change")
	}

	muted, err = store.IsMuted(ctx, userID)
	if err != nil {
		t.Fatalf("IsMuted failed after mute: %v", err)
	}
	if !muted {
		t.Error("user should be muted after Mute")
	}

	changed, err = store.Unmute(ctx, userID)
	if err != nil {
		t.Fatalf("Unmute failed: %v", err)
	}
	if !changed {
		t.Error("Unmute of a muted user should report a state change")
	}

	muted, err = store.IsMuted(ctx, userID)
	if err != nil {
		t.Fatalf("IsMuted failed after unmute: %v", err)
	}
	if muted {
		t.Error("user should not be muted after Unmute")
	}
}

func TestMuteIsIdempotent(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	const userID = int64(7)

	first, err := store.Mute(ctx, userID)
	if err != nil {
		t.Fatalf("first Mute failed: %v", err)
	}
	second, err := store.Mute(ctx, userID)
	if err != nil {
		t.Fatalf("second Mute failed: %v", err)
	}

	if !first {
		t.Error("first Mute should return true")
	}
	if second {
		t.Error("second Mute should return false (no-op)")
	}

	muted, err := store.IsMuted(ctx, userID)
	if err != nil {
		t.Fatalf("IsMuted failed: %v", err)
	}
	if !muted {
		t.Error("user should remain muted after repeated Mute")
	}
}

func TestUnmuteIsIdempotent(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	const userID = int64(9)

	changed, err := store.Unmute(ctx, userID)
	if err != nil {
		t.Fatalf("Unmute of unknown user failed: %v", err)
	}
	if changed {
		t.Error("Unmute of a user who was never muted should return false")
	}

	if _, err := store.Mute(ctx, userID); err != nil {
		t.Fatalf("Mute failed: %v", err)
	}
	if _, err := store.Unmute(ctx, userID); err != nil {
		t.Fatalf("Unmute failed: %v", err)
	}

	changed, err = store.Unmute(ctx, userID)
	if err != nil {
		t.Fatalf("repeated Unmute failed: %v", err)
	}
	if changed {
		t.Error("repeated Unmute should return false (no-op)")
	}
}

func TestMuteStateIsPerUser(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Mute(ctx, 1); err != nil {
		t.Fatalf("Mute failed: %v", err)
	}

	muted, err := store.IsMuted(ctx, 2)
	if err != nil {
		t.Fatalf("IsMuted failed: %v", err)
	}
	if muted {
		t.Error("muting one user must not affect another")
	}
}

func TestZeroUserIDRejected(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.IsMuted(ctx, 0); err == nil {
		t.Error("IsMuted should reject a zero user_id")
	}
	if _, err := store.Mute(ctx, 0); err == nil {
		t.Error("Mute should reject a zero user_id")
	}
	if _, err := store.Unmute(ctx, 0); err == nil {
		t.Error("Unmute should reject a zero user_id")
	}
}

func TestRunSQLMaintenance(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	if err := store.RunSQLMaintenance(context.Background()); err != nil {
		t.Fatalf("RunSQLMaintenance failed: %v", err)
	}
}
