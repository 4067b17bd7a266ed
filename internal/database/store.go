package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// Store defines the interface for database operations.
// Methods accept context.Context for cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// IsMuted reports whether the user is currently muted. Storage failures
	// are returned as errors, never collapsed into "not muted".
	IsMuted(ctx context.Context, userID int64) (bool, error)

	// Mute records the user as muted. Returns true if the user was newly
	// muted, false if already muted. Idempotent.
	Mute(ctx context.Context, userID int64) (bool, error)

	// Unmute removes the user's mute. Returns true if the user was muted,
	// false if not. Idempotent.
	Unmute(ctx context.Context, userID int64) (bool, error)

	// RunSQLMaintenance performs database maintenance tasks like VACUUM.
	RunSQLMaintenance(ctx context.Context) error
}

// sqlxStore provides an implementation of the Store interface using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a new Store implementation backed by sqlx.
// It requires a connected sqlx.DB instance and a logger.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

// Ping checks the database connection.
func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// IsMuted reports whether the user ID has a row in muted_users.
func (s *sqlxStore) IsMuted(ctx context.Context, userID int64) (bool, error) {
	if userID == 0 {
		return false, fmt.Errorf("user_id cannot be zero")
	}
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	var exists bool
	err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM muted_users WHERE user_id = ?)`, userID)

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		s.logger.WarnContext(ctx, "Context timeout or cancellation while checking mute state",
			"user_id", userID, "error", err)
		return false, err

	case err != nil:
		s.logger.ErrorContext(ctx, "Error checking mute state", "user_id", userID, "error", err)
		return false, fmt.Errorf("failed to check mute state for user %d: %w", userID, err)
	}

	return exists, nil
}

// Mute inserts the user ID into muted_users. The insert and the membership
// check are a single statement; the user_id primary key guarantees no
// duplicate rows even when requests for the same user overlap.
func (s *sqlxStore) Mute(ctx context.Context, userID int64) (bool, error) {
	if userID == 0 {
		return false, fmt.Errorf("user_id cannot be zero")
	}
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO muted_users (user_id) VALUES (?)`, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error muting user", "user_id", userID, "error", err)
		return false, fmt.Errorf("failed to mute user %d: %w", userID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		s.logger.ErrorContext(ctx, "Could not get affected row count after mute",
			"user_id", userID, "error", err)
		return false, fmt.Errorf("failed to confirm mute for user %d: %w", userID, err)
	}

	muted := affected == 1
	s.logger.DebugContext(ctx, "Mute toggle processed", "user_id", userID, "newly_muted", muted)
	return muted, nil
}

// Unmute deletes the user ID from muted_users. A single conditional delete,
// no read-then-write round trip.
func (s *sqlxStore) Unmute(ctx context.Context, userID int64) (bool, error) {
	if userID == 0 {
		return false, fmt.Errorf("user_id cannot be zero")
	}
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM muted_users WHERE user_id = ?`, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error unmuting user", "user_id", userID, "error", err)
		return false, fmt.Errorf("failed to unmute user %d: %w", userID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		s.logger.ErrorContext(ctx, "Could not get affected row count after unmute",
			"user_id", userID, "error", err)
		return false, fmt.Errorf("failed to confirm unmute for user %d: %w", userID, err)
	}

	unmuted := affected == 1
	s.logger.DebugContext(ctx, "Unmute toggle processed", "user_id", userID, "newly_unmuted", unmuted)
	return unmuted, nil
}

// RunSQLMaintenance executes a VACUUM command on the SQLite database.
func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	if ctx.Err() != nil {
		s.logger.WarnContext(ctx, "Context cancelled or timed out before starting VACUUM", "error", ctx.Err())
		return ctx.Err()
	}

	s.logger.InfoContext(ctx, "Starting database maintenance (VACUUM)...")

	// VACUUM must run outside a transaction in SQLite
	_, err := s.db.ExecContext(ctx, "VACUUM;")

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		s.logger.WarnContext(ctx, "VACUUM operation timed out or was cancelled", "error", err)
		return fmt.Errorf("database maintenance (VACUUM) timed out: %w", err)

	case err != nil:
		s.logger.ErrorContext(ctx, "Database maintenance (VACUUM) failed", "error", err)
		return fmt.Errorf("failed to execute VACUUM: %w", err)

	default:
		s.logger.InfoContext(ctx, "Database maintenance (VACUUM) completed successfully")
	}

	return nil
}
