package database

// MutedUser represents a user the bot ignores for free-form replies.
// A user ID appears at most once; the row exists exactly while the user is muted.
type MutedUser struct {
	UserID int64 `db:"user_id"`
}
