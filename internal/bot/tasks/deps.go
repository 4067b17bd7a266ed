// Package tasks implements the bot's scheduled background tasks along with
// their dependencies and registration.
package tasks

import (
	"log/slog"

	"github.com/QueenCDN/AntiShmalala/internal/config"
	"github.com/QueenCDN/AntiShmalala/internal/database"
)

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Store  database.Store
	Config *config.Config
}
