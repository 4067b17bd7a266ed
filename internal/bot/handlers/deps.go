package handlers

import (
	"log/slog"

	"github.com/QueenCDN/AntiShmalala/internal/config"
	"github.com/QueenCDN/AntiShmalala/internal/database"
	"github.com/QueenCDN/AntiShmalala/internal/gemini"
	"github.com/QueenCDN/AntiShmalala/internal/session"
)

// HandlerDeps provides dependencies for Telegram command and message handlers.
type HandlerDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Store    database.Store
	Gemini   gemini.Client
	Sessions *session.Manager
}
