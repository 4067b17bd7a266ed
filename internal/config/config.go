// Package config provides configuration loading, validation, and management
// for the AntiShmalala bot. It handles reading from YAML files and BOT_*
// environment variables, setting default values, and validating parameters.
package config

import (
	"github.com/go-telegram/bot/models"
)

// Config defines the application configuration parameters for all components:
// logging, Telegram transport, Gemini integration, database, scheduler, and
// the persona texts the bot speaks with.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Triggers  TriggersConfig  `mapstructure:"triggers"`
	Messages  MessagesConfig  `mapstructure:"messages"`
}

// LoggerConfig controls log level and output format.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds the bot token and, at runtime, the bot's own identity.
type TelegramConfig struct {
	Token string `mapstructure:"token" validate:"required"`

	// BotInfo is populated at startup via GetMe and not read from config.
	BotInfo *models.User `mapstructure:"-"`
}

// GeminiConfig holds Gemini API settings and the persona system instruction.
type GeminiConfig struct {
	APIKey            string  `mapstructure:"api_key" validate:"required"`
	ModelName         string  `mapstructure:"model_name" validate:"required"`
	Temperature       float32 `mapstructure:"temperature" validate:"min=0,max=2"`
	SystemInstruction string  `mapstructure:"system_instruction" validate:"required"`
	MaxRetries        int     `mapstructure:"max_retries" validate:"min=0,max=10"`
	RetryDelaySeconds int     `mapstructure:"retry_delay_seconds" validate:"min=0,max=60"`
}

// DatabaseConfig holds the SQLite database location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// TaskConfig describes one scheduled task.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// SchedulerConfig maps task names to their schedules.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// TriggersConfig holds the literal phrases and button labels the router
// matches on. Matching is case-insensitive on trimmed text; the values keep
// their display casing because they double as keyboard button labels.
type TriggersConfig struct {
	Mute        string `mapstructure:"mute" validate:"required"`
	Unmute      string `mapstructure:"unmute" validate:"required"`
	Joke        string `mapstructure:"joke" validate:"required"`
	Dice        string `mapstructure:"dice" validate:"required"`
	TruthOrDare string `mapstructure:"truth_or_dare" validate:"required"`
}

// MessagesConfig holds every fixed user-facing persona string outside the
// Gemini gateway (gateway fallbacks live next to their prompts).
type MessagesConfig struct {
	// Start is a format string receiving the user's first name.
	Start string `mapstructure:"start" validate:"required"`
	Help  string `mapstructure:"help" validate:"required"`

	NowMuted      string `mapstructure:"now_muted" validate:"required"`
	AlreadyMuted  string `mapstructure:"already_muted" validate:"required"`
	NowActive     string `mapstructure:"now_active" validate:"required"`
	AlreadyActive string `mapstructure:"already_active" validate:"required"`

	GeneralError string `mapstructure:"general_error" validate:"required"`

	// Truth-or-dare flow.
	TruthOrDarePrompt string `mapstructure:"truth_or_dare_prompt" validate:"required"`
	TruthSearching    string `mapstructure:"truth_searching" validate:"required"`
	DareSearching     string `mapstructure:"dare_searching" validate:"required"`
	// TruthChallenge and DareChallenge are format strings receiving the
	// generated question or task.
	TruthChallenge string `mapstructure:"truth_challenge" validate:"required"`
	DareChallenge  string `mapstructure:"dare_challenge" validate:"required"`
	TruthError     string `mapstructure:"truth_error" validate:"required"`
	Cancel         string `mapstructure:"cancel" validate:"required"`

	// Button labels on the truth-or-dare inline keyboard.
	TruthButton string `mapstructure:"truth_button" validate:"required"`
	DareButton  string `mapstructure:"dare_button" validate:"required"`
}
