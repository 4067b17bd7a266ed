package handlers

import (
	"github.com/go-telegram/bot/models"

	"github.com/QueenCDN/AntiShmalala/internal/config"
)

// Callback identifiers carried by the truth-or-dare inline buttons.
const (
	CallbackChoicePrefix = "choice="
	CallbackChoiceTruth  = "choice=truth"
	CallbackChoiceDare   = "choice=dare"
)

// MainKeyboard builds the persistent reply keyboard with the three action
// buttons. The labels double as router triggers.
func MainKeyboard(cfg *config.Config) models.ReplyMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{{Text: cfg.Triggers.Joke}},
			{{Text: cfg.Triggers.Dice}},
			{{Text: cfg.Triggers.TruthOrDare}},
		},
		ResizeKeyboard: true,
	}
}

// TruthOrDareKeyboard builds the two-button inline keyboard for the mini-game.
func TruthOrDareKeyboard(cfg *config.Config) models.ReplyMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: cfg.Messages.TruthButton, CallbackData: CallbackChoiceTruth},
				{Text: cfg.Messages.DareButton, CallbackData: CallbackChoiceDare},
			},
		},
	}
}
