package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewChoiceHandler returns the handler for the truth-or-dare inline buttons.
// The pending session is claimed atomically before any generation happens,
// so racing taps on the same keyboard resolve to a single challenge.
func NewChoiceHandler(deps HandlerDeps) bot.HandlerFunc {
	return choiceHandler{deps}.Handle
}

type choiceHandler struct {
	deps HandlerDeps
}

func (h choiceHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "choice")

	q := update.CallbackQuery
	if q == nil {
		log.WarnContext(ctx, "Choice handler received update without callback query", "update_id", update.ID)
		return
	}

	if _, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: q.ID}); err != nil {
		log.ErrorContext(ctx, "Failed to answer callback query", "error", err, "callback_query_id", q.ID)
	}

	chatID, messageID := callbackOrigin(q)
	if chatID == 0 {
		log.WarnContext(ctx, "Callback query without a usable chat", "callback_query_id", q.ID)
		return
	}

	if !h.deps.Sessions.Claim(chatID) {
		// A terminal session's buttons are dead; a fresh trigger starts a new one.
		log.DebugContext(ctx, "Ignoring choice for a session that is not awaiting", "chat_id", chatID, "data", q.Data)
		return
	}

	switch q.Data {
	case CallbackChoiceTruth:
		h.handleTruth(ctx, b, chatID, messageID)
	case CallbackChoiceDare:
		h.handleDare(ctx, b, chatID, messageID)
	default:
		log.WarnContext(ctx, "Unknown choice callback data", "chat_id", chatID, "data", q.Data)
	}
}

// handleTruth fails visibly: when no question comes back, the fixed error
// message replaces the transitional one.
func (h choiceHandler) handleTruth(ctx context.Context, b *bot.Bot, chatID int64, messageID int) {
	log := h.deps.Logger.With("handler", "choice", "choice", "truth")
	log.InfoContext(ctx, "Truth chosen", "chat_id", chatID)

	editText(ctx, b, log, chatID, messageID, h.deps.Config.Messages.TruthSearching, "")
	sendTyping(ctx, b, chatID)

	aiCtx, cancel := context.WithTimeout(ctx, aiRequestTimeout)
	defer cancel()
	question, err := h.deps.Gemini.TruthQuestion(aiCtx)
	if err != nil {
		log.WarnContext(ctx, "Truth question generation failed", "error", err, "chat_id", chatID)
		editText(ctx, b, log, chatID, messageID, h.deps.Config.Messages.TruthError, "")
		return
	}

	challenge := fmt.Sprintf(h.deps.Config.Messages.TruthChallenge, question)
	editText(ctx, b, log, chatID, messageID, challenge, models.ParseModeMarkdownV1)
}

// handleDare always produces a challenge; the gateway substitutes its own
// in-persona text on failure.
func (h choiceHandler) handleDare(ctx context.Context, b *bot.Bot, chatID int64, messageID int) {
	log := h.deps.Logger.With("handler", "choice", "choice", "dare")
	log.InfoContext(ctx, "Dare chosen", "chat_id", chatID)

	editText(ctx, b, log, chatID, messageID, h.deps.Config.Messages.DareSearching, "")
	sendTyping(ctx, b, chatID)

	aiCtx, cancel := context.WithTimeout(ctx, aiRequestTimeout)
	defer cancel()
	task := h.deps.Gemini.DareTask(aiCtx)

	challenge := fmt.Sprintf(h.deps.Config.Messages.DareChallenge, task)
	editText(ctx, b, log, chatID, messageID, challenge, models.ParseModeMarkdownV1)
}
