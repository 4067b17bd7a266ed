package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewCancelHandler returns a handler for the /cancel command. It ends any
// pending truth-or-dare session and always answers with the fixed taunt,
// whatever state the chat was in.
func NewCancelHandler(deps HandlerDeps) bot.HandlerFunc {
	return cancelHandler{deps}.Handle
}

type cancelHandler struct {
	deps HandlerDeps
}

func (h cancelHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "cancel")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Cancel handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	chatID := update.Message.Chat.ID
	ended := h.deps.Sessions.Cancel(chatID)
	log.InfoContext(ctx, "Handling /cancel command", "chat_id", chatID, "session_ended", ended)

	sendText(ctx, b, log, chatID, h.deps.Config.Messages.Cancel, nil)
}
