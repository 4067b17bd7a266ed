package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const (
	aiRequestTimeout   = 2 * time.Minute
	dbOperationTimeout = 5 * time.Second
	sendMessageTimeout = 10 * time.Second
)

// sendTyping shows the typing indicator before a generation call. Failures
// are non-fatal.
func sendTyping(ctx context.Context, b *bot.Bot, chatID int64) {
	_, _ = b.SendChatAction(ctx, &bot.SendChatActionParams{ChatID: chatID, Action: models.ChatActionTyping})
}

// sendText sends a plain text message with an optional reply markup.
func sendText(ctx context.Context, b *bot.Bot, log *slog.Logger, chatID int64, text string, markup models.ReplyMarkup) {
	if text == "" {
		log.WarnContext(ctx, "Refusing to send empty message", "chat_id", chatID)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendMessageTimeout)
	defer cancel()

	_, err := b.SendMessage(sendCtx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: markup,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send message", "error", err, "chat_id", chatID)
	}
}

// editText rewrites a previously sent message, used by the truth-or-dare
// flow to replace the choice prompt in place.
func editText(ctx context.Context, b *bot.Bot, log *slog.Logger, chatID int64, messageID int, text string, parseMode models.ParseMode) {
	sendCtx, cancel := context.WithTimeout(ctx, sendMessageTimeout)
	defer cancel()

	_, err := b.EditMessageText(sendCtx, &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
		ParseMode: parseMode,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to edit message", "error", err, "chat_id", chatID, "message_id", messageID)
	}
}

// callbackOrigin extracts the chat and message a callback query points at.
// Inaccessible messages still carry both identifiers.
func callbackOrigin(q *models.CallbackQuery) (chatID int64, messageID int) {
	if q.Message.Message.Date != 0 {
		return q.Message.Message.Chat.ID, q.Message.Message.ID
	}
	return q.Message.InaccessibleMessage.Chat.ID, q.Message.InaccessibleMessage.MessageID
}
