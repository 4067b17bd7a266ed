// Package handlers contains Telegram bot command and message handlers,
// along with their registration logic and keyboards.
package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// route binds a literal trigger phrase to its handler. Routes are evaluated
// in slice order; the first match wins.
type route struct {
	name    string
	trigger string // lowercased literal phrase
	handle  func(ctx context.Context, b *bot.Bot, msg *models.Message)
}

type messageHandler struct {
	deps   HandlerDeps
	routes []route
}

// NewMessageHandler returns the default handler for plain text messages.
// It matches trigger phrases in priority order: mute and unmute first, then
// the joke, dice, and truth-or-dare buttons, and only then applies the mute
// gate before falling through to the free-form persona reply. Control
// triggers work even while the sender is muted; mute only gates free-form
// conversation.
func NewMessageHandler(deps HandlerDeps) bot.HandlerFunc {
	h := &messageHandler{deps: deps}
	h.routes = h.buildRoutes()
	return h.Handle
}

func (h *messageHandler) buildRoutes() []route {
	triggers := h.deps.Config.Triggers
	return []route{
		{name: "mute", trigger: strings.ToLower(triggers.Mute), handle: h.handleMute},
		{name: "unmute", trigger: strings.ToLower(triggers.Unmute), handle: h.handleUnmute},
		{name: "joke", trigger: strings.ToLower(triggers.Joke), handle: h.handleJoke},
		{name: "dice", trigger: strings.ToLower(triggers.Dice), handle: h.handleDice},
		{name: "truth_or_dare", trigger: strings.ToLower(triggers.TruthOrDare), handle: h.handleTruthOrDare},
	}
}

// routeFor resolves raw message text to a trigger route, if any. Matching is
// exact on the trimmed, lowercased text.
func (h *messageHandler) routeFor(text string) (route, bool) {
	norm := strings.ToLower(strings.TrimSpace(text))
	for _, r := range h.routes {
		if norm == r.trigger {
			return r, true
		}
	}
	return route{}, false
}

func (h *messageHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "message")

	msg := update.Message
	if msg == nil || msg.Text == "" || msg.From == nil {
		log.DebugContext(ctx, "Ignoring update with nil message, empty text, or nil sender", "update_id", update.ID)
		return
	}

	if r, ok := h.routeFor(msg.Text); ok {
		log.DebugContext(ctx, "Trigger matched", "route", r.name, "chat_id", msg.Chat.ID, "user_id", msg.From.ID)
		r.handle(ctx, b, msg)
		return
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	muted, err := h.deps.Store.IsMuted(dbCtx, msg.From.ID)
	cancel()
	if err != nil {
		log.ErrorContext(ctx, "Failed to check mute state", "error", err, "user_id", msg.From.ID)
		sendText(ctx, b, log, msg.Chat.ID, h.deps.Config.Messages.GeneralError, nil)
		return
	}
	if muted {
		log.DebugContext(ctx, "Dropping free-form message from muted user", "user_id", msg.From.ID, "chat_id", msg.Chat.ID)
		return
	}

	sendTyping(ctx, b, msg.Chat.ID)

	aiCtx, cancel := context.WithTimeout(ctx, aiRequestTimeout)
	defer cancel()
	// The original text goes to the persona, not the lowercased copy.
	reply := h.deps.Gemini.Reply(aiCtx, msg.Text)
	sendText(ctx, b, log, msg.Chat.ID, reply, nil)
}

func (h *messageHandler) handleMute(ctx context.Context, b *bot.Bot, msg *models.Message) {
	log := h.deps.Logger.With("handler", "mute")

	dbCtx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	changed, err := h.deps.Store.Mute(dbCtx, msg.From.ID)
	cancel()
	if err != nil {
		log.ErrorContext(ctx, "Failed to mute user", "error", err, "user_id", msg.From.ID)
		sendText(ctx, b, log, msg.Chat.ID, h.deps.Config.Messages.GeneralError, nil)
		return
	}

	feedback := h.deps.Config.Messages.AlreadyMuted
	if changed {
		feedback = h.deps.Config.Messages.NowMuted
	}
	log.InfoContext(ctx, "Processed mute trigger", "user_id", msg.From.ID, "newly_muted", changed)
	sendText(ctx, b, log, msg.Chat.ID, feedback, nil)
}

func (h *messageHandler) handleUnmute(ctx context.Context, b *bot.Bot, msg *models.Message) {
	log := h.deps.Logger.With("handler", "unmute")

	dbCtx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	changed, err := h.deps.Store.Unmute(dbCtx, msg.From.ID)
	cancel()
	if err != nil {
		log.ErrorContext(ctx, "Failed to unmute user", "error", err, "user_id", msg.From.ID)
		sendText(ctx, b, log, msg.Chat.ID, h.deps.Config.Messages.GeneralError, nil)
		return
	}

	feedback := h.deps.Config.Messages.AlreadyActive
	if changed {
		feedback = h.deps.Config.Messages.NowActive
	}
	log.InfoContext(ctx, "Processed unmute trigger", "user_id", msg.From.ID, "newly_unmuted", changed)
	sendText(ctx, b, log, msg.Chat.ID, feedback, nil)
}

// handleJoke generates a joke regardless of the sender's mute state.
func (h *messageHandler) handleJoke(ctx context.Context, b *bot.Bot, msg *models.Message) {
	log := h.deps.Logger.With("handler", "joke")
	log.InfoContext(ctx, "Handling joke request", "chat_id", msg.Chat.ID, "user_id", msg.From.ID)

	sendTyping(ctx, b, msg.Chat.ID)

	aiCtx, cancel := context.WithTimeout(ctx, aiRequestTimeout)
	defer cancel()
	joke := h.deps.Gemini.Joke(aiCtx)
	sendText(ctx, b, log, msg.Chat.ID, joke, nil)
}

func (h *messageHandler) handleDice(ctx context.Context, b *bot.Bot, msg *models.Message) {
	log := h.deps.Logger.With("handler", "dice")

	if _, err := b.SendDice(ctx, &bot.SendDiceParams{ChatID: msg.Chat.ID}); err != nil {
		log.ErrorContext(ctx, "Failed to send dice", "error", err, "chat_id", msg.Chat.ID)
	}
}

// handleTruthOrDare opens a fresh session for the chat and presents the
// choice keyboard. A pending session for the same chat is replaced.
func (h *messageHandler) handleTruthOrDare(ctx context.Context, b *bot.Bot, msg *models.Message) {
	log := h.deps.Logger.With("handler", "truth_or_dare")

	if replaced := h.deps.Sessions.Begin(msg.Chat.ID); replaced {
		log.InfoContext(ctx, "Replacing pending truth-or-dare session", "chat_id", msg.Chat.ID)
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendMessageTimeout)
	defer cancel()
	_, err := b.SendMessage(sendCtx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        h.deps.Config.Messages.TruthOrDarePrompt,
		ReplyMarkup: TruthOrDareKeyboard(h.deps.Config),
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send truth-or-dare prompt", "error", err, "chat_id", msg.Chat.ID)
		// The prompt never reached the chat, so don't leave a dangling session.
		h.deps.Sessions.Cancel(msg.Chat.ID)
		return
	}

	log.InfoContext(ctx, "Truth-or-dare session opened", "chat_id", msg.Chat.ID)
}
