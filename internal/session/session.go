// Package session tracks the per-chat state of the truth-or-dare mini-game.
// A session has exactly two states: awaiting the player's choice, and
// terminal. Terminal sessions are simply absent from the map; nothing is
// persisted across restarts.
package session

import "sync"

// Manager is a concurrency-safe map of chat ID to pending session state.
// All transitions are atomic under one mutex, so overlapping updates for the
// same chat cannot double-handle a choice or interleave transitions.
type Manager struct {
	mu       sync.Mutex
	awaiting map[int64]struct{}
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{awaiting: make(map[int64]struct{})}
}

// Begin puts the chat into the awaiting-choice state. If a session was
// already pending for this chat, it is replaced by the fresh one (the bot
// re-prompts rather than ignoring the trigger). Returns true if a pending
// session was replaced.
func (m *Manager) Begin(chatID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, replaced := m.awaiting[chatID]
	m.awaiting[chatID] = struct{}{}
	return replaced
}

// Awaiting reports whether the chat has a pending session.
func (m *Manager) Awaiting(chatID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.awaiting[chatID]
	return ok
}

// Claim consumes the pending session for the chat, transitioning it to
// terminal. Returns true only for the first caller; a second concurrent
// claim (for example two button taps racing) gets false.
func (m *Manager) Claim(chatID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.awaiting[chatID]; !ok {
		return false
	}
	delete(m.awaiting, chatID)
	return true
}

// Cancel ends any pending session for the chat. Returns true if a session
// was pending. Cancelling an already-terminal session is a no-op.
func (m *Manager) Cancel(chatID int64) bool {
	return m.Claim(chatID)
}
