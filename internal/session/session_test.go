package session_test

import (
	"sync"
	"testing"

	"github.com/QueenCDN/AntiShmalala/internal/session"
)

func TestBeginAndClaim(t *testing.T) {
	t.Parallel()

	m := session.NewManager()
	const chatID = int64(100)

	if m.Awaiting(chatID) {
		t.Fatal("fresh manager should have no pending session")
	}

	if replaced := m.Begin(chatID); replaced {
		t.Error("first Begin should not report a replaced session")
	}
	if !m.Awaiting(chatID) {
		t.Fatal("session should be pending after Begin")
	}

	if !m.Claim(chatID) {
		t.Error("Claim of a pending session should succeed")
	}
	if m.Awaiting(chatID) {
		t.Error("session should be terminal after Claim")
	}
	if m.Claim(chatID) {
		t.Error("terminal state is absorbing: second Claim must fail")
	}
}

func TestBeginReplacesPendingSession(t *testing.T) {
	t.Parallel()

	m := session.NewManager()
	const chatID = int64(5)

	m.Begin(chatID)
	if replaced := m.Begin(chatID); !replaced {
		t.Error("re-trigger while awaiting should report a replaced session")
	}
	if !m.Awaiting(chatID) {
		t.Error("chat should still be awaiting after replacement")
	}
	// The replacement is a single fresh session, not a stacked one.
	if !m.Claim(chatID) {
		t.Error("Claim after replacement should succeed once")
	}
	if m.Claim(chatID) {
		t.Error("Claim after replacement should succeed only once")
	}
}

func TestCancel(t *testing.T) {
	t.Parallel()

	m := session.NewManager()
	const chatID = int64(77)

	if m.Cancel(chatID) {
		t.Error("Cancel without a pending session should report false")
	}

	m.Begin(chatID)
	if !m.Cancel(chatID) {
		t.Error("Cancel of a pending session should report true")
	}
	if m.Awaiting(chatID) {
		t.Error("session should be terminal after Cancel")
	}
}

func TestSessionsAreIndependentPerChat(t *testing.T) {
	t.Parallel()

	m := session.NewManager()
	m.Begin(1)
	m.Begin(2)

	if !m.Claim(1) {
		t.Error("chat 1 claim should succeed")
	}
	if !m.Awaiting(2) {
		t.Error("claiming chat 1 must not end chat 2's session")
	}
}

func TestConcurrentClaimsYieldOneWinner(t *testing.T) {
	t.Parallel()

	m := session.NewManager()
	const chatID = int64(9)
	m.Begin(chatID)

	const claimers = 16
	var wg sync.WaitGroup
	results := make(chan bool, claimers)

	for range [claimers]struct{}{} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- m.Claim(chatID)
		}()
	}
	wg.Wait()
	close(results)

	winners := 0
	for won := range results {
		if won {
			winners++
		}
	}
	if winners != 1 {
		t.Errorf("expected exactly one winning claim, got %d", winners)
	}
}
