package handlers

import (
	"io"
	"log/slog"
	"testing"

	"github.com/QueenCDN/AntiShmalala/internal/config"
	"github.com/QueenCDN/AntiShmalala/internal/session"
)

func testDeps() HandlerDeps {
	return HandlerDeps{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: &config.Config{
			Triggers: config.TriggersConfig{
				Mute:        "Шма, отключись",
				Unmute:      "Шма, включись",
				Joke:        "Шма, расскажи анекдот",
				Dice:        "Кинь кубик 🎲",
				TruthOrDare: "Правда или Действие 😈",
			},
		},
		Sessions: session.NewManager(),
	}
}

func newTestRouter(t *testing.T) *messageHandler {
	t.Helper()

	h := &messageHandler{deps: testDeps()}
	h.routes = h.buildRoutes()
	return h
}

func TestRouteForPriorityAndVariants(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)

	testCases := []struct {
		name      string
		text      string
		wantRoute string
		wantMatch bool
	}{
		{name: "mute exact", text: "Шма, отключись", wantRoute: "mute", wantMatch: true},
		{name: "mute lowercase", text: "шма, отключись", wantRoute: "mute", wantMatch: true},
		{name: "mute uppercase with padding", text: "  ШМА, ОТКЛЮЧИСЬ  ", wantRoute: "mute", wantMatch: true},
		{name: "unmute exact", text: "шма, включись", wantRoute: "unmute", wantMatch: true},
		{name: "unmute mixed case", text: " Шма, Включись", wantRoute: "unmute", wantMatch: true},
		{name: "joke trigger", text: "шма, расскажи анекдот", wantRoute: "joke", wantMatch: true},
		{name: "joke button casing", text: "Шма, РАССКАЖИ анекдот", wantRoute: "joke", wantMatch: true},
		{name: "dice button", text: "кинь кубик 🎲", wantRoute: "dice", wantMatch: true},
		{name: "truth or dare button", text: "правда или действие 😈", wantRoute: "truth_or_dare", wantMatch: true},
		{name: "free-form text", text: "как дела?", wantMatch: false},
		{name: "trigger as substring only", text: "шма, отключись пожалуйста", wantMatch: false},
		{name: "empty text", text: "", wantMatch: false},
		{name: "whitespace only", text: "   ", wantMatch: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r, ok := h.routeFor(tc.text)
			if ok != tc.wantMatch {
				t.Fatalf("routeFor(%q) matched=%v, want %v", tc.text, ok, tc.wantMatch)
			}
			if ok && r.name != tc.wantRoute {
				t.Errorf("routeFor(%q) = %q, want %q", tc.text, r.name, tc.wantRoute)
			}
		})
	}
}

// Mute and unmute sit ahead of everything else so control commands keep
// working while the bot is muted for the sender.
func TestRouteOrderPutsControlTriggersFirst(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)

	wantOrder := []string{"mute", "unmute", "joke", "dice", "truth_or_dare"}
	if len(h.routes) != len(wantOrder) {
		t.Fatalf("expected %d routes, got %d", len(wantOrder), len(h.routes))
	}
	for i, name := range wantOrder {
		if h.routes[i].name != name {
			t.Errorf("route %d = %q, want %q", i, h.routes[i].name, name)
		}
	}
}
