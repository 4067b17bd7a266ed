package gemini

import (
	"testing"

	"google.golang.org/genai"
)

func respWithText(text string, finish genai.FinishReason) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content:      &genai.Content{Parts: []*genai.Part{{Text: text}}},
				FinishReason: finish,
			},
		},
	}
}

func TestClassifyResponse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		resp        *genai.GenerateContentResponse
		wantText    string
		wantOutcome Outcome
	}{
		{
			name:        "nil response",
			resp:        nil,
			wantOutcome: OutcomeTransport,
		},
		{
			name: "prompt blocked",
			resp: &genai.GenerateContentResponse{
				PromptFeedback: &genai.GenerateContentResponsePromptFeedback{
					BlockReason: genai.BlockedReasonSafety,
				},
			},
			wantOutcome: OutcomeBlocked,
		},
		{
			name: "prompt blocked wins over candidates",
			resp: &genai.GenerateContentResponse{
				PromptFeedback: &genai.GenerateContentResponsePromptFeedback{
					BlockReason: genai.BlockedReasonSafety,
				},
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []*genai.Part{{Text: "ignored"}}}},
				},
			},
			wantOutcome: OutcomeBlocked,
		},
		{
			name:        "no candidates",
			resp:        &genai.GenerateContentResponse{},
			wantOutcome: OutcomeEmpty,
		},
		{
			name: "candidate without content",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonStop}},
			},
			wantOutcome: OutcomeEmpty,
		},
		{
			name:        "safety finish of generated output",
			resp:        respWithText("partial", genai.FinishReasonSafety),
			wantOutcome: OutcomeEmpty,
		},
		{
			name:        "recitation finish of generated output",
			resp:        respWithText("partial", genai.FinishReasonRecitation),
			wantOutcome: OutcomeEmpty,
		},
		{
			name:        "whitespace-only text",
			resp:        respWithText("  \n\t ", genai.FinishReasonStop),
			wantOutcome: OutcomeEmpty,
		},
		{
			name:        "ok with trimmed text",
			resp:        respWithText("  Ну, слушай сюда.  \n", genai.FinishReasonStop),
			wantText:    "Ну, слушай сюда.",
			wantOutcome: OutcomeOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			text, outcome := classifyResponse(tc.resp)
			if outcome != tc.wantOutcome {
				t.Errorf("outcome = %d, want %d", outcome, tc.wantOutcome)
			}
			if text != tc.wantText {
				t.Errorf("text = %q, want %q", text, tc.wantText)
			}
		})
	}
}

func TestPickMapsOutcomesToCallSiteStrings(t *testing.T) {
	t.Parallel()

	const blocked, empty, transport = "b", "e", "t"

	if got := pick("text", OutcomeOK, blocked, empty, transport); got != "text" {
		t.Errorf("OK outcome should return raw text, got %q", got)
	}
	if got := pick("", OutcomeBlocked, blocked, empty, transport); got != blocked {
		t.Errorf("Blocked outcome mapped to %q", got)
	}
	if got := pick("", OutcomeEmpty, blocked, empty, transport); got != empty {
		t.Errorf("Empty outcome mapped to %q", got)
	}
	if got := pick("", OutcomeTransport, blocked, empty, transport); got != transport {
		t.Errorf("Transport outcome mapped to %q", got)
	}
}

// Fallback strings must be pairwise distinct, both within a call site and
// across call sites, so the visible text identifies the failure.
func TestFallbackStringsAreDistinct(t *testing.T) {
	t.Parallel()

	all := map[string]string{
		"reply blocked":   ReplyBlockedMsg,
		"reply empty":     ReplyEmptyMsg,
		"reply transport": ReplyTransportMsg,
		"joke blocked":    JokeBlockedMsg,
		"joke empty":      JokeEmptyMsg,
		"joke transport":  JokeTransportMsg,
		"dare blocked":    DareBlockedMsg,
		"dare empty":      DareEmptyMsg,
		"dare transport":  DareTransportMsg,
	}

	seen := make(map[string]string, len(all))
	for name, msg := range all {
		if msg == "" {
			t.Errorf("%s fallback is empty", name)
			continue
		}
		if prev, dup := seen[msg]; dup {
			t.Errorf("%s and %s share the same fallback string %q", name, prev, msg)
		}
		seen[msg] = name
	}
}
