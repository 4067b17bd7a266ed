// Package gemini implements the persona response gateway over Google's
// Gemini API. Every call variant classifies the raw result into exactly one
// outcome and maps failures to fixed in-persona strings, so upstream error
// shapes never reach conversational output.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/QueenCDN/AntiShmalala/internal/config"
)

// Outcome classifies a single generation attempt.
type Outcome int

const (
	// OutcomeOK means usable text was produced.
	OutcomeOK Outcome = iota
	// OutcomeBlocked means the prompt itself was rejected by content safety.
	OutcomeBlocked
	// OutcomeEmpty means generation succeeded but produced no usable text,
	// or the generated output was rejected for safety/recitation.
	OutcomeEmpty
	// OutcomeTransport means a network or service-level failure, including
	// context expiry.
	OutcomeTransport
)

// Client defines the persona gateway interface used by the bot handlers.
// Reply, Joke, and DareTask always return user-facing text; TruthQuestion
// signals failure so the caller can substitute its own message.
type Client interface {
	Reply(ctx context.Context, text string) string
	Joke(ctx context.Context) string
	TruthQuestion(ctx context.Context) (string, error)
	DareTask(ctx context.Context) string
}

type sdkClient struct {
	genaiClient   *genai.Client
	log           *slog.Logger
	contentConfig *genai.GenerateContentConfig
	modelName     string
	maxRetries    int
	retryDelay    time.Duration
}

// NewClient creates a new Gemini persona gateway with the provided configuration.
// The persona system instruction is fixed for the lifetime of the client.
func NewClient(
	ctx context.Context,
	cfg config.GeminiConfig,
	log *slog.Logger,
) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if log == nil {
		log = slog.Default()
	}

	gi, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	baseCfg := &genai.GenerateContentConfig{
		Temperature: &cfg.Temperature,

		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockNone},
		},
	}
	if cfg.SystemInstruction != "" {
		baseCfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: cfg.SystemInstruction}}}
	}

	logger := log.With("component", "gemini_client")
	logger.Info("Gemini client initialized successfully", "model", cfg.ModelName)
	return &sdkClient{
		genaiClient:   gi,
		log:           logger,
		contentConfig: baseCfg,
		modelName:     cfg.ModelName,
		maxRetries:    cfg.MaxRetries,
		retryDelay:    time.Duration(cfg.RetryDelaySeconds) * time.Second,
	}, nil
}

// Reply generates a free-form in-persona chat reply. Every failure path
// yields user-facing text.
func (c *sdkClient) Reply(ctx context.Context, text string) string {
	reply, outcome := c.generate(ctx, "reply", text)
	return pick(reply, outcome, ReplyBlockedMsg, ReplyEmptyMsg, ReplyTransportMsg)
}

// Joke asks the persona for a joke. Every failure path yields user-facing text.
func (c *sdkClient) Joke(ctx context.Context) string {
	joke, outcome := c.generate(ctx, "joke", JokePrompt)
	return pick(joke, outcome, JokeBlockedMsg, JokeEmptyMsg, JokeTransportMsg)
}

// TruthQuestion asks the persona for a "truth" question. Any non-OK outcome
// is returned as an error so the conversation layer can show its own message.
func (c *sdkClient) TruthQuestion(ctx context.Context) (string, error) {
	question, outcome := c.generate(ctx, "truth", TruthPrompt)
	if outcome != OutcomeOK {
		return "", fmt.Errorf("truth question generation failed with outcome %d", outcome)
	}
	return question, nil
}

// DareTask asks the persona for a "dare" task. Every failure path yields
// user-facing text.
func (c *sdkClient) DareTask(ctx context.Context) string {
	task, outcome := c.generate(ctx, "dare", DarePrompt)
	return pick(task, outcome, DareBlockedMsg, DareEmptyMsg, DareTransportMsg)
}

// generate runs one persona generation and classifies the result.
func (c *sdkClient) generate(ctx context.Context, op, prompt string) (string, Outcome) {
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := c.generateContentWithRetries(ctx, contents)
	if err != nil {
		c.log.ErrorContext(ctx, "Gemini generation failed", "operation", op, "error", err)
		return "", OutcomeTransport
	}

	text, outcome := classifyResponse(resp)
	if outcome != OutcomeOK {
		c.log.WarnContext(ctx, "Gemini generation produced no usable text",
			"operation", op, "outcome", outcome)
	}
	return text, outcome
}

// classifyResponse maps a raw generation response to exactly one outcome.
// Precedence: prompt block, then safety/recitation finish or empty payload,
// then OK with trimmed text.
func classifyResponse(resp *genai.GenerateContentResponse) (string, Outcome) {
	if resp == nil {
		return "", OutcomeTransport
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockedReasonUnspecified {
		return "", OutcomeBlocked
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", OutcomeEmpty
	}

	switch resp.Candidates[0].FinishReason {
	case genai.FinishReasonSafety, genai.FinishReasonRecitation:
		return "", OutcomeEmpty
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", OutcomeEmpty
	}
	return text, OutcomeOK
}

// pick maps a classified result onto the call site's fixed fallback strings.
func pick(text string, outcome Outcome, blocked, empty, transport string) string {
	switch outcome {
	case OutcomeOK:
		return text
	case OutcomeBlocked:
		return blocked
	case OutcomeEmpty:
		return empty
	default:
		return transport
	}
}

func (c *sdkClient) generateContentWithRetries(ctx context.Context, contents []*genai.Content) (*genai.GenerateContentResponse, error) {
	var resp *genai.GenerateContentResponse
	var err error

	for i := 0; i <= c.maxRetries; i++ {
		resp, err = c.genaiClient.Models.GenerateContent(ctx, c.modelName, contents, c.contentConfig)
		if err == nil {
			return resp, nil
		}

		c.log.WarnContext(ctx, "Gemini API call failed, checking for retry",
			"attempt", i+1, "max_retries", c.maxRetries, "error", err)

		var apiErr *genai.APIError
		if errors.As(err, &apiErr) && (apiErr.Code == 500 || apiErr.Code == 503) {
			if i < c.maxRetries {
				c.log.InfoContext(ctx, "Retrying Gemini API call after retriable APIError",
					"delay", c.retryDelay, "code", apiErr.Code)
				time.Sleep(c.retryDelay)
				continue
			}
			return nil, fmt.Errorf("gemini API call failed after %d retries (APIError code %d): %w", c.maxRetries, apiErr.Code, err)
		}

		return nil, fmt.Errorf("gemini API call failed: %w", err)
	}
	return nil, err
}
