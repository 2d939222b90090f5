// Package ai wraps the Gemini API behind a single narrative-text
// capability so the numeric core can be tested without network
// access.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrUnavailable marks narrative-generation failures (network, auth,
// quota, empty candidates) so callers can tell them apart from
// validation or arithmetic errors.
var ErrUnavailable = errors.New("narrative generation unavailable")

// Generator produces free-form narrative text from a system persona
// and a user prompt. Replies are used as prose only and never parsed
// for structured data.
type Generator interface {
	Generate(ctx context.Context, persona, prompt string) (string, error)
}

// GeminiClient implements Generator against the Gemini API.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiClient creates a Gemini-backed Generator. The timeout
// bounds every Generate call.
func NewGeminiClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model, timeout: timeout}, nil
}

// Generate sends one persona + prompt pair to Gemini and returns the
// concatenated text parts of the first candidate. The call is bounded
// by the configured timeout so a hung remote call cannot stall a
// request indefinitely.
func (g *GeminiClient) Generate(ctx context.Context, persona, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	model := g.client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(persona)}}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: empty response", ErrUnavailable)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

// Close releases the underlying API client.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}
