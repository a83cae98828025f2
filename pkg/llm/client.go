// Package llm wraps the OpenAI API for chat completion and embedding.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/channeling-app/reportpipe/pkg/config"
)

// Client is the chat and embedding client used by every pipeline step.
// Safe for concurrent use.
type Client struct {
	api openai.Client
	cfg config.LLMConfig
}

// NewClient creates an OpenAI-backed client from configuration.
func NewClient(cfg config.LLMConfig) *Client {
	return &Client{
		api: openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		cfg: cfg,
	}
}

// Complete runs a single-turn chat completion and returns the raw text.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	start := time.Now()

	messages := []openai.ChatCompletionMessageParamUnion{}
	if system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(user))

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.cfg.Model),
		Messages:    messages,
		Temperature: openai.Float(c.cfg.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	content := resp.Choices[0].Message.Content
	slog.Debug("Chat completion finished",
		"model", c.cfg.Model,
		"duration", time.Since(start),
		"output_chars", len(content))
	return content, nil
}

// CompleteJSON runs a completion and unmarshals the answer into out. Models
// often wrap JSON in a markdown code fence; the fence is stripped before
// parsing. A parse failure returns both the error and the raw text so
// callers can decide whether to retry.
func (c *Client) CompleteJSON(ctx context.Context, system, user string, out any) (string, error) {
	raw, err := c.Complete(ctx, system, user)
	if err != nil {
		return "", err
	}

	cleaned := StripCodeFence(raw)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return raw, fmt.Errorf("failed to parse completion as JSON: %w", err)
	}
	return raw, nil
}

// Embed returns the embedding vector for a single text.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch returns one embedding vector per input text, in order.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := c.api.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(c.cfg.EmbeddingModel),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
		Dimensions: openai.Int(int64(c.cfg.EmbeddingDimensions)),
	})
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embedding response has %d vectors for %d inputs", len(resp.Data), len(texts))
	}

	vecs := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		vec := make([]float32, len(d.Embedding))
		for j, v := range d.Embedding {
			vec[j] = float32(v)
		}
		vecs[i] = vec
	}
	return vecs, nil
}

// StripCodeFence removes a surrounding markdown code fence, with or without
// a language tag, from model output.
func StripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		// Drop the language tag line (e.g. "json").
		first := strings.TrimSpace(trimmed[:idx])
		if first == "" || !strings.ContainsAny(first, " \t{[") {
			trimmed = trimmed[idx+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
