package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/metrics"
)

const (
	// DefaultScore fills any score the model does not return.
	DefaultScore = 40
	// MaxExpansion bounds the keywords taken from one expansion reply.
	MaxExpansion = 5
)

// ScoreBatch asks the model to rate each summary 0-100 against interests.
// It satisfies planner.FallbackScorer. On success the result has exactly
// len(summaries) entries, padded with DefaultScore where the reply was short
// or garbled.
func (c *Client) ScoreBatch(ctx context.Context, summaries, interests []string) ([]int, error) {
	if len(summaries) == 0 {
		return []int{}, nil
	}
	text, err := c.complete(ctx, "score", openai.ChatCompletionRequest{
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: scoreSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: scorePrompt(summaries, interests)},
		},
		Temperature: 0.5,
		MaxTokens:   100,
	})
	if err != nil {
		metrics.RecordAIFallback("score")
		return nil, err
	}
	return ParseScores(text, len(summaries), DefaultScore), nil
}

// Expand maps niche words such as "pokemon" to travel keywords. It satisfies
// interest.Expander. An empty reply is an error so the caller keeps the
// original words.
func (c *Client) Expand(ctx context.Context, words []string) ([]string, error) {
	if len(words) == 0 {
		return []string{}, nil
	}
	text, err := c.complete(ctx, "expand", openai.ChatCompletionRequest{
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: expandSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: expandPrompt(words)},
		},
		Temperature: 0.7,
		MaxTokens:   40,
	})
	if err != nil {
		metrics.RecordAIFallback("expand")
		return nil, err
	}
	kws := ParseKeywords(text, MaxExpansion)
	if len(kws) == 0 {
		metrics.RecordAIFallback("expand")
		return nil, fmt.Errorf("ai.Client.Expand: %w: %w", domain.ErrExternalService, errEmptyReply)
	}
	return kws, nil
}

// Suggest writes a short day-by-day plan for a multi-day stop. It satisfies
// narrative.Generator.
func (c *Client) Suggest(ctx context.Context, stop domain.PlannedStop, interests []string) (string, error) {
	text, err := c.complete(ctx, "suggest", openai.ChatCompletionRequest{
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: suggestPrompt(stop.Name, stop.Days, interests, domain.ActivityLabels(stop.Activities))},
		},
		Temperature: 0.8,
		MaxTokens:   120,
	})
	if err != nil {
		metrics.RecordAIFallback("suggest")
		return "", err
	}
	if text == "" {
		metrics.RecordAIFallback("suggest")
		return "", fmt.Errorf("ai.Client.Suggest: %w: %w", domain.ErrExternalService, errEmptyReply)
	}
	return text, nil
}
