package ai_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/ai"
	"github.com/pkordes/trip-planner/internal/domain"
)

// mockCompleter is a hand-written test double for ai.Completer.
type mockCompleter struct {
	create   func(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	requests []openai.ChatCompletionRequest
}

func (m *mockCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	m.requests = append(m.requests, req)
	return m.create(ctx, req)
}

var _ ai.Completer = (*mockCompleter)(nil)

func reply(text string) func(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return func(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		return openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: text}}},
		}, nil
	}
}

func fail(err error) func(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return func(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		return openai.ChatCompletionResponse{}, err
	}
}

func testConfig() ai.Config {
	return ai.Config{Model: "test-model", Timeout: time.Second, RateLimit: 1000, Burst: 100}
}

func TestNew_RequiresKey(t *testing.T) {
	_, err := ai.New(ai.Config{}, nil)

	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestNew_WithKey(t *testing.T) {
	c, err := ai.New(ai.Config{APIKey: "sk-test", BaseURL: "http://localhost:1"}, nil)

	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestClient_ScoreBatch(t *testing.T) {
	m := &mockCompleter{create: reply(" 85, 20\n90 ")}
	c := ai.NewWithCompleter(m, testConfig(), nil)

	got, err := c.ScoreBatch(context.Background(),
		[]string{"Tokyo, Japan: neon", "Lima, Peru: ceviche", "Oslo, Norway: fjords", "Rome, Italy: ruins"},
		[]string{"sushi", "cars"})

	require.NoError(t, err)
	assert.Equal(t, []int{85, 20, 90, ai.DefaultScore}, got)

	require.Len(t, m.requests, 1)
	req := m.requests[0]
	assert.Equal(t, "test-model", req.Model)
	assert.Equal(t, 100, req.MaxTokens)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Equal(t,
		"Interests: sushi, cars\nCities:\n1. Tokyo, Japan: neon\n2. Lima, Peru: ceviche\n3. Oslo, Norway: fjords\n4. Rome, Italy: ruins\n\nScores:",
		req.Messages[1].Content)
}

func TestClient_ScoreBatch_Empty(t *testing.T) {
	m := &mockCompleter{create: reply("1")}
	c := ai.NewWithCompleter(m, testConfig(), nil)

	got, err := c.ScoreBatch(context.Background(), nil, []string{"sushi"})

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, m.requests)
}

func TestClient_ScoreBatch_Error(t *testing.T) {
	boom := errors.New("503 from upstream")
	c := ai.NewWithCompleter(&mockCompleter{create: fail(boom)}, testConfig(), nil)

	_, err := c.ScoreBatch(context.Background(), []string{"x"}, []string{"y"})

	assert.ErrorIs(t, err, domain.ErrExternalService)
	assert.ErrorIs(t, err, boom)
}

func TestClient_NoChoices(t *testing.T) {
	m := &mockCompleter{create: func(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		return openai.ChatCompletionResponse{}, nil
	}}
	c := ai.NewWithCompleter(m, testConfig(), nil)

	_, err := c.ScoreBatch(context.Background(), []string{"x"}, []string{"y"})

	assert.ErrorIs(t, err, domain.ErrExternalService)
}

func TestClient_Expand(t *testing.T) {
	m := &mockCompleter{create: reply(`["Anime", 'gaming', tokyo, akihabara, japanese, extra]`)}
	c := ai.NewWithCompleter(m, testConfig(), nil)

	got, err := c.Expand(context.Background(), []string{"pikachu"})

	require.NoError(t, err)
	assert.Equal(t, []string{"anime", "gaming", "tokyo", "akihabara", "japanese"}, got)
	assert.Equal(t, "What travel keywords match: pikachu", m.requests[0].Messages[1].Content)
}

func TestClient_Expand_EmptyReply(t *testing.T) {
	c := ai.NewWithCompleter(&mockCompleter{create: reply(" , ")}, testConfig(), nil)

	_, err := c.Expand(context.Background(), []string{"pikachu"})

	assert.ErrorIs(t, err, domain.ErrExternalService)
}

func TestClient_Suggest(t *testing.T) {
	m := &mockCompleter{create: reply("Day 1: Tsukiji breakfast. Day 2: Hakone day trip.")}
	c := ai.NewWithCompleter(m, testConfig(), nil)
	stop := domain.PlannedStop{Days: 2}
	stop.Name = "Tokyo"
	stop.Activities = []domain.Activity{{Label: "Sushi class"}, {Label: "Car meet"}, {Label: "Anime tour"}, {Label: "Onsen"}}

	got, err := c.Suggest(context.Background(), stop, []string{"sushi", "cars", "anime", "hiking", "food"})

	require.NoError(t, err)
	assert.Equal(t, "Day 1: Tsukiji breakfast. Day 2: Hakone day trip.", got)
	prompt := m.requests[0].Messages[0].Content
	assert.True(t, strings.HasPrefix(prompt, "Create a 2-day itinerary for Tokyo based on these interests: sushi, cars, anime, hiking."))
	assert.Contains(t, prompt, "Available activities: Sushi class, Car meet, Anime tour\n")
	assert.Contains(t, prompt, "Cover ALL 2 days.")
}

func TestClient_Suggest_NoActivities(t *testing.T) {
	m := &mockCompleter{create: reply("Day 1: Walk.")}
	c := ai.NewWithCompleter(m, testConfig(), nil)
	stop := domain.PlannedStop{Days: 2}
	stop.Name = "Nowhere"

	_, err := c.Suggest(context.Background(), stop, nil)

	require.NoError(t, err)
	assert.Contains(t, m.requests[0].Messages[0].Content, "Available activities: typical activities")
}

func TestClient_Timeout(t *testing.T) {
	m := &mockCompleter{create: func(ctx context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		<-ctx.Done()
		return openai.ChatCompletionResponse{}, ctx.Err()
	}}
	cfg := testConfig()
	cfg.Timeout = 20 * time.Millisecond
	c := ai.NewWithCompleter(m, cfg, nil)

	start := time.Now()
	_, err := c.Expand(context.Background(), []string{"x"})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	m := &mockCompleter{create: fail(errors.New("down"))}
	c := ai.NewWithCompleter(m, testConfig(), nil)

	for range 5 {
		_, err := c.ScoreBatch(context.Background(), []string{"x"}, nil)
		require.Error(t, err)
	}
	_, err := c.ScoreBatch(context.Background(), []string{"x"}, nil)

	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.ErrorIs(t, err, domain.ErrExternalService)
	assert.Len(t, m.requests, 5)
}
