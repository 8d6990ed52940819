// Package ai holds the language-model backed collaborators of the planner:
// fallback relevance scoring, interest expansion and day-plan text. Every
// call goes through one rate limiter, one circuit breaker and a per-call
// timeout; callers substitute local defaults on any error.
package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/metrics"
)

// Completer is the subset of *openai.Client the package uses.
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Config configures a Client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // empty means the public OpenAI endpoint
	Timeout time.Duration
	// RateLimit is the sustained calls per second; Burst the bucket size.
	RateLimit float64
	Burst     int
}

const breakerName = "openai"

var (
	errNoChoices  = errors.New("response has no choices")
	errEmptyReply = errors.New("empty reply")
)

// Client calls a chat completion model.
type Client struct {
	api     Completer
	model   string
	timeout time.Duration
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[string]
	log     *slog.Logger
}

// New returns a Client talking to the OpenAI API, or ErrConfiguration when
// no API key is set.
func New(cfg Config, log *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("ai.New: %w: OPENAI_API_KEY is not set", domain.ErrConfiguration)
	}
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	return NewWithCompleter(openai.NewClientWithConfig(oc), cfg, log), nil
}

// NewWithCompleter returns a Client over api. Zero Config fields get
// defaults: model gpt-4o-mini, 8s timeout, 3 calls/s with burst 5.
func NewWithCompleter(api Completer, cfg Config, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	if cfg.Model == "" {
		cfg.Model = openai.GPT4oMini
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 8 * time.Second
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 3
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}

	metrics.SetCircuitBreakerState(breakerName, 0)
	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
			metrics.SetCircuitBreakerState(name, stateValue(to))
		},
	})

	return &Client{
		api:     api,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
		cb:      cb,
		log:     log,
	}
}

// complete sends one chat request and returns the trimmed text of the first
// choice. Errors wrap domain.ErrExternalService.
func (c *Client) complete(ctx context.Context, op string, req openai.ChatCompletionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req.Model = c.model
	if err := c.limiter.Wait(ctx); err != nil {
		metrics.RecordAICall(op, "rejected", 0)
		return "", fmt.Errorf("ai.Client.%s: %w: rate limit: %w", op, domain.ErrExternalService, err)
	}

	start := time.Now()
	text, err := c.cb.Execute(func() (string, error) {
		resp, err := c.api.CreateChatCompletion(ctx, req)
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", errNoChoices
		}
		return strings.TrimSpace(resp.Choices[0].Message.Content), nil
	})
	elapsed := time.Since(start)

	if err != nil {
		outcome := "error"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = "rejected"
		}
		metrics.RecordAICall(op, outcome, elapsed)
		return "", fmt.Errorf("ai.Client.%s: %w: %w", op, domain.ErrExternalService, err)
	}
	metrics.RecordAICall(op, "ok", elapsed)
	c.log.DebugContext(ctx, "model call", "operation", op, "duration_ms", elapsed.Milliseconds())
	return text, nil
}

func stateValue(s gobreaker.State) int {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
