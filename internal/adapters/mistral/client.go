// Package mistral talks to Mistral's chat completions endpoint through its
// OpenAI compatible API
package mistral

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"panchang/internal/platform/config"
	perr "panchang/internal/platform/errors"
	"panchang/internal/platform/logger"

	openai "github.com/sashabaranov/go-openai"
)

const (
	baseURLDefault     = "https://api.mistral.ai/v1"
	modelDefault       = "mistral-small"
	temperatureDefault = 0.7
	maxTokensDefault   = 500
	timeoutDefault     = 20 * time.Second
)

// operation labels carried on returned errors
const (
	OpComplete = "mistral.complete"
	OpModels   = "mistral.models"
)

// ErrNotConfigured is returned by NewClient without an API key
var ErrNotConfigured = perr.New(perr.ErrorCodeUnavailable, "mistral api key not configured")

// Options configures the Client
type Options struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// FromConfig reads options using the MISTRAL_ prefix under cfg
func FromConfig(cfg config.Conf) Options {
	m := cfg.Prefix("MISTRAL_")
	return Options{
		APIKey:      m.MayString("API_KEY", ""),
		BaseURL:     m.MayURL("BASE_URL", baseURLDefault),
		Model:       m.MayString("MODEL", modelDefault),
		Temperature: float32(m.MayFloat64("TEMPERATURE", temperatureDefault)),
		MaxTokens:   m.MayInt("MAX_TOKENS", maxTokensDefault),
		Timeout:     m.MayDuration("TIMEOUT", timeoutDefault),
	}
}

// Configured reports whether an API key is present
func (o Options) Configured() bool { return strings.TrimSpace(o.APIKey) != "" }

// Client wraps an OpenAI compatible client pointed at Mistral
type Client struct {
	api  *openai.Client
	hc   *http.Client
	opts Options
	log  logger.Logger
}

// NewClient builds a client, failing without an API key
func NewClient(o Options) (*Client, error) {
	if !o.Configured() {
		return nil, ErrNotConfigured
	}
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.Model == "" {
		o.Model = modelDefault
	}
	if o.MaxTokens <= 0 {
		o.MaxTokens = maxTokensDefault
	}
	if o.Timeout <= 0 {
		o.Timeout = timeoutDefault
	}
	hc := &http.Client{Timeout: o.Timeout}
	cfg := openai.DefaultConfig(o.APIKey)
	cfg.BaseURL = strings.TrimRight(o.BaseURL, "/")
	cfg.HTTPClient = hc
	return &Client{
		api:  openai.NewClientWithConfig(cfg),
		hc:   hc,
		opts: o,
		log:  *logger.Named("mistral"),
	}, nil
}

// Close releases idle connections
func (c *Client) Close() { c.hc.CloseIdleConnections() }

// Model is the configured model name
func (c *Client) Model() string { return c.opts.Model }

// Ping lists the models visible to the API key
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.api.ListModels(ctx); err != nil {
		return perr.WithOp(classify(ctx, err), OpModels)
	}
	return nil
}

// CompleteJSON sends a system and a user message, asks for a JSON object
// reply and decodes the first choice into out
func (c *Client) CompleteJSON(ctx context.Context, system, user string, out any) error {
	if err := c.complete(ctx, system, user, out); err != nil {
		return perr.WithOp(err, OpComplete)
	}
	return nil
}

func (c *Client) complete(ctx context.Context, system, user string, out any) error {
	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.opts.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
		Temperature:    c.opts.Temperature,
		MaxTokens:      c.opts.MaxTokens,
	})
	if err != nil {
		return classify(ctx, err)
	}

	c.log.Debug().
		Str("model", c.opts.Model).
		Int("choices", len(resp.Choices)).
		Int("total_tokens", resp.Usage.TotalTokens).
		Dur("latency", time.Since(start)).
		Msg("mistral completion")

	if len(resp.Choices) == 0 {
		return perr.Upstreamf("mistral returned no choices")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUpstream, "mistral reply is not the requested json")
	}
	return nil
}

func classify(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return perr.FromContext(ctx.Err())
	}
	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}
	switch {
	case status == http.StatusTooManyRequests:
		return perr.Wrapf(err, perr.ErrorCodeTooManyRequests, "mistral rate limited")
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return perr.Wrapf(err, perr.ErrorCodeUnauthorized, "mistral rejected api key")
	case status >= 500, status == 0:
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "mistral unavailable")
	default:
		return perr.Wrapf(err, perr.ErrorCodeUpstream, "mistral request failed with %d", status)
	}
}
