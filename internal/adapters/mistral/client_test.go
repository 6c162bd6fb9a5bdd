package mistral

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"panchang/internal/platform/config"
	perr "panchang/internal/platform/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type advice struct {
	Favorable []string `json:"favorable"`
	Avoid     []string `json:"avoid"`
	Insight   string   `json:"insight"`
}

func completion(content string) string {
	b, _ := json.Marshal(map[string]any{
		"id":     "cmpl-1",
		"object": "chat.completion",
		"model":  "mistral-small",
		"choices": []any{map[string]any{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
		"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30},
	})
	return string(b)
}

func newServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(Options{APIKey: "k", BaseURL: srv.URL + "/v1/"})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestCompleteJSON(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		var req map[string]any
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "mistral-small", req["model"])
		assert.Equal(t, map[string]any{"type": "json_object"}, req["response_format"])
		msgs := req["messages"].([]any)
		assert.Len(t, msgs, 2)
		assert.Equal(t, "system", msgs[0].(map[string]any)["role"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, completion(`{"favorable":["a","b","c"],"avoid":["x"],"insight":"go"}`))
	})

	var out advice
	require.NoError(t, c.CompleteJSON(context.Background(), "sys", "user", &out))
	assert.Equal(t, []string{"a", "b", "c"}, out.Favorable)
	assert.Equal(t, "go", out.Insight)
	assert.Equal(t, "mistral-small", c.Model())
}

func TestCompleteJSON_BadContent(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, completion("Here are your recommendations!"))
	})
	var out advice
	err := c.CompleteJSON(context.Background(), "s", "u", &out)
	assert.Equal(t, perr.ErrorCodeUpstream, perr.CodeOf(err))
}

func TestCompleteJSON_NoChoices(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"x","object":"chat.completion","choices":[]}`)
	})
	var out advice
	err := c.CompleteJSON(context.Background(), "s", "u", &out)
	assert.Equal(t, perr.ErrorCodeUpstream, perr.CodeOf(err))
}

func TestCompleteJSON_StatusMapping(t *testing.T) {
	cases := map[int]perr.ErrorCode{
		http.StatusTooManyRequests:     perr.ErrorCodeTooManyRequests,
		http.StatusUnauthorized:        perr.ErrorCodeUnauthorized,
		http.StatusServiceUnavailable:  perr.ErrorCodeUnavailable,
		http.StatusUnprocessableEntity: perr.ErrorCodeUpstream,
	}
	for status, want := range cases {
		c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = io.WriteString(w, `{"error":{"message":"nope","type":"invalid_request_error"}}`)
		})
		var out advice
		err := c.CompleteJSON(context.Background(), "s", "u", &out)
		assert.Equal(t, want, perr.CodeOf(err), "status %d: %v", status, err)
		e, ok := perr.As(err)
		require.True(t, ok)
		assert.Equal(t, OpComplete, e.Op())
	}
}

func TestCompleteJSON_Canceled(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, completion(`{}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out advice
	err := c.CompleteJSON(ctx, "s", "u", &out)
	require.Error(t, err)
	assert.False(t, perr.Retryable(err))
}

func TestOptions(t *testing.T) {
	_, err := NewClient(Options{APIKey: "  "})
	assert.ErrorIs(t, err, ErrNotConfigured)

	t.Setenv("SERVICE_MISTRAL_API_KEY", "secret")
	t.Setenv("SERVICE_MISTRAL_MAX_TOKENS", "256")
	o := FromConfig(config.New().Prefix("SERVICE_"))
	assert.True(t, o.Configured())
	assert.Equal(t, 256, o.MaxTokens)
	assert.Equal(t, baseURLDefault, o.BaseURL)
	assert.InDelta(t, 0.7, float64(o.Temperature), 1e-6)
}

func TestPing(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer k" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		assert.Equal(t, "/v1/models", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"object":"list","data":[{"id":"mistral-small","object":"model"}]}`)
	})
	require.NoError(t, c.Ping(context.Background()))
}

func TestPing_Rejected(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"message":"bad key","type":"invalid_request_error"}}`)
	})
	err := c.Ping(context.Background())
	assert.Equal(t, perr.ErrorCodeUnauthorized, perr.CodeOf(err))
	e, ok := perr.As(err)
	require.True(t, ok)
	assert.Equal(t, OpModels, e.Op())
}
