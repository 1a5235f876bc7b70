package sampling

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	desktopapi "github.com/zed-industries/desktop-api-bindings"
)

func TestPlaceholderSampler(t *testing.T) {
	out, err := PlaceholderSampler{}.Sample(context.Background(), "hi", &CreateMessageRequest{})
	require.NoError(t, err)
	assert.Equal(t, &CreateMessageResult{
		Role:       "assistant",
		Content:    TextContent("Placeholder response to: hi (model: default-model)"),
		Model:      "default-model",
		StopReason: "endTurn",
	}, out)

	req := &CreateMessageRequest{ModelPreferences: &ModelPreferences{Hints: []ModelHint{{Name: "tiny"}, {Name: "huge"}}}}
	out, err = PlaceholderSampler{}.Sample(context.Background(), "hi", req)
	require.NoError(t, err)
	assert.Equal(t, "tiny", out.Model)
	assert.Equal(t, "Placeholder response to: hi (model: tiny)", out.Content.Text)
}

func TestStopReason(t *testing.T) {
	assert.Equal(t, "endTurn", stopReason("end_turn"))
	assert.Equal(t, "maxTokens", stopReason("max_tokens"))
	assert.Equal(t, "stopSequence", stopReason("stop_sequence"))
	assert.Equal(t, "tool_use", stopReason("tool_use"))
}

func anthropicServer(t *testing.T, status int, reply string, got *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		if got != nil {
			assert.NoError(t, json.Unmarshal(body, got))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestAnthropicSampler(srv *httptest.Server) *AnthropicSampler {
	return NewAnthropicSampler("fallback-model",
		option.WithBaseURL(srv.URL+"/"),
		option.WithAPIKey("test-key"),
		option.WithMaxRetries(0),
	)
}

func TestAnthropicSampler(t *testing.T) {
	var body map[string]any
	srv := anthropicServer(t, http.StatusOK, `{
		"id": "msg_1",
		"type": "message",
		"role": "assistant",
		"model": "hinted-model",
		"content": [{"type": "text", "text": "sunny"}],
		"stop_reason": "end_turn",
		"stop_sequence": null,
		"usage": {"input_tokens": 3, "output_tokens": 1}
	}`, &body)

	req := &CreateMessageRequest{
		ModelPreferences: &ModelPreferences{Hints: []ModelHint{{Name: "hinted-model"}}},
		SystemPrompt:     desktopapi.Ptr("be brief"),
		MaxTokens:        desktopapi.Ptr(uint32(50)),
		StopSequences:    []string{"END"},
	}
	out, err := newTestAnthropicSampler(srv).Sample(context.Background(), "weather?", req)
	require.NoError(t, err)
	assert.Equal(t, &CreateMessageResult{
		Role:       "assistant",
		Content:    TextContent("sunny"),
		Model:      "hinted-model",
		StopReason: "endTurn",
	}, out)

	assert.Equal(t, "hinted-model", body["model"])
	assert.EqualValues(t, 50, body["max_tokens"])
	assert.Equal(t, []any{"END"}, body["stop_sequences"])
	msgs, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 1)
	b, err := json.Marshal(msgs[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"role": "user", "content": [{"type": "text", "text": "weather?"}]}`, string(b))
}

func TestAnthropicSamplerDefaults(t *testing.T) {
	var body map[string]any
	srv := anthropicServer(t, http.StatusOK, `{
		"id": "msg_2",
		"type": "message",
		"role": "assistant",
		"model": "fallback-model",
		"content": [{"type": "text", "text": "ok"}],
		"stop_reason": "max_tokens",
		"stop_sequence": null,
		"usage": {"input_tokens": 1, "output_tokens": 1}
	}`, &body)

	out, err := newTestAnthropicSampler(srv).Sample(context.Background(), "hi", &CreateMessageRequest{})
	require.NoError(t, err)
	assert.Equal(t, "maxTokens", out.StopReason)
	assert.Equal(t, "fallback-model", body["model"])
	assert.EqualValues(t, 1024, body["max_tokens"])
	assert.NotContains(t, body, "system")
}

func TestAnthropicSamplerErrors(t *testing.T) {
	srv := anthropicServer(t, http.StatusBadRequest,
		`{"type": "error", "error": {"type": "invalid_request_error", "message": "bad model"}}`, nil)
	_, err := newTestAnthropicSampler(srv).Sample(context.Background(), "hi", &CreateMessageRequest{})
	assert.ErrorContains(t, err, "anthropic request failed")

	empty := anthropicServer(t, http.StatusOK, `{
		"id": "msg_3",
		"type": "message",
		"role": "assistant",
		"model": "m",
		"content": [],
		"stop_reason": "end_turn",
		"stop_sequence": null,
		"usage": {"input_tokens": 1, "output_tokens": 0}
	}`, nil)
	_, err = newTestAnthropicSampler(empty).Sample(context.Background(), "hi", &CreateMessageRequest{})
	assert.ErrorContains(t, err, "no text content returned")
}
