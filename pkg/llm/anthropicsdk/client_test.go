package anthropicsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/ragguard/pkg/llm"
)

func TestCompleteMessages(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/v1/messages"), r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-test",
			"content":[{"type":"text","text":"{\"valid\": false}"}],
			"stop_reason":"end_turn","usage":{"input_tokens":3,"output_tokens":4}}`))
	}))
	defer srv.Close()

	c, err := New("key", srv.URL, "claude-test", 0, time.Second)
	require.NoError(t, err)
	out, err := c.Complete(context.Background(), llm.NewRequest("", "classify", "bagaimana cara membuat ktp", 0, 0.6))
	require.NoError(t, err)
	assert.Equal(t, `{"valid": false}`, out)

	assert.Equal(t, "claude-test", body["model"])
	assert.EqualValues(t, defaultMaxTokens, body["max_tokens"])
	system, ok := body["system"].([]any)
	require.True(t, ok)
	assert.Equal(t, "classify", system[0].(map[string]any)["text"])
	msgs, ok := body["messages"].([]any)
	require.True(t, ok)
	assert.Len(t, msgs, 1)
}

func TestCompleteNoText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_2","type":"message","role":"assistant","model":"m","content":[],
			"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":0}}`))
	}))
	defer srv.Close()

	c, err := New("key", srv.URL, "m", 64, time.Second)
	require.NoError(t, err)
	_, err = c.Complete(context.Background(), llm.NewRequest("", "s", "u", 0, 0))
	assert.ErrorIs(t, err, llm.ErrEmptyChoices)
}
