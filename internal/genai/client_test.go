package genai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompletionServer returns a chat-completions endpoint that replies with
// the given content and records the Authorization header it saw.
func fakeCompletionServer(t *testing.T, content string, sawAuth *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*sawAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-test",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "` + content + `"}, "finish_reason": "stop"}]
		}`))
	}))
}

func TestClient_Complete(t *testing.T) {
	var auth string
	server := fakeCompletionServer(t, "pong", &auth)
	defer server.Close()

	c := NewClient(server.URL, "")
	text, err := c.Complete(context.Background(), "sk-test", "", "ping")
	require.NoError(t, err)
	assert.Equal(t, "pong", text)
	assert.Equal(t, "Bearer sk-test", auth, "per-call key should be forwarded")
}

func TestClient_Complete_MissingKey(t *testing.T) {
	c := NewClient("", "")
	_, err := c.Complete(context.Background(), "", "", "ping")
	require.ErrorIs(t, err, ErrMissingKey)
}

func TestClient_Complete_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "bad key", "type": "invalid_request_error"}}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "")
	_, err := c.Complete(context.Background(), "sk-bad", "", "ping")
	require.Error(t, err)

	hint := Remediation(err)
	assert.Contains(t, hint, "API key", "401 should point at the key")
}

func TestRemediation(t *testing.T) {
	assert.Contains(t, Remediation(ErrMissingKey), "Provide an API key")
	assert.Contains(t, Remediation(errors.New("dial tcp: refused")), "network connectivity")
}
