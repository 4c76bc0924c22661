package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meguinhazeromiseria/scraper-mega/internal/common"
)

func groqServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "llama-3.3-70b-versatile", payload["model"])
		messages, ok := payload["messages"].([]any)
		require.True(t, ok)
		assert.Len(t, messages, 2)

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestGroqClassify(t *testing.T) {
	server := groqServer(t, http.StatusOK,
		`{"choices":[{"message":{"role":"assistant","content":"  tecnologia\n"}}]}`)

	client, err := newGroqClient(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	response, err := client.Classify(context.Background(), "Classifique: notebook dell")
	require.NoError(t, err)
	assert.Equal(t, "tecnologia", response.Answer)
}

func TestGroqClassifyHTTPError(t *testing.T) {
	server := groqServer(t, http.StatusServiceUnavailable, `{"error":"overloaded"}`)

	client, err := newGroqClient(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Classify(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrServiceUnavailable)
}

func TestGroqClassifyNoChoices(t *testing.T) {
	server := groqServer(t, http.StatusOK, `{"choices":[]}`)

	client, err := newGroqClient(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Classify(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrServiceUnavailable)
}
