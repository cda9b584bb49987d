package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/w-h-a/soul/generator"
)

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "Prefix:\nhello", req.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"hi there"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	g := NewGenerator(
		generator.WithApiKey("key"),
		generator.WithModel("test-model"),
		generator.WithBaseURL(srv.URL),
		generator.WithPromptPrefix("Prefix:"),
	)

	out, err := g.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi there", out)
}

func TestGenerateFailures(t *testing.T) {
	bodies := map[string]struct {
		status int
		body   string
	}{
		"upstream error": {http.StatusBadGateway, `{"error":{"message":"down"}}`},
		"no choices":     {http.StatusOK, `{"id":"1","choices":[]}`},
	}

	for name, c := range bodies {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(c.status)
				_, _ = w.Write([]byte(c.body))
			}))
			defer srv.Close()

			g := NewGenerator(generator.WithApiKey("key"), generator.WithBaseURL(srv.URL))

			_, err := g.Generate(context.Background(), "hello")
			assert.ErrorIs(t, err, generator.ErrGenerationFailed)
		})
	}
}
