package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type responderFunc func(ctx context.Context, message string, vector []float32) (string, error)

func (f responderFunc) Respond(ctx context.Context, message string, vector []float32) (string, error) {
	return f(ctx, message, vector)
}

func do(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestChatReply(t *testing.T) {
	var gotVector []float32
	router := NewRouter(responderFunc(func(ctx context.Context, message string, vector []float32) (string, error) {
		gotVector = vector
		return "hello " + message, nil
	}), 3)

	rec, out := do(t, router, http.MethodPost, "/api/chat", `{"message":"world","vector":[0.5,1]}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello world", out["reply"])
	assert.Equal(t, []float32{0.5, 1}, gotVector)
}

func TestChatWithoutVector(t *testing.T) {
	router := NewRouter(responderFunc(func(ctx context.Context, message string, vector []float32) (string, error) {
		assert.Nil(t, vector)
		return "ok", nil
	}), 0)

	rec, out := do(t, router, http.MethodPost, "/api/chat", `{"message":"hi"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", out["reply"])
}

func TestChatBadRequests(t *testing.T) {
	router := NewRouter(responderFunc(func(ctx context.Context, message string, vector []float32) (string, error) {
		t.Fatal("responder must not be called")
		return "", nil
	}), 0)

	for _, body := range []string{``, `{`, `{"message":"  "}`, `{"message":"hi","vector":"x"}`} {
		rec, out := do(t, router, http.MethodPost, "/api/chat", body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "Message required.", out["error"])
	}
}

func TestChatHidesUpstreamErrors(t *testing.T) {
	router := NewRouter(responderFunc(func(ctx context.Context, message string, vector []float32) (string, error) {
		return "", errors.New("upstream said: invalid api key sk-123")
	}), 0)

	rec, out := do(t, router, http.MethodPost, "/api/chat", `{"message":"hi"}`, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", out["error"])
	assert.NotContains(t, rec.Body.String(), "sk-123")
}

func TestHealth(t *testing.T) {
	router := NewRouter(responderFunc(nil), 42)

	rec, out := do(t, router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", out["status"])
	assert.Equal(t, 42.0, out["records"])
}

func TestCORSPreflight(t *testing.T) {
	router := NewRouter(responderFunc(nil), 0)
	h := CORS("https://ecodia.au")(router)

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "https://ecodia.au")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://ecodia.au", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewServerAppliesMiddleware(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	srv := NewServer(http.NotFoundHandler(), WithMiddleware(mw("outer"), mw("inner"))).(*httpServer)

	srv.srv.Handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner"}, order)
}
