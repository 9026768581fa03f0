package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAlertTestServer(t *testing.T) (*httptest.Server, chan map[string]any) {
	received := make(chan map[string]any, 4)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		received <- payload
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)
	return server, received
}

func TestWrapBackgroundTask_ReturnsTaskError(t *testing.T) {
	server, received := newAlertTestServer(t)
	m := NewErrorAlertMiddleware(AlertConfig{
		WebhookURL:  server.URL,
		Environment: "dev",
		AppName:     "ruebydash",
	})

	taskErr := errors.New("listener exploded")
	wrapped := m.WrapBackgroundTask("http server", func() error {
		return taskErr
	})

	err := wrapped()
	assert.Equal(t, taskErr, err)

	select {
	case payload := <-received:
		embeds := payload["embeds"].([]any)
		require.Len(t, embeds, 1)
		title := embeds[0].(map[string]any)["title"].(string)
		assert.Contains(t, title, "[dev]")
		assert.Contains(t, title, "ruebydash")
	case <-time.After(2 * time.Second):
		t.Fatal("expected a webhook alert for the failed task")
	}
}

func TestWrapBackgroundTask_DeduplicatesRepeatedErrors(t *testing.T) {
	server, received := newAlertTestServer(t)
	m := NewErrorAlertMiddleware(AlertConfig{
		WebhookURL:  server.URL,
		Environment: "production",
		AppName:     "ruebydash",
	})

	wrapped := m.WrapBackgroundTask("http server", func() error {
		return errors.New("same failure every time")
	})
	require.Error(t, wrapped())
	require.Error(t, wrapped())

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("expected the first failure to alert")
	}
	select {
	case <-received:
		t.Fatal("repeat of the same error within the cooldown must not alert again")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWrapBackgroundTask_RecoversPanic(t *testing.T) {
	m := NewErrorAlertMiddleware(AlertConfig{AppName: "ruebydash"})

	wrapped := m.WrapBackgroundTask("http server", func() error {
		panic("boom")
	})

	assert.NotPanics(t, func() {
		_ = wrapped()
	})
}

func TestHTTPMiddleware_RecoversPanic(t *testing.T) {
	m := NewErrorAlertMiddleware(AlertConfig{AppName: "ruebydash"})

	handler := m.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("handler blew up")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	})
}
