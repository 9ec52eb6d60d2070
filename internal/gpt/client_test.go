package gpt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/cozinha/internal/logger"
)

func TestClientChat(t *testing.T) {
	var got payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "secret", r.Header.Get("api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"olá"}}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", logger.New(logger.LevelOff, nil), WithModel("gpt-4o-mini"), WithMaxTokens(100))
	reply, err := c.Chat(context.Background(), []Message{TextMessage(RoleUser, "oi")}, Temperature(0.2))
	require.NoError(t, err)

	assert.Equal(t, "olá", reply)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, 100, got.MaxTokens)
	assert.InDelta(t, 0.2, got.Temperature, 1e-9)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "oi", got.Messages[0].Content[0].Text)

	_, err = c.Chat(context.Background(), []Message{TextMessage(RoleUser, "oi")}, MaxTokens(50))
	require.NoError(t, err)
	assert.Equal(t, 50, got.MaxTokens, "per-call cap overrides the client default")
	assert.InDelta(t, 0.7, got.Temperature, 1e-9)
}

func TestClientErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusInternalServerError, `{"error":"down"}`, nil},
		{"no choices", http.StatusOK, `{"choices":[]}`, ErrEmptyReply},
		{"blank reply", http.StatusOK, `{"choices":[{"message":{"content":"  "}}]}`, ErrEmptyReply},
		{"bad json", http.StatusOK, `not json`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "k", logger.New(logger.LevelOff, nil))
			_, err := c.Chat(context.Background(), []Message{TextMessage(RoleUser, "oi")})
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", logger.New(logger.LevelOff, nil), WithHTTPTimeout(20*time.Millisecond))
	_, err := c.Chat(context.Background(), []Message{TextMessage(RoleUser, "oi")})
	assert.Error(t, err)
}
