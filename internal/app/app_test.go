package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/scratchcard/static"
)

func resetEnv(t *testing.T) {
	for _, key := range []string{
		"APP_BASE_PATH", "CARD_ROWS", "CARD_COLS", "CARD_WIN_COUNT", "CARD_MAX_CELLS", "WS_MAX_MESSAGE_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	resetEnv(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := New(logger, static.EmbeddedFS())
	require.NoError(t, err)
	return a
}

func TestRoutes(t *testing.T) {
	srv := httptest.NewServer(newTestApp(t).Handler())
	defer srv.Close()

	tests := []struct {
		path        string
		status      int
		contentType string
		body        string
	}{
		{"/healthz", http.StatusOK, "application/json", `"ok"`},
		{"/card/defaults", http.StatusOK, "application/json", `"win_count":1`},
		{"/", http.StatusOK, "text/html", "Scratch Card Game"},
		{"/static/js/card.js", http.StatusOK, "javascript", "/card/connect"},
		{"/static/css/card.css", http.StatusOK, "text/css", ".grid"},
		{"/nope", http.StatusNotFound, "", ""},
	}
	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + test.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, test.status, resp.StatusCode)
			if test.status != http.StatusOK {
				return
			}
			assert.Contains(t, resp.Header.Get("Content-Type"), test.contentType)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), test.body)
		})
	}
}

func TestBasePath(t *testing.T) {
	resetEnv(t)
	t.Setenv("APP_BASE_PATH", "/scratch")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := New(logger, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scratch/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStartStopsOnCancel(t *testing.T) {
	a := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- a.Start(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestCardSocketThroughMiddleware(t *testing.T) {
	srv := httptest.NewServer(newTestApp(t).Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/card/connect?rows=1&cols=1&win_count=1"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	var frame map[string]any
	require.NoError(t, conn.ReadJSON(&frame))
	require.Contains(t, frame, "view")

	// non-finite and far-off coordinates never land on the surface
	moves := "m 0 NaN Inf\np 1e300 1e300\nm 0 -Inf 5"
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(moves)))

	frame = map[string]any{}
	require.NoError(t, conn.ReadJSON(&frame))
	assert.NotContains(t, frame, "revealed")
	view, ok := frame["view"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, view["finished"])
}
