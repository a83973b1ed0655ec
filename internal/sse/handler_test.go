package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readEvent returns the event type of the next SSE frame
func readEvent(t *testing.T, scanner *bufio.Scanner) string {
	t.Helper()
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "event: ") {
			return strings.TrimPrefix(line, "event: ")
		}
	}
	require.NoError(t, scanner.Err())
	t.Fatal("stream ended")
	return ""
}

func TestHandler_StreamsFilteredEvents(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types="+EventTypeItemStocked, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	scanner := bufio.NewScanner(resp.Body)
	assert.Equal(t, EventTypeConnected, readEvent(t, scanner))

	waitForClients(t, hub, 1)
	hub.Broadcast(EventTypeInventoryAged, DayAgedPayload{Day: 1})
	hub.Broadcast(EventTypeItemStocked, StockChangePayload{Name: "Aged Brie"})

	assert.Equal(t, EventTypeItemStocked, readEvent(t, scanner))
}

func TestHandler_DisconnectUnregisters(t *testing.T) {
	hub := startHub(t)
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	waitForClients(t, hub, 1)
	cancel()
	resp.Body.Close()

	waitForClients(t, hub, 0)
}

func TestHandler_StoppedHub(t *testing.T) {
	hub := NewHub()
	hub.Start()
	hub.Stop()

	rec := httptest.NewRecorder()
	Handler(hub).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
