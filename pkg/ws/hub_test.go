package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, hub *Hub, compress bool) *httptest.Server {
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		NewClient(hub, conn, r.URL.Query().Get("channel"), compress).Serve()
	}))
	t.Cleanup(server.Close)

	return server
}

func dial(t *testing.T, server *httptest.Server, channel string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/?channel=" + channel
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

// broadcastUntilReceived keeps broadcasting because registration races with
// the dial returning.
func broadcastUntilReceived(t *testing.T, hub *Hub, conn *websocket.Conn, channel string, msg []byte) (int, []byte) {
	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(5 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				hub.BroadcastByChannel(channel, msg)
			}
		}
	}()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	messageType, got, err := conn.ReadMessage()
	require.NoError(t, err)

	return messageType, got
}

func TestHub_BroadcastByChannel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	go hub.Run(ctx)

	server := newTestServer(t, hub, false)
	conn := dial(t, server, "0xabc")

	messageType, got := broadcastUntilReceived(t, hub, conn, "0xabc", []byte(`{"status":"idle"}`))
	require.Equal(t, websocket.TextMessage, messageType)
	require.Equal(t, `{"status":"idle"}`, string(got))
}

func TestHub_Compressed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	go hub.Run(ctx)

	server := newTestServer(t, hub, true)
	conn := dial(t, server, "0xdef")

	messageType, got := broadcastUntilReceived(t, hub, conn, "0xdef", []byte("hello"))
	require.Equal(t, websocket.BinaryMessage, messageType)

	plain, err := Decompress(got)
	require.NoError(t, err)
	require.Equal(t, "hello", string(plain))
}
