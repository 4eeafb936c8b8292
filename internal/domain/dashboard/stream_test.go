package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/clawdcat/mintboard/pkg/testutil"
	"github.com/clawdcat/mintboard/pkg/ws"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func newStreamServer(t *testing.T, hub *ws.Hub, allowedOrigins []string) string {
	ctx := testutil.MockContext()
	d := NewStreamDomain(hub, allowedOrigins)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d.Serve(ctx, w, r)
	}))
	t.Cleanup(server.Close)

	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func Test_streamDomain_Serve(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := ws.NewHub()
	go hub.Run(ctx)

	url := newStreamServer(t, hub, []string{"http://localhost:3000"})

	header := http.Header{}
	header.Set("Origin", "http://localhost:3000")
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	defer conn.Close()

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
				hub.BroadcastByChannel(MintCardChannel, []byte(`{"connected":false}`))
			}
		}
	}()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, got, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, `{"connected":false}`, string(got))
}

func Test_streamDomain_RejectOrigin(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := ws.NewHub()
	go hub.Run(ctx)

	url := newStreamServer(t, hub, []string{"http://localhost:3000"})

	header := http.Header{}
	header.Set("Origin", "http://example.com")
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}
