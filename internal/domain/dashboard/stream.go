package dashboard

import (
	"context"
	"net/http"

	"github.com/clawdcat/mintboard/pkg/ws"
	"github.com/clawdcat/mintboard/pkg/xcontext"
	"github.com/gorilla/websocket"
	"golang.org/x/exp/slices"
)

// StreamDomain pushes every mint card change to websocket clients.
type StreamDomain interface {
	Serve(ctx context.Context, w http.ResponseWriter, r *http.Request)
}

type streamDomain struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

func NewStreamDomain(hub *ws.Hub, allowedOrigins []string) StreamDomain {
	return &streamDomain{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, "*") ||
					slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

// Serve blocks until the client goes away. Clients asking for compress=true
// receive zlib compressed binary frames.
func (d *streamDomain) Serve(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	conn, err := d.upgrader.Upgrade(w, r, nil)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot upgrade websocket connection: %v", err)
		return
	}

	compress := r.URL.Query().Get("compress") == "true"
	xcontext.Logger(ctx).Debugf("Websocket client %s joined %s", r.RemoteAddr, MintCardChannel)
	ws.NewClient(d.hub, conn, MintCardChannel, compress).Serve()
	xcontext.Logger(ctx).Debugf("Websocket client %s left", r.RemoteAddr)
}
