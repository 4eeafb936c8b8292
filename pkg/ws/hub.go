package ws

import "context"

// Hub maintains the set of active clients and broadcasts messages to the
// clients of a channel.

type clients map[*Client]bool

type channelMessage struct {
	channel string
	msg     []byte
}

type Hub struct {
	channels map[string]clients

	// Outbound messages for a channel.
	broadcast chan channelMessage

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Closed when Run returns.
	done chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan channelMessage, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		channels:   make(map[string]clients),
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for _, cs := range h.channels {
				for client := range cs {
					h.disconnect(client)
				}
			}
			return

		case client := <-h.register:
			if _, ok := h.channels[client.channel]; !ok {
				h.channels[client.channel] = make(clients)
			}
			h.channels[client.channel][client] = true

		case client := <-h.unregister:
			if _, ok := h.channels[client.channel][client]; ok {
				h.disconnect(client)
			}

		case m := <-h.broadcast:
			for client := range h.channels[m.channel] {
				select {
				case client.send <- m.msg:
				default:
					// Slow consumer.
					h.disconnect(client)
				}
			}
		}
	}
}

func (h *Hub) disconnect(client *Client) {
	delete(h.channels[client.channel], client)
	if len(h.channels[client.channel]) == 0 {
		delete(h.channels, client.channel)
	}

	close(client.send)
}

func (h *Hub) BroadcastByChannel(channel string, message []byte) {
	select {
	case h.broadcast <- channelMessage{channel: channel, msg: message}:
	case <-h.done:
	}
}
