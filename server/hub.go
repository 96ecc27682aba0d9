package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const wsIdlePingInterval = 20 * time.Second

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type broadcast struct {
	game string
	msg  wsMessage
}

type client struct {
	game string
	conn *websocket.Conn
	send chan []byte
}

// Hub fans session updates out to the websocket clients watching a game.
type Hub struct {
	mu        sync.Mutex
	clients   map[string]map[*client]struct{}
	broadcast chan broadcast
}

func NewHub() *Hub {
	return &Hub{
		clients:   map[string]map[*client]struct{}{},
		broadcast: make(chan broadcast, 32),
	}
}

// Run delivers published messages until ctx is done, then disconnects every
// client.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for _, clients := range h.clients {
				for c := range clients {
					close(c.send)
				}
			}
			h.clients = map[string]map[*client]struct{}{}
			h.mu.Unlock()
			return nil
		case b := <-h.broadcast:
			data, err := json.Marshal(b.msg)
			if err != nil {
				log.Error().Err(err).Msg("failed to encode websocket message")
				continue
			}
			h.mu.Lock()
			for c := range h.clients[b.game] {
				c.enqueue(data)
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues a message for the watchers of a game. It drops the message
// when the queue is full rather than block a move.
func (h *Hub) Publish(game string, msg wsMessage) {
	select {
	case h.broadcast <- broadcast{game: game, msg: msg}:
	default:
		log.Warn().Msgf("dropping %s message for game %s", msg.Type, game)
	}
}

func (h *Hub) Register(c *client) {
	h.mu.Lock()
	if h.clients[c.game] == nil {
		h.clients[c.game] = map[*client]struct{}{}
	}
	h.clients[c.game][c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c.game][c]; ok {
		delete(h.clients[c.game], c)
		close(c.send)
		if len(h.clients[c.game]) == 0 {
			delete(h.clients, c.game)
		}
	}
	h.mu.Unlock()
}

// Watchers counts the clients connected to a game.
func (h *Hub) Watchers(game string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[game])
}

func (c *client) enqueue(data []byte) {
	select {
	case c.send <- data:
	default:
	}
}

func mustMarshal(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

func serveWS(hub *Hub, game string, first wsMessage, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	c := &client{game: game, conn: conn, send: make(chan []byte, 16)}
	hub.Register(c)
	c.enqueue(mustMarshal(first))

	go func() {
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, c.send); err != nil {
			log.Debug().Err(err).Msgf("websocket writer for game %s stopped", game)
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			hub.Unregister(c)
			return
		}
	}
}

func writeWSWithHeartbeat(conn *websocket.Conn, send <-chan []byte) error {
	ticker := time.NewTicker(wsIdlePingInterval)
	defer ticker.Stop()
	lastWrite := time.Now()
	pingPayload := mustMarshal(wsMessage{Type: "ping"})

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < wsIdlePingInterval {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, pingPayload); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}
