package game

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// NetworkSession is the slice of a websocket the game layer needs; tests plug
// in fakes.
type NetworkSession interface {
	Close(errCode string)
	Write(data []byte) error
	Read() ([]byte, error)
	Ping() error
}

type websocketConnection struct {
	socket *websocket.Conn
}

func NewWebsocketConnection(conn *websocket.Conn) *websocketConnection {
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(appData string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	return &websocketConnection{conn}
}

func (wc *websocketConnection) Write(data []byte) error {
	wc.socket.SetWriteDeadline(time.Now().Add(writeWait))
	return wc.socket.WriteMessage(websocket.TextMessage, data)
}

func (wc *websocketConnection) Ping() error {
	wc.socket.SetWriteDeadline(time.Now().Add(writeWait))
	return wc.socket.WriteMessage(websocket.PingMessage, nil)
}

func (wc *websocketConnection) Read() ([]byte, error) {
	_, p, err := wc.socket.ReadMessage()
	return p, err
}

func (wc *websocketConnection) Close(errCode string) {
	wc.socket.SetWriteDeadline(time.Now().Add(writeWait))
	wc.socket.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, errCode))
	wc.socket.Close()
}

const (
	writeWait     = 20 * time.Second
	pongWait      = time.Minute
	pingPeriod    = 30 * time.Second
	sendQueueSize = 256
)

// serverMessage is the outbound envelope: {"event": ..., "payload": ...}.
type serverMessage struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

type client struct {
	id      string
	session NetworkSession
	send    chan []byte
	done    chan struct{}
	once    sync.Once
}

// enqueue is fire-and-forget: a full queue drops the message instead of
// blocking the coordinator, and a closed client swallows it.
func (cl *client) enqueue(data []byte) {
	select {
	case <-cl.done:
	case cl.send <- data:
	default:
		log.Warn().Str("conn", cl.id).Msg("send queue full, dropping message")
	}
}

func (cl *client) shutdown() {
	cl.once.Do(func() { close(cl.done) })
}

// WritePump drains the send queue onto the socket and keeps the connection
// alive with pings. Runs as one goroutine per connection and owns closing the
// session.
func (cl *client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer cl.session.Close("")
	for {
		select {
		case <-cl.done:
			return
		case data := <-cl.send:
			if err := cl.session.Write(data); err != nil {
				return
			}
		case <-ticker.C:
			if err := cl.session.Ping(); err != nil {
				return
			}
		}
	}
}

// Hub implements Transport over per-connection send queues. Subscriptions
// stand in for socket.io's socket.join/leave.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
	rooms   map[string]map[string]*client
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*client),
		rooms:   make(map[string]map[string]*client),
	}
}

func (h *Hub) Register(connID string, session NetworkSession) *client {
	cl := &client{
		id:      connID,
		session: session,
		send:    make(chan []byte, sendQueueSize),
		done:    make(chan struct{}),
	}
	h.mu.Lock()
	h.clients[connID] = cl
	h.mu.Unlock()
	return cl
}

func (h *Hub) Unregister(connID string) {
	h.mu.Lock()
	cl, ok := h.clients[connID]
	if ok {
		delete(h.clients, connID)
		for _, members := range h.rooms {
			delete(members, connID)
		}
	}
	h.mu.Unlock()
	if ok {
		cl.shutdown()
	}
}

func (h *Hub) Subscribe(connID, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	cl, ok := h.clients[connID]
	if !ok {
		return
	}
	members, ok := h.rooms[roomID]
	if !ok {
		members = make(map[string]*client)
		h.rooms[roomID] = members
	}
	members[connID] = cl
}

func (h *Hub) Unsubscribe(connID, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if members, ok := h.rooms[roomID]; ok {
		delete(members, connID)
		if len(members) == 0 {
			delete(h.rooms, roomID)
		}
	}
}

func (h *Hub) Broadcast(roomID, event string, payload any) {
	data, err := json.Marshal(serverMessage{Event: event, Payload: payload})
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("marshal broadcast")
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, cl := range h.rooms[roomID] {
		cl.enqueue(data)
	}
}

func (h *Hub) SendTo(connID, event string, payload any) {
	data, err := json.Marshal(serverMessage{Event: event, Payload: payload})
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("marshal message")
		return
	}
	h.mu.RLock()
	cl, ok := h.clients[connID]
	h.mu.RUnlock()
	if ok {
		cl.enqueue(data)
	}
}
