package game

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// clientMessage is the inbound envelope; payload decoding is deferred until
// the event name is known.
type clientMessage struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

type joinRoomPayload struct {
	RoomID string `json:"roomId"`
	Player Player `json:"player"`
	IsSolo bool   `json:"isSolo"`
}

type leaveRoomPayload struct {
	RoomID string `json:"roomId"`
	Player Player `json:"player"`
}

type kickPlayerPayload struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
}

type playerReadyPayload struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
	Ready    bool   `json:"ready"`
}

type roomOnlyPayload struct {
	RoomID string `json:"roomId"`
}

type makeGuessPayload struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
	Letter   string `json:"letter"`
}

type solveGamePayload struct {
	RoomID       string   `json:"roomId"`
	PlayerID     string   `json:"playerId"`
	GuessedWords []string `json:"guessedWords"`
}

type Handler struct {
	hub         *Hub
	coordinator *Coordinator
	upgrader    websocket.Upgrader
}

func NewHandler(hub *Hub, coordinator *Coordinator) *Handler {
	return &Handler{
		hub:         hub,
		coordinator: coordinator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// SocketHandler upgrades the connection and runs the read loop until the
// client goes away. All intents arrive in-band on the socket.
func (h *Handler) SocketHandler(ctx *gin.Context) {
	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Error().Err(err).Str("ip", ctx.ClientIP()).Msg("ws upgrade failed")
		return
	}

	connID := uuid.NewString()
	session := NewWebsocketConnection(conn)
	cl := h.hub.Register(connID, session)
	go cl.WritePump()

	h.readLoop(connID, session)

	h.hub.Unregister(connID)
	h.coordinator.Disconnect(connID)
}

func (h *Handler) readLoop(connID string, session NetworkSession) {
	limiter := rate.NewLimiter(10, 20)
	for {
		data, err := session.Read()
		if err != nil {
			return
		}
		if !limiter.Allow() {
			log.Warn().Str("conn", connID).Msg("rate limit exceeded, dropping intent")
			continue
		}
		if err := h.dispatch(connID, data); err != nil {
			log.Debug().Err(err).Str("conn", connID).Msg("intent rejected")
		}
	}
}

// dispatch decodes one intent and hands it to the coordinator. Rejections are
// logged and nothing is sent back: on the wire an ignored intent stays a
// silent no-op.
func (h *Handler) dispatch(connID string, data []byte) error {
	var msg clientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}

	switch msg.Event {
	case IntentJoinRoom:
		var p joinRoomPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		return h.coordinator.Join(connID, p.RoomID, p.Player, p.IsSolo)

	case IntentLeaveRoom:
		var p leaveRoomPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		return h.coordinator.Leave(p.RoomID, p.Player)

	case IntentKickPlayer:
		var p kickPlayerPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		return h.coordinator.Kick(p.RoomID, p.PlayerID)

	case IntentPlayerReady:
		var p playerReadyPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		return h.coordinator.SetReady(p.RoomID, p.PlayerID, p.Ready)

	case IntentStartGame:
		var p roomOnlyPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		return h.coordinator.StartGame(p.RoomID)

	case IntentMakeGuess:
		var p makeGuessPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		return h.coordinator.GuessLetter(p.RoomID, p.PlayerID, p.Letter)

	case IntentSolveGame:
		var p solveGamePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		return h.coordinator.Solve(p.RoomID, p.PlayerID, p.GuessedWords)

	case IntentResetGame:
		var p roomOnlyPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		return h.coordinator.ResetGame(p.RoomID)
	}
	return fmt.Errorf("%w: %q", ErrUnknownEvent, msg.Event)
}
