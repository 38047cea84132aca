package signalling

import (
	"log/slog"
	"time"

	"github.com/carelink/callrelay/internal/api"
	"github.com/carelink/callrelay/internal/config"
	"github.com/carelink/callrelay/internal/metrics"
	"github.com/carelink/callrelay/internal/service"
	"github.com/carelink/callrelay/internal/sockets"
	"github.com/gofiber/contrib/websocket"
)

// ClientHandler is the signalling router: it validates inbound messages and
// relays registration, call-control and negotiation events between sockets.
// Stale or unknown ids are silent no-ops; the state machine tolerates late
// messages caused by races.
type ClientHandler struct {
	config         *config.AppConfig
	presence       *service.PresenceService
	calls          *service.CallService
	sessionHandler *SessionHandler
	pool           *sockets.SocketPool
}

func NewClientHandler(
	cfg *config.AppConfig,
	presence *service.PresenceService,
	calls *service.CallService,
	sessionHandler *SessionHandler,
	pool *sockets.SocketPool,
) *ClientHandler {
	return &ClientHandler{
		config:         cfg,
		presence:       presence,
		calls:          calls,
		sessionHandler: sessionHandler,
		pool:           pool,
	}
}

func (h *ClientHandler) HandleSocket(c *websocket.Conn) {
	session := h.sessionHandler.RegisterClientSession(c)
	defer session.Cleanup()

	pingInterval := h.config.Signalling.PingIntervalMsec
	if err := session.Socket.WriteJSON(api.ServerMessage{
		Event: api.ServerMessageEventInit,
		Init: &api.InitMessage{
			SocketID:     string(session.SocketID),
			PingInterval: pingInterval,
		},
	}); err != nil {
		slog.Error("failed to send init", "socketID", session.SocketID)
		return
	}

	loop := NewConnectionLoop(session.Socket, session.SocketID, time.Duration(pingInterval)*time.Millisecond)
	loop.Start()
	defer loop.Stop()

	for {
		// Fresh value each read so stale payload pointers from a prior
		// message never leak into the next one.
		var message api.ClientMessage
		if err := session.Socket.ReadJSON(&message); err != nil {
			slog.Debug("client disconnected", "socketID", session.SocketID)
			break
		}

		h.processMessage(session, message)
	}
}

func (h *ClientHandler) processMessage(session *Session, m api.ClientMessage) {
	switch m.Event {
	case api.ClientMessageEventRegister:
		h.handleRegister(session, m)
	case api.ClientMessageEventInitiateCall:
		h.handleInitiateCall(session, m)
	case api.ClientMessageEventAcceptCall:
		h.handleAcceptCall(session, m)
	case api.ClientMessageEventDeclineCall:
		h.handleDeclineCall(session, m)
	case api.ClientMessageEventOffer, api.ClientMessageEventAnswer, api.ClientMessageEventIceCandidate:
		h.handleSignal(session, m)
	case api.ClientMessageEventEndCall:
		h.handleEndCall(session, m)
	case api.ClientMessageEventAvailability:
		h.handleAvailability(session, m)
	case api.ClientMessageEventPong:
		// keep-alive only
	default:
		slog.Warn("unknown client event", "socketID", session.SocketID, "event", m.Event)
	}
}

func (h *ClientHandler) handleRegister(session *Session, m api.ClientMessage) {
	if m.Register == nil || m.Register.UserID == "" {
		return
	}

	if err := h.presence.Register(string(session.SocketID), m.Register.UserID,
		string(m.Register.Role), m.Register.Name); err != nil {
		slog.Error("failed to register identity", "socketID", session.SocketID, "error", err)
		return
	}
	slog.Info("identity registered",
		"socketID", session.SocketID, "userId", m.Register.UserID, "role", m.Register.Role)
}

func (h *ClientHandler) handleInitiateCall(session *Session, m api.ClientMessage) {
	if m.InitiateCall == nil {
		return
	}

	callID, delivered := h.calls.Initiate(string(session.SocketID),
		m.InitiateCall.CallerID, m.InitiateCall.CallerName, string(m.InitiateCall.CalleeRole))

	if delivered == 0 {
		// Not an error: the call produced zero deliveries and stays
		// undeliverable until someone of that role registers.
		slog.Info("no callees online for call",
			"callId", callID, "callerId", m.InitiateCall.CallerID, "role", m.InitiateCall.CalleeRole)
		return
	}
	slog.Info("call initiated",
		"callId", callID, "callerId", m.InitiateCall.CallerID, "callees", delivered)
}

func (h *ClientHandler) handleAcceptCall(session *Session, m api.ClientMessage) {
	if m.AcceptCall == nil || m.AcceptCall.CallID == "" || m.AcceptCall.CallerSocketID == "" {
		return
	}

	h.calls.Accept(m.AcceptCall.CallID, m.AcceptCall.CallerSocketID, string(session.SocketID))
	slog.Info("call accepted", "callId", m.AcceptCall.CallID, "calleeSocketID", session.SocketID)
}

func (h *ClientHandler) handleDeclineCall(session *Session, m api.ClientMessage) {
	if m.DeclineCall == nil || m.DeclineCall.CallerSocketID == "" {
		return
	}

	h.calls.Decline(m.DeclineCall.CallerSocketID, string(session.SocketID), m.DeclineCall.Reason)
	slog.Info("call declined", "calleeSocketID", session.SocketID)
}

// handleSignal relays offer/answer/candidate payloads verbatim to the target
// socket, tagged with the sender's id. The payload is an opaque blob.
func (h *ClientHandler) handleSignal(session *Session, m api.ClientMessage) {
	if m.Signal == nil || m.Signal.To == "" {
		return
	}

	target := h.pool.GetSocket(sockets.SocketID(m.Signal.To))
	if target == nil {
		slog.Debug("relay target offline", "socketID", session.SocketID, "to", m.Signal.To)
		return
	}

	_ = target.WriteJSON(api.ServerMessage{
		Event: api.ServerMessageEvent(m.Event),
		Signal: &api.SignalMessage{
			To:      m.Signal.To,
			From:    string(session.SocketID),
			Payload: m.Signal.Payload,
		},
	})
	metrics.SignalsRelayedTotal.WithLabelValues(string(m.Event)).Inc()
}

func (h *ClientHandler) handleEndCall(session *Session, m api.ClientMessage) {
	if m.EndCall == nil || m.EndCall.CallID == "" {
		return
	}

	if h.calls.End(m.EndCall.CallID, "") {
		slog.Info("call ended", "callId", m.EndCall.CallID, "socketID", session.SocketID)
	}
}

func (h *ClientHandler) handleAvailability(session *Session, m api.ClientMessage) {
	if m.Availability == nil || m.Availability.UserID == "" {
		return
	}

	if err := h.presence.UpdateAvailability(m.Availability.UserID, m.Availability.Available); err != nil {
		slog.Debug("availability update for unknown user",
			"socketID", session.SocketID, "userId", m.Availability.UserID)
	}
}
