package signalling

import (
	"log/slog"

	"github.com/carelink/callrelay/internal/metrics"
	"github.com/carelink/callrelay/internal/service"
	"github.com/carelink/callrelay/internal/sockets"
	"github.com/gofiber/contrib/websocket"
)

type Session struct {
	Socket   sockets.Socket
	SocketID sockets.SocketID
	Cleanup  func()
}

// SessionHandler tracks connection lifecycles. Its cleanup closure is the
// lifecycle reconciler: it runs exactly once per disconnect, clearing the
// presence entry first and then tearing down any call the socket was in.
type SessionHandler struct {
	pool     *sockets.SocketPool
	presence *service.PresenceService
	calls    *service.CallService
}

func NewSessionHandler(pool *sockets.SocketPool, presence *service.PresenceService, calls *service.CallService) *SessionHandler {
	return &SessionHandler{
		pool:     pool,
		presence: presence,
		calls:    calls,
	}
}

func (h *SessionHandler) RegisterClientSession(conn *websocket.Conn) *Session {
	slog.Info("client connected", "remoteAddr", conn.NetConn().RemoteAddr())
	return h.registerSession(sockets.NewBufferedSocket(sockets.NewSocket(conn)))
}

func (h *SessionHandler) registerSession(socket sockets.Socket) *Session {
	socketID := h.pool.Add(socket)

	metrics.ActiveWebSocketConnections.Inc()
	metrics.WebSocketConnectionsTotal.Inc()

	cleanup := func() {
		metrics.ActiveWebSocketConnections.Dec()
		metrics.WebSocketDisconnectionsTotal.Inc()

		h.presence.Unregister(string(socketID))
		h.calls.DisconnectSocket(string(socketID))
		h.pool.CloseSocket(socketID)
	}

	slog.Info("client session started", "socketID", socketID)

	return &Session{
		Socket:   socket,
		SocketID: socketID,
		Cleanup:  cleanup,
	}
}
