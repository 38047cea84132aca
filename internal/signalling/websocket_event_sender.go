package signalling

import (
	"fmt"

	"github.com/carelink/callrelay/internal/api"
	"github.com/carelink/callrelay/internal/domain"
	"github.com/carelink/callrelay/internal/sockets"
)

// WebSocketEventSender implements domain.EventSender over the socket pool.
type WebSocketEventSender struct {
	pool *sockets.SocketPool
}

func NewWebSocketEventSender(pool *sockets.SocketPool) *WebSocketEventSender {
	return &WebSocketEventSender{pool: pool}
}

func (w *WebSocketEventSender) BroadcastUserStatus(identity domain.Identity) {
	w.pool.Broadcast(api.ServerMessage{
		Event: api.ServerMessageEventUserStatus,
		UserStatus: &api.UserStatusMessage{
			UserID:    identity.UserID,
			Available: identity.Available,
			Role:      api.Role(identity.Role),
			Name:      identity.DisplayName,
		},
	})
}

func (w *WebSocketEventSender) SendIncomingCall(socketID, callID, callerID, callerName, callerSocketID string) error {
	return w.send(socketID, api.ServerMessage{
		Event: api.ServerMessageEventIncomingCall,
		IncomingCall: &api.IncomingCallMessage{
			CallID:         callID,
			CallerID:       callerID,
			CallerName:     callerName,
			CallerSocketID: callerSocketID,
		},
	})
}

func (w *WebSocketEventSender) SendCallAccepted(socketID, callID, calleeSocketID string) error {
	return w.send(socketID, api.ServerMessage{
		Event: api.ServerMessageEventCallAccepted,
		CallAccepted: &api.CallAcceptedMessage{
			CallID:         callID,
			CalleeSocketID: calleeSocketID,
		},
	})
}

func (w *WebSocketEventSender) SendCallTaken(socketID, callID string) error {
	return w.send(socketID, api.ServerMessage{
		Event:        api.ServerMessageEventCallTaken,
		CallAccepted: &api.CallAcceptedMessage{CallID: callID},
	})
}

func (w *WebSocketEventSender) SendCallDeclined(socketID string, reason *string) error {
	return w.send(socketID, api.ServerMessage{
		Event:        api.ServerMessageEventCallDeclined,
		CallDeclined: &api.CallDeclinedMessage{Reason: reason},
	})
}

func (w *WebSocketEventSender) SendCallEnded(socketID, callID, reason string) error {
	var reasonPtr *string
	if reason != "" {
		r := reason
		reasonPtr = &r
	}
	return w.send(socketID, api.ServerMessage{
		Event: api.ServerMessageEventCallEnded,
		CallEnded: &api.CallEndedMessage{
			CallID: callID,
			Reason: reasonPtr,
		},
	})
}

func (w *WebSocketEventSender) send(socketID string, message api.ServerMessage) error {
	socket := w.pool.GetSocket(sockets.SocketID(socketID))
	if socket == nil {
		return domain.ErrSocketOffline
	}
	if err := socket.WriteJSON(message); err != nil {
		return fmt.Errorf("failed to send %s to %s: %w", message.Event, socketID, err)
	}
	return nil
}
