package domain

import "errors"

var (
	ErrCallNotFound  = errors.New("call not found")
	ErrSocketOffline = errors.New("socket offline")
)

// Session binds the two sockets engaged in an accepted call. It exists only
// between accept and end; a ringing call has no session yet.
type Session struct {
	CallID       string
	CallerSocket string
	CalleeSocket string
}

type CallRepository interface {
	Save(session Session) error
	GetByID(callID string) (Session, error)
	GetBySocket(socketID string) ([]Session, error)
	GetAll() ([]Session, error)
	Delete(callID string) error
}

// EventSender delivers signalling events to connected sockets. The transport
// implementation lives in the signalling package.
type EventSender interface {
	BroadcastUserStatus(identity Identity)
	SendIncomingCall(socketID, callID, callerID, callerName, callerSocketID string) error
	SendCallAccepted(socketID, callID, calleeSocketID string) error
	SendCallTaken(socketID, callID string) error
	SendCallDeclined(socketID string, reason *string) error
	SendCallEnded(socketID, callID, reason string) error
}
