package api

import "encoding/json"

type ClientMessageEvent string
type ServerMessageEvent string

const (
	ClientMessageEventRegister     = ClientMessageEvent("register")
	ClientMessageEventInitiateCall = ClientMessageEvent("initiate-call")
	ClientMessageEventAcceptCall   = ClientMessageEvent("accept-call")
	ClientMessageEventDeclineCall  = ClientMessageEvent("decline-call")
	ClientMessageEventOffer        = ClientMessageEvent("webrtc-offer")
	ClientMessageEventAnswer       = ClientMessageEvent("webrtc-answer")
	ClientMessageEventIceCandidate = ClientMessageEvent("webrtc-ice-candidate")
	ClientMessageEventEndCall      = ClientMessageEvent("end-call")
	ClientMessageEventAvailability = ClientMessageEvent("update-availability")
	ClientMessageEventPong         = ClientMessageEvent("pong")
)

const (
	ServerMessageEventInit          = ServerMessageEvent("init")
	ServerMessageEventIncomingCall  = ServerMessageEvent("incoming-call")
	ServerMessageEventCallAccepted  = ServerMessageEvent("call-accepted")
	ServerMessageEventCallTaken     = ServerMessageEvent("call-already-accepted")
	ServerMessageEventCallDeclined  = ServerMessageEvent("call-declined")
	ServerMessageEventCallEnded     = ServerMessageEvent("call-ended")
	ServerMessageEventUserStatus    = ServerMessageEvent("user-status-changed")
	ServerMessageEventOffer         = ServerMessageEvent("webrtc-offer")
	ServerMessageEventAnswer        = ServerMessageEvent("webrtc-answer")
	ServerMessageEventIceCandidate  = ServerMessageEvent("webrtc-ice-candidate")
	ServerMessageEventPing          = ServerMessageEvent("ping")
)

type ClientMessage struct {
	Event        ClientMessageEvent   `json:"event"`
	Register     *RegisterMessage     `json:"register"`
	InitiateCall *InitiateCallMessage `json:"initiateCall"`
	AcceptCall   *AcceptCallMessage   `json:"acceptCall"`
	DeclineCall  *DeclineCallMessage  `json:"declineCall"`
	Signal       *SignalMessage       `json:"signal"`
	EndCall      *EndCallMessage      `json:"endCall"`
	Availability *AvailabilityMessage `json:"availability"`
}

type ServerMessage struct {
	Event        ServerMessageEvent   `json:"event"`
	Init         *InitMessage         `json:"init"`
	IncomingCall *IncomingCallMessage `json:"incomingCall"`
	CallAccepted *CallAcceptedMessage `json:"callAccepted"`
	CallDeclined *CallDeclinedMessage `json:"callDeclined"`
	CallEnded    *CallEndedMessage    `json:"callEnded"`
	UserStatus   *UserStatusMessage   `json:"userStatus"`
	Signal       *SignalMessage       `json:"signal"`
	Ping         *PingMessage         `json:"ping"`
}

type RegisterMessage struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
	Name   string `json:"name"`
}

type InitiateCallMessage struct {
	CallerID   string `json:"callerId"`
	CalleeRole Role   `json:"calleeRole"`
	CallerName string `json:"callerName"`
}

type AcceptCallMessage struct {
	CallID         string `json:"callId"`
	CallerSocketID string `json:"callerSocketId"`
}

type DeclineCallMessage struct {
	CallerSocketID string  `json:"callerSocketId"`
	Reason         *string `json:"reason"`
}

// SignalMessage carries an opaque negotiation payload between two sockets.
// The relay never inspects Payload; its semantics belong to the endpoints.
type SignalMessage struct {
	To      string          `json:"to"`
	From    string          `json:"from"`
	Payload json.RawMessage `json:"payload"`
}

type EndCallMessage struct {
	CallID string `json:"callId"`
}

type AvailabilityMessage struct {
	UserID    string `json:"userId"`
	Available bool   `json:"isAvailable"`
}

type InitMessage struct {
	SocketID     string `json:"socketId"`
	PingInterval int    `json:"pingInterval"`
}

type IncomingCallMessage struct {
	CallID         string `json:"callId"`
	CallerID       string `json:"callerId"`
	CallerName     string `json:"callerName"`
	CallerSocketID string `json:"callerSocketId"`
}

type CallAcceptedMessage struct {
	CallID         string `json:"callId"`
	CalleeSocketID string `json:"calleeSocketId"`
}

type CallDeclinedMessage struct {
	Reason *string `json:"reason"`
}

type CallEndedMessage struct {
	CallID string  `json:"callId"`
	Reason *string `json:"reason"`
}

type UserStatusMessage struct {
	UserID    string `json:"userId"`
	Available bool   `json:"isAvailable"`
	Role      Role   `json:"role"`
	Name      string `json:"name"`
}

type PingMessage struct {
	Timestamp int64 `json:"timestamp"`
}
