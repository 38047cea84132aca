package sockets

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// SocketID is the opaque address of one live connection, distinct from the
// stable user identifier carried in registration messages.
type SocketID string

type Socket interface {
	WriteJSON(v interface{}) error
	ReadJSON(v interface{}) error
	Close() error
}

type socketImpl struct {
	writeMu sync.Mutex
	ws      *websocket.Conn
}

func NewSocket(conn *websocket.Conn) Socket {
	return &socketImpl{ws: conn}
}

func (s *socketImpl) WriteJSON(v interface{}) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.ws.WriteJSON(v)
}

// ReadJSON is only ever called from the connection's own read loop.
func (s *socketImpl) ReadJSON(v interface{}) error {
	return s.ws.ReadJSON(v)
}

func (s *socketImpl) Close() error {
	return s.ws.Close()
}
