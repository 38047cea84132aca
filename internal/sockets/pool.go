package sockets

import (
	"sync"

	"github.com/google/uuid"
)

type SocketPool struct {
	mutex   sync.Mutex
	sockets map[SocketID]Socket
}

func NewSocketPool() *SocketPool {
	return &SocketPool{
		sockets: make(map[SocketID]Socket),
	}
}

// Add registers a socket under a fresh opaque id.
func (p *SocketPool) Add(soc Socket) SocketID {
	id := SocketID(uuid.NewString())

	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.sockets[id] = soc
	return id
}

func (p *SocketPool) GetSocket(id SocketID) Socket {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if soc, contains := p.sockets[id]; contains {
		return soc
	}
	return nil
}

func (p *SocketPool) CloseSocket(id SocketID) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if soc, contains := p.sockets[id]; contains {
		_ = soc.Close()
		delete(p.sockets, id)
	}
}

// Broadcast sends a message to every live socket. Send failures are the
// transport layer's problem; dead sockets get cleaned up by their read loops.
func (p *SocketPool) Broadcast(message interface{}) {
	p.mutex.Lock()
	targets := make([]Socket, 0, len(p.sockets))
	for _, soc := range p.sockets {
		targets = append(targets, soc)
	}
	p.mutex.Unlock()

	for _, soc := range targets {
		_ = soc.WriteJSON(message)
	}
}

func (p *SocketPool) Len() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return len(p.sockets)
}

func (p *SocketPool) Close() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	for _, soc := range p.sockets {
		_ = soc.Close()
	}
}
