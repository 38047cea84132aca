package sockets

import (
	"errors"
	"log/slog"
	"sync"
)

// sendQueueSize bounds how far behind a client may fall before the relay
// starts dropping messages to it.
const sendQueueSize = 64

var ErrSendQueueFull = errors.New("socket send queue full")

// bufferedSocket decouples senders from a client's drain rate: WriteJSON
// enqueues and a per-connection writer goroutine flushes to the wrapped
// socket, so a stalled client never blocks a broadcast or another client's
// read loop. A full queue drops the message.
type bufferedSocket struct {
	inner Socket
	queue chan interface{}
	done  chan struct{}
	once  sync.Once
}

func NewBufferedSocket(inner Socket) Socket {
	b := &bufferedSocket{
		inner: inner,
		queue: make(chan interface{}, sendQueueSize),
		done:  make(chan struct{}),
	}
	go b.writeLoop()
	return b
}

func (b *bufferedSocket) writeLoop() {
	for {
		select {
		case <-b.done:
			return
		case msg := <-b.queue:
			if err := b.inner.WriteJSON(msg); err != nil {
				slog.Debug("dropping write to dead socket", "error", err)
			}
		}
	}
}

func (b *bufferedSocket) WriteJSON(v interface{}) error {
	select {
	case <-b.done:
		return nil
	case b.queue <- v:
		return nil
	default:
		slog.Warn("socket send queue overflow, dropping message")
		return ErrSendQueueFull
	}
}

func (b *bufferedSocket) ReadJSON(v interface{}) error {
	return b.inner.ReadJSON(v)
}

func (b *bufferedSocket) Close() error {
	var err error
	b.once.Do(func() {
		close(b.done)
		err = b.inner.Close()
	})
	return err
}
