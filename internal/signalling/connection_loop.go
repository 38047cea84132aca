package signalling

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/carelink/callrelay/internal/api"
	"github.com/carelink/callrelay/internal/sockets"
)

// ConnectionLoop runs the keep-alive pinger for one client connection.
type ConnectionLoop struct {
	socket     sockets.Socket
	socketID   sockets.SocketID
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	pingTicker *time.Ticker
}

func NewConnectionLoop(socket sockets.Socket, socketID sockets.SocketID, pingInterval time.Duration) *ConnectionLoop {
	ctx, cancel := context.WithCancel(context.Background())
	return &ConnectionLoop{
		socket:     socket,
		socketID:   socketID,
		ctx:        ctx,
		cancel:     cancel,
		pingTicker: time.NewTicker(pingInterval),
	}
}

func (l *ConnectionLoop) Start() {
	l.wg.Add(1)
	go l.pingLoop()
}

func (l *ConnectionLoop) Stop() {
	l.cancel()
	l.pingTicker.Stop()
	l.wg.Wait()
}

func (l *ConnectionLoop) pingLoop() {
	defer l.wg.Done()

	for {
		select {
		case <-l.pingTicker.C:
			if err := l.socket.WriteJSON(api.ServerMessage{
				Event: api.ServerMessageEventPing,
				Ping:  &api.PingMessage{Timestamp: time.Now().Unix()},
			}); err != nil {
				slog.Debug("failed to send ping", "socketID", l.socketID, "error", err)
				return
			}
		case <-l.ctx.Done():
			return
		}
	}
}
