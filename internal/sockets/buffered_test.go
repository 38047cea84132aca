package sockets

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stalledSocket never completes a write until closed.
type stalledSocket struct {
	release chan struct{}
	once    sync.Once
}

func newStalledSocket() *stalledSocket {
	return &stalledSocket{release: make(chan struct{})}
}

func (s *stalledSocket) WriteJSON(v interface{}) error {
	<-s.release
	return nil
}

func (s *stalledSocket) ReadJSON(v interface{}) error { return nil }

func (s *stalledSocket) Close() error {
	s.once.Do(func() { close(s.release) })
	return nil
}

func TestBufferedWriteNeverBlocksOnStalledClient(t *testing.T) {
	soc := NewBufferedSocket(newStalledSocket())
	defer soc.Close()

	done := make(chan struct{})
	var dropped int
	go func() {
		defer close(done)
		for i := 0; i < sendQueueSize*2; i++ {
			if err := soc.WriteJSON(i); err != nil {
				dropped++
			}
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("writes blocked behind a stalled client")
	}
	assert.Greater(t, dropped, 0, "overflow should drop, not block")
}

func TestBufferedDeliversInOrderAsClientDrains(t *testing.T) {
	inner := &stubSocket{}
	soc := NewBufferedSocket(inner)
	defer soc.Close()

	for i := 0; i < 3; i++ {
		require.NoError(t, soc.WriteJSON(i))
	}

	require.Eventually(t, func() bool {
		inner.mu.Lock()
		defer inner.mu.Unlock()
		return len(inner.writes) == 3
	}, time.Second, 5*time.Millisecond)

	inner.mu.Lock()
	defer inner.mu.Unlock()
	assert.Equal(t, []interface{}{0, 1, 2}, inner.writes)
}

func TestBufferedCloseClosesInner(t *testing.T) {
	inner := &stubSocket{}
	soc := NewBufferedSocket(inner)

	require.NoError(t, soc.Close())

	inner.mu.Lock()
	defer inner.mu.Unlock()
	assert.True(t, inner.closed)
}
