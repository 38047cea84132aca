package sockets

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSocket struct {
	mu     sync.Mutex
	writes []interface{}
	closed bool
}

func (s *stubSocket) WriteJSON(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = append(s.writes, v)
	return nil
}

func (s *stubSocket) ReadJSON(v interface{}) error { return nil }

func (s *stubSocket) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func TestPoolAddAssignsDistinctIDs(t *testing.T) {
	pool := NewSocketPool()

	a := pool.Add(&stubSocket{})
	b := pool.Add(&stubSocket{})

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, pool.Len())
	require.NotNil(t, pool.GetSocket(a))
	require.NotNil(t, pool.GetSocket(b))
}

func TestPoolGetUnknownSocket(t *testing.T) {
	pool := NewSocketPool()
	assert.Nil(t, pool.GetSocket("nope"))
}

func TestPoolCloseSocketRemovesAndCloses(t *testing.T) {
	pool := NewSocketPool()
	stub := &stubSocket{}
	id := pool.Add(stub)

	pool.CloseSocket(id)

	assert.True(t, stub.closed)
	assert.Nil(t, pool.GetSocket(id))
	assert.Equal(t, 0, pool.Len())

	// closing again is harmless
	pool.CloseSocket(id)
}

func TestPoolBroadcastReachesEverySocket(t *testing.T) {
	pool := NewSocketPool()
	stubs := []*stubSocket{{}, {}, {}}
	for _, stub := range stubs {
		pool.Add(stub)
	}

	pool.Broadcast("hello")

	for _, stub := range stubs {
		require.Len(t, stub.writes, 1)
		assert.Equal(t, "hello", stub.writes[0])
	}
}
