package memory

import (
	"sync"

	"github.com/carelink/callrelay/internal/domain"
)

type CallRepository struct {
	sessions map[string]domain.Session
	mu       sync.RWMutex
}

func NewCallRepository() *CallRepository {
	return &CallRepository{
		sessions: make(map[string]domain.Session),
	}
}

func (r *CallRepository) Save(session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.CallID] = session
	return nil
}

func (r *CallRepository) GetByID(callID string) (domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[callID]
	if !ok {
		return domain.Session{}, domain.ErrCallNotFound
	}
	return session, nil
}

func (r *CallRepository) GetBySocket(socketID string) ([]domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.Session
	for _, session := range r.sessions {
		if session.CallerSocket == socketID || session.CalleeSocket == socketID {
			result = append(result, session)
		}
	}
	return result, nil
}

func (r *CallRepository) GetAll() ([]domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]domain.Session, 0, len(r.sessions))
	for _, session := range r.sessions {
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func (r *CallRepository) Delete(callID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, callID)
	return nil
}
