package memory

import (
	"sync"

	"github.com/carelink/callrelay/internal/domain"
)

type PresenceRepository struct {
	identities map[string]domain.Identity
	mu         sync.RWMutex
}

func NewPresenceRepository() *PresenceRepository {
	return &PresenceRepository{
		identities: make(map[string]domain.Identity),
	}
}

func (r *PresenceRepository) Save(identity domain.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// One registration per socket: a socket re-registering under a new
	// userId drops its previous entry.
	for userID, existing := range r.identities {
		if existing.SocketID == identity.SocketID && userID != identity.UserID {
			delete(r.identities, userID)
		}
	}

	r.identities[identity.UserID] = identity
	return nil
}

func (r *PresenceRepository) GetByUserID(userID string) (domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identity, ok := r.identities[userID]
	if !ok {
		return domain.Identity{}, domain.ErrIdentityNotFound
	}
	return identity, nil
}

func (r *PresenceRepository) GetBySocketID(socketID string) (domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, identity := range r.identities {
		if identity.SocketID == socketID {
			return identity, nil
		}
	}
	return domain.Identity{}, domain.ErrIdentityNotFound
}

func (r *PresenceRepository) GetByRole(role string) ([]domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.Identity
	for _, identity := range r.identities {
		if identity.Role == role {
			result = append(result, identity)
		}
	}
	return result, nil
}

func (r *PresenceRepository) GetAll() ([]domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identities := make([]domain.Identity, 0, len(r.identities))
	for _, identity := range r.identities {
		identities = append(identities, identity)
	}
	return identities, nil
}

func (r *PresenceRepository) Delete(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.identities, userID)
	return nil
}
