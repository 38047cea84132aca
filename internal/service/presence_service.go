package service

import (
	"github.com/carelink/callrelay/internal/domain"
	"github.com/carelink/callrelay/internal/metrics"
)

// PresenceService is the presence registry: it tracks which identities are
// currently connected and broadcasts every availability change to all
// connected sockets.
type PresenceService struct {
	repo   domain.PresenceRepository
	events domain.EventSender
}

func NewPresenceService(repo domain.PresenceRepository, events domain.EventSender) *PresenceService {
	return &PresenceService{
		repo:   repo,
		events: events,
	}
}

// Register binds userID to socketID, replacing any previous registration for
// the same user or the same socket, and broadcasts the identity as available.
func (s *PresenceService) Register(socketID, userID, role, displayName string) error {
	identity := domain.Identity{
		UserID:      userID,
		SocketID:    socketID,
		Role:        role,
		DisplayName: displayName,
		Available:   true,
	}
	if err := s.repo.Save(identity); err != nil {
		return err
	}
	s.updateGauge()
	s.events.BroadcastUserStatus(identity)
	return nil
}

// UpdateAvailability flips the do-not-disturb flag. Unknown userID returns
// ErrIdentityNotFound, which callers treat as a no-op.
func (s *PresenceService) UpdateAvailability(userID string, available bool) error {
	identity, err := s.repo.GetByUserID(userID)
	if err != nil {
		return err
	}

	identity.Available = available
	if err := s.repo.Save(identity); err != nil {
		return err
	}
	s.events.BroadcastUserStatus(identity)
	return nil
}

// Unregister removes whatever identity is bound to socketID and broadcasts it
// as unavailable. A socket that never registered is a no-op.
func (s *PresenceService) Unregister(socketID string) {
	identity, err := s.repo.GetBySocketID(socketID)
	if err != nil {
		return
	}

	_ = s.repo.Delete(identity.UserID)
	s.updateGauge()

	identity.Available = false
	s.events.BroadcastUserStatus(identity)
}

// ListByRole is the fan-out set for call initiation. Availability is not a
// delivery filter; it only affects UI presentation.
func (s *PresenceService) ListByRole(role string) []domain.Identity {
	identities, _ := s.repo.GetByRole(role)
	return identities
}

func (s *PresenceService) ListAll() []domain.Identity {
	identities, _ := s.repo.GetAll()
	return identities
}

func (s *PresenceService) updateGauge() {
	identities, _ := s.repo.GetAll()
	metrics.RegisteredIdentities.Set(float64(len(identities)))
}
