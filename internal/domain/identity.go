package domain

import "errors"

var ErrIdentityNotFound = errors.New("identity not found")

// Identity is one registered user bound to a live socket. A userId has at
// most one live registration; re-registering replaces the previous entry.
type Identity struct {
	UserID      string
	SocketID    string
	Role        string
	DisplayName string
	Available   bool
}

type PresenceRepository interface {
	Save(identity Identity) error
	GetByUserID(userID string) (Identity, error)
	GetBySocketID(socketID string) (Identity, error)
	GetByRole(role string) ([]Identity, error)
	GetAll() ([]Identity, error)
	Delete(userID string) error
}
