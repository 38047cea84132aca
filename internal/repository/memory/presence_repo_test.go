package memory

import (
	"testing"

	"github.com/carelink/callrelay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenceSaveAndLookup(t *testing.T) {
	repo := NewPresenceRepository()

	require.NoError(t, repo.Save(domain.Identity{
		UserID: "user-1", SocketID: "sock-1", Role: "PATIENT", DisplayName: "Pat", Available: true,
	}))

	byUser, err := repo.GetByUserID("user-1")
	require.NoError(t, err)
	assert.Equal(t, "sock-1", byUser.SocketID)

	bySocket, err := repo.GetBySocketID("sock-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", bySocket.UserID)
}

func TestPresenceLookupMisses(t *testing.T) {
	repo := NewPresenceRepository()

	_, err := repo.GetByUserID("nobody")
	assert.ErrorIs(t, err, domain.ErrIdentityNotFound)

	_, err = repo.GetBySocketID("sock-nobody")
	assert.ErrorIs(t, err, domain.ErrIdentityNotFound)
}

func TestPresenceSaveReplacesSameSocket(t *testing.T) {
	repo := NewPresenceRepository()

	require.NoError(t, repo.Save(domain.Identity{UserID: "user-1", SocketID: "sock-1", Role: "PATIENT"}))
	require.NoError(t, repo.Save(domain.Identity{UserID: "user-2", SocketID: "sock-1", Role: "PATIENT"}))

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "user-2", all[0].UserID)
}

func TestPresenceGetByRole(t *testing.T) {
	repo := NewPresenceRepository()

	require.NoError(t, repo.Save(domain.Identity{UserID: "carer-1", SocketID: "sock-1", Role: "CAREGIVER"}))
	require.NoError(t, repo.Save(domain.Identity{UserID: "carer-2", SocketID: "sock-2", Role: "CAREGIVER"}))
	require.NoError(t, repo.Save(domain.Identity{UserID: "patient-1", SocketID: "sock-3", Role: "PATIENT"}))

	carers, err := repo.GetByRole("CAREGIVER")
	require.NoError(t, err)
	assert.Len(t, carers, 2)

	admins, err := repo.GetByRole("ADMIN")
	require.NoError(t, err)
	assert.Empty(t, admins)
}

func TestPresenceDelete(t *testing.T) {
	repo := NewPresenceRepository()

	require.NoError(t, repo.Save(domain.Identity{UserID: "user-1", SocketID: "sock-1"}))
	require.NoError(t, repo.Delete("user-1"))

	_, err := repo.GetByUserID("user-1")
	assert.ErrorIs(t, err, domain.ErrIdentityNotFound)

	// Deleting an absent entry is fine.
	assert.NoError(t, repo.Delete("user-1"))
}
