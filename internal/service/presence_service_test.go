package service

import (
	"testing"

	"github.com/carelink/callrelay/internal/domain"
	"github.com/carelink/callrelay/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPresenceServiceForTest() (*PresenceService, *memory.PresenceRepository, *captureSender) {
	repo := memory.NewPresenceRepository()
	sender := &captureSender{}
	return NewPresenceService(repo, sender), repo, sender
}

func TestRegisterBroadcastsAvailability(t *testing.T) {
	svc, repo, sender := newPresenceServiceForTest()

	require.NoError(t, svc.Register("sock-1", "user-1", "PATIENT", "Pat"))

	identity, err := repo.GetByUserID("user-1")
	require.NoError(t, err)
	assert.Equal(t, "sock-1", identity.SocketID)
	assert.True(t, identity.Available)

	require.Len(t, sender.statuses, 1)
	assert.Equal(t, "user-1", sender.statuses[0].UserID)
	assert.True(t, sender.statuses[0].Available)
}

func TestReRegisterReplacesPriorEntry(t *testing.T) {
	svc, repo, _ := newPresenceServiceForTest()

	require.NoError(t, svc.Register("sock-old", "user-1", "PATIENT", "Pat"))
	require.NoError(t, svc.Register("sock-new", "user-1", "PATIENT", "Pat"))

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "sock-new", all[0].SocketID)
}

func TestUpdateAvailabilityBroadcastsChange(t *testing.T) {
	svc, repo, sender := newPresenceServiceForTest()

	require.NoError(t, svc.Register("sock-1", "carer-1", "CAREGIVER", "Cara"))
	require.NoError(t, svc.UpdateAvailability("carer-1", false))

	identity, err := repo.GetByUserID("carer-1")
	require.NoError(t, err)
	assert.False(t, identity.Available)

	require.Len(t, sender.statuses, 2)
	assert.False(t, sender.statuses[1].Available)
}

func TestUpdateAvailabilityUnknownUserIsNoOp(t *testing.T) {
	svc, _, sender := newPresenceServiceForTest()

	err := svc.UpdateAvailability("ghost", false)
	assert.ErrorIs(t, err, domain.ErrIdentityNotFound)
	assert.Empty(t, sender.statuses)
}

func TestUnregisterRemovesAndBroadcastsUnavailable(t *testing.T) {
	svc, repo, sender := newPresenceServiceForTest()

	require.NoError(t, svc.Register("sock-1", "carer-1", "CAREGIVER", "Cara"))
	svc.Unregister("sock-1")

	_, err := repo.GetByUserID("carer-1")
	assert.ErrorIs(t, err, domain.ErrIdentityNotFound)

	require.Len(t, sender.statuses, 2)
	assert.Equal(t, "carer-1", sender.statuses[1].UserID)
	assert.False(t, sender.statuses[1].Available)
}

func TestUnregisterUnknownSocketIsNoOp(t *testing.T) {
	svc, _, sender := newPresenceServiceForTest()

	svc.Unregister("sock-ghost")
	assert.Empty(t, sender.statuses)
}

func TestListByRoleIgnoresAvailability(t *testing.T) {
	svc, _, _ := newPresenceServiceForTest()

	require.NoError(t, svc.Register("sock-1", "carer-1", "CAREGIVER", "Cara"))
	require.NoError(t, svc.Register("sock-2", "carer-2", "CAREGIVER", "Cory"))
	require.NoError(t, svc.Register("sock-3", "patient-1", "PATIENT", "Pat"))
	require.NoError(t, svc.UpdateAvailability("carer-2", false))

	carers := svc.ListByRole("CAREGIVER")
	assert.Len(t, carers, 2)

	patients := svc.ListByRole("PATIENT")
	assert.Len(t, patients, 1)
}
