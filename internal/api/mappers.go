package api

import (
	"github.com/carelink/callrelay/internal/domain"
)

func ToApiIdentity(i domain.Identity) Identity {
	return Identity{
		UserID:      i.UserID,
		SocketID:    i.SocketID,
		Role:        Role(i.Role),
		DisplayName: i.DisplayName,
		Available:   i.Available,
	}
}

func ToApiIdentities(identities []domain.Identity) []Identity {
	result := make([]Identity, len(identities))
	for i, identity := range identities {
		result[i] = ToApiIdentity(identity)
	}
	return result
}

func ToApiCall(s domain.Session) Call {
	return Call{
		CallID:         s.CallID,
		CallerSocketID: s.CallerSocket,
		CalleeSocketID: s.CalleeSocket,
	}
}

func ToApiCalls(sessions []domain.Session) []Call {
	calls := make([]Call, len(sessions))
	for i, s := range sessions {
		calls[i] = ToApiCall(s)
	}
	return calls
}
