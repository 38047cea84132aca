package api

type Role string

const (
	RolePatient   Role = "PATIENT"
	RoleCaregiver Role = "CAREGIVER"
)

type Identity struct {
	UserID      string `json:"userId"`
	SocketID    string `json:"socketId"`
	Role        Role   `json:"role"`
	DisplayName string `json:"displayName"`
	Available   bool   `json:"isAvailable"`
}

type Call struct {
	CallID         string `json:"callId"`
	CallerSocketID string `json:"callerSocketId"`
	CalleeSocketID string `json:"calleeSocketId"`
}
