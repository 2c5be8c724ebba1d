package models

// Role is a player's secret role
type Role string

const (
	RoleUnassigned Role = ""
	RoleCivilian   Role = "civilian"
	RoleUndercover Role = "undercover"
)

// Player represents a player inside a room. A browser session holds at most
// one player per room, keyed by SessionID.
type Player struct {
	ID        string `json:"id"`
	RoomID    string `json:"roomId"`
	Name      string `json:"name"`
	SessionID string `json:"sessionId"`
	Role      Role   `json:"role,omitempty"`
	IsAlive   bool   `json:"isAlive"`
	IsHost    bool   `json:"isHost"`
}
