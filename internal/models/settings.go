package models

// Settings holds the host-configurable parameters of a room
type Settings struct {
	MinPlayers         int `json:"minPlayers"`
	MaxPlayers         int `json:"maxPlayers"`
	UndercoverCount    int `json:"undercoverCount"`
	DescriptionSeconds int `json:"descriptionSeconds"`
	VotingSeconds      int `json:"votingSeconds"`
}

// DefaultSettings returns the settings a freshly created room starts with
func DefaultSettings() Settings {
	return Settings{
		MinPlayers:         4,
		MaxPlayers:         12,
		UndercoverCount:    1,
		DescriptionSeconds: 60,
		VotingSeconds:      30,
	}
}
