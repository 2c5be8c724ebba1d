package models

// RoomStatus represents the lifecycle state of a room
type RoomStatus string

const (
	StatusLobby    RoomStatus = "lobby"
	StatusPlaying  RoomStatus = "playing"
	StatusFinished RoomStatus = "finished"
)

// Winner identifies which side won a finished game
type Winner string

const (
	WinnerNone       Winner = ""
	WinnerCivilian   Winner = "civilian"
	WinnerUndercover Winner = "undercover"
)

// Room represents one game session, identified by a short join code
type Room struct {
	ID            string     `json:"id"`
	Code          string     `json:"code"`
	HostSessionID string     `json:"hostSessionId"`
	Status        RoomStatus `json:"status"`

	// CurrentRound is 0 while no round has been started yet.
	CurrentRound int `json:"currentRound"`

	// Secret words are set once at game start and empty while in the lobby.
	CivilianWord   string `json:"civilianWord,omitempty"`
	UndercoverWord string `json:"undercoverWord,omitempty"`

	Settings Settings `json:"settings"`
	Winner   Winner   `json:"winner,omitempty"`
}
