package models

// RoundStatus represents the phase of a round
type RoundStatus string

const (
	RoundDescribing RoundStatus = "describing"
	RoundVoting     RoundStatus = "voting"
	RoundCompleted  RoundStatus = "completed"
)

// Description is one player's clue about their secret word
type Description struct {
	PlayerID string `json:"playerId"`
	Text     string `json:"text"`
}

// Vote is one player's elimination vote
type Vote struct {
	VoterID  string `json:"voterId"`
	TargetID string `json:"targetId"`
}

// Round is one describe-then-vote cycle within a playing room.
// Descriptions and votes are append-only: at most one entry per living player.
type Round struct {
	ID                 string        `json:"id"`
	RoomID             string        `json:"roomId"`
	RoundNumber        int           `json:"roundNumber"`
	Status             RoundStatus   `json:"status"`
	Descriptions       []Description `json:"descriptions"`
	Votes              []Vote        `json:"votes"`
	EliminatedPlayerID string        `json:"eliminatedPlayerId,omitempty"`
}

// HasDescription reports whether the player already described this round
func (r *Round) HasDescription(playerID string) bool {
	for _, d := range r.Descriptions {
		if d.PlayerID == playerID {
			return true
		}
	}
	return false
}

// HasVote reports whether the player already voted this round
func (r *Round) HasVote(voterID string) bool {
	for _, v := range r.Votes {
		if v.VoterID == voterID {
			return true
		}
	}
	return false
}
