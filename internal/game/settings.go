package game

import (
	"fmt"

	"github.com/aaronzipp/undercover/internal/models"
)

// SettingsPatch is a partial settings update; nil fields are left unchanged
type SettingsPatch struct {
	MinPlayers         *int `json:"minPlayers"`
	MaxPlayers         *int `json:"maxPlayers"`
	UndercoverCount    *int `json:"undercoverCount"`
	DescriptionSeconds *int `json:"descriptionSeconds"`
	VotingSeconds      *int `json:"votingSeconds"`
}

// Apply returns a copy of s with the patch's non-nil fields applied
func (p SettingsPatch) Apply(s models.Settings) models.Settings {
	if p.MinPlayers != nil {
		s.MinPlayers = *p.MinPlayers
	}
	if p.MaxPlayers != nil {
		s.MaxPlayers = *p.MaxPlayers
	}
	if p.UndercoverCount != nil {
		s.UndercoverCount = *p.UndercoverCount
	}
	if p.DescriptionSeconds != nil {
		s.DescriptionSeconds = *p.DescriptionSeconds
	}
	if p.VotingSeconds != nil {
		s.VotingSeconds = *p.VotingSeconds
	}
	return s
}

// ValidateSettings checks the invariants every room's settings must hold
func ValidateSettings(s models.Settings) error {
	if s.MinPlayers < 1 || s.MaxPlayers < 1 || s.UndercoverCount < 1 ||
		s.DescriptionSeconds < 1 || s.VotingSeconds < 1 {
		return fmt.Errorf("%w: all values must be positive", ErrInvalidSettings)
	}
	if s.MinPlayers > s.MaxPlayers {
		return fmt.Errorf("%w: minPlayers must not exceed maxPlayers", ErrInvalidSettings)
	}
	if s.UndercoverCount >= s.MinPlayers {
		return fmt.Errorf("%w: undercoverCount must be below minPlayers", ErrInvalidSettings)
	}
	return nil
}
