package game

import (
	"math/rand"

	"github.com/aaronzipp/undercover/internal/models"
)

// EffectiveUndercoverCount caps the configured count at 1/3 of the players
func EffectiveUndercoverCount(playerCount, configured int) int {
	capped := playerCount / UndercoverCapDivisor
	if configured < capped {
		capped = configured
	}
	if capped < 0 {
		return 0
	}
	return capped
}

// AssignRoles shuffles the players uniformly and assigns undercover to the
// first EffectiveUndercoverCount of them, civilian to the rest. With an
// effective count of 0 every player ends up civilian.
func AssignRoles(playerIDs []string, undercoverCount int) map[string]models.Role {
	shuffled := make([]string, len(playerIDs))
	copy(shuffled, playerIDs)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	undercover := EffectiveUndercoverCount(len(shuffled), undercoverCount)

	roles := make(map[string]models.Role, len(shuffled))
	for i, id := range shuffled {
		if i < undercover {
			roles[id] = models.RoleUndercover
		} else {
			roles[id] = models.RoleCivilian
		}
	}
	return roles
}
