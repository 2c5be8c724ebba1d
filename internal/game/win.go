package game

import "github.com/aaronzipp/undercover/internal/models"

// EvaluateWinner checks the win condition over the current players. Civilians
// win once no undercover player is alive; undercover players win once they
// equal or outnumber the remaining civilians. The second result reports
// whether the game is over.
func EvaluateWinner(players []*models.Player) (models.Winner, bool) {
	aliveUndercover := 0
	aliveCivilian := 0
	for _, p := range players {
		if !p.IsAlive {
			continue
		}
		switch p.Role {
		case models.RoleUndercover:
			aliveUndercover++
		case models.RoleCivilian:
			aliveCivilian++
		}
	}

	if aliveUndercover == 0 {
		return models.WinnerCivilian, true
	}
	if aliveUndercover >= aliveCivilian {
		return models.WinnerUndercover, true
	}
	return models.WinnerNone, false
}
