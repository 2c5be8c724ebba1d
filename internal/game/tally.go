package game

import "github.com/aaronzipp/undercover/internal/models"

// TallyResult represents the outcome of vote counting
type TallyResult struct {
	// EliminatedID is the target with the strictly highest vote count,
	// empty on a tie or when no votes were cast.
	EliminatedID string
	IsTie        bool
	VoteCount    map[string]int
}

// TallyVotes counts votes and determines the elimination outcome. A shared
// maximum is a tie with no elimination; zero votes is no elimination and no
// tie. Pure function, no side effects.
func TallyVotes(votes []models.Vote) TallyResult {
	voteCount := make(map[string]int)
	for _, v := range votes {
		voteCount[v.TargetID]++
	}

	maxVotes := 0
	var leaders []string
	for targetID, count := range voteCount {
		if count > maxVotes {
			maxVotes = count
			leaders = []string{targetID}
		} else if count == maxVotes {
			leaders = append(leaders, targetID)
		}
	}

	result := TallyResult{
		VoteCount: voteCount,
		IsTie:     len(leaders) > 1,
	}
	if len(leaders) == 1 {
		result.EliminatedID = leaders[0]
	}
	return result
}
