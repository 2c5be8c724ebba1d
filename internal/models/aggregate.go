package models

// Aggregate is the full transactional state of one room: the room itself plus
// the players and rounds it owns. The store hands out an aggregate under the
// room's lock so read-modify-write sequences stay serialized per room.
type Aggregate struct {
	Room    *Room
	Players []*Player
	Rounds  []*Round
}

// Player returns the player with the given id
func (a *Aggregate) Player(id string) (*Player, bool) {
	for _, p := range a.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// PlayerBySession returns the player owned by the given session
func (a *Aggregate) PlayerBySession(sessionID string) (*Player, bool) {
	for _, p := range a.Players {
		if p.SessionID == sessionID {
			return p, true
		}
	}
	return nil, false
}

// Round returns the round with the given number
func (a *Aggregate) Round(number int) (*Round, bool) {
	for _, r := range a.Rounds {
		if r.RoundNumber == number {
			return r, true
		}
	}
	return nil, false
}

// CurrentRound returns the round matching the room's current round number,
// or nil while the room is still in the lobby.
func (a *Aggregate) CurrentRound() *Round {
	if a.Room.CurrentRound == 0 {
		return nil
	}
	r, ok := a.Round(a.Room.CurrentRound)
	if !ok {
		return nil
	}
	return r
}

// AliveCount returns the number of living players
func (a *Aggregate) AliveCount() int {
	count := 0
	for _, p := range a.Players {
		if p.IsAlive {
			count++
		}
	}
	return count
}

// Snapshot returns a deep copy safe to use outside the room's lock
func (a *Aggregate) Snapshot() *Aggregate {
	room := *a.Room
	snap := &Aggregate{
		Room:    &room,
		Players: make([]*Player, 0, len(a.Players)),
		Rounds:  make([]*Round, 0, len(a.Rounds)),
	}
	for _, p := range a.Players {
		cp := *p
		snap.Players = append(snap.Players, &cp)
	}
	for _, r := range a.Rounds {
		cr := *r
		cr.Descriptions = append([]Description(nil), r.Descriptions...)
		cr.Votes = append([]Vote(nil), r.Votes...)
		snap.Rounds = append(snap.Rounds, &cr)
	}
	return snap
}
