package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aaronzipp/undercover/internal/models"
	"github.com/aaronzipp/undercover/internal/store"
	"github.com/aaronzipp/undercover/internal/wordbank"
)

// Store is the transactional aggregate store the service runs on. Update and
// View must serialize against other operations on the same room; rooms must
// be independent of each other.
type Store interface {
	Create(agg *models.Aggregate) error
	Update(roomID string, fn func(agg *models.Aggregate) error) error
	View(roomID string, fn func(agg *models.Aggregate) error) error
	RoomIDByCode(code string) (string, bool)
	CodeInUse(code string) bool
}

// Notifier is told about every committed mutation so the live read model can
// re-emit to subscribed clients.
type Notifier interface {
	RoomUpdated(roomID string)
}

// Service owns the room, player and round lifecycle
type Service struct {
	store    Store
	words    wordbank.Bank
	defaults models.Settings
	notifier Notifier
	log      zerolog.Logger
}

// NewService wires the room service. notifier may be nil when no live read
// model is attached (tests).
func NewService(st Store, words wordbank.Bank, defaults models.Settings, notifier Notifier, log zerolog.Logger) *Service {
	return &Service{
		store:    st,
		words:    words,
		defaults: defaults,
		notifier: notifier,
		log:      log,
	}
}

// CreateRoomResult is returned by CreateRoom
type CreateRoomResult struct {
	RoomID   string
	Code     string
	PlayerID string
}

// JoinRoomResult is returned by JoinRoom
type JoinRoomResult struct {
	RoomID   string
	PlayerID string
}

// CreateRoom creates a lobby room with an unused code and its host player
func (s *Service) CreateRoom(hostName, hostSessionID string) (CreateRoomResult, error) {
	hostName = strings.TrimSpace(hostName)
	if hostName == "" {
		return CreateRoomResult{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if hostSessionID == "" {
		return CreateRoomResult{}, fmt.Errorf("%w: session is required", ErrInvalidInput)
	}

	for attempt := 0; attempt < CodeRetryLimit; attempt++ {
		code, err := UniqueRoomCode(s.store.CodeInUse)
		if err != nil {
			return CreateRoomResult{}, err
		}

		room := &models.Room{
			ID:            uuid.New().String(),
			Code:          code,
			HostSessionID: hostSessionID,
			Status:        models.StatusLobby,
			CurrentRound:  0,
			Settings:      s.defaults,
		}
		host := &models.Player{
			ID:        uuid.New().String(),
			RoomID:    room.ID,
			Name:      hostName,
			SessionID: hostSessionID,
			Role:      models.RoleUnassigned,
			IsAlive:   true,
			IsHost:    true,
		}

		err = s.store.Create(&models.Aggregate{
			Room:    room,
			Players: []*models.Player{host},
		})
		if errors.Is(err, store.ErrCodeConflict) {
			// Lost a race for the code between check and insert; regenerate.
			continue
		}
		if err != nil {
			return CreateRoomResult{}, err
		}

		s.log.Info().Str("room_id", room.ID).Str("code", code).Msg("room created")
		return CreateRoomResult{RoomID: room.ID, Code: code, PlayerID: host.ID}, nil
	}
	return CreateRoomResult{}, ErrCodeSpaceExhausted
}

// JoinRoom adds a player to a lobby room looked up by code. Joining again
// with a session already in the room returns the existing player unchanged,
// so reconnects are idempotent.
func (s *Service) JoinRoom(code, playerName, sessionID string) (JoinRoomResult, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return JoinRoomResult{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if sessionID == "" {
		return JoinRoomResult{}, fmt.Errorf("%w: session is required", ErrInvalidInput)
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	roomID, exists := s.store.RoomIDByCode(code)
	if !exists {
		return JoinRoomResult{}, fmt.Errorf("room %s: %w", code, ErrNotFound)
	}

	var result JoinRoomResult
	joined := false
	err := s.update(roomID, func(agg *models.Aggregate) error {
		if agg.Room.Status != models.StatusLobby {
			return fmt.Errorf("%w: game has already started", ErrInvalidState)
		}
		if existing, ok := agg.PlayerBySession(sessionID); ok {
			result = JoinRoomResult{RoomID: agg.Room.ID, PlayerID: existing.ID}
			return nil
		}
		if len(agg.Players) >= agg.Room.Settings.MaxPlayers {
			return ErrRoomFull
		}

		player := &models.Player{
			ID:        uuid.New().String(),
			RoomID:    agg.Room.ID,
			Name:      playerName,
			SessionID: sessionID,
			Role:      models.RoleUnassigned,
			IsAlive:   true,
			IsHost:    false,
		}
		agg.Players = append(agg.Players, player)
		result = JoinRoomResult{RoomID: agg.Room.ID, PlayerID: player.ID}
		joined = true
		return nil
	})
	if err != nil {
		return JoinRoomResult{}, err
	}

	if joined {
		s.log.Info().Str("room_id", result.RoomID).Str("player_id", result.PlayerID).Msg("player joined")
	}
	return result, nil
}

// UpdateSettings applies a partial settings update. Host only, lobby only.
func (s *Service) UpdateSettings(roomID, sessionID string, patch SettingsPatch) error {
	return s.update(roomID, func(agg *models.Aggregate) error {
		if agg.Room.HostSessionID != sessionID {
			return ErrUnauthorized
		}
		if agg.Room.Status != models.StatusLobby {
			return fmt.Errorf("%w: cannot change settings after the game started", ErrInvalidState)
		}
		updated := patch.Apply(agg.Room.Settings)
		if err := ValidateSettings(updated); err != nil {
			return err
		}
		agg.Room.Settings = updated
		return nil
	})
}

// StartGame moves a lobby room into play: picks a word pair, assigns roles,
// and creates round 1 in the describing phase. The whole transition commits
// atomically; a failed check leaves the room untouched.
func (s *Service) StartGame(roomID, sessionID string) error {
	return s.update(roomID, func(agg *models.Aggregate) error {
		if agg.Room.HostSessionID != sessionID {
			return ErrUnauthorized
		}
		if agg.Room.Status != models.StatusLobby {
			return fmt.Errorf("%w: game has already started", ErrInvalidState)
		}
		if len(agg.Players) < agg.Room.Settings.MinPlayers {
			return fmt.Errorf("%w: need at least %d players", ErrInsufficientPlayers, agg.Room.Settings.MinPlayers)
		}

		pair, ok := s.words.RandomPair()
		if !ok {
			return ErrNoWordsAvailable
		}

		playerIDs := make([]string, 0, len(agg.Players))
		for _, p := range agg.Players {
			playerIDs = append(playerIDs, p.ID)
		}
		roles := AssignRoles(playerIDs, agg.Room.Settings.UndercoverCount)
		for _, p := range agg.Players {
			p.Role = roles[p.ID]
		}

		agg.Room.Status = models.StatusPlaying
		agg.Room.CivilianWord = pair.CivilianWord
		agg.Room.UndercoverWord = pair.UndercoverWord
		agg.Room.CurrentRound = 1
		agg.Rounds = append(agg.Rounds, newRound(agg.Room.ID, 1))

		s.log.Info().
			Str("room_id", agg.Room.ID).
			Int("players", len(agg.Players)).
			Str("category", pair.Category).
			Msg("game started")
		return nil
	})
}

// SubmitDescription appends a player's clue to the round. Once every living
// player has described, the round advances to voting on its own.
func (s *Service) SubmitDescription(roomID string, roundNumber int, playerID, text string) error {
	return s.update(roomID, func(agg *models.Aggregate) error {
		round, ok := agg.Round(roundNumber)
		if !ok || round.Status != models.RoundDescribing {
			return fmt.Errorf("%w: round is not in the describing phase", ErrInvalidState)
		}
		player, ok := agg.Player(playerID)
		if !ok {
			return fmt.Errorf("player: %w", ErrNotFound)
		}
		if !player.IsAlive {
			return fmt.Errorf("%w: eliminated players cannot describe", ErrInvalidState)
		}
		if round.HasDescription(playerID) {
			return ErrDuplicateSubmission
		}

		round.Descriptions = append(round.Descriptions, models.Description{
			PlayerID: playerID,
			Text:     text,
		})

		// One entry per living player, so a simple length check detects
		// phase completion.
		if len(round.Descriptions) == agg.AliveCount() {
			round.Status = models.RoundVoting
			s.log.Info().Str("room_id", roomID).Int("round", roundNumber).Msg("all described, voting open")
		}
		return nil
	})
}

// SubmitVote appends a player's elimination vote and reports whether every
// living player has now voted. Resolution stays a separate explicit call so
// collaborators can keep a grace window before ending the round.
func (s *Service) SubmitVote(roomID string, roundNumber int, voterID, targetID string) (allVoted bool, err error) {
	err = s.update(roomID, func(agg *models.Aggregate) error {
		round, ok := agg.Round(roundNumber)
		if !ok || round.Status != models.RoundVoting {
			return fmt.Errorf("%w: voting is not active", ErrInvalidState)
		}
		voter, ok := agg.Player(voterID)
		if !ok {
			return fmt.Errorf("voter: %w", ErrNotFound)
		}
		if !voter.IsAlive {
			return fmt.Errorf("%w: eliminated players cannot vote", ErrInvalidState)
		}
		target, ok := agg.Player(targetID)
		if !ok {
			return fmt.Errorf("target: %w", ErrNotFound)
		}
		if !target.IsAlive {
			return fmt.Errorf("%w: target is already eliminated", ErrInvalidState)
		}
		if round.HasVote(voterID) {
			return ErrDuplicateSubmission
		}

		round.Votes = append(round.Votes, models.Vote{VoterID: voterID, TargetID: targetID})
		allVoted = len(round.Votes) == agg.AliveCount()
		return nil
	})
	return allVoted, err
}

// ResolveRound tallies the votes and completes the round. A unique maximum
// eliminates that player; a tie or an empty ballot eliminates nobody. The win
// condition is evaluated afterwards: either the room finishes with a winner,
// or the next round is created in the describing phase.
func (s *Service) ResolveRound(roomID string, roundNumber int) error {
	return s.update(roomID, func(agg *models.Aggregate) error {
		round, ok := agg.Round(roundNumber)
		if !ok {
			return fmt.Errorf("round %d: %w", roundNumber, ErrNotFound)
		}
		if round.Status != models.RoundVoting {
			return fmt.Errorf("%w: round is not in the voting phase", ErrInvalidState)
		}

		result := TallyVotes(round.Votes)
		if result.EliminatedID != "" {
			eliminated, ok := agg.Player(result.EliminatedID)
			if !ok {
				return fmt.Errorf("eliminated player: %w", ErrNotFound)
			}
			eliminated.IsAlive = false
			round.EliminatedPlayerID = eliminated.ID
			s.log.Info().
				Str("room_id", roomID).
				Int("round", roundNumber).
				Str("player_id", eliminated.ID).
				Str("role", string(eliminated.Role)).
				Msg("player eliminated")
		} else {
			s.log.Info().
				Str("room_id", roomID).
				Int("round", roundNumber).
				Bool("tie", result.IsTie).
				Msg("round resolved without elimination")
		}
		round.Status = models.RoundCompleted

		winner, over := EvaluateWinner(agg.Players)
		if over {
			agg.Room.Status = models.StatusFinished
			agg.Room.Winner = winner
			s.log.Info().Str("room_id", roomID).Str("winner", string(winner)).Msg("game over")
			return nil
		}

		agg.Room.CurrentRound = roundNumber + 1
		agg.Rounds = append(agg.Rounds, newRound(agg.Room.ID, agg.Room.CurrentRound))
		return nil
	})
}

// GetRoom returns a copy of the room, or ErrNotFound
func (s *Service) GetRoom(roomID string) (*models.Room, error) {
	var room models.Room
	err := s.view(roomID, func(agg *models.Aggregate) error {
		room = *agg.Room
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GetRoomByCode returns a copy of the room with the given active code
func (s *Service) GetRoomByCode(code string) (*models.Room, error) {
	roomID, exists := s.store.RoomIDByCode(strings.ToUpper(strings.TrimSpace(code)))
	if !exists {
		return nil, fmt.Errorf("room: %w", ErrNotFound)
	}
	return s.GetRoom(roomID)
}

// GetPlayers returns copies of the room's players
func (s *Service) GetPlayers(roomID string) ([]*models.Player, error) {
	var players []*models.Player
	err := s.view(roomID, func(agg *models.Aggregate) error {
		players = make([]*models.Player, 0, len(agg.Players))
		for _, p := range agg.Players {
			cp := *p
			players = append(players, &cp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return players, nil
}

// GetCurrentRound returns a copy of the active round, or nil while the room
// has no rounds yet
func (s *Service) GetCurrentRound(roomID string) (*models.Round, error) {
	var round *models.Round
	err := s.view(roomID, func(agg *models.Aggregate) error {
		current := agg.CurrentRound()
		if current == nil {
			return nil
		}
		cp := *current
		cp.Descriptions = append([]models.Description(nil), current.Descriptions...)
		cp.Votes = append([]models.Vote(nil), current.Votes...)
		round = &cp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return round, nil
}

// update wraps store.Update, mapping store errors into the service taxonomy
// and notifying the read model on commit.
func (s *Service) update(roomID string, fn func(agg *models.Aggregate) error) error {
	err := s.store.Update(roomID, fn)
	if errors.Is(err, store.ErrRoomNotFound) {
		return fmt.Errorf("room %s: %w", roomID, ErrNotFound)
	}
	if err != nil {
		return err
	}
	if s.notifier != nil {
		s.notifier.RoomUpdated(roomID)
	}
	return nil
}

func (s *Service) view(roomID string, fn func(agg *models.Aggregate) error) error {
	err := s.store.View(roomID, fn)
	if errors.Is(err, store.ErrRoomNotFound) {
		return fmt.Errorf("room %s: %w", roomID, ErrNotFound)
	}
	return err
}

func newRound(roomID string, number int) *models.Round {
	return &models.Round{
		ID:           uuid.New().String(),
		RoomID:       roomID,
		RoundNumber:  number,
		Status:       models.RoundDescribing,
		Descriptions: []models.Description{},
		Votes:        []models.Vote{},
	}
}
