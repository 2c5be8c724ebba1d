package game

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/undercover/internal/models"
	"github.com/aaronzipp/undercover/internal/store"
	"github.com/aaronzipp/undercover/internal/wordbank"
)

func newTestService(t *testing.T, bank wordbank.Bank) *Service {
	t.Helper()
	if bank == nil {
		bank = wordbank.Seed()
	}
	return NewService(store.NewMemoryStore(), bank, models.DefaultSettings(), nil, zerolog.Nop())
}

// setupRoom creates a room hosted by the first name and joins the rest.
// Session ids are derived from the names.
func setupRoom(t *testing.T, svc *Service, names ...string) (roomID string, playersByName map[string]*models.Player) {
	t.Helper()
	require.NotEmpty(t, names)

	created, err := svc.CreateRoom(names[0], "sess-"+names[0])
	require.NoError(t, err)
	roomID = created.RoomID

	for _, name := range names[1:] {
		_, err := svc.JoinRoom(created.Code, name, "sess-"+name)
		require.NoError(t, err)
	}

	players, err := svc.GetPlayers(roomID)
	require.NoError(t, err)
	require.Len(t, players, len(names))

	playersByName = make(map[string]*models.Player, len(players))
	for _, p := range players {
		playersByName[p.Name] = p
	}
	return roomID, playersByName
}

func alivePlayers(t *testing.T, svc *Service, roomID string) []*models.Player {
	t.Helper()
	players, err := svc.GetPlayers(roomID)
	require.NoError(t, err)
	alive := make([]*models.Player, 0, len(players))
	for _, p := range players {
		if p.IsAlive {
			alive = append(alive, p)
		}
	}
	return alive
}

// pickByRole returns an alive player with (or without) the undercover role
func pickByRole(t *testing.T, svc *Service, roomID string, undercover bool) *models.Player {
	t.Helper()
	for _, p := range alivePlayers(t, svc, roomID) {
		if (p.Role == models.RoleUndercover) == undercover {
			return p
		}
	}
	t.Fatalf("no alive player with undercover=%v", undercover)
	return nil
}

// playRound drives the current round to completion: everyone describes,
// everyone votes for the target, the round is resolved.
func playRound(t *testing.T, svc *Service, roomID string, roundNumber int, target *models.Player) {
	t.Helper()
	for _, p := range alivePlayers(t, svc, roomID) {
		require.NoError(t, svc.SubmitDescription(roomID, roundNumber, p.ID, "a clue from "+p.Name))
	}
	alive := alivePlayers(t, svc, roomID)
	for i, p := range alive {
		allVoted, err := svc.SubmitVote(roomID, roundNumber, p.ID, target.ID)
		require.NoError(t, err)
		assert.Equal(t, i == len(alive)-1, allVoted)
	}
	require.NoError(t, svc.ResolveRound(roomID, roundNumber))
}

func TestCreateRoom(t *testing.T) {
	svc := newTestService(t, nil)

	result, err := svc.CreateRoom("Alice", "sess-alice")
	require.NoError(t, err)
	assert.NotEmpty(t, result.RoomID)
	assert.Len(t, result.Code, RoomCodeLength)

	room, err := svc.GetRoom(result.RoomID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusLobby, room.Status)
	assert.Equal(t, 0, room.CurrentRound)
	assert.Empty(t, room.CivilianWord)
	assert.Equal(t, models.DefaultSettings(), room.Settings)

	players, err := svc.GetPlayers(result.RoomID)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Alice", players[0].Name)
	assert.True(t, players[0].IsHost)
	assert.True(t, players[0].IsAlive)
	assert.Equal(t, models.RoleUnassigned, players[0].Role)

	round, err := svc.GetCurrentRound(result.RoomID)
	require.NoError(t, err)
	assert.Nil(t, round)
}

func TestCreateRoomRejectsEmptyName(t *testing.T) {
	svc := newTestService(t, nil)
	_, err := svc.CreateRoom("   ", "sess-1")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateRoomCodesAreUnique(t *testing.T) {
	svc := newTestService(t, nil)
	codes := make(map[string]bool)
	for i := 0; i < 200; i++ {
		result, err := svc.CreateRoom("Host", fmt.Sprintf("sess-%d", i))
		require.NoError(t, err)
		require.False(t, codes[result.Code], "duplicate active code %s", result.Code)
		codes[result.Code] = true
	}
}

func TestJoinRoomIsIdempotentPerSession(t *testing.T) {
	svc := newTestService(t, nil)
	created, err := svc.CreateRoom("Alice", "sess-alice")
	require.NoError(t, err)

	first, err := svc.JoinRoom(created.Code, "Bob", "sess-bob")
	require.NoError(t, err)
	second, err := svc.JoinRoom(created.Code, "Bob again", "sess-bob")
	require.NoError(t, err)

	assert.Equal(t, first.PlayerID, second.PlayerID)
	players, err := svc.GetPlayers(created.RoomID)
	require.NoError(t, err)
	assert.Len(t, players, 2)
}

func TestJoinRoomCodeIsCaseInsensitive(t *testing.T) {
	svc := newTestService(t, nil)
	created, err := svc.CreateRoom("Alice", "sess-alice")
	require.NoError(t, err)

	result, err := svc.JoinRoom("  "+strings.ToLower(created.Code)+" ", "Bob", "sess-bob")
	require.NoError(t, err)
	assert.Equal(t, created.RoomID, result.RoomID)
}

func TestJoinRoomUnknownCode(t *testing.T) {
	svc := newTestService(t, nil)
	_, err := svc.JoinRoom("ZZZZZZ", "Bob", "sess-bob")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJoinRoomFull(t *testing.T) {
	svc := newTestService(t, nil)
	created, err := svc.CreateRoom("Alice", "sess-alice")
	require.NoError(t, err)

	four := 4
	require.NoError(t, svc.UpdateSettings(created.RoomID, "sess-alice", SettingsPatch{MaxPlayers: &four}))

	for _, name := range []string{"Bob", "Carl", "Dan"} {
		_, err := svc.JoinRoom(created.Code, name, "sess-"+name)
		require.NoError(t, err)
	}

	_, err = svc.JoinRoom(created.Code, "Eve", "sess-eve")
	assert.ErrorIs(t, err, ErrRoomFull)

	// The session already inside still gets the idempotent path, not RoomFull
	again, err := svc.JoinRoom(created.Code, "Bob", "sess-Bob")
	require.NoError(t, err)
	assert.NotEmpty(t, again.PlayerID)
}

func TestJoinRoomAfterStart(t *testing.T) {
	svc := newTestService(t, nil)
	roomID, _ := setupRoom(t, svc, "Alice", "Bob", "Carl", "Dan")
	require.NoError(t, svc.StartGame(roomID, "sess-Alice"))

	room, err := svc.GetRoom(roomID)
	require.NoError(t, err)
	_, err = svc.JoinRoom(room.Code, "Eve", "sess-eve")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestStartGameRequiresHost(t *testing.T) {
	svc := newTestService(t, nil)
	roomID, _ := setupRoom(t, svc, "Alice", "Bob", "Carl", "Dan")

	err := svc.StartGame(roomID, "sess-Bob")
	assert.ErrorIs(t, err, ErrUnauthorized)

	// No partial mutation: still a lobby, no roles, no round
	room, err := svc.GetRoom(roomID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusLobby, room.Status)
	for _, p := range alivePlayers(t, svc, roomID) {
		assert.Equal(t, models.RoleUnassigned, p.Role)
	}
	round, err := svc.GetCurrentRound(roomID)
	require.NoError(t, err)
	assert.Nil(t, round)
}

func TestStartGameRequiresMinPlayers(t *testing.T) {
	svc := newTestService(t, nil)
	roomID, _ := setupRoom(t, svc, "Alice", "Bob", "Carl")

	err := svc.StartGame(roomID, "sess-Alice")
	assert.ErrorIs(t, err, ErrInsufficientPlayers)

	room, err := svc.GetRoom(roomID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusLobby, room.Status)
}

func TestStartGameWithEmptyWordBank(t *testing.T) {
	svc := newTestService(t, wordbank.NewStaticBank(nil))
	roomID, _ := setupRoom(t, svc, "Alice", "Bob", "Carl", "Dan")

	err := svc.StartGame(roomID, "sess-Alice")
	assert.ErrorIs(t, err, ErrNoWordsAvailable)

	room, err := svc.GetRoom(roomID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusLobby, room.Status)
}

func TestStartGameTwice(t *testing.T) {
	svc := newTestService(t, nil)
	roomID, _ := setupRoom(t, svc, "Alice", "Bob", "Carl", "Dan")

	require.NoError(t, svc.StartGame(roomID, "sess-Alice"))
	err := svc.StartGame(roomID, "sess-Alice")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestStartGameAssignsWordsRolesAndFirstRound(t *testing.T) {
	svc := newTestService(t, nil)
	roomID, _ := setupRoom(t, svc, "Alice", "Bob", "Carl", "Dan")
	require.NoError(t, svc.StartGame(roomID, "sess-Alice"))

	room, err := svc.GetRoom(roomID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPlaying, room.Status)
	assert.Equal(t, 1, room.CurrentRound)
	assert.NotEmpty(t, room.CivilianWord)
	assert.NotEmpty(t, room.UndercoverWord)
	assert.NotEqual(t, room.CivilianWord, room.UndercoverWord)

	undercover := 0
	for _, p := range alivePlayers(t, svc, roomID) {
		assert.NotEqual(t, models.RoleUnassigned, p.Role)
		if p.Role == models.RoleUndercover {
			undercover++
		}
	}
	assert.Equal(t, 1, undercover, "default undercoverCount=1 with 4 players")

	round, err := svc.GetCurrentRound(roomID)
	require.NoError(t, err)
	require.NotNil(t, round)
	assert.Equal(t, 1, round.RoundNumber)
	assert.Equal(t, models.RoundDescribing, round.Status)
	assert.Empty(t, round.Descriptions)
	assert.Empty(t, round.Votes)
}

func TestDescriptionsAdvanceRoundToVoting(t *testing.T) {
	svc := newTestService(t, nil)
	roomID, _ := setupRoom(t, svc, "Alice", "Bob", "Carl", "Dan")
	require.NoError(t, svc.StartGame(roomID, "sess-Alice"))

	players := alivePlayers(t, svc, roomID)
	for i, p := range players {
		require.NoError(t, svc.SubmitDescription(roomID, 1, p.ID, "clue"))

		round, err := svc.GetCurrentRound(roomID)
		require.NoError(t, err)
		if i < len(players)-1 {
			assert.Equal(t, models.RoundDescribing, round.Status)
		} else {
			assert.Equal(t, models.RoundVoting, round.Status)
		}
	}
}

func TestDuplicateDescriptionRejected(t *testing.T) {
	svc := newTestService(t, nil)
	roomID, _ := setupRoom(t, svc, "Alice", "Bob", "Carl", "Dan")
	require.NoError(t, svc.StartGame(roomID, "sess-Alice"))

	p := alivePlayers(t, svc, roomID)[0]
	require.NoError(t, svc.SubmitDescription(roomID, 1, p.ID, "first"))
	err := svc.SubmitDescription(roomID, 1, p.ID, "second")
	assert.ErrorIs(t, err, ErrDuplicateSubmission)

	round, err := svc.GetCurrentRound(roomID)
	require.NoError(t, err)
	assert.Len(t, round.Descriptions, 1)
}

func TestVoteBeforeVotingPhase(t *testing.T) {
	svc := newTestService(t, nil)
	roomID, _ := setupRoom(t, svc, "Alice", "Bob", "Carl", "Dan")
	require.NoError(t, svc.StartGame(roomID, "sess-Alice"))

	players := alivePlayers(t, svc, roomID)
	_, err := svc.SubmitVote(roomID, 1, players[0].ID, players[1].ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestDuplicateVoteRejected(t *testing.T) {
	svc := newTestService(t, nil)
	roomID, _ := setupRoom(t, svc, "Alice", "Bob", "Carl", "Dan")
	require.NoError(t, svc.StartGame(roomID, "sess-Alice"))

	players := alivePlayers(t, svc, roomID)
	for _, p := range players {
		require.NoError(t, svc.SubmitDescription(roomID, 1, p.ID, "clue"))
	}

	_, err := svc.SubmitVote(roomID, 1, players[0].ID, players[1].ID)
	require.NoError(t, err)
	_, err = svc.SubmitVote(roomID, 1, players[0].ID, players[2].ID)
	assert.ErrorIs(t, err, ErrDuplicateSubmission)
}

func TestResolveRoundRequiresVotingPhase(t *testing.T) {
	svc := newTestService(t, nil)
	roomID, _ := setupRoom(t, svc, "Alice", "Bob", "Carl", "Dan")
	require.NoError(t, svc.StartGame(roomID, "sess-Alice"))

	err := svc.ResolveRound(roomID, 1)
	assert.ErrorIs(t, err, ErrInvalidState)

	err = svc.ResolveRound(roomID, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFullLifecycle(t *testing.T) {
	svc := newTestService(t, nil)
	roomID, _ := setupRoom(t, svc, "Alice", "Bob", "Carl", "Dan")
	require.NoError(t, svc.StartGame(roomID, "sess-Alice"))

	// Round 1: everyone votes out a civilian
	target := pickByRole(t, svc, roomID, false)
	playRound(t, svc, roomID, 1, target)

	room, err := svc.GetRoom(roomID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPlaying, room.Status)
	assert.Equal(t, 2, room.CurrentRound)

	eliminated, err := svc.GetPlayers(roomID)
	require.NoError(t, err)
	for _, p := range eliminated {
		if p.ID == target.ID {
			assert.False(t, p.IsAlive)
		}
	}

	round, err := svc.GetCurrentRound(roomID)
	require.NoError(t, err)
	assert.Equal(t, 2, round.RoundNumber)
	assert.Equal(t, models.RoundDescribing, round.Status)
	assert.Len(t, alivePlayers(t, svc, roomID), 3)

	// Round 2: voting out another civilian leaves undercover at parity
	target = pickByRole(t, svc, roomID, false)
	playRound(t, svc, roomID, 2, target)

	room, err = svc.GetRoom(roomID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFinished, room.Status)
	assert.Equal(t, models.WinnerUndercover, room.Winner)

	// No round 3 after the game ended
	assert.Equal(t, 2, room.CurrentRound)
	round, err = svc.GetCurrentRound(roomID)
	require.NoError(t, err)
	assert.Equal(t, models.RoundCompleted, round.Status)
}

func TestCiviliansWinByEliminatingUndercover(t *testing.T) {
	svc := newTestService(t, nil)
	roomID, _ := setupRoom(t, svc, "Alice", "Bob", "Carl", "Dan")
	require.NoError(t, svc.StartGame(roomID, "sess-Alice"))

	target := pickByRole(t, svc, roomID, true)
	playRound(t, svc, roomID, 1, target)

	room, err := svc.GetRoom(roomID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFinished, room.Status)
	assert.Equal(t, models.WinnerCivilian, room.Winner)
}

func TestTieEliminatesNobody(t *testing.T) {
	svc := newTestService(t, nil)
	roomID, _ := setupRoom(t, svc, "Alice", "Bob", "Carl", "Dan")
	require.NoError(t, svc.StartGame(roomID, "sess-Alice"))

	players := alivePlayers(t, svc, roomID)
	for _, p := range players {
		require.NoError(t, svc.SubmitDescription(roomID, 1, p.ID, "clue"))
	}

	// Two votes each for two targets
	_, err := svc.SubmitVote(roomID, 1, players[0].ID, players[2].ID)
	require.NoError(t, err)
	_, err = svc.SubmitVote(roomID, 1, players[1].ID, players[2].ID)
	require.NoError(t, err)
	_, err = svc.SubmitVote(roomID, 1, players[2].ID, players[3].ID)
	require.NoError(t, err)
	allVoted, err := svc.SubmitVote(roomID, 1, players[3].ID, players[3].ID)
	require.NoError(t, err)
	assert.True(t, allVoted)

	require.NoError(t, svc.ResolveRound(roomID, 1))

	assert.Len(t, alivePlayers(t, svc, roomID), 4)
	room, err := svc.GetRoom(roomID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPlaying, room.Status)
	assert.Equal(t, 2, room.CurrentRound)

	round, err := svc.GetCurrentRound(roomID)
	require.NoError(t, err)
	assert.Equal(t, models.RoundDescribing, round.Status)
}

func TestUpdateSettings(t *testing.T) {
	svc := newTestService(t, nil)
	created, err := svc.CreateRoom("Alice", "sess-alice")
	require.NoError(t, err)

	six := 6
	two := 2
	require.NoError(t, svc.UpdateSettings(created.RoomID, "sess-alice", SettingsPatch{
		MaxPlayers:      &six,
		UndercoverCount: &two,
	}))

	room, err := svc.GetRoom(created.RoomID)
	require.NoError(t, err)
	assert.Equal(t, 6, room.Settings.MaxPlayers)
	assert.Equal(t, 2, room.Settings.UndercoverCount)
	assert.Equal(t, 4, room.Settings.MinPlayers, "unpatched fields keep their value")
}

func TestUpdateSettingsValidation(t *testing.T) {
	svc := newTestService(t, nil)
	created, err := svc.CreateRoom("Alice", "sess-alice")
	require.NoError(t, err)

	tooMany := 10
	err = svc.UpdateSettings(created.RoomID, "sess-alice", SettingsPatch{UndercoverCount: &tooMany})
	assert.ErrorIs(t, err, ErrInvalidSettings)

	zero := 0
	err = svc.UpdateSettings(created.RoomID, "sess-alice", SettingsPatch{MinPlayers: &zero})
	assert.ErrorIs(t, err, ErrInvalidSettings)

	err = svc.UpdateSettings(created.RoomID, "sess-bob", SettingsPatch{})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateSettingsLockedAfterStart(t *testing.T) {
	svc := newTestService(t, nil)
	roomID, _ := setupRoom(t, svc, "Alice", "Bob", "Carl", "Dan")
	require.NoError(t, svc.StartGame(roomID, "sess-Alice"))

	six := 6
	err := svc.UpdateSettings(roomID, "sess-Alice", SettingsPatch{MaxPlayers: &six})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestFinishedRoomFreesItsCode(t *testing.T) {
	svc := newTestService(t, nil)
	roomID, _ := setupRoom(t, svc, "Alice", "Bob", "Carl", "Dan")

	room, err := svc.GetRoom(roomID)
	require.NoError(t, err)
	code := room.Code

	require.NoError(t, svc.StartGame(roomID, "sess-Alice"))
	playRound(t, svc, roomID, 1, pickByRole(t, svc, roomID, true))

	room, err = svc.GetRoom(roomID)
	require.NoError(t, err)
	require.Equal(t, models.StatusFinished, room.Status)

	// The code no longer resolves, so a new room may reuse it
	_, err = svc.GetRoomByCode(code)
	assert.ErrorIs(t, err, ErrNotFound)
}
