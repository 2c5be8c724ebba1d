package game

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrUnauthorized        = errors.New("only the host can do that")
	ErrInvalidState        = errors.New("operation not allowed in the current phase")
	ErrInsufficientPlayers = errors.New("not enough players")
	ErrRoomFull            = errors.New("room is full")
	ErrDuplicateSubmission = errors.New("already submitted this round")
	ErrNoWordsAvailable    = errors.New("no word pairs available")
	ErrCodeSpaceExhausted  = errors.New("could not generate an unused room code")
	ErrInvalidSettings     = errors.New("invalid settings")
	ErrInvalidInput        = errors.New("invalid input")
)
