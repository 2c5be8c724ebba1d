package game

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
)

// GenerateRoomCode creates a random room code. It has no collision memory;
// uniqueness among active rooms is enforced by the caller.
func GenerateRoomCode() string {
	code := make([]byte, RoomCodeLength)
	for i := 0; i < RoomCodeLength; i++ {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(RoomCodeChars))))
		if err != nil {
			// fallback to math/rand if crypto fails
			code[i] = RoomCodeChars[rand.Intn(len(RoomCodeChars))]
			continue
		}
		code[i] = RoomCodeChars[n.Int64()]
	}
	return string(code)
}

// UniqueRoomCode generates a code for which inUse returns false, retrying up
// to CodeRetryLimit times before reporting the code space as exhausted.
func UniqueRoomCode(inUse func(code string) bool) (string, error) {
	for i := 0; i < CodeRetryLimit; i++ {
		code := GenerateRoomCode()
		if !inUse(code) {
			return code, nil
		}
	}
	return "", ErrCodeSpaceExhausted
}
