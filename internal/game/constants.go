package game

const (
	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6

	// RoomCodeChars are the characters used for generating room codes (excluding ambiguous chars)
	RoomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	// CodeRetryLimit caps how often room creation retries code generation
	// before giving up. Hitting it means the code space is nearly full,
	// which is an anomaly worth failing loudly on.
	CodeRetryLimit = 20

	// UndercoverCapDivisor limits undercover roles to 1/Nth of the players,
	// so undercover players can never start at parity with civilians.
	UndercoverCapDivisor = 3
)
