// Package wordbank supplies the related word pairs handed out at game start.
package wordbank

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
)

// Pair is one civilian/undercover word pairing
type Pair struct {
	CivilianWord   string `json:"civilianWord"`
	UndercoverWord string `json:"undercoverWord"`
	Category       string `json:"category"`
}

// Bank supplies random word pairs
type Bank interface {
	// RandomPair returns a uniformly random pair, or false if the bank is empty.
	RandomPair() (Pair, bool)
}

// StaticBank is a fixed in-memory word list
type StaticBank struct {
	pairs []Pair
}

// NewStaticBank creates a bank over the given pairs
func NewStaticBank(pairs []Pair) *StaticBank {
	return &StaticBank{pairs: pairs}
}

// LoadFile reads a JSON array of word pairs from disk
func LoadFile(path string) (*StaticBank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var pairs []Pair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return NewStaticBank(pairs), nil
}

// RandomPair returns a uniformly random pair, or false if the bank is empty
func (b *StaticBank) RandomPair() (Pair, bool) {
	if len(b.pairs) == 0 {
		return Pair{}, false
	}
	return b.pairs[rand.Intn(len(b.pairs))], true
}

// Len returns the number of pairs in the bank
func (b *StaticBank) Len() int {
	return len(b.pairs)
}
