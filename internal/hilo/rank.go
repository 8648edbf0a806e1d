// Package hilo implements Hi-Lo card counting over a multi-deck shoe.
package hilo

import (
	"fmt"
	"strings"
)

// Rank identifies one of the 13 card ranks.
type Rank int

// Ranks in ascending order. Rank10 covers "10" and its "T" input alias.
const (
	Rank2 Rank = iota
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJack
	RankQueen
	RankKing
	RankAce
)

// NumRanks is the number of distinct ranks.
const NumRanks = 13

var rankNames = [NumRanks]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// String returns the canonical token for the rank.
func (r Rank) String() string {
	if r < 0 || r >= NumRanks {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Temperature classifies a rank by its effect on the running count.
type Temperature int

// Cold ranks add to the count, hot ranks subtract, neutral ranks do nothing.
const (
	Cold Temperature = iota
	Neutral
	Hot
)

// String returns a lowercase label for the temperature.
func (t Temperature) String() string {
	switch t {
	case Cold:
		return "cold"
	case Hot:
		return "hot"
	default:
		return "neutral"
	}
}

// Temperature returns the Hi-Lo temperature of the rank: 2-6 cold,
// 7-9 neutral, 10-A hot.
func (r Rank) Temperature() Temperature {
	switch {
	case r <= Rank6:
		return Cold
	case r <= Rank9:
		return Neutral
	default:
		return Hot
	}
}

// Value returns the Hi-Lo point value of the rank (+1, 0, or -1).
func (r Rank) Value() int {
	switch r.Temperature() {
	case Cold:
		return 1
	case Hot:
		return -1
	default:
		return 0
	}
}

// InvalidTokenError reports a token outside the card grammar.
type InvalidTokenError struct {
	Token string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid card %q (use 2-10, T, J, Q, K, A)", e.Token)
}

// ParseRank maps a raw token to its rank. Surrounding whitespace is
// ignored, letters are case-insensitive, and "T" is an alias for "10".
func ParseRank(token string) (Rank, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	if t == "T" {
		t = "10"
	}
	for i, name := range rankNames {
		if t == name {
			return Rank(i), nil
		}
	}
	return 0, &InvalidTokenError{Token: token}
}
