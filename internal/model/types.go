// Package model defines shared data structures.
package model

// Shoe size bounds and the fallback used when the configured value is
// out of range.
const (
	MinDecks     = 1
	MaxDecks     = 8
	DefaultDecks = 6
)

// Config defines shoe and session settings.
type Config struct {
	Decks        int
	ShoeLimit    bool
	ColdOverride bool
	Plain        bool
}
