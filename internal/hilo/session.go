package hilo

import (
	"fmt"

	"github.com/verte-zerg/hilo/internal/model"
)

// CardsPerDeck is the size of a single deck.
const CardsPerDeck = 52

// copiesPerDeck is how many cards of each rank one deck holds.
const copiesPerDeck = 4

// HistoryCap bounds the rolling batch history.
const HistoryCap = 5

// TemperatureTally counts cards per temperature bucket.
type TemperatureTally struct {
	Cold    int
	Neutral int
	Hot     int
}

// Total returns the number of cards across all buckets.
func (t TemperatureTally) Total() int {
	return t.Cold + t.Neutral + t.Hot
}

func (t *TemperatureTally) add(temp Temperature) {
	switch temp {
	case Cold:
		t.Cold++
	case Hot:
		t.Hot++
	default:
		t.Neutral++
	}
}

// BatchRecord is an immutable snapshot of one accepted batch.
type BatchRecord struct {
	Ranks      []Rank
	Tally      TemperatureTally
	CountAfter int
}

// RankOverflowError reports a batch that would exceed a rank's shoe supply.
type RankOverflowError struct {
	Rank      Rank
	Attempted int
	Max       int
}

func (e *RankOverflowError) Error() string {
	return fmt.Sprintf("batch would exceed max for %s: %d of %d", e.Rank, e.Attempted, e.Max)
}

// Session holds all mutable counting state for one shoe. It has a single
// owner and is not safe for concurrent use.
type Session struct {
	decks        int
	shoeLimit    bool
	coldOverride bool

	runningCount int
	cardsDealt   int
	rankCounts   [NumRanks]int
	tally        TemperatureTally
	history      []BatchRecord
}

// NewSession creates a zeroed session for the configured shoe. A deck
// count outside [model.MinDecks, model.MaxDecks] falls back to
// model.DefaultDecks.
func NewSession(cfg model.Config) *Session {
	decks := cfg.Decks
	if decks < model.MinDecks || decks > model.MaxDecks {
		decks = model.DefaultDecks
	}
	return &Session{
		decks:        decks,
		shoeLimit:    cfg.ShoeLimit,
		coldOverride: cfg.ColdOverride,
	}
}

// Decks returns the configured number of decks in the shoe.
func (s *Session) Decks() int {
	return s.decks
}

// MaxPerRank returns the shoe's supply of each rank.
func (s *Session) MaxPerRank() int {
	return s.decks * copiesPerDeck
}

// TotalCards returns the shoe's total card count.
func (s *Session) TotalCards() int {
	return s.decks * CardsPerDeck
}

// RunningCount returns the signed Hi-Lo sum of all applied cards.
func (s *Session) RunningCount() int {
	return s.runningCount
}

// CardsDealt returns the number of individual cards applied so far.
func (s *Session) CardsDealt() int {
	return s.cardsDealt
}

// RankCount returns how many cards of the rank have been dealt.
func (s *Session) RankCount(r Rank) int {
	if r < 0 || r >= NumRanks {
		return 0
	}
	return s.rankCounts[r]
}

// Tally returns the cumulative temperature totals for the session.
func (s *Session) Tally() TemperatureTally {
	return s.tally
}

// History returns the most recent accepted batches, oldest first.
func (s *Session) History() []BatchRecord {
	out := make([]BatchRecord, len(s.history))
	copy(out, s.history)
	return out
}

// RankComposition reports dealt supply for one rank.
type RankComposition struct {
	Rank  Rank
	Dealt int
	Max   int
}

// Composition returns per-rank dealt counts in rank order.
func (s *Session) Composition() []RankComposition {
	out := make([]RankComposition, NumRanks)
	for r := range s.rankCounts {
		out[r] = RankComposition{
			Rank:  Rank(r),
			Dealt: s.rankCounts[r],
			Max:   s.MaxPerRank(),
		}
	}
	return out
}

// Reset clears all counting state and history. The shoe configuration
// is preserved.
func (s *Session) Reset() {
	s.runningCount = 0
	s.cardsDealt = 0
	s.rankCounts = [NumRanks]int{}
	s.tally = TemperatureTally{}
	s.history = nil
}

// checkBatch dry-runs the proposed per-rank increments against the shoe
// supply. It performs no mutation and reports the lowest offending rank.
func (s *Session) checkBatch(increments [NumRanks]int) error {
	if !s.shoeLimit {
		return nil
	}
	for r, n := range increments {
		if n == 0 {
			continue
		}
		if attempted := s.rankCounts[r] + n; attempted > s.MaxPerRank() {
			return &RankOverflowError{Rank: Rank(r), Attempted: attempted, Max: s.MaxPerRank()}
		}
	}
	return nil
}

// applyBatch commits a validated batch and appends its history record,
// evicting the oldest record past HistoryCap.
func (s *Session) applyBatch(ranks []Rank) BatchRecord {
	var tally TemperatureTally
	for _, r := range ranks {
		s.rankCounts[r]++
		s.runningCount += r.Value()
		s.cardsDealt++
		s.tally.add(r.Temperature())
		tally.add(r.Temperature())
	}
	record := BatchRecord{
		Ranks:      append([]Rank(nil), ranks...),
		Tally:      tally,
		CountAfter: s.runningCount,
	}
	s.history = append(s.history, record)
	if len(s.history) > HistoryCap {
		s.history = s.history[len(s.history)-HistoryCap:]
	}
	return record
}
