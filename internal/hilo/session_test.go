package hilo

import (
	"strings"
	"testing"

	"github.com/verte-zerg/hilo/internal/model"
)

func newTestSession(t *testing.T, decks int) *Session {
	t.Helper()
	return NewSession(model.Config{Decks: decks, ShoeLimit: true, ColdOverride: true})
}

func mustProcess(t *testing.T, s *Session, raw string) BatchResult {
	t.Helper()
	result, err := s.ProcessBatch(raw)
	if err != nil {
		t.Fatalf("ProcessBatch(%q): %v", raw, err)
	}
	return result
}

func TestNewSessionFallsBackToDefaultDecks(t *testing.T) {
	for _, decks := range []int{0, -3, 9, 100} {
		s := newTestSession(t, decks)
		if s.Decks() != model.DefaultDecks {
			t.Fatalf("Decks() = %d for configured %d, want %d", s.Decks(), decks, model.DefaultDecks)
		}
	}
	s := newTestSession(t, 8)
	if s.Decks() != 8 || s.MaxPerRank() != 32 || s.TotalCards() != 416 {
		t.Fatalf("8-deck shoe: decks=%d maxPerRank=%d total=%d", s.Decks(), s.MaxPerRank(), s.TotalCards())
	}
}

func TestRunningCountIndependentOfBatching(t *testing.T) {
	cards := "A K 10 7 9 5 2"

	single := newTestSession(t, 6)
	mustProcess(t, single, cards)

	split := newTestSession(t, 6)
	for _, token := range strings.Fields(cards) {
		mustProcess(t, split, token)
	}

	if single.RunningCount() != -1 {
		t.Fatalf("running count = %d, want -1", single.RunningCount())
	}
	if split.RunningCount() != single.RunningCount() {
		t.Fatalf("split count = %d, single count = %d", split.RunningCount(), single.RunningCount())
	}
	if single.CardsDealt() != 7 || split.CardsDealt() != 7 {
		t.Fatalf("cards dealt = %d/%d, want 7", single.CardsDealt(), split.CardsDealt())
	}
}

func TestSessionInvariantsAfterBatches(t *testing.T) {
	s := newTestSession(t, 6)
	mustProcess(t, s, "2 2 7 K A 10 5")
	mustProcess(t, s, "J, Q, 8, 3")

	sum := 0
	for r := Rank(0); r < NumRanks; r++ {
		sum += s.RankCount(r)
	}
	if sum != s.CardsDealt() {
		t.Fatalf("sum of rank counts = %d, cards dealt = %d", sum, s.CardsDealt())
	}
	if s.Tally().Total() != s.CardsDealt() {
		t.Fatalf("tally total = %d, cards dealt = %d", s.Tally().Total(), s.CardsDealt())
	}
}

func TestHistoryBound(t *testing.T) {
	s := newTestSession(t, 6)
	batches := []string{"2", "3", "4", "5", "6", "7", "8"}
	for _, b := range batches {
		mustProcess(t, s, b)
	}
	history := s.History()
	if len(history) != HistoryCap {
		t.Fatalf("history length = %d, want %d", len(history), HistoryCap)
	}
	// Oldest two evicted; the rest remain in order.
	for i, want := range []Rank{Rank4, Rank5, Rank6, Rank7, Rank8} {
		if len(history[i].Ranks) != 1 || history[i].Ranks[0] != want {
			t.Fatalf("history[%d] = %v, want [%v]", i, history[i].Ranks, want)
		}
	}
}

func TestResetIdempotentAndPreservesShoe(t *testing.T) {
	s := newTestSession(t, 8)
	mustProcess(t, s, "A K 2 3")

	s.Reset()
	s.Reset()

	if s.RunningCount() != 0 || s.CardsDealt() != 0 {
		t.Fatalf("after reset: count=%d dealt=%d", s.RunningCount(), s.CardsDealt())
	}
	for r := Rank(0); r < NumRanks; r++ {
		if s.RankCount(r) != 0 {
			t.Fatalf("rank %v count = %d after reset", r, s.RankCount(r))
		}
	}
	if (s.Tally() != TemperatureTally{}) {
		t.Fatalf("tally = %+v after reset", s.Tally())
	}
	if len(s.History()) != 0 {
		t.Fatalf("history length = %d after reset", len(s.History()))
	}
	if s.Decks() != 8 || s.MaxPerRank() != 32 {
		t.Fatalf("shoe config changed by reset: decks=%d maxPerRank=%d", s.Decks(), s.MaxPerRank())
	}

	// Supply is fresh again after reset.
	mustProcess(t, s, strings.TrimSpace(strings.Repeat("A ", 32)))
	if s.RankCount(RankAce) != 32 {
		t.Fatalf("ace count = %d, want 32", s.RankCount(RankAce))
	}
}

func TestComposition(t *testing.T) {
	s := newTestSession(t, 6)
	mustProcess(t, s, "A A 5")
	comp := s.Composition()
	if len(comp) != NumRanks {
		t.Fatalf("composition length = %d, want %d", len(comp), NumRanks)
	}
	for _, c := range comp {
		if c.Max != 24 {
			t.Fatalf("rank %v max = %d, want 24", c.Rank, c.Max)
		}
	}
	if comp[RankAce].Dealt != 2 || comp[Rank5].Dealt != 1 {
		t.Fatalf("dealt counts: A=%d 5=%d", comp[RankAce].Dealt, comp[Rank5].Dealt)
	}
}
