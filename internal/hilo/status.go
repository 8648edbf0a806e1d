package hilo

// minDecksRemaining floors the decks-remaining estimate at half a deck
// so the true count denominator never reaches zero.
const minDecksRemaining = 0.5

// coldOverrideThreshold is the cumulative cold-card count past which the
// deck is treated as player-favorable regardless of the true count.
const coldOverrideThreshold = 60

// Advantage classifies the remaining deck composition.
type Advantage int

// Advantage states in display precedence.
const (
	AdvantageNeutral Advantage = iota
	AdvantagePlayer
	AdvantageDealer
)

// String returns the display label for the advantage.
func (a Advantage) String() string {
	switch a {
	case AdvantagePlayer:
		return "Player-favorable"
	case AdvantageDealer:
		return "Dealer-favorable"
	default:
		return "Neutral"
	}
}

// StatusReport is a read-only snapshot of derived counting statistics.
type StatusReport struct {
	RunningCount   int
	CardsDealt     int
	TotalCards     int
	CardsRemaining int
	DecksRemaining float64
	TrueCount      float64
	Advantage      Advantage
	Tally          TemperatureTally
}

// Status derives the current statistics without mutating the session.
// When the cold-override rule is enabled, 60 or more cumulative cold
// cards force a player-favorable advantage; otherwise the true count
// decides at the +1.0/-1.0 thresholds.
func (s *Session) Status() StatusReport {
	decksRemaining := float64(s.decks) - float64(s.cardsDealt)/CardsPerDeck
	if decksRemaining < minDecksRemaining {
		decksRemaining = minDecksRemaining
	}
	trueCount := float64(s.runningCount) / decksRemaining

	advantage := AdvantageNeutral
	switch {
	case s.coldOverride && s.tally.Cold >= coldOverrideThreshold:
		advantage = AdvantagePlayer
	case trueCount > 1.0:
		advantage = AdvantagePlayer
	case trueCount < -1.0:
		advantage = AdvantageDealer
	}

	remaining := s.TotalCards() - s.cardsDealt
	if remaining < 0 {
		remaining = 0
	}
	return StatusReport{
		RunningCount:   s.runningCount,
		CardsDealt:     s.cardsDealt,
		TotalCards:     s.TotalCards(),
		CardsRemaining: remaining,
		DecksRemaining: decksRemaining,
		TrueCount:      trueCount,
		Advantage:      advantage,
		Tally:          s.tally,
	}
}
