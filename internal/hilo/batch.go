package hilo

import (
	"errors"
	"strings"
	"unicode"
)

// ErrEmptyBatch reports card input that parsed to zero tokens.
var ErrEmptyBatch = errors.New("empty batch")

// CardResult is the classification of a single entered card.
type CardResult struct {
	Rank        Rank
	Value       int
	Temperature Temperature
}

// BatchResult reports an accepted batch back to the caller.
type BatchResult struct {
	Cards []CardResult
	Tally TemperatureTally
}

// Tokenize splits raw card input on commas and whitespace, discarding
// empty tokens.
func Tokenize(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// ProcessBatch classifies, validates, and applies one batch of card
// tokens. The batch is atomic: on any error the session is untouched.
// Every invalid token in the batch is reported, joined into one error.
func (s *Session) ProcessBatch(raw string) (BatchResult, error) {
	tokens := Tokenize(raw)
	if len(tokens) == 0 {
		return BatchResult{}, ErrEmptyBatch
	}

	cards := make([]CardResult, 0, len(tokens))
	ranks := make([]Rank, 0, len(tokens))
	var increments [NumRanks]int
	var errs []error
	for _, token := range tokens {
		rank, err := ParseRank(token)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cards = append(cards, CardResult{
			Rank:        rank,
			Value:       rank.Value(),
			Temperature: rank.Temperature(),
		})
		ranks = append(ranks, rank)
		increments[rank]++
	}
	if len(errs) > 0 {
		return BatchResult{}, errors.Join(errs...)
	}

	if err := s.checkBatch(increments); err != nil {
		return BatchResult{}, err
	}
	record := s.applyBatch(ranks)
	return BatchResult{Cards: cards, Tally: record.Tally}, nil
}
