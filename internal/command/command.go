// Package command parses interactive input lines into intents.
package command

import "strings"

// Kind identifies the recognized session commands.
type Kind int

// Cards marks a line that is not a command and should be processed as a
// card batch.
const (
	Cards Kind = iota
	Status
	History
	Composition
	Reset
	Help
	Quit
)

// Intent is the parsed form of one input line, decided once at the
// boundary.
type Intent struct {
	Kind  Kind
	Batch string
}

// Parse classifies a line as a command or a card batch. Commands are
// case-insensitive and must be the whole line.
func Parse(line string) Intent {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "status":
		return Intent{Kind: Status}
	case "history":
		return Intent{Kind: History}
	case "composition", "counts":
		return Intent{Kind: Composition}
	case "reset":
		return Intent{Kind: Reset}
	case "help", "h", "?":
		return Intent{Kind: Help}
	case "quit", "exit", "q":
		return Intent{Kind: Quit}
	default:
		return Intent{Kind: Cards, Batch: line}
	}
}
