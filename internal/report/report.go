package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/verte-zerg/hilo/internal/hilo"
)

// RenderStatus writes the derived statistics block. The depletion bar
// is sized to the terminal when stdout is one.
func RenderStatus(w io.Writer, rep hilo.StatusReport) error {
	lines := []string{
		fmt.Sprintf("Running Count: %+d", rep.RunningCount),
		fmt.Sprintf("Cards Seen: %d/%d", rep.CardsDealt, rep.TotalCards),
		fmt.Sprintf("Cards Remaining: %d", rep.CardsRemaining),
		fmt.Sprintf("Decks Remaining: %.2f", rep.DecksRemaining),
		fmt.Sprintf("True Count: %.2f", rep.TrueCount),
		fmt.Sprintf("Status: %s", rep.Advantage),
		fmt.Sprintf("Cold/Neutral/Hot: %d/%d/%d", rep.Tally.Cold, rep.Tally.Neutral, rep.Tally.Hot),
		DepletionBar(rep.CardsDealt, rep.TotalCards, BarWidthFor(TerminalWidth())),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderBatch writes the per-card classification of an accepted batch.
func RenderBatch(w io.Writer, res hilo.BatchResult) error {
	parts := make([]string, 0, len(res.Cards))
	for _, card := range res.Cards {
		parts = append(parts, fmt.Sprintf("%s %+d", card.Rank, card.Value))
	}
	if _, err := fmt.Fprintf(w, "Counted: %s\n", strings.Join(parts, ", ")); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Batch: %d cold, %d neutral, %d hot\n",
		res.Tally.Cold, res.Tally.Neutral, res.Tally.Hot)
	return err
}

// RenderComposition writes the per-rank composition table.
func RenderComposition(w io.Writer, comp []hilo.RankComposition) error {
	if len(comp) == 0 {
		_, err := fmt.Fprintln(w, "No composition available.")
		return err
	}
	headers := []string{"Rank", "Dealt", "Max", "Remaining"}
	rows := make([][]string, 0, len(comp))
	for _, c := range comp {
		rows = append(rows, []string{
			c.Rank.String(),
			strconv.Itoa(c.Dealt),
			strconv.Itoa(c.Max),
			strconv.Itoa(c.Max - c.Dealt),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderHistory writes the recent accepted batches, oldest first.
func RenderHistory(w io.Writer, records []hilo.BatchRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No batches yet.")
		return err
	}
	headers := []string{"#", "Cards", "Cold", "Neutral", "Hot", "Count After"}
	rows := make([][]string, 0, len(records))
	for i, rec := range records {
		cards := make([]string, 0, len(rec.Ranks))
		for _, r := range rec.Ranks {
			cards = append(cards, r.String())
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strings.Join(cards, " "),
			strconv.Itoa(rec.Tally.Cold),
			strconv.Itoa(rec.Tally.Neutral),
			strconv.Itoa(rec.Tally.Hot),
			fmt.Sprintf("%+d", rec.CountAfter),
		})
	}
	rightAlign := map[int]bool{0: true, 2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderValues writes the Hi-Lo reference table for all 13 ranks.
func RenderValues(w io.Writer) error {
	headers := []string{"Rank", "Value", "Temperature"}
	rows := make([][]string, 0, hilo.NumRanks)
	for r := hilo.Rank(0); r < hilo.NumRanks; r++ {
		rows = append(rows, []string{
			r.String(),
			fmt.Sprintf("%+d", r.Value()),
			r.Temperature().String(),
		})
	}
	rightAlign := map[int]bool{1: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderHelp writes the command summary shown at startup and on "help".
func RenderHelp(w io.Writer) error {
	lines := []string{
		"Commands:",
		"  <cards>      count a batch, e.g. A K 10 5 2 (commas work too)",
		"  status       show running count, true count, and advantage",
		"  history      show the last accepted batches",
		"  composition  show dealt cards per rank (alias: counts)",
		"  reset        clear the count and start the shoe over",
		"  help         show this help",
		"  quit         exit",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
