package report

import (
	"strings"
	"testing"
)

func TestDepletionBar(t *testing.T) {
	cases := []struct {
		dealt, total, width int
		filled              int
		percent             string
	}{
		{0, 100, 10, 0, "0%"},
		{50, 100, 10, 5, "50%"},
		{100, 100, 10, 10, "100%"},
		{120, 100, 10, 10, "100%"},
		{1, 0, 10, 0, "0%"},
	}
	for _, tc := range cases {
		out := DepletionBar(tc.dealt, tc.total, tc.width)
		if got := strings.Count(out, "#"); got != tc.filled {
			t.Fatalf("DepletionBar(%d, %d, %d) filled = %d, want %d: %q",
				tc.dealt, tc.total, tc.width, got, tc.filled, out)
		}
		if got := strings.Count(out, "#") + strings.Count(out, "-"); got != tc.width {
			t.Fatalf("bar width = %d, want %d: %q", got, tc.width, out)
		}
		if !strings.HasSuffix(out, tc.percent) {
			t.Fatalf("bar %q does not end with %q", out, tc.percent)
		}
	}
}

func TestDepletionBarDefaultWidth(t *testing.T) {
	out := DepletionBar(0, 52, 0)
	if got := strings.Count(out, "-"); got != defaultBarWidth {
		t.Fatalf("default bar width = %d, want %d", got, defaultBarWidth)
	}
}

func TestTerminalWidthPositive(t *testing.T) {
	// In a terminal this is the real width; anywhere else it is the
	// backup, so it is never zero or negative.
	if got := TerminalWidth(); got <= 0 {
		t.Fatalf("TerminalWidth() = %d, want > 0", got)
	}
}

func TestBarWidthFor(t *testing.T) {
	if got := BarWidthFor(20); got != 13 {
		t.Fatalf("BarWidthFor(20) = %d, want 13", got)
	}
	if got := BarWidthFor(200); got != defaultBarWidth {
		t.Fatalf("BarWidthFor(200) = %d, want cap %d", got, defaultBarWidth)
	}
	if got := BarWidthFor(3); got != defaultBarWidth {
		t.Fatalf("BarWidthFor(3) = %d, want fallback %d", got, defaultBarWidth)
	}
}
