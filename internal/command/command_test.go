package command

import "testing"

func TestParseCommands(t *testing.T) {
	cases := []struct {
		line string
		kind Kind
	}{
		{"status", Status},
		{"STATUS", Status},
		{"  Status  ", Status},
		{"history", History},
		{"composition", Composition},
		{"counts", Composition},
		{"reset", Reset},
		{"help", Help},
		{"h", Help},
		{"?", Help},
		{"quit", Quit},
		{"exit", Quit},
		{"q", Quit},
		{"Q", Quit},
	}
	for _, tc := range cases {
		intent := Parse(tc.line)
		if intent.Kind != tc.kind {
			t.Fatalf("Parse(%q).Kind = %v, want %v", tc.line, intent.Kind, tc.kind)
		}
		if intent.Batch != "" {
			t.Fatalf("Parse(%q).Batch = %q, want empty", tc.line, intent.Batch)
		}
	}
}

func TestParseCardBatches(t *testing.T) {
	for _, line := range []string{"A K 10", "2,3,4", "statuses", "reset now", "t"} {
		intent := Parse(line)
		if intent.Kind != Cards {
			t.Fatalf("Parse(%q).Kind = %v, want Cards", line, intent.Kind)
		}
		if intent.Batch != line {
			t.Fatalf("Parse(%q).Batch = %q, want original line", line, intent.Batch)
		}
	}
}
