package hilo

import (
	"errors"
	"testing"
)

func TestParseRankAcceptedTokens(t *testing.T) {
	cases := []struct {
		token string
		rank  Rank
		value int
		temp  Temperature
	}{
		{"2", Rank2, 1, Cold},
		{"3", Rank3, 1, Cold},
		{"4", Rank4, 1, Cold},
		{"5", Rank5, 1, Cold},
		{"6", Rank6, 1, Cold},
		{"7", Rank7, 0, Neutral},
		{"8", Rank8, 0, Neutral},
		{"9", Rank9, 0, Neutral},
		{"10", Rank10, -1, Hot},
		{"T", Rank10, -1, Hot},
		{"t", Rank10, -1, Hot},
		{"J", RankJack, -1, Hot},
		{"j", RankJack, -1, Hot},
		{"Q", RankQueen, -1, Hot},
		{"K", RankKing, -1, Hot},
		{"a", RankAce, -1, Hot},
		{"  A ", RankAce, -1, Hot},
	}
	for _, tc := range cases {
		rank, err := ParseRank(tc.token)
		if err != nil {
			t.Fatalf("ParseRank(%q): %v", tc.token, err)
		}
		if rank != tc.rank {
			t.Fatalf("ParseRank(%q) = %v, want %v", tc.token, rank, tc.rank)
		}
		if rank.Value() != tc.value {
			t.Fatalf("%v.Value() = %d, want %d", rank, rank.Value(), tc.value)
		}
		if rank.Temperature() != tc.temp {
			t.Fatalf("%v.Temperature() = %v, want %v", rank, rank.Temperature(), tc.temp)
		}
	}
}

func TestParseRankRejectsBadTokens(t *testing.T) {
	for _, token := range []string{"", "1", "11", "0", "B", "JQ", "A2", "!", "ten"} {
		_, err := ParseRank(token)
		if err == nil {
			t.Fatalf("ParseRank(%q) accepted, want error", token)
		}
		var invalid *InvalidTokenError
		if !errors.As(err, &invalid) {
			t.Fatalf("ParseRank(%q) error = %T, want *InvalidTokenError", token, err)
		}
		if invalid.Token != token {
			t.Fatalf("offending token = %q, want %q", invalid.Token, token)
		}
	}
}

func TestRankString(t *testing.T) {
	want := []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
	for r := Rank(0); r < NumRanks; r++ {
		if r.String() != want[r] {
			t.Fatalf("Rank(%d).String() = %q, want %q", int(r), r.String(), want[r])
		}
	}
}
