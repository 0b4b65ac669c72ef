package util

import "testing"

func TestRate(t *testing.T) {
	tests := []struct {
		name  string
		wins  int
		games int
		want  string
	}{
		{"three of four", 3, 4, "75.00"},
		{"all wins", 5, 5, "100.00"},
		{"no wins", 0, 8, "0.00"},
		{"no games", 0, 0, "0.00"},
		{"repeating fraction", 1, 3, "33.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rate(tt.wins, tt.games); got != tt.want {
				t.Errorf("Rate(%d, %d) = %q, expected %q", tt.wins, tt.games, got, tt.want)
			}
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0s"},
		{42, "42s"},
		{60, "1m0s"},
		{90, "1m30s"},
		{3600, "1h0m0s"},
		{3700, "1h1m40s"},
	}

	for _, tt := range tests {
		if got := FormatSeconds(tt.seconds); got != tt.want {
			t.Errorf("FormatSeconds(%d) = %q, expected %q", tt.seconds, got, tt.want)
		}
	}
}
