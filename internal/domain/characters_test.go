package domain

import "testing"

func TestResolveCharacterFilter(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantSet   bool
		wantID    int
		wantMatch int  // id the filter should match, -1 to skip
		wantMiss  bool // filter matches nothing at all
	}{
		{"empty name is unconstrained", "", false, 0, 2, false},
		{"exact name resolves", "Fox", true, 2, 2, false},
		{"lookup is case-insensitive", "fALCO", true, 20, 20, false},
		{"surrounding whitespace ignored", "  Marth ", true, 9, 9, false},
		{"unknown name never matches", "Goku", true, 0, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := ResolveCharacterFilter(tt.input)
			if filter.IsSet() != tt.wantSet {
				t.Fatalf("IsSet() = %v, expected %v", filter.IsSet(), tt.wantSet)
			}
			if tt.wantSet && !tt.wantMiss && filter.ID != tt.wantID {
				t.Errorf("resolved id %d, expected %d", filter.ID, tt.wantID)
			}
			if tt.wantMatch >= 0 && !filter.Matches(tt.wantMatch) {
				t.Errorf("expected filter to match id %d", tt.wantMatch)
			}
			if tt.wantMiss {
				for id := 0; id < 26; id++ {
					if filter.Matches(id) {
						t.Errorf("invalid filter matched id %d", id)
					}
				}
			}
		})
	}
}

func TestCharacterName_Unknown(t *testing.T) {
	if got := CharacterName(99); got != UnknownName {
		t.Errorf("CharacterName(99) = %q, expected %q", got, UnknownName)
	}
	if got := CharacterName(2); got != "Fox" {
		t.Errorf("CharacterName(2) = %q, expected Fox", got)
	}
}

func TestStageName(t *testing.T) {
	if name, ok := StageName(31); !ok || name != "Battlefield" {
		t.Errorf("StageName(31) = %q, %v", name, ok)
	}
	if _, ok := StageName(1); ok {
		t.Error("StageName(1) must be unknown")
	}
}
