package domain

import "strings"

// UnknownName labels any id the fixed tables cannot resolve.
const UnknownName = "Unknown"

// characterNames maps the fixed external character ids to display names.
var characterNames = map[int]string{
	0:  "Captain Falcon",
	1:  "Donkey Kong",
	2:  "Fox",
	3:  "Mr. Game & Watch",
	4:  "Kirby",
	5:  "Bowser",
	6:  "Link",
	7:  "Luigi",
	8:  "Mario",
	9:  "Marth",
	10: "Mewtwo",
	11: "Ness",
	12: "Peach",
	13: "Pikachu",
	14: "Ice Climbers",
	15: "Jigglypuff",
	16: "Samus",
	17: "Yoshi",
	18: "Zelda",
	19: "Sheik",
	20: "Falco",
	21: "Young Link",
	22: "Dr. Mario",
	23: "Roy",
	24: "Pichu",
	25: "Ganondorf",
}

// CharacterName resolves a character id to its display name, or
// UnknownName when the id is not in the table.
func CharacterName(id int) string {
	if name, ok := characterNames[id]; ok {
		return name
	}
	return UnknownName
}

// CharacterFilter is a resolved character constraint: unset (matches
// everything), a concrete id, or invalid (matches nothing).
type CharacterFilter struct {
	set     bool
	invalid bool
	ID      int
	Name    string
}

// ResolveCharacterFilter looks a character name up case-insensitively in
// the fixed table. An empty name yields an unset filter; an unrecognized
// name yields an invalid filter that never matches.
func ResolveCharacterFilter(name string) CharacterFilter {
	name = strings.TrimSpace(name)
	if name == "" {
		return CharacterFilter{}
	}
	for id, canonical := range characterNames {
		if strings.EqualFold(canonical, name) {
			return CharacterFilter{set: true, ID: id, Name: canonical}
		}
	}
	return CharacterFilter{set: true, invalid: true, Name: name}
}

// IsSet reports whether the filter constrains anything.
func (f CharacterFilter) IsSet() bool { return f.set }

// Matches reports whether a character id satisfies the filter.
func (f CharacterFilter) Matches(id int) bool {
	if !f.set {
		return true
	}
	if f.invalid {
		return false
	}
	return f.ID == id
}
