package domain

import "strings"

// Criteria is the raw filter input for a run, as supplied by the caller.
type Criteria struct {
	SelfTags          []string
	OpponentTags      []string
	IgnoredTags       []string
	SelfCharacter     string
	OpponentCharacter string
	RankedOnly        bool
}

// ResolvedCriteria is Criteria after normalization: tag lists lower-cased
// and trimmed with empty entries dropped, character names resolved against
// the fixed table.
type ResolvedCriteria struct {
	SelfTags          []string
	OpponentTags      []string
	IgnoredTags       []string
	SelfCharacter     CharacterFilter
	OpponentCharacter CharacterFilter
	RankedOnly        bool
}

// Resolve normalizes the criteria for matching. An empty tag list means no
// constraint.
func (c Criteria) Resolve() ResolvedCriteria {
	return ResolvedCriteria{
		SelfTags:          normalizeTags(c.SelfTags),
		OpponentTags:      normalizeTags(c.OpponentTags),
		IgnoredTags:       normalizeTags(c.IgnoredTags),
		SelfCharacter:     ResolveCharacterFilter(c.SelfCharacter),
		OpponentCharacter: ResolveCharacterFilter(c.OpponentCharacter),
		RankedOnly:        c.RankedOnly,
	}
}

func normalizeTags(tags []string) []string {
	var out []string
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
