package domain

import "strings"

// PlayerIdentity is one participant's name data plus the lower-cased tag
// set derived from it. Tags are matched by substring against filters; an
// identity with no name data has an empty tag set and matches nothing
// except an empty filter.
type PlayerIdentity struct {
	DisplayName string
	ConnectCode string
	tags        []string
}

// NewPlayerIdentity derives an identity from decoder metadata.
func NewPlayerIdentity(meta PlayerMeta) PlayerIdentity {
	id := PlayerIdentity{
		DisplayName: meta.DisplayName,
		ConnectCode: meta.ConnectCode,
	}
	for _, raw := range []string{meta.DisplayName, meta.ConnectCode, meta.Nametag} {
		tag := strings.ToLower(strings.TrimSpace(raw))
		if tag != "" {
			id.tags = append(id.tags, tag)
		}
	}
	return id
}

// Tags returns the derived lower-cased tag set.
func (p PlayerIdentity) Tags() []string {
	return p.tags
}

// MatchesAnyTag reports whether the identity satisfies the filter list.
// An empty filter is unconstrained and matches any identity. Otherwise a
// filter entry matches when it appears as a substring of any tag, so a
// filter of "ry" matches the tag "ryan#123".
func (p PlayerIdentity) MatchesAnyTag(wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, tag := range p.tags {
		for _, want := range wanted {
			if strings.Contains(tag, want) {
				return true
			}
		}
	}
	return false
}

// IsIgnored reports whether the identity hits the ignore list. Unlike
// MatchesAnyTag, an empty ignore list ignores nobody.
func (p PlayerIdentity) IsIgnored(ignored []string) bool {
	if len(ignored) == 0 {
		return false
	}
	return p.MatchesAnyTag(ignored)
}
