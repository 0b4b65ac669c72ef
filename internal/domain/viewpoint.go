package domain

// Viewpoint assigns the two recorded participants to the self and opponent
// roles for one match.
type Viewpoint struct {
	SelfIndex     int
	OpponentIndex int
}

// ResolveViewpoint decides which participant is self and which is opponent
// under the given criteria, or reports that the match does not qualify.
//
// With an opponent filter set, exactly one ordering must satisfy both the
// self and opponent filters. Without one, the single participant matching
// the self filter is self; when both match the tie breaks to participant 0.
// A chosen opponent that hits the ignore list disqualifies the match.
func ResolveViewpoint(p0, p1 PlayerIdentity, crit ResolvedCriteria) (Viewpoint, bool) {
	vp, ok := pickViewpoint(p0, p1, crit)
	if !ok {
		return Viewpoint{}, false
	}

	opponent := p0
	if vp.OpponentIndex == 1 {
		opponent = p1
	}
	if opponent.IsIgnored(crit.IgnoredTags) {
		return Viewpoint{}, false
	}
	return vp, true
}

func pickViewpoint(p0, p1 PlayerIdentity, crit ResolvedCriteria) (Viewpoint, bool) {
	if len(crit.OpponentTags) > 0 {
		forward := p0.MatchesAnyTag(crit.SelfTags) && p1.MatchesAnyTag(crit.OpponentTags)
		reverse := p1.MatchesAnyTag(crit.SelfTags) && p0.MatchesAnyTag(crit.OpponentTags)
		switch {
		case forward && !reverse:
			return Viewpoint{SelfIndex: 0, OpponentIndex: 1}, true
		case reverse && !forward:
			return Viewpoint{SelfIndex: 1, OpponentIndex: 0}, true
		default:
			// Neither or both orderings satisfy: ambiguous, exclude.
			return Viewpoint{}, false
		}
	}

	p0Matches := p0.MatchesAnyTag(crit.SelfTags)
	p1Matches := p1.MatchesAnyTag(crit.SelfTags)
	switch {
	case p0Matches:
		// Both matching mirrors default to participant 0 as self.
		return Viewpoint{SelfIndex: 0, OpponentIndex: 1}, true
	case p1Matches:
		return Viewpoint{SelfIndex: 1, OpponentIndex: 0}, true
	default:
		return Viewpoint{}, false
	}
}
