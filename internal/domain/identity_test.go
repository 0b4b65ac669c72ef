package domain

import "testing"

func TestNewPlayerIdentity_TagDerivation(t *testing.T) {
	tests := []struct {
		name string
		meta PlayerMeta
		want []string
	}{
		{
			name: "all name data present",
			meta: PlayerMeta{DisplayName: "Ryan", ConnectCode: "RYAN#123", Nametag: "RY"},
			want: []string{"ryan", "ryan#123", "ry"},
		},
		{
			name: "whitespace trimmed",
			meta: PlayerMeta{DisplayName: "  Ryan  "},
			want: []string{"ryan"},
		},
		{
			name: "no name data yields empty tag set",
			meta: PlayerMeta{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPlayerIdentity(tt.meta).Tags()
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d tags, got %d (%v)", len(tt.want), len(got), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("tag %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestMatchesAnyTag(t *testing.T) {
	ryan := NewPlayerIdentity(PlayerMeta{DisplayName: "Ryan", ConnectCode: "RYAN#123"})
	anonymous := NewPlayerIdentity(PlayerMeta{})

	tests := []struct {
		name     string
		identity PlayerIdentity
		wanted   []string
		want     bool
	}{
		{"empty filter matches named identity", ryan, nil, true},
		{"empty filter matches empty identity", anonymous, nil, true},
		{"substring filter matches", ryan, []string{"ry"}, true},
		{"connect code substring matches", ryan, []string{"#123"}, true},
		{"unrelated filter does not match", ryan, []string{"mango"}, false},
		{"any entry matching is enough", ryan, []string{"mango", "ryan"}, true},
		{"empty identity matches nothing but empty filter", anonymous, []string{"ryan"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.identity.MatchesAnyTag(tt.wanted); got != tt.want {
				t.Errorf("MatchesAnyTag(%v) = %v, expected %v", tt.wanted, got, tt.want)
			}
		})
	}
}

func TestIsIgnored(t *testing.T) {
	ryan := NewPlayerIdentity(PlayerMeta{DisplayName: "Ryan", ConnectCode: "RYAN#123"})

	if ryan.IsIgnored(nil) {
		t.Error("empty ignore list must ignore nobody")
	}
	if !ryan.IsIgnored([]string{"ry"}) {
		t.Error("substring in ignore list must ignore the identity")
	}
	if ryan.IsIgnored([]string{"mango"}) {
		t.Error("unrelated ignore entry must not ignore the identity")
	}
}
