package models

import "testing"

func TestParseState(t *testing.T) {
	for _, s := range AllStates() {
		got, ok := ParseState(string(s))
		if !ok {
			t.Errorf("ParseState(%q) not ok", s)
		}
		if got != s {
			t.Errorf("ParseState(%q) = %q, want %q", s, got, s)
		}
	}

	if _, ok := ParseState("Atlantis"); ok {
		t.Error("ParseState should reject unknown states")
	}
	if _, ok := ParseState(""); ok {
		t.Error("ParseState should reject the empty string")
	}
}

func TestDistricts_EveryStateHasFour(t *testing.T) {
	for _, s := range AllStates() {
		if got := len(s.Districts()); got != 4 {
			t.Errorf("%s has %d districts, want 4", s, got)
		}
	}
	if State("").Districts() != nil {
		t.Error("zero-value State should have no districts")
	}
}

func TestHasDistrict(t *testing.T) {
	if !Punjab.HasDistrict("Amritsar") {
		t.Error("Amritsar should belong to Punjab")
	}
	if Punjab.HasDistrict("Pune") {
		t.Error("Pune should not belong to Punjab")
	}
	if State("").HasDistrict("Pune") {
		t.Error("zero-value State should have no districts")
	}
}

func TestProfile_Complete(t *testing.T) {
	cases := []struct {
		name string
		p    Profile
		want bool
	}{
		{"full", Profile{Name: "Asha", State: Karnataka, District: "Mysore"}, true},
		{"no name", Profile{State: Karnataka, District: "Mysore"}, false},
		{"no state", Profile{Name: "Asha", District: "Mysore"}, false},
		{"no district", Profile{Name: "Asha", State: Karnataka}, false},
		{"district from other state", Profile{Name: "Asha", State: Karnataka, District: "Agra"}, false},
	}
	for _, tc := range cases {
		if got := tc.p.Complete(); got != tc.want {
			t.Errorf("%s: Complete() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
