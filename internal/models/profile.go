package models

// State is the closed set of regions a user can register under. Keeping it a
// typed enum (instead of indexing a map by raw strings) makes an unmatched
// state unrepresentable in the district lookup.
type State string

const (
	Maharashtra   State = "Maharashtra"
	Punjab        State = "Punjab"
	Haryana       State = "Haryana"
	UttarPradesh  State = "Uttar Pradesh"
	Karnataka     State = "Karnataka"
	AndhraPradesh State = "Andhra Pradesh"
)

func (s State) String() string { return string(s) }

// AllStates lists every supported state in display order.
func AllStates() []State {
	return []State{Maharashtra, Punjab, Haryana, UttarPradesh, Karnataka, AndhraPradesh}
}

// ParseState maps the exact display name to its State. ok is false for any
// name outside the supported set.
func ParseState(name string) (State, bool) {
	for _, s := range AllStates() {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}

// Districts returns the fixed district list for the state. Unknown states
// (zero value included) have no districts.
func (s State) Districts() []string {
	switch s {
	case Maharashtra:
		return []string{"Pune", "Mumbai", "Nashik", "Aurangabad"}
	case Punjab:
		return []string{"Ludhiana", "Amritsar", "Jalandhar", "Patiala"}
	case Haryana:
		return []string{"Gurgaon", "Faridabad", "Panipat", "Ambala"}
	case UttarPradesh:
		return []string{"Lucknow", "Kanpur", "Agra", "Meerut"}
	case Karnataka:
		return []string{"Bangalore", "Mysore", "Hubli", "Mangalore"}
	case AndhraPradesh:
		return []string{"Hyderabad", "Visakhapatnam", "Vijayawada", "Guntur"}
	}
	return nil
}

// HasDistrict reports whether district belongs to the state's district set.
func (s State) HasDistrict(district string) bool {
	for _, d := range s.Districts() {
		if d == district {
			return true
		}
	}
	return false
}

// Profile is the minimal profile collected at the final auth step. It lives in
// client memory only; nothing here is persisted.
type Profile struct {
	Name     string `json:"name"`
	State    State  `json:"state"`
	District string `json:"district"`
}

// Complete reports whether every field is filled in and the district belongs
// to the selected state.
func (p Profile) Complete() bool {
	return p.Name != "" && p.State != "" && p.District != "" && p.State.HasDistrict(p.District)
}
