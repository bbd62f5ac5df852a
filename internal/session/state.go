package session

import "fmt"

// State is the position of the session in the browse/apply cycle.
type State int

const (
	// Browsing: no application form or summary is open.
	Browsing State = iota
	// Viewing: a job is selected and its application form is open.
	Viewing
	// Applied: the form for the selected job was accepted; the summary is open.
	Applied
)

func (s State) String() string {
	switch s {
	case Browsing:
		return "browsing"
	case Viewing:
		return "viewing"
	case Applied:
		return "applied"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "browsing":
		*s = Browsing
	case "viewing":
		*s = Viewing
	case "applied":
		*s = Applied
	default:
		return fmt.Errorf("unknown session state %q", b)
	}
	return nil
}
