// Package issue defines the normalized summary of an issue, pull request,
// merge request or bug report, independent of the service it was fetched from.
package issue

import (
	"fmt"
)

// Info is the normalized result of resolving a URL.
type Info struct {
	Title string `json:"title" yaml:"title"`
	State State  `json:"state" yaml:"state"`
}

// State is the lifecycle state of an issue or pull request.
type State int

// Known states.
const (
	StateOpen State = iota
	StateClosed
	StateMerged
	StateDraft
)

var stateNames = map[State]string{
	StateOpen:   "open",
	StateClosed: "closed",
	StateMerged: "merged",
	StateDraft:  "draft",
}

// IsOpen reports whether the state is Open. Drafts are not considered open.
func (s State) IsOpen() bool {
	return s == StateOpen
}

// String returns the lowercase name of the state.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ParseState returns the state whose String form is name.
func ParseState(name string) (State, error) {
	for state, stateName := range stateNames {
		if stateName == name {
			return state, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownState, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	if _, ok := stateNames[s]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	state, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = state
	return nil
}
