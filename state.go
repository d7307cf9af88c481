package openhours

import (
	"fmt"

	"github.com/roach88/openhours/internal/engine"
)

// State is the tri-state result of evaluating a Schedule at an instant.
type State uint8

const (
	Open State = iota
	Closed
	Unknown
)

// String returns the state's wire token: "open", "closed" or "unknown".
// The vocabulary is closed; any other State value is a programming error.
func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	case Unknown:
		return "unknown"
	}
	panic(fmt.Sprintf("openhours: invalid State(%d)", uint8(s)))
}

// ParseState decodes a wire token back into a State. The token vocabulary
// is closed and internally controlled, so an unrecognized token is
// reported as an error rather than guessed at.
func ParseState(token string) (State, error) {
	switch token {
	case "open":
		return Open, nil
	case "closed":
		return Closed, nil
	case "unknown":
		return Unknown, nil
	}
	return 0, fmt.Errorf("unrecognized state token %q", token)
}

// stateOf maps the engine's result kind onto the public State. The switch
// is exhaustive over the engine's vocabulary.
func stateOf(kind engine.RuleKind) State {
	switch kind {
	case engine.KindOpen:
		return Open
	case engine.KindClosed:
		return Closed
	case engine.KindUnknown:
		return Unknown
	}
	panic(fmt.Sprintf("openhours: invalid engine kind %d", uint8(kind)))
}
