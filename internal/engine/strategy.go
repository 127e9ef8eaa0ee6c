package engine

import (
	"fmt"
	"strings"
)

// ActionKind discriminates what a strategy wants done.
type ActionKind uint8

const (
	ActNone ActionKind = iota
	ActAssign
	ActEliminate
)

// Action is the only way a strategy affects the state: assign a digit,
// eliminate a candidate, or report no progress. Strategies themselves are
// pure functions of the state, which keeps each independently testable
// against a fixed snapshot.
type Action struct {
	Kind     ActionKind
	Cell     int
	Digit    uint8
	Strategy string
}

// Strategy inspects the state and proposes at most one action. Find must
// not mutate the state and must be deterministic for a given state.
type Strategy interface {
	Name() string
	Find(s *State) Action
}

// Canonical strategy identifiers, cheapest first. The default pipeline
// runs them in exactly this order.
const (
	NameNakedSingle  = "naked-single"
	NameHiddenSingle = "hidden-single"
	NameNakedPair    = "naked-pair"
	NameNakedTriple  = "naked-triple"
	NameHiddenPair   = "hidden-pair"
	NameHiddenTriple = "hidden-triple"
	NamePointingPair = "pointing-pair"
	NameBoxLine      = "box-line"
	NameXWing        = "x-wing"
)

// DefaultStrategies is the full pipeline in ascending cost order.
func DefaultStrategies() []Strategy {
	return []Strategy{
		nakedSingle{},
		hiddenSingle{},
		nakedSubset{n: 2, name: NameNakedPair},
		nakedSubset{n: 3, name: NameNakedTriple},
		hiddenSubset{n: 2, name: NameHiddenPair},
		hiddenSubset{n: 3, name: NameHiddenTriple},
		pointingPair{},
		boxLine{},
		xwing{},
	}
}

// StrategiesByName resolves identifiers to pipeline entries, preserving
// the caller's order. Unknown names are rejected.
func StrategiesByName(names []string) ([]Strategy, error) {
	all := DefaultStrategies()
	index := make(map[string]Strategy, len(all))
	for _, st := range all {
		index[st.Name()] = st
	}
	out := make([]Strategy, 0, len(names))
	for _, name := range names {
		st, ok := index[strings.TrimSpace(name)]
		if !ok {
			return nil, fmt.Errorf("unknown strategy %q", name)
		}
		out = append(out, st)
	}
	return out, nil
}
