package engine

// Engine runs an ordered strategy pipeline to a fixed point.
type Engine struct {
	strategies []Strategy
}

// New builds an engine over the named strategies, or the full default
// pipeline when no names are given.
func New(names ...string) (*Engine, error) {
	if len(names) == 0 {
		return &Engine{strategies: DefaultStrategies()}, nil
	}
	sts, err := StrategiesByName(names)
	if err != nil {
		return nil, err
	}
	return &Engine{strategies: sts}, nil
}

// Step scans the pipeline in priority order and applies the first non-NoOp
// action found. It returns the applied action (Kind==ActNone means fixed
// point) and ErrContradiction when the action empties a candidate set.
func (e *Engine) Step(s *State) (Action, error) {
	for _, st := range e.strategies {
		act := st.Find(s)
		switch act.Kind {
		case ActNone:
			continue
		case ActAssign:
			return act, s.Assign(act.Cell, act.Digit)
		case ActEliminate:
			return act, s.Eliminate(act.Cell, act.Digit)
		}
	}
	return Action{}, nil
}

// Run applies actions until the puzzle is solved, the pipeline reaches a
// fixed point, or a contradiction surfaces. After every applied action the
// scan restarts from the cheapest strategy.
func (e *Engine) Run(s *State) error {
	for !s.Solved() {
		act, err := e.Step(s)
		if err != nil {
			return err
		}
		if act.Kind == ActNone {
			return nil
		}
	}
	return nil
}
