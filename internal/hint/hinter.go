package hint

import (
	"context"
	"fmt"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/engine"
)

// StrategyHinter surfaces the engine's next deterministic action as a
// human-readable hint, capped at a strategy tier.
type StrategyHinter struct{}

func New() *StrategyHinter { return &StrategyHinter{} }

func tierOf(name string) domain.StrategyTier {
	switch name {
	case engine.NameNakedSingle, engine.NameHiddenSingle:
		return domain.StrategySingles
	case engine.NameNakedPair, engine.NameHiddenPair:
		return domain.StrategyPairs
	default:
		return domain.StrategyAdvanced
	}
}

func tierStrategies(max domain.StrategyTier) []string {
	names := []string{engine.NameNakedSingle, engine.NameHiddenSingle}
	if max >= domain.StrategyPairs {
		names = append(names, engine.NameNakedPair, engine.NameHiddenPair)
	}
	if max >= domain.StrategyAdvanced {
		names = append(names,
			engine.NameNakedTriple, engine.NameHiddenTriple,
			engine.NamePointingPair, engine.NameBoxLine, engine.NameXWing)
	}
	return names
}

// Hint returns the first action the capped pipeline would take.
func (h *StrategyHinter) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	_, act, progress, err := engine.ApplyStrategiesOnce(b, tierStrategies(max)...)
	if err != nil {
		return domain.Hint{}, false, err
	}
	if !progress {
		return domain.Hint{}, false, nil
	}
	coord := domain.CellCoord{Row: act.Cell / 9, Col: act.Cell % 9}
	var msg string
	switch act.Kind {
	case engine.ActAssign:
		msg = fmt.Sprintf("%s: %d goes here", act.Strategy, act.Digit)
	case engine.ActEliminate:
		msg = fmt.Sprintf("%s: %d can be ruled out here", act.Strategy, act.Digit)
	}
	return domain.Hint{
		Message:   msg,
		Technique: act.Strategy,
		Cells:     []domain.CellCoord{coord},
		Strategy:  tierOf(act.Strategy),
	}, true, nil
}
