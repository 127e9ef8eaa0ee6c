package domain

// Difficulty labels stored puzzles for listing and grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// StrategyTier caps the hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles  StrategyTier = iota // naked / hidden singles
	StrategyPairs                        // naked/hidden pairs
	StrategyAdvanced                     // triples, pointing, box-line, x-wing
)
