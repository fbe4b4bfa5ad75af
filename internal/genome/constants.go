// Package genome implements the diploid expression-tree genome: genes,
// chromosome chains, brains, the evaluator, and the mutation operator.
package genome

// Gene types. A Gene's Tp selects how it is evaluated; see Evaluate.
const (
	Const   = 1
	Sense   = 2
	Limit   = 3
	Compare = 4
	Match   = 5
)

// Decision indices. Bug.Decide evaluates 0..6 and picks the highest value;
// ResponseMate (7) is evaluated directly by a mate target, never via Decide.
const (
	DecisionSleep = iota
	DecisionEat
	DecisionTurnCW
	DecisionTurnCCW
	DecisionMove
	DecisionMate
	DecisionDivide
	DecisionResponseMate
	NDecisions = 8
)

// NSenseCells is the number of neighborhood cells probed per tick.
const NSenseCells = 12

// Per-cell sense blocks: food, other-bug mass, other-bug facing, family match.
const (
	SenseSelf        = NSenseCells * 4
	NActs            = 9 // Sleep..Divide, plus logging-only Mated and Defend
	SpawnWeightNorm  = SenseSelf + NActs
	StarveWeightNorm = SpawnWeightNorm + 1
	SelfAge          = StarveWeightNorm + 1
	NSenses          = SelfAge + 1
)

// Action indices recorded in position history (Bug.Pos[i].Act). The first
// seven match decision indices 0..6; Mated and Defend are logging-only.
const (
	ActSleep = iota
	ActEat
	ActTurnCW
	ActTurnCCW
	ActMove
	ActMate
	ActDivide
	ActMated
	ActDefend
)

// EthnicDuration is the minimum channel sum (r+g+b) an ethnicity holds, and
// the number of generations assimilation takes to converge on it.
const EthnicDuration = 120

// FamilyHistory is the size of the bounded ancestry window used for the
// genetic-similarity sense.
const FamilyHistory = 126
