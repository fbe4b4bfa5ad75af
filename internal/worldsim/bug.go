package worldsim

import (
	"bugworld/server/internal/genome"
	"bugworld/server/internal/hexgrid"
)

// Action indices recorded in position history, mirroring genome's decision
// indices 0..6 plus the two logging-only actions Mated and Defend.
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
	NActs = 9
)

// BugState is one tick's worth of a bug's position, facing, action and
// weight. Pos[0] is current; Pos[1..] is history, oldest at the tail.
type BugState struct {
	P      hexgrid.Pos
	Face   int
	Act    int
	Weight int64
}

// Bug is one organism: its position/action history, its diploid brain,
// its most recent mate's brain (used at division time), lifetime
// counters, and the doubly-linked list pointers the world's bug list
// threads it into. The list pointers mirror the reference engine's
// buglist exactly so kill-during-iteration can cache a next-cursor the
// way the scheduler does.
type Bug struct {
	UID       int64
	Birthday  int64
	Kills     int64
	Defends   int64
	Moves     int64
	MateOK    int64
	MateFails int64
	MateAgain int64
	Offspring int64

	Pos       [PosHistory]BugState
	Brain     *genome.Brain
	MateBrain *genome.Brain

	Next, Prev *Bug
}

// shiftHistory pushes the current state back one slot, discarding the
// oldest entry, leaving Pos[0] for the caller to overwrite.
func (b *Bug) shiftHistory() {
	for i := PosHistory - 1; i > 0; i-- {
		b.Pos[i] = b.Pos[i-1]
	}
}
