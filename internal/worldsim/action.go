package worldsim

import (
	"context"
	"strconv"

	"bugworld/server/internal/genome"
	"bugworld/server/logging"
	"bugworld/server/logging/lifecycle"
)

// bugRef builds the logging entity reference for a bug.
func bugRef(b *Bug) logging.EntityRef {
	return logging.EntityRef{ID: strconv.FormatInt(b.UID, 10), Kind: logging.EntityKindBug}
}

// stepOneBug runs a single tick of one bug's life: sense, decide, act,
// then check for starvation. cursor is the scheduler's saved
// next-to-visit pointer, passed through to killBug in case this bug (or
// the bug it fights) needs to be excised from the iteration safely.
func (w *World) stepOneBug(ctx context.Context, bug *Bug, cursor **Bug) {
	sense := gatherSenses(ctx, w, bug)
	bug.shiftHistory()

	ec := genome.EvalContext{Ctx: ctx, RNG: w.RNG, Pub: w.Publisher, Tick: uint64(w.Today), Bug: bugRef(bug)}
	act := genome.Decide(bug.Brain, sense, ec)
	bug.Pos[0].Act = act

	switch act {
	case genome.DecisionSleep:
		costCalc(CostSleep, bug)

	case genome.DecisionEat:
		w.executeEat(bug)

	case genome.DecisionTurnCW:
		if bug.Pos[0].Face < 3 {
			bug.Pos[0].Face++
		} else {
			bug.Pos[0].Face = -2
		}
		costCalc(CostTurn, bug)

	case genome.DecisionTurnCCW:
		if bug.Pos[0].Face > -2 {
			bug.Pos[0].Face--
		} else {
			bug.Pos[0].Face = 3
		}
		costCalc(CostTurn, bug)

	case genome.DecisionMove:
		w.executeMove(ctx, bug, cursor)

	case genome.DecisionMate:
		w.executeMate(ctx, bug, sense)

	case genome.DecisionDivide:
		w.executeDivide(ctx, bug)
	}

	if bug.Brain == nil {
		return // killed mid-action (lost a fight)
	}
	if bug.Pos[0].Weight < DietThin {
		lifecycle.Starved(ctx, w.Publisher, uint64(w.Today), bugRef(bug), lifecycle.StarvedPayload{Weight: bug.Pos[0].Weight})
		w.hist[w.Today%LHist].Starvations++
		killBug(w, bug, cursor)
		lifecycle.Killed(ctx, w.Publisher, uint64(w.Today), bugRef(bug), lifecycle.KilledPayload{Reason: "starvation"})
	}
}

// executeEat feeds bug from its own cell, capped at EatLimit percent of
// its body weight and by however much food the cell actually holds; an
// attempt to eat more than is available is still charged in full
// (overeating penalty), only the intake is capped.
func (w *World) executeEat(bug *Bug) {
	p := bug.Pos[0].P
	cell := &w.Cells[p.X][p.Y]

	mass := (bug.Pos[0].Weight * EatLimit) / 1024
	if mass > cell.Food {
		bug.Pos[0].Weight -= mass - cell.Food
		mass = cell.Food
	}
	bug.Pos[0].Weight += mass
	cell.Food -= mass
	costCalc(CostEat, bug)
}
