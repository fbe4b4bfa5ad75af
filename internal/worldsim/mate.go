package worldsim

import (
	"context"

	"bugworld/server/internal/genome"
	"bugworld/server/logging/reproduction"
)

// executeMate looks at the cell bug is facing and, if occupied, asks the
// occupant's double-acting RESPONSEMATE chromosome (both chains summed,
// not just the expressed one) whether it accepts. The response is
// evaluated against the ACTING bug's own sense vector, not the
// suitor's — the reference engine deliberately skips re-gathering
// senses from the suitor's point of view before asking its question.
// On acceptance the two bugs swap stored mate-brains for later use at
// division; on refusal, or an empty destination, the mate attempt
// simply fails.
func (w *World) executeMate(ctx context.Context, bug *Bug, sense []int64) {
	dest := w.Grid.Step(bug.Pos[0].P, bug.Pos[0].Face)
	suitor := w.Cells[dest.X][dest.Y].Bug

	if suitor == nil {
		bug.MateFails++
		reproduction.MateFailed(ctx, w.Publisher, uint64(w.Today), bugRef(bug))
		costCalc(w.CostMate, bug)
		return
	}

	response := suitor.Brain.Act[genome.DecisionResponseMate]
	ec := genome.EvalContext{Ctx: ctx, RNG: w.RNG, Pub: w.Publisher, Tick: uint64(w.Today), Bug: bugRef(bug), Decision: genome.DecisionResponseMate}
	accept := genome.Evaluate(response.A, sense, ec)+genome.Evaluate(response.B, sense, ec) > 0

	if !accept {
		bug.MateFails++
		reproduction.MateFailed(ctx, w.Publisher, uint64(w.Today), bugRef(bug))
		costCalc(w.CostMate, bug)
		return
	}

	bugRepeat := bug.MateBrain != nil && bug.MateBrain.Eth.UID == suitor.Brain.Eth.UID
	if bugRepeat {
		bug.MateAgain++
	} else {
		bug.MateOK++
	}
	suitorRepeat := suitor.MateBrain != nil && bug.Brain.Eth.UID == suitor.MateBrain.Eth.UID
	if suitorRepeat {
		suitor.MateAgain++
	} else {
		suitor.MateOK++
	}

	bug.MateBrain = genome.CopyBrain(suitor.Brain)
	suitor.MateBrain = genome.CopyBrain(bug.Brain)

	suitor.shiftHistory()
	suitor.Pos[0].Act = ActMated
	bug.Pos[0].Act = ActMated

	reproduction.MateSucceeded(ctx, w.Publisher, uint64(w.Today), bugRef(bug), bugRef(suitor), bugRepeat)
	reproduction.MateSucceeded(ctx, w.Publisher, uint64(w.Today), bugRef(suitor), bugRef(bug), suitorRepeat)

	costCalc(w.CostMate, bug)
}
