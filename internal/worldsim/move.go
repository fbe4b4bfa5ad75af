package worldsim

import (
	"context"

	"bugworld/server/logging/combat"
)

// executeMove steps bug one hex in its facing direction, paying the move
// cost regardless of outcome. An empty destination is simply occupied.
// An occupied destination is a fight (unless Safety is still on, in
// which case the move is refused outright): the defender's combat mass
// is scaled by relative facing and experience, then rolled against an
// attacker mass of (combat mass + attacker weight/1024); the attacker
// wins ties in its favor by requiring a strict roll > mass. The loser
// is killed and the winner occupies the cell; a defeated attacker
// donates its remaining weight to the survivor as food.
func (w *World) executeMove(ctx context.Context, bug *Bug, cursor **Bug) {
	bug.Moves++
	w.hist[w.Today%LHist].Movement++

	dest := w.Grid.Step(bug.Pos[0].P, bug.Pos[0].Face)
	defender := w.Cells[dest.X][dest.Y].Bug

	costCalc(CostMove, bug)
	if bug.Pos[0].Weight < 0 {
		bug.Pos[0].Weight = 0
	}

	if defender == nil {
		w.Cells[dest.X][dest.Y].Bug = bug
		w.Cells[bug.Pos[0].P.X][bug.Pos[0].P.Y].Bug = nil
		bug.Pos[0].P = dest
		return
	}

	if w.Safety {
		return
	}

	w.hist[w.Today%LHist].Collisions++

	mass := defender.Pos[0].Weight
	facing := int64(defender.Pos[0].Face - bug.Pos[0].Face)
	for facing < -2 {
		facing += 6
	}
	for facing > 3 {
		facing -= 6
	}

	switch facing {
	case 0:
		mass *= defender.Defends/2 + 1
		mass /= 128
	case 1, -1:
		mass *= defender.Defends/4 + 1
		mass /= 1024
	case 2, -2:
		mass *= defender.Defends/8 + 1
		mass /= 8192
		mass -= bug.Kills
	case 3:
		mass /= 65536
		mass -= bug.Kills * bug.Kills
	}
	if mass < 0 {
		mass = 0
	}

	roll := w.RNG.NextBounded(mass + bug.Pos[0].Weight/1024)
	if roll > mass {
		bug.Kills++
		killBug(w, defender, cursor)
		w.Cells[dest.X][dest.Y].Bug = bug
		w.Cells[bug.Pos[0].P.X][bug.Pos[0].P.Y].Bug = nil
		bug.Pos[0].P = dest
		costCalc(CostFight, bug)

		combat.FightWon(ctx, w.Publisher, uint64(w.Today), bugRef(bug), bugRef(defender), combat.FightPayload{
			RelativeFacing: facing, CombatMass: mass, Roll: roll,
		})
		return
	}

	defender.Defends++
	w.Cells[dest.X][dest.Y].Food += bug.Pos[0].Weight
	bug.Pos[0].Weight = 0
	killBug(w, bug, cursor)
	w.Cells[dest.X][dest.Y].Bug = defender
	defender.shiftHistory()
	defender.Pos[0].Act = ActDefend

	combat.FightLost(ctx, w.Publisher, uint64(w.Today), bugRef(bug), bugRef(defender), combat.FightPayload{
		RelativeFacing: facing, CombatMass: mass, Roll: roll,
	})
	combat.Defended(ctx, w.Publisher, uint64(w.Today), bugRef(defender), bugRef(bug))
}
