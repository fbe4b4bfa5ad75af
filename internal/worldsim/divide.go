package worldsim

import (
	"context"

	"bugworld/server/internal/genome"
	"bugworld/server/internal/hexgrid"
	"bugworld/server/logging/lifecycle"
	"bugworld/server/logging/reproduction"
)

// faceOffset is the per-child facing adjustment for up to six offspring,
// spreading them around the parent's hex rather than stacking them all
// in the same direction.
var faceOffset = [7]int{0, 3, -2, 2, -1, 1, 0}

// executeDivide splits bug's stored weight among up to Brain.Divide-1
// offspring, gated by two optional scheduler-driven enforcement bits:
// a minimum age since birth, and a requirement to have mated with a
// genetically distinct partner first. A blocked division still pays for
// the attempt and is left below DietThin so the bug starves soon after
// if it can never satisfy the gate. Each offspring inherits one
// haploid chromosome per decision from each parent independently, plus
// an assimilated ethnicity stamp and family-history window, and rolls
// an independent chance of mutation in both copies of its brain.
func (w *World) executeDivide(ctx context.Context, bug *Bug) {
	if w.ForceMate&0x10 != 0 && bug.Birthday+w.AgeDiv > w.Today {
		w.abortDivide(ctx, bug, "age", w.ForceMate&0x40 != 0, w.ForceMate&0x20 != 0)
		return
	}
	if w.ForceMate&0x01 != 0 && bug.Brain.Eth.UID == bug.MateBrain.Eth.UID {
		w.abortDivide(ctx, bug, "mate", w.ForceMate&0x08 != 0, w.ForceMate&0x04 != 0)
		return
	}

	mass := bug.Pos[0].Weight/bug.Brain.Divide - CostDivide
	bug.Pos[0].Weight = mass
	if mass < DietThin {
		return
	}

	for i := int64(1); i < bug.Brain.Divide; i++ {
		p := bug.Pos[0].P
		face := bug.Pos[0].Face
		if int(i) < len(faceOffset) {
			face += faceOffset[i]
		}
		dest := w.Grid.Step(p, face)

		if w.Cells[dest.X][dest.Y].Bug != nil {
			continue // space occupied, offspring never born
		}

		bug.Offspring++
		w.hist[w.Today%LHist].Births++
		w.spawnOffspring(ctx, bug, dest, face, mass)
	}

	if w.ForceMate&0x02 != 0 {
		bug.MateBrain.Eth.UID = bug.Brain.Eth.UID
	}
}

// abortDivide pays the consolation cost for a division blocked by an
// enforcement gate, applying whichever of the two escalating penalties
// (shrink by the divide factor, flat CostDivide charge) the current
// forcemate level selects, then floors the bug at DietThin instead of
// letting it starve outright from the block alone.
func (w *World) abortDivide(ctx context.Context, bug *Bug, gate string, shrink, flatCost bool) {
	if shrink {
		bug.Pos[0].Weight /= bug.Brain.Divide
	}
	if flatCost {
		bug.Pos[0].Weight -= CostDivide
	}
	if bug.Pos[0].Weight < DietThin {
		bug.Pos[0].Weight = DietThin
	}
	costCalc(CostSleep, bug)
	reproduction.DivideAborted(ctx, w.Publisher, uint64(w.Today), bugRef(bug), reproduction.DivideAbortedPayload{Gate: gate})
}

// spawnOffspring builds and links a new bug at dest: haploid chromosome
// inheritance per decision, assimilated ethnicity, a shifted family
// history window, and a chance of mutation independently rolled for
// both the new brain and its mirrored mate-brain.
func (w *World) spawnOffspring(ctx context.Context, bug *Bug, dest hexgrid.Pos, face int, mass int64) {
	offspring := &Bug{
		UID:      w.nextUID(),
		Birthday: w.Today,
	}
	brain := &genome.Brain{}

	brain.Family[0] = bug.Brain.Eth
	brain.Family[1] = bug.MateBrain.Eth
	for j := 2; j+1 < genome.FamilyHistory; j += 2 {
		brain.Family[j] = bug.Brain.Family[(j/2)-1]
		brain.Family[j+1] = bug.MateBrain.Family[(j/2)-1]
	}

	if bug.Brain.Generation > bug.MateBrain.Generation {
		brain.Generation = bug.Brain.Generation + 1
	} else {
		brain.Generation = bug.MateBrain.Generation + 1
	}

	brain.Eth = genome.DetEthnicity(bug.Brain.Eth, bug.MateBrain.Eth, regionBand(dest.Y))
	brain.Eth.UID = offspring.UID

	var ngenes int64
	for j := 0; j < genome.NDecisions; j++ {
		if w.RNG.NextBounded(2) != 0 {
			brain.Act[j].A = genome.CopyChromosome(bug.Brain.Act[j].A)
			brain.Act[j].EA = bug.Brain.Act[j].EA
		} else {
			brain.Act[j].A = genome.CopyChromosome(bug.Brain.Act[j].B)
			brain.Act[j].EA = bug.Brain.Act[j].EB
		}

		if w.RNG.NextBounded(2) != 0 {
			brain.Act[j].B = genome.CopyChromosome(bug.MateBrain.Act[j].A)
			brain.Act[j].EB = bug.MateBrain.Act[j].EA
		} else {
			brain.Act[j].B = genome.CopyChromosome(bug.MateBrain.Act[j].B)
			brain.Act[j].EB = bug.MateBrain.Act[j].EB
		}

		ngenes += genome.CountGenes(brain.Act[j].A)
		ngenes += genome.CountGenes(brain.Act[j].B)
	}
	brain.NGenes = ngenes

	if w.RNG.NextBounded(2) != 0 {
		brain.Divide = bug.Brain.Divide
	} else {
		brain.Divide = bug.MateBrain.Divide
	}
	brain.Expression = uint16(w.RNG.NextBounded(256))

	offspring.Brain = brain
	offspring.MateBrain = genome.CopyBrain(brain)

	for j := 0; j < PosHistory; j++ {
		offspring.Pos[j] = BugState{P: dest, Face: face, Act: ActSleep, Weight: mass}
	}

	w.Cells[dest.X][dest.Y].Bug = offspring
	w.link(offspring)

	if w.RNG.NextBounded(4) == 0 {
		genome.MutateBrain(offspring.MateBrain, offspring.Brain.Eth, w.RNG)
		reproduction.Mutated(ctx, w.Publisher, uint64(w.Today), bugRef(offspring), reproduction.MutatedPayload{Brain: "mate", Kind: "asexual"})
	}
	if w.RNG.NextBounded(8) == 0 {
		genome.MutateBrain(offspring.Brain, offspring.Brain.Eth, w.RNG)
		reproduction.Mutated(ctx, w.Publisher, uint64(w.Today), bugRef(offspring), reproduction.MutatedPayload{Brain: "primary", Kind: "sexual"})
	}

	lifecycle.Born(ctx, w.Publisher, uint64(w.Today), bugRef(offspring), lifecycle.BornPayload{
		Generation: brain.Generation,
		MotherUID:  bug.Brain.Eth.UID,
		FatherUID:  bug.MateBrain.Eth.UID,
	})
}
