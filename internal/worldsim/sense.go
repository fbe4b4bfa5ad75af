package worldsim

import (
	"context"

	"bugworld/server/internal/genome"
	"bugworld/server/logging/diagnostics"
)

// senseCell describes how to reach one of the twelve sensed neighbor
// cells from a bug's current position and facing, and how close a
// relative that cell's occupant counts as for kinship purposes.
type senseCell struct {
	steps []int // facing offsets applied in sequence from bug's own facing
	level int   // 0 = self (unused here), 1 = adjacent, 2 = two away, 3 = farthest
}

var senseCells = [genome.NSenseCells]senseCell{
	{steps: nil, level: 0}, // the bug's own cell
	{steps: []int{0}, level: 1},
	{steps: []int{0, 0}, level: 2},
	{steps: []int{-1}, level: 2},
	{steps: []int{1}, level: 2},
	{steps: []int{0, 0, 0}, level: 3},
	{steps: []int{-1, -1}, level: 3},
	{steps: []int{-1, 0}, level: 3},
	{steps: []int{1, 0}, level: 3},
	{steps: []int{1, 1}, level: 3},
	{steps: []int{-2}, level: 3},
	{steps: []int{2}, level: 3},
}

// gatherSenses builds the sense vector for bug: food and occupant
// readings for the twelve neighbor cells, then the self-awareness block
// (time since each action last happened, normalized spawn/starve weight,
// age).
func gatherSenses(ctx context.Context, w *World, bug *Bug) []int64 {
	sense := make([]int64, genome.NSenses)

	self := bug.Pos[0]
	weight := self.Weight
	if weight <= 0 {
		weight = 1
		diagnostics.WeightClamped(ctx, w.Publisher, uint64(w.Today), bugRef(bug))
	}

	for i, sc := range senseCells {
		p := self.P
		for _, step := range sc.steps {
			p = w.Grid.Step(p, self.Face+step)
		}

		cell := &w.Cells[p.X][p.Y]
		sense[i] = (cell.Food * 1024) / weight

		if cell.Bug == nil {
			sense[i+genome.NSenseCells] = 0
			sense[i+genome.NSenseCells*2] = 0
			sense[i+genome.NSenseCells*3] = 0
			continue
		}

		other := cell.Bug
		sense[i+genome.NSenseCells] = (other.Pos[0].Weight * 1024) / weight

		f := other.Pos[0].Face - self.Face
		for f < -2 {
			f += 6
		}
		for f > 3 {
			f -= 6
		}
		sense[i+genome.NSenseCells*2] = int64(f) * 1024

		sense[i+genome.NSenseCells*3] = genome.FamilyMatch(other.Brain, bug.Brain, sc.level)
	}

	for act := 0; act < NActs; act++ {
		found := false
		for j := 0; j < PosHistory; j++ {
			if bug.Pos[j].Act == act {
				sense[act+genome.NSenseCells*4] = (int64(j) * 1024) / PosHistory
				found = true
				break
			}
		}
		if !found {
			sense[act+genome.NSenseCells*4] = 1024
		}
	}

	sense[genome.SpawnWeightNorm] = (((self.Weight / bug.Brain.Divide) - CostDivide) * 1024) / DietThin
	sense[genome.StarveWeightNorm] = (self.Weight * 1024) / DietThin
	sense[genome.SelfAge] = w.Today - bug.Birthday

	return sense
}
