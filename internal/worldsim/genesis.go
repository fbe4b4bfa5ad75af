package worldsim

import (
	"bugworld/server/internal/genome"
	"bugworld/server/internal/hexgrid"
)

// Genesis places the species founder at the center of an otherwise
// empty world: the hand-tuned founding brain, full and happy (weight
// DietThin*256 in every history slot), facing east, asleep.
func (w *World) Genesis() {
	p := hexgrid.Pos{X: WorldX / 2, Y: WorldY / 2}

	uid := w.nextUID()
	brain := genome.NewFoundingBrain(uid, w.RNG)

	bug := &Bug{
		UID:      uid,
		Birthday: w.Today,
		Brain:    brain,
	}
	bug.MateBrain = genome.CopyBrain(brain)
	genome.MutateBrain(bug.MateBrain, bug.Brain.Eth, w.RNG)

	weight := int64(DietThin) * 256
	for i := 0; i < PosHistory; i++ {
		bug.Pos[i] = BugState{P: p, Face: hexgrid.East, Act: ActSleep, Weight: weight}
	}

	w.Cells[p.X][p.Y].Bug = bug
	w.link(bug)
}
