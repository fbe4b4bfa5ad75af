package worldsim

import (
	"bugworld/server/internal/hexgrid"
	"bugworld/server/internal/rng"
	"bugworld/server/logging"
)

// Cell is one hex of the world grid: the food mass present (fixed-point,
// x1024) and the bug occupying it, if any.
type Cell struct {
	Food    int64
	Bug     *Bug
	Nearest int // 0 if occupied, -1 if not; see updateNearest.
}

// DayStats is one tick's aggregate snapshot, the ring-buffer entry the
// reference engine calls hist[].
type DayStats struct {
	Day         int64
	NBugs       int64
	AvgWeight   int64
	AvgFood     int64
	AvgGenes    int64
	Movement    int64
	Collisions  int64
	Starvations int64
	Births      int64
}

// World holds the grid, the bug population (as a doubly-linked list
// mirroring the reference engine's buglist), and the scalar state the
// scheduler mutates over time (food-hump amplitude, age-of-division
// gate, mate-forcing bitmap, etc). World is not safe for concurrent use;
// callers serialize access the same way the reference engine's single
// tick loop does.
type World struct {
	Grid  hexgrid.Grid
	Cells [WorldX][WorldY]Cell

	first, last *Bug
	nBugs       int64
	idCounter   int64

	RNG *rng.Source

	// Publisher receives structured events as the simulation runs. A nil
	// Publisher is valid and silently drops everything.
	Publisher logging.Publisher

	Today int64

	FoodHump float64
	Leak     int64
	Safety   bool

	ForceMate int64
	CostMate  int64
	AgeDiv    int64

	Stage int
	Wait  int64

	TargetPop int64

	totalFood int64
	totalBug  int64
	geneCount int64

	hist [LHist]DayStats
}

// rotTable is the per-distance food decay multiplier applied to cells
// the population's "leak" stage has started suppressing growth on; only
// rot[0] is ever reached by the stock schedule, since cell occupancy
// never computes a distance greater than 0 (see updateNearest) — the
// others are kept for parity with the reference table.
var rotTable = [4]int64{988, 973, 1012, 1023}

// NewWorld constructs an empty world seeded with the given RNG. Food
// cells start at FoodStart; the grid carries no bugs until Genesis is
// called.
func NewWorld(r *rng.Source) *World {
	w := &World{
		Grid:      hexgrid.New(WorldX, WorldY),
		RNG:       r,
		FoodHump:  1.4,
		Leak:      -1,
		Safety:    true,
		TargetPop: PopTarget,
		CostMate:  CostMateDefault,
	}
	for x := 0; x < WorldX; x++ {
		for y := 0; y < WorldY; y++ {
			w.Cells[x][y].Food = FoodStart
		}
	}
	return w
}

// NBugs reports the current population size.
func (w *World) NBugs() int64 { return w.nBugs }

// First returns the head of the bug list, or nil if the population is
// empty.
func (w *World) First() *Bug { return w.first }

// nextUID hands out the next unique, ever-increasing serial number —
// the sole identity source for both bug ethnicity stamps and kinship
// sensing.
func (w *World) nextUID() int64 {
	w.idCounter++
	return w.idCounter - 1
}

// link appends bug to the tail of the bug list.
func (w *World) link(bug *Bug) {
	bug.Next = nil
	bug.Prev = w.last
	if w.last != nil {
		w.last.Next = bug
	} else {
		w.first = bug
	}
	w.last = bug
	w.nBugs++
}

// unlink removes bug from the list. It does not touch the grid cell the
// bug occupied — callers handle that, since some callers (a fight
// victor moving in) want to leave the cell populated by someone else.
func (w *World) unlink(bug *Bug) {
	if bug.Prev == nil {
		w.first = bug.Next
	} else {
		bug.Prev.Next = bug.Next
	}
	if bug.Next == nil {
		w.last = bug.Prev
	} else {
		bug.Next.Prev = bug.Prev
	}
	bug.Next, bug.Prev = nil, nil
	w.nBugs--
}
