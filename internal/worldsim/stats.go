package worldsim

// StatsView is the read-only per-tick stats record plus the
// scheduler-owned scalars that drive the dynamic-challenge schedule —
// everything a collaborator needs to render a status line or graph
// without touching engine-owned memory.
type StatsView struct {
	Today       int64
	NBugs       int64
	AvgWeight   int64
	AvgFood     int64
	AvgGenes    int64
	Movement    int64
	Collisions  int64
	Starvations int64
	Births      int64

	AgeDiv    int64
	ForceMate int64
	FoodHump  float64
	CostMate  int64
	TargetPop int64
	Leak      int64
	Safety    bool
}

// StatsView reports the current day's aggregate stats (the most recent
// hist[] entry) alongside the scheduler's current scalar state.
func (w *World) StatsView() StatsView {
	day := w.hist[w.Today%LHist]
	return StatsView{
		Today:       w.Today,
		NBugs:       day.NBugs,
		AvgWeight:   day.AvgWeight,
		AvgFood:     day.AvgFood,
		AvgGenes:    day.AvgGenes,
		Movement:    day.Movement,
		Collisions:  day.Collisions,
		Starvations: day.Starvations,
		Births:      day.Births,
		AgeDiv:      w.AgeDiv,
		ForceMate:   w.ForceMate,
		FoodHump:    w.FoodHump,
		CostMate:    w.CostMate,
		TargetPop:   w.TargetPop,
		Leak:        w.Leak,
		Safety:      w.Safety,
	}
}

// CellView is one food/occupant reading exposed to collaborators;
// BugUID is zero when the cell is empty.
type CellView struct {
	X, Y   int
	Food   int64
	BugUID int64
}

// BugView is a copy-safe view of one bug's current state, independent
// of the live engine's memory — a collaborator may retain it across
// ticks without aliasing anything the engine later mutates.
type BugView struct {
	UID        int64
	Birthday   int64
	Generation int64
	Kills      int64
	Defends    int64
	Moves      int64
	Offspring  int64
	Weight     int64
	Face       int
	X, Y       int
	EthR       int8
	EthG       int8
	EthB       int8
}

// Snapshot is a complete, self-contained view of the world: every
// occupied cell's food, every bug's current state, and the stats view.
// Nothing in it aliases engine-owned memory.
type Snapshot struct {
	Stats StatsView
	Cells []CellView
	Bugs  []BugView
}

// Snapshot builds a full copy of the current world state, safe for a
// collaborator to retain across ticks.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Stats: w.StatsView(),
		Bugs:  make([]BugView, 0, w.nBugs),
	}

	for x := 0; x < WorldX; x++ {
		for y := 0; y < WorldY; y++ {
			cell := w.Cells[x][y]
			var uid int64
			if cell.Bug != nil {
				uid = cell.Bug.UID
			}
			snap.Cells = append(snap.Cells, CellView{X: x, Y: y, Food: cell.Food, BugUID: uid})
		}
	}

	for bug := w.first; bug != nil; bug = bug.Next {
		snap.Bugs = append(snap.Bugs, BugView{
			UID:        bug.UID,
			Birthday:   bug.Birthday,
			Generation: bug.Brain.Generation,
			Kills:      bug.Kills,
			Defends:    bug.Defends,
			Moves:      bug.Moves,
			Offspring:  bug.Offspring,
			Weight:     bug.Pos[0].Weight,
			Face:       bug.Pos[0].Face,
			X:          bug.Pos[0].P.X,
			Y:          bug.Pos[0].P.Y,
			EthR:       bug.Brain.Eth.R,
			EthG:       bug.Brain.Eth.G,
			EthB:       bug.Brain.Eth.B,
		})
	}

	return snap
}
