package worldsim

// killBug removes bug from the world: its remaining weight becomes food
// on its cell, its brains are dropped, and it is unlinked from the bug
// list. cursor is the scheduler's saved "next bug to visit" pointer; if
// it happens to be this bug, it is advanced first so the iteration
// never dereferences a killed bug.
func killBug(w *World, bug *Bug, cursor **Bug) {
	if cursor != nil && *cursor == bug {
		*cursor = bug.Next
	}

	p := bug.Pos[0].P
	w.Cells[p.X][p.Y].Food += bug.Pos[0].Weight
	if w.Cells[p.X][p.Y].Bug == bug {
		w.Cells[p.X][p.Y].Bug = nil
	}

	bug.Brain = nil
	bug.MateBrain = nil

	w.unlink(bug)
}
