package worldsim

import (
	"testing"

	"bugworld/server/internal/hexgrid"
	"bugworld/server/internal/rng"
)

func TestKillBugReturnsWeightAsFoodAndUnlinks(t *testing.T) {
	w := NewWorld(rng.New(1))
	bug := &Bug{UID: 1}
	bug.Pos[0] = BugState{P: hexgrid.Pos{X: 5, Y: 5}, Weight: 4096}
	w.Cells[5][5].Bug = bug
	w.link(bug)

	before := w.Cells[5][5].Food
	killBug(w, bug, nil)

	if w.Cells[5][5].Food != before+4096 {
		t.Fatalf("cell food = %d, want %d", w.Cells[5][5].Food, before+4096)
	}
	if w.Cells[5][5].Bug != nil {
		t.Fatal("cell still references killed bug")
	}
	if w.NBugs() != 0 {
		t.Fatalf("NBugs() = %d, want 0", w.NBugs())
	}
	if bug.Brain != nil || bug.MateBrain != nil {
		t.Fatal("killed bug still holds brains")
	}
}

func TestKillBugAdvancesMatchingCursor(t *testing.T) {
	w := NewWorld(rng.New(1))
	a := &Bug{UID: 1}
	b := &Bug{UID: 2}
	w.link(a)
	w.link(b)
	a.Pos[0] = BugState{P: hexgrid.Pos{X: 0, Y: 0}}
	w.Cells[0][0].Bug = a

	cursor := a
	killBug(w, a, &cursor)
	if cursor != b {
		t.Fatalf("cursor = %v, want advanced to b", cursor)
	}
}

func TestKillBugLeavesUnrelatedCursorAlone(t *testing.T) {
	w := NewWorld(rng.New(1))
	a := &Bug{UID: 1}
	b := &Bug{UID: 2}
	w.link(a)
	w.link(b)
	a.Pos[0] = BugState{P: hexgrid.Pos{X: 0, Y: 0}}
	w.Cells[0][0].Bug = a

	cursor := b
	killBug(w, a, &cursor)
	if cursor != b {
		t.Fatal("cursor should be untouched when it does not point at the killed bug")
	}
}
