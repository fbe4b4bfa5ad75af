package worldsim

import (
	"context"
	"testing"
)

func TestStatsViewReflectsLatestDay(t *testing.T) {
	w := newTestWorld(1)
	w.Tick(context.Background())

	sv := w.StatsView()
	if sv.Today != w.Today {
		t.Fatalf("StatsView.Today = %d, want %d", sv.Today, w.Today)
	}
	if sv.NBugs != w.NBugs() {
		t.Fatalf("StatsView.NBugs = %d, want %d", sv.NBugs, w.NBugs())
	}
}

func TestSnapshotCountsMatchLiveWorld(t *testing.T) {
	w := newTestWorld(1)
	w.Tick(context.Background())

	snap := w.Snapshot()
	if int64(len(snap.Bugs)) != w.NBugs() {
		t.Fatalf("snapshot bug count = %d, want %d", len(snap.Bugs), w.NBugs())
	}
	if len(snap.Cells) != WorldX*WorldY {
		t.Fatalf("snapshot cell count = %d, want %d", len(snap.Cells), WorldX*WorldY)
	}
}

func TestSnapshotIsIndependentOfLiveWorld(t *testing.T) {
	w := newTestWorld(1)
	snap := w.Snapshot()

	if len(snap.Bugs) == 0 {
		t.Fatal("expected at least the founding bug in the snapshot")
	}
	originalWeight := snap.Bugs[0].Weight

	w.First().Pos[0].Weight = 1
	if snap.Bugs[0].Weight != originalWeight {
		t.Fatal("mutating the live world should not affect a previously taken snapshot")
	}
}
