package worldsim

import (
	"testing"
)

func TestGenesisBugStartsFatAndAsleep(t *testing.T) {
	w := newTestWorld(1)
	bug := w.First()
	for i := range bug.Pos {
		if bug.Pos[i].Act != ActSleep {
			t.Fatalf("Pos[%d].Act = %d, want ActSleep", i, bug.Pos[i].Act)
		}
		if bug.Pos[i].Weight != int64(DietThin)*256 {
			t.Fatalf("Pos[%d].Weight = %d, want %d", i, bug.Pos[i].Weight, int64(DietThin)*256)
		}
	}
}

func TestGenesisIsDeterministicForSameSeed(t *testing.T) {
	a := newTestWorld(55)
	b := newTestWorld(55)

	if a.First().Brain.Expression != b.First().Brain.Expression {
		t.Fatal("founding brain expression should be identical for the same seed")
	}
	if a.First().UID != b.First().UID {
		t.Fatal("founding bug uid should be identical for the same seed")
	}
}
