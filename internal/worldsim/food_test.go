package worldsim

import (
	"testing"

	"bugworld/server/internal/rng"
)

func TestUpdateNearestMarksOccupiedCellsZero(t *testing.T) {
	w := newTestWorld(1)
	updateNearest(w)

	cx, cy := WorldX/2, WorldY/2
	if w.Cells[cx][cy].Nearest != 0 {
		t.Fatalf("occupied cell Nearest = %d, want 0", w.Cells[cx][cy].Nearest)
	}
	if w.Cells[0][0].Nearest != -1 {
		t.Fatalf("empty cell Nearest = %d, want -1", w.Cells[0][0].Nearest)
	}
}

func TestGrowFoodRespectsHardCap(t *testing.T) {
	w := NewWorld(rng.New(1))
	for x := 0; x < WorldX; x++ {
		for y := 0; y < WorldY; y++ {
			w.Cells[x][y].Food = FoodCap * 20
		}
	}
	growFood(w)
	for x := 0; x < WorldX; x += 41 {
		for y := 0; y < WorldY; y += 37 {
			if w.Cells[x][y].Food > FoodCap*10 {
				t.Fatalf("cell (%d,%d) food = %d exceeds hard cap %d", x, y, w.Cells[x][y].Food, FoodCap*10)
			}
		}
	}
}

func TestGrowingSeasonIsDeterministicForSameInputs(t *testing.T) {
	w := NewWorld(rng.New(1))
	w.Today = 500
	a := growingSeason(w, 30, 40)
	b := growingSeason(w, 30, 40)
	if a != b {
		t.Fatalf("growingSeason not deterministic: %d != %d", a, b)
	}
}

func TestGrowFoodAccumulatesTotals(t *testing.T) {
	w := newTestWorld(1)
	growFood(w)
	if w.totalFood <= 0 {
		t.Fatal("totalFood should be positive after growth over a seeded world")
	}
	if w.totalBug <= 0 {
		t.Fatal("totalBug should reflect the founding bug's weight")
	}
	if w.geneCount <= 0 {
		t.Fatal("geneCount should reflect the founding bug's brain")
	}
}
