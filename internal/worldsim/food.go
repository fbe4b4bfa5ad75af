package worldsim

import (
	"math"

	"bugworld/server/internal/hexgrid"
)

func hexPos(x, y int) hexgrid.Pos { return hexgrid.Pos{X: x, Y: y} }

// growingSeason is the engine's one floating-point computation: a
// traveling sine hump along X (the growing season marching across the
// map as Today advances) modulated by a six-peaked cosine ripple along
// Y. Every other computation in the simulation is pure integer
// arithmetic; this is deliberately confined to a single function.
func growingSeason(w *World, x, y int) int64 {
	sax := (int64(x) + (w.Today*WorldX)/SeasonLength) % WorldX

	fgf := 0.1 + w.FoodHump*math.Sin((math.Pi*float64(sax))/WorldX)*
		(0.51 - math.Cos(math.Pi*6.0*float64(y)/WorldY)*0.5)

	return int64(float64(FoodGrow-1024)*fgf) + 1024
}

// updateNearest marks every cell 0 if it holds a bug, -1 otherwise. The
// reference engine's distance-propagation pass beyond the occupied cell
// itself was disabled upstream (left commented out) — Leak never
// observes a distance greater than 0, so that is what is reproduced
// here too.
func updateNearest(w *World) {
	for x := 0; x < WorldX; x++ {
		for y := 0; y < WorldY; y++ {
			if w.Cells[x][y].Bug == nil {
				w.Cells[x][y].Nearest = -1
			} else {
				w.Cells[x][y].Nearest = 0
			}
		}
	}
}

// growFood advances food for every cell by one tick: growth or decay
// depending on occupancy and the current Leak stage, a soft cap with
// decay above FoodCap, a hard cap at 10x FoodCap, and spreading into
// neighbor cells sitting below 1/16th of a cell's own food mass. It
// also accumulates the day's totals used by the stats snapshot.
func growFood(w *World) {
	updateNearest(w)

	w.totalFood = 0
	w.totalBug = 0
	w.geneCount = 0

	for y := 0; y < WorldY; y++ {
		for x := 0; x < WorldX; x++ {
			cell := &w.Cells[x][y]
			fgl := growingSeason(w, x, y)

			if cell.Nearest == -1 || w.Leak < int64(cell.Nearest) {
				cell.Food = (cell.Food * fgl) / 1024
			} else {
				cell.Food = (cell.Food * rotTable[cell.Nearest]) / 1024
			}

			if cell.Food > FoodCap {
				cell.Food -= ((cell.Food - FoodCap) * FoodDecay) / 1024
			}
			if cell.Food > FoodCap*10 {
				cell.Food = FoodCap * 10
			}

			w.totalFood += cell.Food / 1024

			if cell.Bug != nil {
				w.totalBug += cell.Bug.Pos[0].Weight
				w.geneCount += cell.Bug.Brain.NGenes
			}

			for dir := -2; dir <= 3; dir++ {
				p := w.Grid.Step(hexPos(x, y), dir)
				neigh := &w.Cells[p.X][p.Y]
				if neigh.Food < cell.Food/16 {
					if neigh.Nearest == -1 || w.Leak < int64(neigh.Nearest) {
						t := (cell.Food * FoodSpreadPM) / 1024
						cell.Food -= t
						neigh.Food += t
					}
				}
			}
		}
	}
}
