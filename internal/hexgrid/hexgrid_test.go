package hexgrid

import "testing"

func TestEastWraps(t *testing.T) {
	g := New(192, 160)
	p := g.Step(Pos{X: 191, Y: 10}, East)
	if p.X != 0 || p.Y != 10 {
		t.Fatalf("east wrap: got %+v", p)
	}
}

func TestSoutheastEvenRowWraps(t *testing.T) {
	g := New(192, 160)
	p := g.Step(Pos{X: 191, Y: 10}, SouthEast)
	if p.X != 0 || p.Y != 11 {
		t.Fatalf("southeast even-row wrap: got %+v", p)
	}
}

func TestSoutheastOddRowDoesNotShiftX(t *testing.T) {
	g := New(192, 160)
	p := g.Step(Pos{X: 5, Y: 11}, SouthEast)
	if p.X != 5 || p.Y != 12 {
		t.Fatalf("southeast odd-row: got %+v", p)
	}
}

func TestYWrapsAtBothEdges(t *testing.T) {
	g := New(192, 160)
	if p := g.Step(Pos{X: 5, Y: 159}, SouthEast); p.Y != 0 {
		t.Fatalf("y wrap at max: got %+v", p)
	}
	if p := g.Step(Pos{X: 5, Y: 0}, NorthEast); p.Y != 159 {
		t.Fatalf("y wrap at min: got %+v", p)
	}
}

func TestNormalizeFacingWrapsToCanonicalSet(t *testing.T) {
	cases := map[int]int{
		-2: -2, -1: -1, 0: 0, 1: 1, 2: 2, 3: 3,
		4: -2, 10: -2, -8: -2, 9: 3, -3: 3,
	}
	for in, want := range cases {
		if got := NormalizeFacing(in); got != want {
			t.Fatalf("NormalizeFacing(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestTurnCWCycle(t *testing.T) {
	seq := []int{East, SouthEast, SouthWest, West, NorthWest, NorthEast, East}
	face := East
	for _, want := range seq[1:] {
		face = TurnCW(face)
		if face != want {
			t.Fatalf("TurnCW produced %d, want %d", face, want)
		}
	}
}

func TestTurnCCWIsInverseOfCW(t *testing.T) {
	face := SouthWest
	if got := TurnCCW(TurnCW(face)); got != face {
		t.Fatalf("TurnCCW(TurnCW(x)) = %d, want %d", got, face)
	}
}

func TestStepAcceptsWideDirections(t *testing.T) {
	g := New(192, 160)
	p := Pos{X: 10, Y: 10}
	a := g.Step(p, East-6)
	b := g.Step(p, East+6)
	c := g.Step(p, East)
	if a != c || b != c {
		t.Fatalf("wide directions did not normalize: a=%+v b=%+v c=%+v", a, b, c)
	}
}
