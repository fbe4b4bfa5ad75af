package genome

import (
	"testing"

	"bugworld/server/internal/rng"
)

func TestCopyBrainIsIndependent(t *testing.T) {
	src := NewFoundingBrain(1, rng.New(1))
	dst := CopyBrain(src)

	if dst.Act[DecisionEat].A == src.Act[DecisionEat].A {
		t.Fatalf("CopyBrain aliased a chromosome chain")
	}
	dst.Act[DecisionEat].A.C1 = -999
	if src.Act[DecisionEat].A.C1 == -999 {
		t.Fatalf("mutating the copy affected the source brain")
	}
	if dst.NGenes != src.NGenes {
		t.Fatalf("NGenes = %d, want %d", dst.NGenes, src.NGenes)
	}
}

func TestMutateBrainIsDeterministic(t *testing.T) {
	seed := int64(777)
	eth := Ethnicity{UID: 5, R: 10, G: 10, B: 10}

	b1 := NewFoundingBrain(5, rng.New(1))
	b2 := CopyBrain(b1)

	MutateBrain(b1, eth, rng.New(seed))
	MutateBrain(b2, eth, rng.New(seed))

	for i := range b1.Act {
		if CountGenes(b1.Act[i].A) != CountGenes(b2.Act[i].A) {
			t.Fatalf("decision %d chain A length diverged", i)
		}
		if CountGenes(b1.Act[i].B) != CountGenes(b2.Act[i].B) {
			t.Fatalf("decision %d chain B length diverged", i)
		}
	}
	if b1.Divide != b2.Divide || b1.NGenes != b2.NGenes {
		t.Fatalf("scalar mutation results diverged: %+v vs %+v", b1, b2)
	}
}

func TestMutateBrainKeepsDivideInBounds(t *testing.T) {
	eth := Ethnicity{UID: 1}
	for seed := int64(0); seed < 40; seed++ {
		b := NewFoundingBrain(1, rng.New(seed))
		MutateBrain(b, eth, rng.New(seed*7+3))
		if b.Divide < 2 || b.Divide > 7 {
			t.Fatalf("seed %d: Divide out of bounds: %d", seed, b.Divide)
		}
	}
}

func TestMutateBrainNGenesTracksActualChainLengths(t *testing.T) {
	eth := Ethnicity{UID: 1}
	for seed := int64(0); seed < 20; seed++ {
		b := NewFoundingBrain(1, rng.New(seed))
		MutateBrain(b, eth, rng.New(seed*13+1))
		if got, want := b.NGenes, NGenesTotal(b); got != want {
			t.Fatalf("seed %d: NGenes = %d, want %d (actual chain total)", seed, got, want)
		}
	}
}

func TestTweakGeneKeepsTypeInRange(t *testing.T) {
	r := rng.New(9)
	g := &Gene{Tp: Const, Si: 0, C1: 1, C2: 1}
	for i := 0; i < 1000; i++ {
		tweakGene(g, r)
		if g.Tp < Const || g.Tp > Match {
			t.Fatalf("tweakGene produced out-of-range type %d", g.Tp)
		}
		if g.Si < 0 || g.Si >= NSenses {
			t.Fatalf("tweakGene produced out-of-range sense index %d", g.Si)
		}
	}
}
