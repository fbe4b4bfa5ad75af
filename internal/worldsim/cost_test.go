package worldsim

import (
	"testing"

	"bugworld/server/internal/genome"
	"bugworld/server/internal/rng"
)

func testBugWithWeight(weight int64) *Bug {
	b := &Bug{Brain: genome.NewFoundingBrain(1, rng.New(1))}
	b.Pos[0].Weight = weight
	return b
}

func TestCostCalcChargesProportionalToMass(t *testing.T) {
	b := testBugWithWeight(NomMass * 10)
	before := b.Pos[0].Weight
	costCalc(100, b)
	if b.Pos[0].Weight >= before {
		t.Fatal("costCalc should reduce weight")
	}
}

func TestCostCalcFloorsAtOne(t *testing.T) {
	b := testBugWithWeight(1)
	costCalc(1_000_000, b)
	if b.Pos[0].Weight != 1 {
		t.Fatalf("weight = %d, want floored to 1", b.Pos[0].Weight)
	}
}

func TestCostCalcObesityTaxAboveMassCap(t *testing.T) {
	light := testBugWithWeight(MassCap / 2)
	heavy := testBugWithWeight(MassCap * 2)

	lightBefore := light.Pos[0].Weight
	heavyBefore := heavy.Pos[0].Weight

	costCalc(100, light)
	costCalc(100, heavy)

	lightCharge := lightBefore - light.Pos[0].Weight
	heavyFrac := float64(heavyBefore-heavy.Pos[0].Weight) / float64(heavyBefore)
	lightFrac := float64(lightCharge) / float64(lightBefore)

	if heavyFrac <= lightFrac {
		t.Fatalf("heavy bug's proportional charge %v should exceed light bug's %v under the obesity tax", heavyFrac, lightFrac)
	}
}

func TestCostCalcHigherGeneCountCostsMore(t *testing.T) {
	few := testBugWithWeight(NomMass * 10)
	many := testBugWithWeight(NomMass * 10)
	many.Brain.NGenes = few.Brain.NGenes * 100

	fewBefore := few.Pos[0].Weight
	manyBefore := many.Pos[0].Weight
	costCalc(100, few)
	costCalc(100, many)

	if manyBefore-many.Pos[0].Weight <= fewBefore-few.Pos[0].Weight {
		t.Fatal("a brain with far more genes should pay a larger upkeep charge")
	}
}
