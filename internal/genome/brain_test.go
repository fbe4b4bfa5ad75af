package genome

import (
	"testing"

	"bugworld/server/internal/rng"
)

func TestDecidePicksHighestScoringChromosome(t *testing.T) {
	var b Brain
	sense := make([]int64, NSenses)
	for i := 0; i <= DecisionDivide; i++ {
		b.Act[i].A = &Gene{Tp: Const, C1: int64(i)}
		b.Act[i].B = &Gene{Tp: Const, C1: -1}
	}
	b.Act[DecisionDivide].A.C1 = 1000
	b.Expression = 0xFFFF // every decision uses chromosome A
	if got := Decide(&b, sense, EvalContext{RNG: rng.New(1)}); got != DecisionDivide {
		t.Fatalf("Decide = %d, want %d", got, DecisionDivide)
	}
}

func TestDecideExpressionSelectsChromosome(t *testing.T) {
	var b Brain
	sense := make([]int64, NSenses)
	for i := 0; i <= DecisionDivide; i++ {
		b.Act[i].A = &Gene{Tp: Const, C1: -1}
		b.Act[i].B = &Gene{Tp: Const, C1: -1}
	}
	b.Act[DecisionEat].B.C1 = 500
	b.Expression = 0 // every decision uses chromosome B
	if got := Decide(&b, sense, EvalContext{RNG: rng.New(1)}); got != DecisionEat {
		t.Fatalf("Decide = %d, want %d", got, DecisionEat)
	}
}

func TestFamilyMatchSelfIsTotal(t *testing.T) {
	var b1, b2 Brain
	if v := FamilyMatch(&b1, &b2, 0); v != 1024 {
		t.Fatalf("self match = %d, want 1024", v)
	}
}

func TestFamilyMatchSameParentsIsTotal(t *testing.T) {
	var b1, b2 Brain
	b1.Family[0].UID, b1.Family[1].UID = 10, 20
	b2.Family[0].UID, b2.Family[1].UID = 10, 20
	if v := FamilyMatch(&b1, &b2, 3); v != 1024 {
		t.Fatalf("same-parent match = %d, want 1024", v)
	}
}

func TestFamilyMatchLevelThreeSeesOnlyParents(t *testing.T) {
	var b1, b2 Brain
	b1.Family[0].UID, b1.Family[1].UID = 10, 11
	b2.Family[0].UID, b2.Family[1].UID = 99, 98 // parents differ
	for i := 2; i <= 5; i++ {
		b1.Family[i].UID = int64(i)
		b2.Family[i].UID = int64(i) // grandparents fully match
	}
	if v := FamilyMatch(&b1, &b2, 3); v != 0 {
		t.Fatalf("level-3 match = %d, want 0 (grandparent data must not leak in)", v)
	}
	if v := FamilyMatch(&b1, &b2, 2); v == 0 {
		t.Fatalf("level-2 match should see the grandparent match, got 0")
	}
}

func TestFamilyMatchLevelOneSeesFullWindow(t *testing.T) {
	var b1, b2 Brain
	for i := range b1.Family {
		b1.Family[i].UID = int64(-100 - i)
		b2.Family[i].UID = int64(-200 - i)
	}
	for i := 30; i <= 62; i++ {
		b1.Family[i].UID = int64(i)
		b2.Family[i].UID = int64(i)
	}
	if v := FamilyMatch(&b1, &b2, 1); v == 0 {
		t.Fatalf("level-1 match should see the great-grandparent window, got 0")
	}
	if v := FamilyMatch(&b1, &b2, 2); v != 0 {
		t.Fatalf("level-2 match should not see the great-grandparent window, got %d", v)
	}
}

func TestDetEthnicityAssimilatesTowardBand(t *testing.T) {
	mom := Ethnicity{R: 60, G: 60, B: 0}
	dad := Ethnicity{R: 60, G: 60, B: 0}

	bottom := DetEthnicity(mom, dad, 2)
	if bottom.G <= 60 {
		t.Fatalf("bottom band should push G up, got %+v", bottom)
	}

	sky := DetEthnicity(mom, dad, 0)
	if sky.B <= 0 {
		t.Fatalf("sky band should push B up, got %+v", sky)
	}
}

func TestDetEthnicityToppedUpToDuration(t *testing.T) {
	mom := Ethnicity{R: 0, G: 0, B: 0}
	dad := Ethnicity{R: 0, G: 0, B: 0}
	offs := DetEthnicity(mom, dad, 1)
	sum := int(offs.R) + int(offs.G) + int(offs.B)
	if sum < EthnicDuration {
		t.Fatalf("assimilated sum = %d, want >= %d", sum, EthnicDuration)
	}
}
