package genome

import (
	"testing"

	"bugworld/server/internal/rng"
)

func TestNewFoundingBrainGeneCountMatchesChains(t *testing.T) {
	b := NewFoundingBrain(1, rng.New(1))
	if got, want := b.NGenes, NGenesTotal(b); got != want {
		t.Fatalf("NGenes = %d, want %d", got, want)
	}
	if b.NGenes == 0 {
		t.Fatalf("founding brain has no genes")
	}
}

func TestNewFoundingBrainRootsHaveNoPrev(t *testing.T) {
	b := NewFoundingBrain(1, rng.New(1))
	for i := range b.Act {
		if b.Act[i].A != nil && b.Act[i].A.Prev != nil {
			t.Fatalf("decision %d chromosome A root has non-nil Prev", i)
		}
		if b.Act[i].B != nil && b.Act[i].B.Prev != nil {
			t.Fatalf("decision %d chromosome B root has non-nil Prev", i)
		}
	}
}

func TestNewFoundingBrainIsDeterministic(t *testing.T) {
	a := NewFoundingBrain(42, rng.New(100))
	b := NewFoundingBrain(42, rng.New(100))
	if a.Expression != b.Expression {
		t.Fatalf("Expression diverged: %d vs %d", a.Expression, b.Expression)
	}
	for i := range a.Act {
		if CountGenes(a.Act[i].A) != CountGenes(b.Act[i].A) {
			t.Fatalf("decision %d chain A length diverged", i)
		}
	}
}

func TestNewFoundingBrainDivideGenesComposeByProduct(t *testing.T) {
	b := NewFoundingBrain(1, rng.New(1))
	sense := make([]int64, NSenses)
	sense[SpawnWeightNorm] = 3000
	sense[NSenseCells+1] = 1048 // neutral multiplier for the GENECONST*1048/1024 scaling pattern
	v := Evaluate(b.Act[DecisionDivide].A, sense, EvalContext{RNG: rng.New(1)})
	if v <= 0 {
		t.Fatalf("divide chromosome A evaluated to %d at a high spawn-weight sense", v)
	}
}

func TestGenesisEthnicityCarriesUID(t *testing.T) {
	e := GenesisEthnicity(123)
	if e.UID != 123 {
		t.Fatalf("UID = %d, want 123", e.UID)
	}
	if int(e.R)+int(e.G)+int(e.B) != EthnicDuration {
		t.Fatalf("founding ethnicity channel sum = %d, want %d", int(e.R)+int(e.G)+int(e.B), EthnicDuration)
	}
}
