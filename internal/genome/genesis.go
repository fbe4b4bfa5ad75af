package genome

import "bugworld/server/internal/rng"

// genesisGene links a new node onto an existing chain head. slot chooses
// where it attaches on the node it branches from (branchFrom): "sum" or
// "prod". branchFrom == nil makes the new node a standalone chain root.
func genesisGene(tp, si int, c1, c2 int64, chainHead *Gene, branchFrom *Gene, slot string) *Gene {
	ng := &Gene{Tp: tp, Si: si, C1: c1, C2: c2, Next: chainHead}
	if chainHead != nil {
		chainHead.Prev = ng
	}
	if branchFrom != nil {
		switch slot {
		case "sum":
			ng.Sum = branchFrom
		case "prod":
			ng.Prod = branchFrom
		}
	}
	return ng
}

// GenesisEthnicity is the ethnicity stamp given to the founding bug: pure
// sky-band coloring, strongly asymmetric so its descendants' assimilation
// drift is visible early.
func GenesisEthnicity(uid int64) Ethnicity {
	return Ethnicity{UID: uid, R: EthnicDuration, G: 0, B: 0}
}

// NewFoundingBrain builds the brain of the species founder: a hand-tuned
// gene set evolved from many generations of play, not a random seed. Its
// eight decision chromosomes are a fixed literal table; only Expression
// is rolled here, via r, so genome construction never depends on hidden
// process state. uid is this bug's ethnicity serial number.
func NewFoundingBrain(uid int64, r *rng.Source) *Brain {
	b := &Brain{
		Generation: 0,
		Divide:     3,
		Eth:        GenesisEthnicity(uid),
		Expression: uint16(r.NextBounded(256)),
	}
	for i := range b.Family {
		b.Family[i] = Ethnicity{UID: -1, R: int8(EthnicDuration / 8), G: int8(EthnicDuration / 8), B: int8(EthnicDuration / 8)}
	}

	for i := 0; i < NDecisions; i++ {
		switch i {
		case DecisionSleep:
			b.Act[i].A = genesisGene(Const, 55, 26, 363, nil, nil, "")
			b.Act[i].B = genesisGene(Const, 55, 63, 1530, nil, nil, "")

		case DecisionEat:
			a := genesisGene(Match, 57, 1216, 1084, nil, nil, "")
			a = genesisGene(Limit, 57, 1216, 1084, a, a, "sum")
			a = genesisGene(Const, NSenseCells+1, 1500, 1048, a, a, "prod")
			b.Act[i].A = a
			bb := genesisGene(Limit, 57, 1203, 1056, nil, nil, "")
			bb = genesisGene(Const, NSenseCells+1, 2000, 1048, bb, bb, "prod")
			b.Act[i].B = bb

		case DecisionTurnCCW:
			b.Act[i].A = genesisGene(Limit, SenseSelf+i, 100, 1000, nil, nil, "")
			b.Act[i].B = genesisGene(Limit, SenseSelf+i, 510, 514, nil, nil, "")

		case DecisionTurnCW:
			b.Act[i].A = genesisGene(Limit, SenseSelf+i, 50, 1200, nil, nil, "")
			b.Act[i].B = genesisGene(Limit, SenseSelf+i, 760, 776, nil, nil, "")

		case DecisionMove:
			a := genesisGene(Limit, 58, 4274, 2187, nil, nil, "")
			a = genesisGene(Limit, 0, 173, -53, a, a, "sum")
			a = genesisGene(Const, NSenseCells+1, 1500, 1048, a, a, "prod")
			b.Act[i].A = a
			bb := genesisGene(Limit, 58, 3944, 2187, nil, nil, "")
			bb = genesisGene(Limit, 0, 226, -76, bb, bb, "sum")
			bb = genesisGene(Const, NSenseCells+1, 2000, 1048, bb, bb, "prod")
			b.Act[i].B = bb

		case DecisionMate:
			a := genesisGene(Sense, 13, 734, 101, nil, nil, "")
			a = genesisGene(Sense, 55, 1421, 456, a, a, "prod")
			b.Act[i].A = a
			bb := genesisGene(Sense, 13, 785, 101, nil, nil, "")
			bb = genesisGene(Sense, 55, 1339, 567, bb, bb, "prod")
			b.Act[i].B = bb

		case DecisionDivide:
			a := genesisGene(Limit, SpawnWeightNorm, 1200, 3000, nil, nil, "prod")
			a = genesisGene(Const, NSenseCells+1, 3500, 1048, a, a, "prod")
			b.Act[i].A = a
			bb := genesisGene(Limit, SpawnWeightNorm, 1800, 1850, nil, nil, "prod")
			bb = genesisGene(Const, NSenseCells+1, 4000, 1048, bb, bb, "prod")
			b.Act[i].B = bb

		case DecisionResponseMate:
			b.Act[i].A = genesisGene(Limit, 11, -50, 591, nil, nil, "")
			b.Act[i].B = genesisGene(Limit, 51, -79, 546, nil, nil, "")
		}

		b.NGenes += countGenes(b.Act[i].A)
		b.NGenes += countGenes(b.Act[i].B)
		b.Act[i].EA = b.Eth
		b.Act[i].EB = b.Eth
	}

	return b
}
