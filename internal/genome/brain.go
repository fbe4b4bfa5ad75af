package genome

// Ethnicity is a coloring/lineage stamp carried per-chromosome-slot and
// per family-history entry. UID is a unique serial number used for
// kinship matching; R/G/B are assimilation weights, not display color
// channels, though they are rendered as one by collaborators.
type Ethnicity struct {
	UID     int64
	R, G, B int8
}

// Chromosome is one diploid gene pair for a single decision: two
// independently evolving chains (A dominant, B recessive, per the
// brain's expression bitmap) plus the ethnicity stamp of whichever
// ancestor last mutated each chain.
type Chromosome struct {
	A, B   *Gene
	EA, EB Ethnicity
}

// Brain is a bug's diploid decision-making genome: one Chromosome per
// decision, a bounded family history for kinship sensing, an expression
// bitmap selecting which chromosome each decision consults, and the
// bookkeeping (Generation, Divide, NGenes) that mutation and division
// maintain.
type Brain struct {
	Act        [NDecisions]Chromosome
	Family     [FamilyHistory]Ethnicity
	Eth        Ethnicity
	Generation int64
	Divide     int64
	NGenes     int64
	Expression uint16
}

// usesA reports whether decision i should consult chromosome A this
// evaluation, per the brain's expression bitmap.
func (b *Brain) usesA(i int) bool {
	return b.Expression&(1<<uint(i)) != 0
}

// chain returns the active chromosome chain for decision i, per
// Expression.
func (b *Brain) chain(i int) *Gene {
	if b.usesA(i) {
		return b.Act[i].A
	}
	return b.Act[i].B
}

// Decide evaluates every decision's active chromosome against sense and
// returns the index of the highest-scoring one. Ties favor the
// lower-indexed decision, since strictly-greater is required to replace
// the running maximum — matching the reference scan order. ec is reused
// across all NDecisions evaluations with Decision overwritten per loop
// iteration, so any gene-index repair is attributed to the decision that
// triggered it.
func Decide(b *Brain, sense []int64, ec EvalContext) int {
	maxV := int64(-1 << 32)
	best := 0
	for i := 0; i <= DecisionDivide; i++ {
		ec.Decision = i
		v := Evaluate(b.chain(i), sense, ec)
		if v > maxV {
			maxV = v
			best = i
		}
	}
	return best
}

// FamilyMatch scores the genetic relationship between two brains at a
// given sensing level. level 0 is self (total match, 1024). Level 3
// checks only immediate parents; level 2 also checks grandparents;
// level 1 (and any other value) additionally checks the full
// great-grandparent and beyond window — farther cells get coarser
// kinship information, mirroring how far a bug can actually see.
func FamilyMatch(b1, b2 *Brain, level int) int64 {
	if level == 0 {
		return 1024
	}

	var r int64
	r += rangeMatch(b1, b2, 0, 1, 0, 1) * 256
	if r == 512 {
		return 1024
	}
	if level == 3 {
		return r
	}
	r += rangeMatch(b1, b2, 2, 5, 2, 5) * 64
	if level == 2 {
		return r
	}
	r += rangeMatch(b1, b2, 6, 13, 6, 13) * 16
	r += rangeMatch(b1, b2, 14, 29, 14, 29) * 4
	r += rangeMatch(b1, b2, 30, 62, 30, 62)
	return r
}

func rangeMatch(b1, b2 *Brain, s1, e1, s2, e2 int) int64 {
	var m int64
	for i := s1; i <= e1; i++ {
		for j := s2; j <= e2; j++ {
			if b1.Family[i].UID == b2.Family[j].UID {
				m++
			}
		}
	}
	return m
}

// DetEthnicity derives an offspring's ethnicity stamp from its parents'
// and assimilates it one step toward the stamp dominant in its birth
// region: the world is divided into three horizontal bands (top, middle,
// bottom), each nudging offspring color toward its own dominant channel
// and topping up the total to EthnicDuration if the parental average
// fell short.
func DetEthnicity(mom, dad Ethnicity, regionBand int) Ethnicity {
	offs := Ethnicity{
		R: int8((int(mom.R) + int(dad.R)) / 2),
		G: int8((int(mom.G) + int(dad.G)) / 2),
		B: int8((int(mom.B) + int(dad.B)) / 2),
	}

	switch regionBand {
	case 0: // sky band
		if offs.R > 0 {
			offs.R--
			offs.B++
		}
		if offs.G > 0 {
			offs.G--
			offs.B++
		}
		for int(offs.R)+int(offs.G)+int(offs.B) < EthnicDuration {
			offs.B++
		}
	case 1: // mid band
		if offs.G > 0 {
			offs.G--
			offs.R++
		}
		if offs.B > 0 {
			offs.B--
			offs.R++
		}
		for int(offs.R)+int(offs.G)+int(offs.B) < EthnicDuration {
			offs.R++
		}
	default: // bottom band
		if offs.R > 0 {
			offs.R--
			offs.G++
		}
		if offs.B > 0 {
			offs.B--
			offs.G++
		}
		for int(offs.R)+int(offs.G)+int(offs.B) < EthnicDuration {
			offs.G++
		}
	}
	return offs
}

// CountGenes reports the chromosome chain length rooted at head.
func CountGenes(head *Gene) int64 { return countGenes(head) }

// NGenesTotal sums the gene counts of every chromosome's both chains,
// the value Brain.NGenes is kept in sync with.
func NGenesTotal(b *Brain) int64 {
	var n int64
	for i := range b.Act {
		n += countGenes(b.Act[i].A)
		n += countGenes(b.Act[i].B)
	}
	return n
}
