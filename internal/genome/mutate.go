package genome

import "bugworld/server/internal/rng"

// CopyBrain deep-copies src's every chromosome chain and scalar field
// into a fresh Brain. The two are fully independent afterward: mutating
// one's chains never touches the other's.
func CopyBrain(src *Brain) *Brain {
	dst := *src
	for i := range src.Act {
		dst.Act[i].A = copyChromosome(src.Act[i].A)
		dst.Act[i].B = copyChromosome(src.Act[i].B)
	}
	return &dst
}

// tweakGene applies one or more small perturbations to a single gene: a
// geometric number of tweaks (50% chance of exactly one, 25% of two, and
// so on), each independently picking among retyping the gene, shifting
// its sense index, or rescaling C1 or C2 by a noisy multiplicative-plus-
// additive jitter.
func tweakGene(g *Gene, r *rng.Source) {
	roll := 1 + r.NextBounded(255)
	for roll < 256 {
		switch r.NextBounded(4) {
		case 0:
			g.Tp += int(r.NextBounded(4)) + 1
			if g.Tp > 5 {
				g.Tp -= 5
			}
		case 1:
			d := r.NextBounded(NSenses+6) - 3
			if d == 0 {
				d = 6
			}
			g.Si += int(d)
			if g.Si < 0 {
				g.Si += NSenses
			}
			if g.Si > NSenses-1 {
				g.Si = g.Si % NSenses
			}
		case 2:
			d := 1024 + r.NextBounded(256) - 128
			g.C1 = (g.C1*d)/1024 + r.NextBounded(128) - 64
		case 3:
			d := 1024 + r.NextBounded(256) - 128
			g.C2 = (g.C2*d)/1024 + r.NextBounded(128) - 64
		}
		roll *= 2
	}
}

// MutateBrain applies a geometric number of mutations to brain (50%
// chance of exactly one, 25% of two, and so on up to roughly fourteen),
// each either nudging the Divide count or picking a random gene in a
// random chromosome chain and either tweaking it in place, appending a
// copy of it to a randomly walked leaf, or pruning one of its subtrees.
// eth is stamped onto whichever chromosome slot is touched, recording
// which bug's genome the mutation happened in.
func MutateBrain(brain *Brain, eth Ethnicity, r *rng.Source) {
	roll := 1 + r.NextBounded(16383)
	for roll < 16384 {
		n := int(r.NextBounded(NDecisions + 1))

		if n == NDecisions {
			brain.Divide += r.NextBounded(3) - 1
			if brain.Divide > 7 {
				brain.Divide = 6
			}
			if brain.Divide < 2 {
				brain.Divide = 3
			}
			roll *= 2
			continue
		}

		chrom := &brain.Act[n]
		var head **Gene
		var stamp *Ethnicity
		if r.NextBounded(2) != 0 {
			head = &chrom.A
			stamp = &chrom.EA
		} else {
			head = &chrom.B
			stamp = &chrom.EB
		}
		*stamp = eth

		g2 := *head
		c := countGenes(*head)
		c = r.NextBounded(c)
		g := *head
		for c > 0 {
			g = g.Next
			c--
		}

		if r.NextBounded(2) != 0 {
			tweakGene(g, r)
		} else if r.NextBounded(4) != 0 {
			appendGeneCopy(g, g2, r, &brain.NGenes)
		} else {
			pruneRandomBranch(g, r, &brain.NGenes)
		}

		roll *= 2
	}
}

// appendGeneCopy clones g's coefficients into a new gene, links it as
// the Prod or Sum child of a leaf found by randomly walking down from
// root, and appends it to the tail of the chain rooted at root.
func appendGeneCopy(g, root *Gene, r *rng.Source, ngenes *int64) {
	leaf := root
	var viaProd bool
	for {
		viaProd = r.NextBounded(2) != 0
		if viaProd {
			if leaf.Prod == nil {
				break
			}
			leaf = leaf.Prod
		} else {
			if leaf.Sum == nil {
				break
			}
			leaf = leaf.Sum
		}
	}

	gn := &Gene{Tp: g.Tp, Si: g.Si, C1: g.C1, C2: g.C2}
	*ngenes++
	if viaProd {
		leaf.Prod = gn
	} else {
		leaf.Sum = gn
	}

	tail := g
	for tail.Next != nil {
		tail = tail.Next
	}
	tail.Next = gn
	gn.Prev = tail

	if r.NextBounded(2) != 0 {
		tweakGene(gn, r)
	}
}

// pruneRandomBranch removes one of g's Prod/Sum subtrees at random
// (whichever is present; if both are present, chosen 50/50). A leaf gene
// with neither is left untouched — chromosome roots are never clipped,
// since disposeBranch refuses to remove a node with a nil Prev.
func pruneRandomBranch(g *Gene, r *rng.Source, ngenes *int64) {
	var pruneSum bool
	switch {
	case g.Prod != nil && g.Sum != nil:
		pruneSum = r.NextBounded(2) == 0
	case g.Prod != nil:
		pruneSum = false
	case g.Sum != nil:
		pruneSum = true
	default:
		return
	}

	if pruneSum {
		*ngenes -= int64(disposeBranch(g.Sum))
		g.Sum = nil
	} else {
		*ngenes -= int64(disposeBranch(g.Prod))
		g.Prod = nil
	}
}
