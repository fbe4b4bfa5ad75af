package genome

import (
	"context"

	"bugworld/server/internal/rng"
	"bugworld/server/logging"
	"bugworld/server/logging/diagnostics"
)

// EvalContext carries the inputs Evaluate needs beyond the gene tree and
// sense vector: the RNG draw used to repair an out-of-range sense index,
// and the addressing (publisher, tick, actor, decision) that repair is
// reported through. Decision identifies which of the brain's decisions
// (DecisionSleep..DecisionResponseMate) this evaluation is for for the
// diagnostic payload; it is unrelated to the gene tree itself and is
// simply carried along through the Prod/Sum recursion.
type EvalContext struct {
	Ctx      context.Context
	RNG      *rng.Source
	Pub      logging.Publisher
	Tick     uint64
	Bug      logging.EntityRef
	Decision int
}

func absLong(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// limitFn maps x into [0,1024] against the window [l1,l2]. When l1 > l2 the
// window is inverted: values below l2 saturate high and values above l1
// saturate low, tracing the same ramp backwards.
func limitFn(x, l1, l2 int64) int64 {
	if l1 <= l2 {
		if x < l1 {
			return 0
		}
		if x > l2 {
			return 1024
		}
		if l1 == l2 {
			return 512
		}
		return (1024 * (x - l1)) / (l2 - l1)
	}

	if x < l2 {
		return 1024
	}
	if x > l1 {
		return 0
	}
	return 1024 - (1024*(x-l2))/(l1-l2)
}

// Evaluate walks g's expression tree against the given sense vector.
//
// Gene types dispatch as: Const returns C1 outright; Sense scales
// sense[Si] by C1/1024 and offsets by C2; Limit runs sense[Si] through
// limitFn(l1=C1, l2=C2). Compare and Match share a slot: because the
// reference implementation lets a Compare case fall through into Match
// without a break, a Compare gene's own difference computation is always
// discarded and overwritten by the Match formula — so Compare and Match
// genes evaluate identically. That behavior is preserved here rather than
// fixed, since kept genomes may rely on it via mutation history.
//
// A node's own value is then optionally multiplied by its Prod subtree
// (each scaled through /1024) and added to its Sum subtree, both
// evaluated recursively.
//
// An out-of-range Si (negative, or >= len(sense)) is a self-repair
// condition, not silently clamped: a fresh valid index is drawn from
// ec.RNG and the repair is published via diagnostics.GeneIndexRepaired.
func Evaluate(g *Gene, sense []int64, ec EvalContext) int64 {
	if g == nil {
		return 0
	}

	si := g.Si
	if si < 0 || si >= len(sense) {
		repaired := int(ec.RNG.NextBounded(int64(len(sense))))
		diagnostics.GeneIndexRepaired(ec.Ctx, ec.Pub, ec.Tick, ec.Bug, diagnostics.GeneIndexRepairedPayload{
			Decision: ec.Decision,
			Bad:      si,
			Repaired: repaired,
		})
		si = repaired
	}

	var v int64
	switch g.Tp {
	case Const:
		v = g.C1
	case Sense:
		v = (sense[si]*g.C1)/1024 + g.C2
	case Compare, Match:
		other := int(g.C2) % len(sense)
		if other < 0 {
			other += len(sense)
		}
		v = 1024 - absLong((sense[si]-sense[other])*g.C1)/1024
		if v < 0 {
			v = 0
		}
	case Limit:
		fallthrough
	default:
		v = limitFn(sense[si], g.C1, g.C2)
	}

	if g.Prod != nil {
		v = (v * Evaluate(g.Prod, sense, ec)) / 1024
	}
	if g.Sum != nil {
		v += Evaluate(g.Sum, sense, ec)
	}
	return v
}
