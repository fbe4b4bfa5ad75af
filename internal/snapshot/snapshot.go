// Package snapshot builds the deterministic, key-ordered JSON encoding of
// a world snapshot that collaborators (viewers, recorders) can diff byte
// for byte across runs. Go's native map iteration order is randomized;
// an ordered map keeps the wire form stable for a determinism-contracted
// engine.
package snapshot

import (
	"encoding/json"

	"github.com/iancoleman/orderedmap"

	"bugworld/server/internal/worldsim"
)

// Encode converts a worldsim.Snapshot into an orderedmap-backed document
// whose keys always marshal in the same order: stats first, then bugs,
// then cells (only non-empty cells are included, keyed by "x,y").
func Encode(snap worldsim.Snapshot) *orderedmap.OrderedMap {
	doc := orderedmap.New()
	doc.Set("stats", encodeStats(snap.Stats))
	doc.Set("bugs", encodeBugs(snap.Bugs))
	doc.Set("cells", encodeCells(snap.Cells))
	return doc
}

// MarshalJSON encodes snap directly to its deterministic wire form.
func MarshalJSON(snap worldsim.Snapshot) ([]byte, error) {
	return json.Marshal(Encode(snap))
}

func encodeStats(sv worldsim.StatsView) *orderedmap.OrderedMap {
	stats := orderedmap.New()
	stats.Set("today", sv.Today)
	stats.Set("nBugs", sv.NBugs)
	stats.Set("avgWeight", sv.AvgWeight)
	stats.Set("avgFood", sv.AvgFood)
	stats.Set("avgGenes", sv.AvgGenes)
	stats.Set("movement", sv.Movement)
	stats.Set("collisions", sv.Collisions)
	stats.Set("starvations", sv.Starvations)
	stats.Set("births", sv.Births)
	stats.Set("ageDiv", sv.AgeDiv)
	stats.Set("forceMate", sv.ForceMate)
	stats.Set("foodHump", sv.FoodHump)
	stats.Set("costMate", sv.CostMate)
	stats.Set("targetPop", sv.TargetPop)
	stats.Set("leak", sv.Leak)
	stats.Set("safety", sv.Safety)
	return stats
}

func encodeBugs(bugs []worldsim.BugView) []*orderedmap.OrderedMap {
	encoded := make([]*orderedmap.OrderedMap, 0, len(bugs))
	for _, b := range bugs {
		bug := orderedmap.New()
		bug.Set("uid", b.UID)
		bug.Set("birthday", b.Birthday)
		bug.Set("generation", b.Generation)
		bug.Set("kills", b.Kills)
		bug.Set("defends", b.Defends)
		bug.Set("moves", b.Moves)
		bug.Set("offspring", b.Offspring)
		bug.Set("weight", b.Weight)
		bug.Set("face", b.Face)
		bug.Set("x", b.X)
		bug.Set("y", b.Y)
		bug.Set("ethR", b.EthR)
		bug.Set("ethG", b.EthG)
		bug.Set("ethB", b.EthB)
		encoded = append(encoded, bug)
	}
	return encoded
}

// encodeCells omits empty cells; a sparse grid the viewer fills with a
// background default keeps the document small without losing fidelity.
func encodeCells(cells []worldsim.CellView) []*orderedmap.OrderedMap {
	encoded := make([]*orderedmap.OrderedMap, 0, len(cells)/4)
	for _, c := range cells {
		if c.Food == 0 && c.BugUID == 0 {
			continue
		}
		cell := orderedmap.New()
		cell.Set("x", c.X)
		cell.Set("y", c.Y)
		cell.Set("food", c.Food)
		if c.BugUID != 0 {
			cell.Set("bugUid", c.BugUID)
		}
		encoded = append(encoded, cell)
	}
	return encoded
}
