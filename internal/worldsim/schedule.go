package worldsim

import (
	"context"
	"strconv"

	"bugworld/server/logging"
	"bugworld/server/logging/ecology"
)

// worldRef is the logging entity reference used for world-scoped
// (non-bug) events: schedule rules, stage transitions, food dynamics.
var worldRef = logging.EntityRef{ID: "world", Kind: logging.EntityKindWorld}

// forcemateSchedule and costmateSchedule are the fixed-tick escalation
// tables: population pressure alone never forces sexual reproduction,
// only the passage of time does, in steadily stricter stages.
var forcemateSchedule = []struct {
	day   int64
	value int64
}{
	{3000, 0x10}, {4000, 0x30}, {5000, 0x70}, {6000, 0x71},
	{7000, 0x73}, {8000, 0x77}, {9000, 0x7F},
}

var costmateSchedule = []struct {
	day   int64
	value int64
}{
	{10000, 24}, {11000, 48}, {12000, 96}, {13000, 144},
}

// Tick advances the simulation by one day: the dynamic-challenge stage
// machine, the fixed-tick forcemate/costmate escalation, season-based
// foodhump drift and forcemate toggling, agediv regulation, the full
// bug population pass, and food growth — then refreshes the day's
// aggregate stats.
func (w *World) Tick(ctx context.Context) {
	w.Today++

	w.applyDynamicChallenge(ctx)
	w.applyFixedSchedule(ctx)
	w.applySeasonalDrift(ctx)
	w.applyAgeDivRegulation()

	idx := w.Today % LHist
	w.hist[idx] = DayStats{}

	w.moveBugs(ctx)
	growFood(w)

	if w.nBugs == 0 {
		return
	}

	w.hist[idx].Day = w.Today
	w.hist[idx].NBugs = w.nBugs
	w.hist[idx].AvgWeight = w.totalBug / w.nBugs
	w.hist[idx].AvgFood = (w.totalFood * 1024) / (WorldX * WorldY)
	w.hist[idx].AvgGenes = (w.geneCount * 1024) / w.nBugs
}

// applyDynamicChallenge runs the population-triggered stage machine:
// stage 0->1 turns up the food hump once the population first tops
// 1000, stage 1->2 turns off move-safety (fights become lethal) past
// 10000, stage 2->3 turns off the leak suppression and imposes a cooldown
// past 15000. Each transition is one-way.
func (w *World) applyDynamicChallenge(ctx context.Context) {
	if w.Wait > 0 {
		w.Wait--
		return
	}

	if w.Stage == 0 && w.nBugs > 1000 {
		w.FoodHump = 10.0
		w.Stage = 1
		w.Wait = 0
		ecology.StageAdvanced(ctx, w.Publisher, uint64(w.Today), worldRef, ecology.StageAdvancedPayload{Stage: 1, Field: "foodHump", Value: "10"})
	}
	if w.Stage == 1 && w.nBugs > 10000 {
		w.Safety = false
		w.Stage = 2
		w.Wait = 0
		ecology.StageAdvanced(ctx, w.Publisher, uint64(w.Today), worldRef, ecology.StageAdvancedPayload{Stage: 2, Field: "safety", Value: "off"})
	}
	if w.Stage == 2 && w.nBugs > 15000 {
		w.Leak = 0
		w.Stage = 3
		w.Wait = 250
		ecology.StageAdvanced(ctx, w.Publisher, uint64(w.Today), worldRef, ecology.StageAdvancedPayload{Stage: 3, Field: "leak", Value: "0"})
	}
}

// applyFixedSchedule fires the two calendar-driven escalation tables
// exactly once, on the day named, regardless of population.
func (w *World) applyFixedSchedule(ctx context.Context) {
	for _, rule := range forcemateSchedule {
		if w.Today == rule.day {
			w.ForceMate = rule.value
			ecology.ScheduleApplied(ctx, w.Publisher, uint64(w.Today), worldRef, ecology.ScheduleAppliedPayload{
				Rule: "forcemate", Field: "forceMate", Value: strconv.FormatInt(rule.value, 16),
			})
		}
	}
	for _, rule := range costmateSchedule {
		if w.Today == rule.day {
			w.CostMate = rule.value
			ecology.ScheduleApplied(ctx, w.Publisher, uint64(w.Today), worldRef, ecology.ScheduleAppliedPayload{
				Rule: "costmate", Field: "costMate", Value: strconv.FormatInt(rule.value, 10),
			})
		}
	}
}

// applySeasonalDrift nudges FoodHump toward equilibrium once a season
// has elapsed (shrinking it back down once agediv climbs, growing it
// back up once agediv relaxes), flips forcemate between the asexual and
// sexual requirement at each season boundary, and grants a reprieve from
// the sexual requirement whenever the population nearly collapses.
func (w *World) applySeasonalDrift(ctx context.Context) {
	if w.Today <= 3000 {
		return
	}

	if w.Today > SeasonLength {
		if w.Today%32 == 0 {
			if w.AgeDiv < 30 {
				w.FoodHump *= 1.001
			}
			if w.AgeDiv > 300 {
				w.FoodHump /= 1.001
			}
		}
		if w.Today%SeasonLength == 0 {
			if (w.Today/SeasonLength)%2 == 0 {
				w.ForceMate = 0x70
			} else {
				w.ForceMate = 0x7F
			}
			ecology.ScheduleApplied(ctx, w.Publisher, uint64(w.Today), worldRef, ecology.ScheduleAppliedPayload{
				Rule: "season_boundary", Field: "forceMate", Value: strconv.FormatInt(w.ForceMate, 16),
			})
		}
		if w.nBugs < 1000 {
			w.ForceMate = 0x70
		}
	}

	oldestBirthday := int64(0)
	if w.first != nil {
		oldestBirthday = w.first.Birthday
	}
	if w.nBugs > w.TargetPop*2 && w.AgeDiv < w.Today-oldestBirthday {
		w.AgeDiv++
	}
	if w.Today%8 == 0 {
		w.AgeDiv++
	}
}

// applyAgeDivRegulation down-regulates the division age gate when the
// population is under target (or the gate has drifted past the oldest
// living bug's age), then clamps it hard when the population blows
// through PopHardLimit.
func (w *World) applyAgeDivRegulation() {
	oldestBirthday := int64(0)
	if w.first != nil {
		oldestBirthday = w.first.Birthday
	}
	age := w.Today - oldestBirthday

	if (w.nBugs < w.TargetPop && w.AgeDiv > 0) || w.AgeDiv > age {
		w.AgeDiv--
	}
	if w.nBugs > PopHardLimit {
		w.AgeDiv = age
	}
}

// moveBugs runs stepOneBug for every living bug, threading a cursor
// through the pass so a bug killed mid-step (by a fight, by starvation,
// or by a sibling taking its cell during division) never strands the
// iteration on a dangling pointer — exactly the cache-next-then-step
// pattern the reference engine uses.
func (w *World) moveBugs(ctx context.Context) {
	bug := w.first
	for bug != nil {
		cursor := bug.Next
		w.stepOneBug(ctx, bug, &cursor)
		bug = cursor
	}
}
