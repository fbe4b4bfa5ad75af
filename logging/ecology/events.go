// Package ecology publishes food-dynamics and dynamic-challenge schedule events.
package ecology

import (
	"context"

	"bugworld/server/logging"
)

const (
	// EventStageAdvanced is emitted when the population-triggered challenge stage advances.
	EventStageAdvanced logging.EventType = "ecology.stage_advanced"
	// EventScheduleApplied is emitted when a fixed-tick schedule rule fires.
	EventScheduleApplied logging.EventType = "ecology.schedule_applied"
	// EventFoodHardCapped is emitted when a cell's food is clamped to the hard ceiling.
	EventFoodHardCapped logging.EventType = "ecology.food_hard_capped"
)

// StageAdvancedPayload names the stage and the scalar it changed.
type StageAdvancedPayload struct {
	Stage int    `json:"stage"`
	Field string `json:"field"`
	Value string `json:"value"`
}

// ScheduleAppliedPayload names the fixed-tick rule that fired.
type ScheduleAppliedPayload struct {
	Rule  string `json:"rule"`
	Field string `json:"field"`
	Value string `json:"value"`
}

// StageAdvanced publishes a dynamic-challenge stage transition.
func StageAdvanced(ctx context.Context, pub logging.Publisher, tick uint64, world logging.EntityRef, payload StageAdvancedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventStageAdvanced,
		Tick:     tick,
		Actor:    world,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryEcology,
		Payload:  payload,
	})
}

// ScheduleApplied publishes a fixed-tick schedule rule firing.
func ScheduleApplied(ctx context.Context, pub logging.Publisher, tick uint64, world logging.EntityRef, payload ScheduleAppliedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventScheduleApplied,
		Tick:     tick,
		Actor:    world,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryEcology,
		Payload:  payload,
	})
}
