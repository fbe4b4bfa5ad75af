// Package lifecycle publishes birth, starvation, and kill events for bugs.
package lifecycle

import (
	"context"

	"bugworld/server/logging"
)

const (
	// EventBorn is emitted when a new bug is placed on the grid by division.
	EventBorn logging.EventType = "lifecycle.born"
	// EventStarved is emitted when a bug's weight falls below DietThin.
	EventStarved logging.EventType = "lifecycle.starved"
	// EventKilled is emitted whenever kill_bug runs, for any reason.
	EventKilled logging.EventType = "lifecycle.killed"
)

// BornPayload captures the parentage of a newly divided bug.
type BornPayload struct {
	Generation int64 `json:"generation"`
	MotherUID  int64 `json:"motherUid"`
	FatherUID  int64 `json:"fatherUid"`
}

// StarvedPayload captures the weight at the moment of starvation.
type StarvedPayload struct {
	Weight int64 `json:"weight"`
}

// KilledPayload records why a bug left the simulation.
type KilledPayload struct {
	Reason        string `json:"reason"`
	ReleasedFood  int64  `json:"releasedFood"`
	FoodReleaseAt string `json:"cell,omitempty"`
}

// Born publishes a birth event.
func Born(ctx context.Context, pub logging.Publisher, tick uint64, bug logging.EntityRef, payload BornPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventBorn,
		Tick:     tick,
		Actor:    bug,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryLifecycle,
		Payload:  payload,
	})
}

// Starved publishes a starvation event.
func Starved(ctx context.Context, pub logging.Publisher, tick uint64, bug logging.EntityRef, payload StarvedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventStarved,
		Tick:     tick,
		Actor:    bug,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryLifecycle,
		Payload:  payload,
	})
}

// Killed publishes a bug removal event.
func Killed(ctx context.Context, pub logging.Publisher, tick uint64, bug logging.EntityRef, payload KilledPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventKilled,
		Tick:     tick,
		Actor:    bug,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryLifecycle,
		Payload:  payload,
	})
}
