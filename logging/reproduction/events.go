// Package reproduction publishes mate and divide lifecycle events.
package reproduction

import (
	"context"

	"bugworld/server/logging"
)

const (
	// EventMateSucceeded is emitted when a mate response chromosome accepts.
	EventMateSucceeded logging.EventType = "reproduction.mate_succeeded"
	// EventMateRepeated is emitted when the mate target is already the stored matebrain.
	EventMateRepeated logging.EventType = "reproduction.mate_repeated"
	// EventMateFailed is emitted when mating is refused or the target cell is empty.
	EventMateFailed logging.EventType = "reproduction.mate_failed"
	// EventDivideAborted is emitted when an age or mate gate blocks division.
	EventDivideAborted logging.EventType = "reproduction.divide_aborted"
	// EventMutated is emitted once per mutation applied to a brain.
	EventMutated logging.EventType = "reproduction.mutated"
)

// DivideAbortedPayload names the gate that blocked division.
type DivideAbortedPayload struct {
	Gate string `json:"gate"`
}

// MutatedPayload names which brain and chromosome a mutation touched.
type MutatedPayload struct {
	Brain      string `json:"brain"`
	Decision   int    `json:"decision"`
	Chromosome string `json:"chromosome"`
	Kind       string `json:"kind"`
}

// MateSucceeded publishes a successful mate-brain swap.
func MateSucceeded(ctx context.Context, pub logging.Publisher, tick uint64, actor, partner logging.EntityRef, repeat bool) {
	if pub == nil {
		return
	}
	eventType := EventMateSucceeded
	if repeat {
		eventType = EventMateRepeated
	}
	pub.Publish(ctx, logging.Event{
		Type:     eventType,
		Tick:     tick,
		Actor:    actor,
		Targets:  []logging.EntityRef{partner},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryReproduction,
	})
}

// MateFailed publishes a failed mate attempt.
func MateFailed(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventMateFailed,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryReproduction,
	})
}

// DivideAborted publishes an abort event for a blocked division.
func DivideAborted(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload DivideAbortedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventDivideAborted,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryReproduction,
		Payload:  payload,
	})
}

// Mutated publishes a mutation event for a brain.
func Mutated(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload MutatedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventMutated,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityDebug,
		Category: logging.CategoryReproduction,
		Payload:  payload,
	})
}
