// Package diagnostics publishes self-repair conditions flagged by the engine.
package diagnostics

import (
	"context"

	"bugworld/server/logging"
)

const (
	// EventGeneIndexRepaired is emitted when a gene's sense index is out of range
	// and gets clamped or resampled.
	EventGeneIndexRepaired logging.EventType = "diagnostics.gene_index_repaired"
	// EventWeightClamped is emitted when a bug's weight is clamped to 1 to avoid
	// a division by zero during sense normalization.
	EventWeightClamped logging.EventType = "diagnostics.weight_clamped"
)

// GeneIndexRepairedPayload captures the bad and repaired sense index.
type GeneIndexRepairedPayload struct {
	Decision int `json:"decision"`
	Bad      int `json:"bad"`
	Repaired int `json:"repaired"`
}

// GeneIndexRepaired publishes a self-repair event for an out-of-range sense index.
func GeneIndexRepaired(ctx context.Context, pub logging.Publisher, tick uint64, bug logging.EntityRef, payload GeneIndexRepairedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventGeneIndexRepaired,
		Tick:     tick,
		Actor:    bug,
		Severity: logging.SeverityWarn,
		Category: logging.CategoryDiagnostics,
		Payload:  payload,
	})
}

// WeightClamped publishes a self-repair event for a non-positive weight clamp.
func WeightClamped(ctx context.Context, pub logging.Publisher, tick uint64, bug logging.EntityRef) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventWeightClamped,
		Tick:     tick,
		Actor:    bug,
		Severity: logging.SeverityWarn,
		Category: logging.CategoryDiagnostics,
	})
}
