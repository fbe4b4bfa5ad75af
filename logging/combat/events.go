// Package combat publishes move-collision fight outcomes.
package combat

import (
	"context"

	"bugworld/server/logging"
)

const (
	// EventFightWon is emitted when the attacker survives a collision fight.
	EventFightWon logging.EventType = "combat.fight_won"
	// EventFightLost is emitted when the attacker is defeated on collision.
	EventFightLost logging.EventType = "combat.fight_lost"
	// EventDefended is emitted for the survivor of a fight it did not initiate.
	EventDefended logging.EventType = "combat.defended"
)

// FightPayload captures the combat-mass roll that decided the outcome.
type FightPayload struct {
	RelativeFacing int64 `json:"relativeFacing"`
	CombatMass     int64 `json:"combatMass"`
	Roll           int64 `json:"roll"`
}

// FightWon publishes a victory event for the attacker.
func FightWon(ctx context.Context, pub logging.Publisher, tick uint64, attacker, defender logging.EntityRef, payload FightPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventFightWon,
		Tick:     tick,
		Actor:    attacker,
		Targets:  []logging.EntityRef{defender},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryCombat,
		Payload:  payload,
	})
}

// FightLost publishes a defeat event for the attacker.
func FightLost(ctx context.Context, pub logging.Publisher, tick uint64, attacker, defender logging.EntityRef, payload FightPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventFightLost,
		Tick:     tick,
		Actor:    attacker,
		Targets:  []logging.EntityRef{defender},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryCombat,
		Payload:  payload,
	})
}

// Defended publishes an event for a bug that repelled an attacker.
func Defended(ctx context.Context, pub logging.Publisher, tick uint64, defender, attacker logging.EntityRef) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventDefended,
		Tick:     tick,
		Actor:    defender,
		Targets:  []logging.EntityRef{attacker},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryCombat,
	})
}
