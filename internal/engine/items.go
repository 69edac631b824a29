package engine

import (
	"fmt"
	"math"

	"github.com/creature-arena/server/internal/game"
)

// EffectPayload is the concrete numeric effect produced from a tool or
// spell descriptor. Instant fields (Damage, Healing, SelfHeal) apply
// immediately; StatEffect applies once at effect creation; TickHealth
// applies every tick for Duration turns; ExpiryStatEffect applies when the
// effect expires.
type EffectPayload struct {
	Name             string
	Icon             string
	Kind             game.EffectKind
	Description      string
	Duration         int
	StatEffect       map[game.Stat]int
	Healing          int
	Damage           int
	SelfHeal         int
	TickHealth       int
	ExpiryStatEffect map[game.Stat]int
}

// IsZero reports whether the payload carries no effect at all (the
// fail-open result for nil descriptors).
func (p EffectPayload) IsZero() bool {
	return p.Damage == 0 && p.Healing == 0 && p.SelfHeal == 0 && p.TickHealth == 0 &&
		len(p.StatEffect) == 0 && len(p.ExpiryStatEffect) == 0
}

// chargeStatFor maps an attribute family to the stat a charge effect pays
// off into.
func chargeStatFor(t game.AttributeType) game.Stat {
	switch t {
	case game.AttributeMagic, game.AttributeEnergy:
		return game.StatMagicalAttack
	case game.AttributeStamina:
		return game.StatPhysicalDefense
	case game.AttributeSpeed:
		return game.StatInitiative
	default:
		return game.StatPhysicalAttack
	}
}

// toolBase is the base-effect table keyed by the attribute family a tool
// targets. Tools default to a 3-turn duration; stamina-type tools also heal.
func toolBase(t game.AttributeType) EffectPayload {
	switch t {
	case game.AttributeMagic:
		return EffectPayload{StatEffect: map[game.Stat]int{game.StatMagicalAttack: 4}, Duration: 3}
	case game.AttributeStamina:
		return EffectPayload{
			StatEffect: map[game.Stat]int{game.StatPhysicalDefense: 3, game.StatMagicalDefense: 1},
			Healing:    6,
			Duration:   3,
		}
	case game.AttributeSpeed:
		return EffectPayload{
			StatEffect: map[game.Stat]int{game.StatDodgeChance: 3, game.StatCriticalChance: 2},
			Duration:   3,
		}
	case game.AttributeEnergy:
		return EffectPayload{
			StatEffect: map[game.Stat]int{game.StatMagicalDefense: 3, game.StatMagicalAttack: 1},
			Duration:   3,
		}
	default: // strength
		return EffectPayload{StatEffect: map[game.Stat]int{game.StatPhysicalAttack: 4}, Duration: 3}
	}
}

// spellBase is the base-effect table for spells (2-turn default duration).
func spellBase(t game.AttributeType) EffectPayload {
	switch t {
	case game.AttributeMagic:
		return EffectPayload{Damage: 10, Duration: 2}
	case game.AttributeStamina:
		return EffectPayload{Healing: 8, Duration: 2}
	case game.AttributeSpeed:
		return EffectPayload{Damage: 6, Duration: 2}
	case game.AttributeEnergy:
		return EffectPayload{Damage: 7, Duration: 2}
	default: // strength
		return EffectPayload{Damage: 8, Duration: 2}
	}
}

// ResolveToolEffect turns a tool descriptor into a concrete effect payload.
// Pure, never fails: a nil tool yields a no-op payload and unknown kinds
// fall back to the type's base effect.
func ResolveToolEffect(tool *game.Tool) EffectPayload {
	if tool == nil {
		return EffectPayload{Kind: game.EffectDefault, Name: "No Effect"}
	}
	typ := game.ParseAttributeType(string(tool.Type))
	kind := game.ParseEffectKind(string(tool.Kind))
	p := toolBase(typ)
	p.Kind = kind
	p.Name = tool.Name
	if p.Name == "" {
		p.Name = fmt.Sprintf("%s tool", typ)
	}

	switch kind {
	case game.EffectSurge:
		for s := range p.StatEffect {
			p.StatEffect[s] *= 2
		}
		p.Duration = 1
	case game.EffectShield:
		p.StatEffect = map[game.Stat]int{game.StatPhysicalDefense: 8, game.StatMagicalDefense: 8}
		p.Healing = 0
		p.Duration = 3
	case game.EffectEcho:
		for s, v := range p.StatEffect {
			p.StatEffect[s] = int(math.Round(float64(v) * 0.7))
		}
		p.Duration = 5
	case game.EffectDrain:
		p.StatEffect = map[game.Stat]int{
			game.StatPhysicalAttack:  7,
			game.StatMagicalAttack:   7,
			game.StatPhysicalDefense: -3,
			game.StatMagicalDefense:  -3,
		}
		p.Healing = 0
		p.Duration = 3
	case game.EffectCharge:
		// No immediate stat change; the per-turn bonus accrues and pays off
		// in one shot when the charge completes.
		const perTurn, maxTurns = 3, 3
		p.StatEffect = nil
		p.Healing = 0
		p.Duration = maxTurns
		p.ExpiryStatEffect = map[game.Stat]int{chargeStatFor(typ): perTurn * maxTurns}
		p.Description = fmt.Sprintf("Charging: +%d %s after %d turns", perTurn*maxTurns, chargeStatFor(typ), maxTurns)
	}
	if p.Description == "" {
		p.Description = fmt.Sprintf("%s effect (%s)", typ, kind)
	}
	return p
}

// ResolveSpellEffect turns a spell descriptor into a concrete effect
// payload, scaled by the caster's magic attribute. Pure, never fails.
func ResolveSpellEffect(spell *game.Spell, casterMagic int) EffectPayload {
	if spell == nil {
		return EffectPayload{Kind: game.EffectDefault, Name: "No Effect"}
	}
	typ := game.ParseAttributeType(string(spell.Type))
	kind := game.ParseEffectKind(string(spell.Kind))
	p := spellBase(typ)
	p.Kind = kind
	p.Name = spell.Name
	if p.Name == "" {
		p.Name = fmt.Sprintf("%s spell", typ)
	}

	magicPower := 1.0 + 0.1*float64(casterMagic)
	p.Damage = int(math.Round(float64(p.Damage) * magicPower))
	p.Healing = int(math.Round(float64(p.Healing) * magicPower))

	switch kind {
	case game.EffectSurge:
		p.Damage *= 2
		p.Duration = 0
	case game.EffectShield:
		p.StatEffect = map[game.Stat]int{game.StatPhysicalDefense: 10, game.StatMagicalDefense: 10}
		p.Damage = 0
		p.Healing = int(math.Round(5 * magicPower))
		p.Duration = 2
	case game.EffectEcho:
		// Convert the instant healing/damage into a per-tick health effect
		// over 3 turns.
		if p.Healing > 0 {
			p.TickHealth = int(math.Round(float64(p.Healing) / 3))
		} else if p.Damage > 0 {
			p.TickHealth = -int(math.Round(float64(p.Damage) / 3))
		}
		p.Damage = 0
		p.Healing = 0
		p.Duration = 3
	case game.EffectDrain:
		p.SelfHeal = p.Damage / 2
		p.Duration = 0
	case game.EffectCharge:
		burst := int(math.Round(12 * magicPower))
		p.Damage = 0
		p.Healing = 0
		p.Duration = 1
		p.ExpiryStatEffect = map[game.Stat]int{game.StatMagicalAttack: burst}
		p.Description = fmt.Sprintf("Preparing: +%d magical attack next turn", burst)
	}
	if p.Description == "" {
		p.Description = fmt.Sprintf("%s spell effect (%s)", typ, kind)
	}
	return p
}
