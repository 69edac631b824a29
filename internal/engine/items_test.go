package engine

import (
	"testing"

	"github.com/creature-arena/server/internal/game"
)

func TestResolveToolEffectBaseTable(t *testing.T) {
	p := ResolveToolEffect(&game.Tool{Name: "Claw Sharpener", Type: game.AttributeStrength})
	if p.StatEffect[game.StatPhysicalAttack] != 4 || p.Duration != 3 {
		t.Errorf("strength tool: %+v", p)
	}

	p = ResolveToolEffect(&game.Tool{Name: "Hardened Plates", Type: game.AttributeStamina})
	if p.StatEffect[game.StatPhysicalDefense] != 3 || p.StatEffect[game.StatMagicalDefense] != 1 || p.Healing != 6 {
		t.Errorf("stamina tool: %+v", p)
	}

	p = ResolveToolEffect(&game.Tool{Name: "Wind Charm", Type: game.AttributeSpeed})
	if p.StatEffect[game.StatDodgeChance] != 3 || p.StatEffect[game.StatCriticalChance] != 2 {
		t.Errorf("speed tool: %+v", p)
	}
}

func TestResolveToolEffectSurge(t *testing.T) {
	p := ResolveToolEffect(&game.Tool{Name: "Arcane Focus", Type: game.AttributeMagic, Kind: game.EffectSurge})
	if p.StatEffect[game.StatMagicalAttack] != 8 {
		t.Errorf("surge must double the base delta, got %d", p.StatEffect[game.StatMagicalAttack])
	}
	if p.Duration != 1 {
		t.Errorf("surge duration = %d, want 1", p.Duration)
	}
}

func TestResolveToolEffectShield(t *testing.T) {
	p := ResolveToolEffect(&game.Tool{Name: "Barrier Stone", Type: game.AttributeStamina, Kind: game.EffectShield})
	if p.StatEffect[game.StatPhysicalDefense] != 8 || p.StatEffect[game.StatMagicalDefense] != 8 {
		t.Errorf("shield deltas: %+v", p.StatEffect)
	}
	if p.Healing != 0 || p.Duration != 3 {
		t.Errorf("shield must drop base healing and last 3 turns: %+v", p)
	}
}

func TestResolveToolEffectEcho(t *testing.T) {
	p := ResolveToolEffect(&game.Tool{Name: "Lingering Chant", Type: game.AttributeStrength, Kind: game.EffectEcho})
	// round(4 * 0.7) = 3, stretched to 5 turns
	if p.StatEffect[game.StatPhysicalAttack] != 3 || p.Duration != 5 {
		t.Errorf("echo: %+v", p)
	}
}

func TestResolveToolEffectDrain(t *testing.T) {
	p := ResolveToolEffect(&game.Tool{Name: "Siphon Fang", Type: game.AttributeMagic, Kind: game.EffectDrain})
	if p.StatEffect[game.StatPhysicalAttack] != 7 || p.StatEffect[game.StatMagicalAttack] != 7 {
		t.Errorf("drain attack deltas: %+v", p.StatEffect)
	}
	if p.StatEffect[game.StatPhysicalDefense] != -3 || p.StatEffect[game.StatMagicalDefense] != -3 {
		t.Errorf("drain defense deltas: %+v", p.StatEffect)
	}
}

func TestResolveToolEffectCharge(t *testing.T) {
	p := ResolveToolEffect(&game.Tool{Name: "Storing Crystal", Type: game.AttributeMagic, Kind: game.EffectCharge})
	if len(p.StatEffect) != 0 {
		t.Errorf("charge must have no immediate stat change: %+v", p.StatEffect)
	}
	if p.Duration != 3 || p.ExpiryStatEffect[game.StatMagicalAttack] != 9 {
		t.Errorf("charge payoff: dur=%d expiry=%+v", p.Duration, p.ExpiryStatEffect)
	}
}

func TestResolveToolEffectNilAndUnknowns(t *testing.T) {
	if p := ResolveToolEffect(nil); !p.IsZero() {
		t.Errorf("nil tool must yield a zero payload: %+v", p)
	}
	// unknown type falls back to strength, unknown kind to the base effect
	p := ResolveToolEffect(&game.Tool{Name: "Odd Trinket", Type: "mystery", Kind: "sparkle"})
	if p.StatEffect[game.StatPhysicalAttack] != 4 || p.Kind != game.EffectDefault {
		t.Errorf("fallback tool: %+v", p)
	}
}

func TestResolveSpellEffectMagicScaling(t *testing.T) {
	spell := &game.Spell{Name: "Flare", Type: game.AttributeMagic}
	// magic power 1.0 + 0.1*5 = 1.5
	p := ResolveSpellEffect(spell, 5)
	if p.Damage != 15 {
		t.Errorf("Damage = %d, want 15", p.Damage)
	}
	p = ResolveSpellEffect(spell, 0)
	if p.Damage != 10 {
		t.Errorf("unscaled Damage = %d, want 10", p.Damage)
	}
}

func TestResolveSpellEffectSurge(t *testing.T) {
	p := ResolveSpellEffect(&game.Spell{Name: "Overload", Type: game.AttributeStrength, Kind: game.EffectSurge}, 0)
	if p.Damage != 16 {
		t.Errorf("surge Damage = %d, want doubled 16", p.Damage)
	}
	if p.Duration != 0 {
		t.Errorf("surge must be instant, duration = %d", p.Duration)
	}
}

func TestResolveSpellEffectShield(t *testing.T) {
	p := ResolveSpellEffect(&game.Spell{Name: "Aegis", Type: game.AttributeMagic, Kind: game.EffectShield}, 4)
	if p.Damage != 0 {
		t.Errorf("shield must not deal damage, got %d", p.Damage)
	}
	if p.StatEffect[game.StatPhysicalDefense] != 10 || p.StatEffect[game.StatMagicalDefense] != 10 {
		t.Errorf("shield deltas: %+v", p.StatEffect)
	}
	// round(5 * 1.4) = 7
	if p.Healing != 7 || p.Duration != 2 {
		t.Errorf("shield healing=%d duration=%d, want 7 and 2", p.Healing, p.Duration)
	}
}

func TestResolveSpellEffectEcho(t *testing.T) {
	// healing spell spreads over ticks: 8 -> +3 per turn
	p := ResolveSpellEffect(&game.Spell{Name: "Renewal", Type: game.AttributeStamina, Kind: game.EffectEcho}, 0)
	if p.TickHealth != 3 || p.Healing != 0 || p.Duration != 3 {
		t.Errorf("healing echo: %+v", p)
	}

	// damage spell becomes damage over time: 10 -> -3 per turn
	p = ResolveSpellEffect(&game.Spell{Name: "Smolder", Type: game.AttributeMagic, Kind: game.EffectEcho}, 0)
	if p.TickHealth != -3 || p.Damage != 0 {
		t.Errorf("damage echo: %+v", p)
	}
}

func TestResolveSpellEffectDrain(t *testing.T) {
	p := ResolveSpellEffect(&game.Spell{Name: "Leech", Type: game.AttributeStrength, Kind: game.EffectDrain}, 0)
	if p.Damage != 8 || p.SelfHeal != 4 {
		t.Errorf("drain: damage=%d selfHeal=%d, want 8 and 4", p.Damage, p.SelfHeal)
	}
	if p.Duration != 0 {
		t.Errorf("drain must be instant, duration = %d", p.Duration)
	}
}

func TestResolveSpellEffectCharge(t *testing.T) {
	p := ResolveSpellEffect(&game.Spell{Name: "Gather Power", Type: game.AttributeMagic, Kind: game.EffectCharge}, 5)
	// round(12 * 1.5) = 18, paid out when the one-turn effect expires
	if p.Damage != 0 || p.Duration != 1 {
		t.Errorf("charge: %+v", p)
	}
	if p.ExpiryStatEffect[game.StatMagicalAttack] != 18 {
		t.Errorf("charge payoff = %+v, want +18 magical attack", p.ExpiryStatEffect)
	}
}

func TestShieldToolRaisesDefenses(t *testing.T) {
	c := combatant("guarded", 12, 12, 10, 10, 40)
	p := ResolveToolEffect(&game.Tool{Name: "Barrier Stone", Type: game.AttributeStamina, Kind: game.EffectShield})

	ApplyPayload(c, p)
	if c.BattleStats.PhysicalDefense != 18 || c.BattleStats.MagicalDefense != 18 {
		t.Errorf("defenses = %d/%d, want 18/18", c.BattleStats.PhysicalDefense, c.BattleStats.MagicalDefense)
	}
	if len(c.ActiveEffects) != 1 || c.ActiveEffects[0].Duration != 3 {
		t.Fatalf("expected a 3-turn shield effect, got %+v", c.ActiveEffects)
	}
}
