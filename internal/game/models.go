package game

import "strings"

// Rarity is a creature's qualitative power tier. Unknown values normalize
// to Common.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// ParseRarity normalizes a free-form rarity string.
func ParseRarity(s string) Rarity {
	switch Rarity(strings.ToLower(strings.TrimSpace(s))) {
	case RarityRare:
		return RarityRare
	case RarityEpic:
		return RarityEpic
	case RarityLegendary:
		return RarityLegendary
	default:
		return RarityCommon
	}
}

// Multiplier returns the health multiplier associated with a rarity.
func (r Rarity) Multiplier() float64 {
	switch r {
	case RarityLegendary:
		return 1.3
	case RarityEpic:
		return 1.2
	case RarityRare:
		return 1.1
	default:
		return 1.0
	}
}

// Stat identifies a single derived battle stat. Used as the key of effect
// stat-delta maps.
type Stat string

const (
	StatPhysicalAttack  Stat = "physical_attack"
	StatMagicalAttack   Stat = "magical_attack"
	StatPhysicalDefense Stat = "physical_defense"
	StatMagicalDefense  Stat = "magical_defense"
	StatMaxHealth       Stat = "max_health"
	StatInitiative      Stat = "initiative"
	StatCriticalChance  Stat = "critical_chance"
	StatDodgeChance     Stat = "dodge_chance"
	StatEnergyCost      Stat = "energy_cost"
)

// AttributeType names one of the five base attribute families. Tools and
// spells are typed by the attribute family they target.
type AttributeType string

const (
	AttributeEnergy   AttributeType = "energy"
	AttributeStrength AttributeType = "strength"
	AttributeMagic    AttributeType = "magic"
	AttributeStamina  AttributeType = "stamina"
	AttributeSpeed    AttributeType = "speed"
)

// ParseAttributeType normalizes a free-form attribute type. Unknown values
// fall back to strength so resolvers never fail on malformed records.
func ParseAttributeType(s string) AttributeType {
	switch AttributeType(strings.ToLower(strings.TrimSpace(s))) {
	case AttributeEnergy:
		return AttributeEnergy
	case AttributeMagic:
		return AttributeMagic
	case AttributeStamina:
		return AttributeStamina
	case AttributeSpeed:
		return AttributeSpeed
	default:
		return AttributeStrength
	}
}

// Attributes is a creature's base attribute set.
type Attributes struct {
	Energy   int `json:"energy"`
	Strength int `json:"strength"`
	Magic    int `json:"magic"`
	Stamina  int `json:"stamina"`
	Speed    int `json:"speed"`
}

// IsZero reports whether no attribute is set (treated as "attributes
// absent" by stat derivation).
func (a Attributes) IsZero() bool {
	return a.Energy == 0 && a.Strength == 0 && a.Magic == 0 && a.Stamina == 0 && a.Speed == 0
}

// BattleStats holds the combat-usable stats derived from base attributes.
// Chances are percentages in [0,100).
type BattleStats struct {
	PhysicalAttack  int     `json:"physical_attack"`
	MagicalAttack   int     `json:"magical_attack"`
	PhysicalDefense int     `json:"physical_defense"`
	MagicalDefense  int     `json:"magical_defense"`
	MaxHealth       int     `json:"max_health"`
	Initiative      int     `json:"initiative"`
	CriticalChance  float64 `json:"critical_chance"`
	DodgeChance     float64 `json:"dodge_chance"`
	EnergyCost      int     `json:"energy_cost"`
}

// IsZero reports whether the stats were never derived.
func (s BattleStats) IsZero() bool {
	return s == BattleStats{}
}

// EffectKind is the closed set of tool/spell effect kinds.
type EffectKind string

const (
	EffectSurge   EffectKind = "surge"
	EffectShield  EffectKind = "shield"
	EffectEcho    EffectKind = "echo"
	EffectDrain   EffectKind = "drain"
	EffectCharge  EffectKind = "charge"
	EffectDefault EffectKind = "default"
)

// ParseEffectKind normalizes a free-form effect kind; unknown values fall
// back to the default kind (the type's base effect).
func ParseEffectKind(s string) EffectKind {
	switch EffectKind(strings.ToLower(strings.TrimSpace(s))) {
	case EffectSurge:
		return EffectSurge
	case EffectShield:
		return EffectShield
	case EffectEcho:
		return EffectEcho
	case EffectDrain:
		return EffectDrain
	case EffectCharge:
		return EffectCharge
	default:
		return EffectDefault
	}
}

// Effect is a timed status modifier attached to a creature. StatEffect is
// applied exactly once when the effect is created; HealthEffect is applied
// on every tick while the effect remains active. ExpiryStatEffect, when
// present, is applied once at the moment the effect expires (charge-style
// payoffs).
type Effect struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Icon             string       `json:"icon,omitempty"`
	Kind             EffectKind   `json:"kind"`
	Description      string       `json:"description,omitempty"`
	Duration         int          `json:"duration"`
	StatEffect       map[Stat]int `json:"stat_effect,omitempty"`
	HealthEffect     int          `json:"health_effect,omitempty"`
	ExpiryStatEffect map[Stat]int `json:"expiry_stat_effect,omitempty"`
}

// Creature is a battle participant. Instantiated once (at battle setup or
// enemy generation) and mutated in place afterwards.
type Creature struct {
	ID               string      `json:"id"`
	SpeciesName      string      `json:"species_name"`
	Rarity           Rarity      `json:"rarity"`
	Form             int         `json:"form"`
	CombinationLevel int         `json:"combination_level"`
	Attributes       Attributes  `json:"attributes"`
	BattleStats      BattleStats `json:"battle_stats"`
	CurrentHealth    int         `json:"current_health"`
	ActiveEffects    []Effect    `json:"active_effects,omitempty"`
	IsDefending      bool        `json:"is_defending"`
}

// Alive reports whether the creature still has health.
func (c *Creature) Alive() bool { return c.CurrentHealth > 0 }

// HealthFraction returns current health as a fraction of max health.
func (c *Creature) HealthFraction() float64 {
	if c.BattleStats.MaxHealth <= 0 {
		return 0
	}
	return float64(c.CurrentHealth) / float64(c.BattleStats.MaxHealth)
}

// Tool is a consumable item that buffs one of the owner's creatures.
type Tool struct {
	ID   string        `json:"id"`
	Name string        `json:"name"`
	Type AttributeType `json:"type"`
	Kind EffectKind    `json:"kind"`
	Used bool          `json:"used"`
}

// Spell is a consumable cast by a field creature; its numbers scale with
// the caster's magic attribute.
type Spell struct {
	ID   string        `json:"id"`
	Name string        `json:"name"`
	Type AttributeType `json:"type"`
	Kind EffectKind    `json:"kind"`
	Used bool          `json:"used"`
}

// Side identifies one of the two battle actors.
type Side string

const (
	SidePlayer Side = "player"
	SideEnemy  Side = "enemy"
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideEnemy
	}
	return SidePlayer
}

// Phase is the battle lifecycle state.
type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhaseInBattle Phase = "in_battle"
	PhaseVictory  Phase = "victory"
	PhaseDefeat   Phase = "defeat"
)

// Over reports whether the phase is terminal.
func (p Phase) Over() bool { return p == PhaseVictory || p == PhaseDefeat }

// SideState holds everything one side owns during a battle. Tools and
// spells are only populated for the player side; the AI does not use items.
type SideState struct {
	Deck   []Creature `json:"deck"`
	Hand   []Creature `json:"hand"`
	Field  []Creature `json:"field"`
	Energy int        `json:"energy"`
	Tools  []Tool     `json:"tools,omitempty"`
	Spells []Spell    `json:"spells,omitempty"`
}

// Exhausted reports whether the side has no creatures anywhere (the
// victory/defeat condition for the opposing side).
func (s *SideState) Exhausted() bool {
	return len(s.Field) == 0 && len(s.Hand) == 0 && len(s.Deck) == 0
}

// LogEntry is one human-readable line of the append-only battle log.
type LogEntry struct {
	Turn    int    `json:"turn"`
	Message string `json:"message"`
}

// BattleState is the canonical battle snapshot the engine transforms.
type BattleState struct {
	Phase      Phase      `json:"phase"`
	Turn       int        `json:"turn"`
	ActiveSide Side       `json:"active_side"`
	Difficulty Difficulty `json:"difficulty"`
	Player     SideState  `json:"player"`
	Enemy      SideState  `json:"enemy"`
	Log        []LogEntry `json:"log"`
	// Seed is the per-battle RNG seed; together with the intent sequence it
	// makes a battle replayable.
	Seed int64 `json:"seed"`
}

// SideState returns the state owned by the given side.
func (b *BattleState) SideState(s Side) *SideState {
	if s == SideEnemy {
		return &b.Enemy
	}
	return &b.Player
}

// AddLog appends one entry to the battle log at the current turn.
func (b *BattleState) AddLog(msg string) {
	b.Log = append(b.Log, LogEntry{Turn: b.Turn, Message: msg})
}

// IntentKind is a discrete requested action, submitted by the player or
// produced by the AI through the same interface.
type IntentKind string

const (
	IntentDeploy   IntentKind = "deploy"
	IntentAttack   IntentKind = "attack"
	IntentUseTool  IntentKind = "use_tool"
	IntentUseSpell IntentKind = "use_spell"
	IntentDefend   IntentKind = "defend"
	IntentEndTurn  IntentKind = "end_turn"
)

// Intent is one requested action against the battle state machine.
type Intent struct {
	Kind             IntentKind `json:"kind"`
	SourceCreatureID string     `json:"source_creature_id,omitempty"`
	TargetCreatureID string     `json:"target_creature_id,omitempty"`
	ToolID           string     `json:"tool_id,omitempty"`
	SpellID          string     `json:"spell_id,omitempty"`
}

// ResultSummary is the terminal report produced on Victory/Defeat.
type ResultSummary struct {
	Phase              Phase  `json:"phase"`
	TurnsElapsed       int    `json:"turns_elapsed"`
	RemainingCreatures int    `json:"remaining_creatures"`
	EnemiesDefeated    int    `json:"enemies_defeated"`
	Reward             int    `json:"reward"`
	Difficulty         string `json:"difficulty"`
}
