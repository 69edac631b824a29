package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/creature-arena/server/internal/game"
)

// SpellEnergyCost is the per-side energy cost of casting one spell.
// Deployments cost the creature's derived energy cost; attacks and defends
// are free.
const SpellEnergyCost = 3

// Intent rejection errors. The engine never mutates state when returning
// one of these; the rejection reason is also appended to the battle log.
var (
	ErrBattleOver         = errors.New("battle is already over")
	ErrNotPlayerTurn      = errors.New("it is not the player's turn")
	ErrUnknownIntent      = errors.New("unknown intent kind")
	ErrCreatureNotFound   = errors.New("creature not found")
	ErrInvalidTarget      = errors.New("invalid target")
	ErrFieldFull          = errors.New("field is full")
	ErrInsufficientEnergy = errors.New("insufficient energy")
	ErrAlreadyDefending   = errors.New("creature is already defending")
	ErrItemNotFound       = errors.New("item not found")
	ErrItemAlreadyUsed    = errors.New("item already used")
)

// Battle is the state machine around one canonical battle snapshot. All
// randomness flows through the injected Rand; the AI policy is injectable
// for tests.
type Battle struct {
	state  *game.BattleState
	rng    Rand
	decide Decider
}

// NewBattle wraps an existing battle state with a randomness source.
func NewBattle(state *game.BattleState, rng Rand) *Battle {
	return &Battle{state: state, rng: rng, decide: Decide}
}

// State exposes the canonical snapshot.
func (b *Battle) State() *game.BattleState { return b.state }

// SetDecider overrides the AI policy (used by tests).
func (b *Battle) SetDecider(d Decider) { b.decide = d }

// Apply processes one player intent. Resource violations and invalid
// targets reject the intent with an explanatory log line and no state
// mutation; an EndTurn intent additionally runs the automated enemy turn
// and the turn-boundary pipeline.
func (b *Battle) Apply(intent game.Intent) error {
	st := b.state
	if st.Phase.Over() {
		return ErrBattleOver
	}
	if st.Phase != game.PhaseInBattle || st.ActiveSide != game.SidePlayer {
		st.AddLog("action rejected: not the player's turn")
		return ErrNotPlayerTurn
	}
	return b.applyIntent(game.SidePlayer, intent)
}

func (b *Battle) applyIntent(side game.Side, intent game.Intent) error {
	switch intent.Kind {
	case game.IntentDeploy:
		return b.deploy(side, intent.SourceCreatureID)
	case game.IntentAttack:
		return b.attack(side, intent.SourceCreatureID, intent.TargetCreatureID)
	case game.IntentUseTool:
		return b.useTool(side, intent.ToolID, intent.TargetCreatureID)
	case game.IntentUseSpell:
		return b.useSpell(side, intent.SpellID, intent.SourceCreatureID, intent.TargetCreatureID)
	case game.IntentDefend:
		return b.defend(side, intent.SourceCreatureID)
	case game.IntentEndTurn:
		if side == game.SidePlayer {
			b.endTurn()
		}
		return nil
	default:
		b.state.AddLog(fmt.Sprintf("action rejected: unknown intent %q", intent.Kind))
		return ErrUnknownIntent
	}
}

func (b *Battle) deploy(side game.Side, creatureID string) error {
	st := b.state
	ss := st.SideState(side)
	profile := st.Difficulty.Profile()

	idx := findCreature(ss.Hand, creatureID)
	if idx < 0 {
		st.AddLog("deploy rejected: creature is not in hand")
		return ErrCreatureNotFound
	}
	if len(ss.Field) >= profile.MaxFieldSize {
		st.AddLog("deploy rejected: the field is full")
		return ErrFieldFull
	}
	c := ss.Hand[idx]
	if c.BattleStats.EnergyCost > ss.Energy {
		st.AddLog(fmt.Sprintf("deploy rejected: %s costs %d energy, %d available", c.SpeciesName, c.BattleStats.EnergyCost, ss.Energy))
		return ErrInsufficientEnergy
	}

	ss.Hand = append(ss.Hand[:idx], ss.Hand[idx+1:]...)
	ss.Energy -= c.BattleStats.EnergyCost
	ss.Field = append(ss.Field, c)
	st.AddLog(fmt.Sprintf("%s deploys %s (%d energy)", side, c.SpeciesName, c.BattleStats.EnergyCost))
	b.checkOutcome()
	return nil
}

func (b *Battle) attack(side game.Side, sourceID, targetID string) error {
	st := b.state
	ss := st.SideState(side)
	opp := st.SideState(side.Opponent())

	si := findCreature(ss.Field, sourceID)
	if si < 0 {
		st.AddLog("attack rejected: attacker is not on the field")
		return ErrCreatureNotFound
	}
	ti := findCreature(opp.Field, targetID)
	if ti < 0 {
		st.AddLog("attack rejected: target is not on the opposing field")
		return ErrInvalidTarget
	}

	res := ResolveAttack(b.rng, &ss.Field[si], &opp.Field[ti], AttackAuto)
	st.AddLog(res.Message)
	if res.NoOp {
		return nil
	}
	b.removeIfDead(side.Opponent(), ti)
	b.checkOutcome()
	return nil
}

func (b *Battle) useTool(side game.Side, toolID, targetID string) error {
	st := b.state
	ss := st.SideState(side)

	ti := findTool(ss.Tools, toolID)
	if ti < 0 {
		st.AddLog("tool rejected: no such tool in inventory")
		return ErrItemNotFound
	}
	tool := &ss.Tools[ti]
	if tool.Used {
		st.AddLog(fmt.Sprintf("tool rejected: %s was already used", tool.Name))
		return ErrItemAlreadyUsed
	}
	ci := findCreature(ss.Field, targetID)
	if ci < 0 {
		st.AddLog("tool rejected: target is not on your field")
		return ErrInvalidTarget
	}

	payload := ResolveToolEffect(tool)
	for _, msg := range ApplyPayload(&ss.Field[ci], payload) {
		st.AddLog(msg)
	}
	tool.Used = true
	b.checkOutcome()
	return nil
}

func (b *Battle) useSpell(side game.Side, spellID, casterID, targetID string) error {
	st := b.state
	ss := st.SideState(side)
	opp := st.SideState(side.Opponent())

	si := findSpell(ss.Spells, spellID)
	if si < 0 {
		st.AddLog("spell rejected: no such spell in inventory")
		return ErrItemNotFound
	}
	spell := &ss.Spells[si]
	if spell.Used {
		st.AddLog(fmt.Sprintf("spell rejected: %s was already cast", spell.Name))
		return ErrItemAlreadyUsed
	}
	if ss.Energy < SpellEnergyCost {
		st.AddLog(fmt.Sprintf("spell rejected: casting costs %d energy, %d available", SpellEnergyCost, ss.Energy))
		return ErrInsufficientEnergy
	}

	ci := findCreature(ss.Field, casterID)
	if ci < 0 {
		if len(ss.Field) == 0 {
			st.AddLog("spell rejected: no caster on the field")
			return ErrCreatureNotFound
		}
		ci = 0
	}
	caster := &ss.Field[ci]

	payload := ResolveSpellEffect(spell, caster.Attributes.Magic)

	// Offensive payloads target the opposing field; supportive payloads
	// target the caster's side (the caster itself when no target is named).
	offensive := payload.Damage > 0 || payload.TickHealth < 0
	if offensive {
		ti := findCreature(opp.Field, targetID)
		if ti < 0 {
			st.AddLog("spell rejected: target is not on the opposing field")
			return ErrInvalidTarget
		}
		ss.Energy -= SpellEnergyCost
		spell.Used = true
		st.AddLog(fmt.Sprintf("%s casts %s", caster.SpeciesName, spell.Name))
		for _, msg := range ApplyPayload(&opp.Field[ti], payload) {
			st.AddLog(msg)
		}
		if payload.SelfHeal > 0 {
			caster.CurrentHealth += payload.SelfHeal
			if caster.CurrentHealth > caster.BattleStats.MaxHealth {
				caster.CurrentHealth = caster.BattleStats.MaxHealth
			}
			st.AddLog(fmt.Sprintf("%s drains %d health", caster.SpeciesName, payload.SelfHeal))
		}
		b.removeIfDead(side.Opponent(), ti)
		b.checkOutcome()
		return nil
	}

	ti := findCreature(ss.Field, targetID)
	if ti < 0 {
		ti = ci
	}
	ss.Energy -= SpellEnergyCost
	spell.Used = true
	st.AddLog(fmt.Sprintf("%s casts %s", caster.SpeciesName, spell.Name))
	for _, msg := range ApplyPayload(&ss.Field[ti], payload) {
		st.AddLog(msg)
	}
	b.checkOutcome()
	return nil
}

func (b *Battle) defend(side game.Side, creatureID string) error {
	st := b.state
	ss := st.SideState(side)

	ci := findCreature(ss.Field, creatureID)
	if ci < 0 {
		st.AddLog("defend rejected: creature is not on the field")
		return ErrCreatureNotFound
	}
	if ss.Field[ci].IsDefending {
		st.AddLog(fmt.Sprintf("defend rejected: %s is already defending", ss.Field[ci].SpeciesName))
		return ErrAlreadyDefending
	}
	ss.Field[ci].IsDefending = true
	st.AddLog(fmt.Sprintf("%s braces for impact", ss.Field[ci].SpeciesName))
	return nil
}

// endTurn runs the fixed turn-boundary pipeline: outcome check, effect
// tick, the automated enemy turn, another outcome check and tick, then
// draw, energy regeneration and the switch back to the player.
func (b *Battle) endTurn() {
	st := b.state
	if b.checkOutcome() {
		return
	}

	b.tickBothFields()
	if b.checkOutcome() {
		return
	}

	// The enemy's stance from its previous turn has covered one full player
	// turn; it ends as the enemy acts again. The player's stance set this
	// turn stays up through the enemy's action.
	b.clearDefending(game.SideEnemy)
	st.ActiveSide = game.SideEnemy
	b.runEnemyTurn()
	if b.checkOutcome() {
		return
	}

	b.tickBothFields()
	if b.checkOutcome() {
		return
	}

	st.Turn++
	b.drawCard(game.SidePlayer)
	b.drawCard(game.SideEnemy)
	b.regenerateEnergy(game.SidePlayer)
	b.regenerateEnergy(game.SideEnemy)
	b.clearDefending(game.SidePlayer)
	st.ActiveSide = game.SidePlayer
	st.AddLog(fmt.Sprintf("turn %d begins", st.Turn))
}

// clearDefending drops a side's defend stances. Called as that side's own
// turn begins, so a defend covers exactly one opposing action phase.
func (b *Battle) clearDefending(side game.Side) {
	ss := b.state.SideState(side)
	for i := range ss.Field {
		ss.Field[i].IsDefending = false
	}
}

// runEnemyTurn asks the AI for exactly one intent and applies it through
// the same operations the player uses. Any inconsistency or unexpected
// failure force-ends the enemy turn so the match is never left stuck.
func (b *Battle) runEnemyTurn() {
	st := b.state
	defer func() {
		if r := recover(); r != nil {
			st.AddLog(fmt.Sprintf("enemy turn aborted after unexpected failure: %v", r))
		}
		st.ActiveSide = game.SidePlayer
	}()

	intent := b.decide(b.rng, st.Difficulty, st.Enemy.Hand, st.Enemy.Field, st.Player.Field, st.Enemy.Energy)
	switch intent.Kind {
	case game.IntentDeploy, game.IntentAttack, game.IntentDefend, game.IntentEndTurn:
		if err := b.applyIntent(game.SideEnemy, intent); err != nil {
			st.AddLog(fmt.Sprintf("enemy AI error (%v); turn ended", err))
		}
	default:
		// Tools and spells are not available to the AI.
		st.AddLog(fmt.Sprintf("enemy AI chose unavailable action %q; turn ended", intent.Kind))
	}
}

func (b *Battle) tickBothFields() {
	st := b.state
	for _, side := range []game.Side{game.SidePlayer, game.SideEnemy} {
		ss := st.SideState(side)
		field, rep := TickField(ss.Field)
		ss.Field = field
		for _, msg := range rep.Messages {
			st.AddLog(msg)
		}
		if rep.Removed > 0 {
			st.AddLog(fmt.Sprintf("%d of %s's creatures left the field", rep.Removed, side))
		}
	}
}

func (b *Battle) drawCard(side game.Side) {
	st := b.state
	ss := st.SideState(side)
	profile := st.Difficulty.Profile()
	if len(ss.Hand) >= profile.MaxHandSize || len(ss.Deck) == 0 {
		return
	}
	c := ss.Deck[0]
	ss.Deck = ss.Deck[1:]
	ss.Hand = append(ss.Hand, c)
	st.AddLog(fmt.Sprintf("%s draws %s", side, c.SpeciesName))
}

func (b *Battle) regenerateEnergy(side game.Side) {
	st := b.state
	ss := st.SideState(side)
	profile := st.Difficulty.Profile()

	sum := 0
	for i := range ss.Field {
		sum += ss.Field[i].Attributes.Energy
	}
	regen := profile.EnergyRegenBase + int(math.Floor(0.2*float64(sum)))
	ss.Energy += regen
	if ss.Energy > game.MaxSideEnergy {
		ss.Energy = game.MaxSideEnergy
	}
	st.AddLog(fmt.Sprintf("%s regenerates %d energy (%d total)", side, regen, ss.Energy))
}

// checkOutcome evaluates victory/defeat and returns true when the battle
// is over. A side loses when its field, hand and deck are all empty.
func (b *Battle) checkOutcome() bool {
	st := b.state
	if st.Phase.Over() {
		return true
	}
	if st.Enemy.Exhausted() {
		st.Phase = game.PhaseVictory
		st.AddLog("the enemy has no creatures left: victory!")
		return true
	}
	if st.Player.Exhausted() {
		st.Phase = game.PhaseDefeat
		st.AddLog("all of your creatures are gone: defeat")
		return true
	}
	return false
}

func (b *Battle) removeIfDead(side game.Side, idx int) {
	st := b.state
	ss := st.SideState(side)
	if idx < 0 || idx >= len(ss.Field) || ss.Field[idx].Alive() {
		return
	}
	name := ss.Field[idx].SpeciesName
	ss.Field = append(ss.Field[:idx], ss.Field[idx+1:]...)
	st.AddLog(fmt.Sprintf("%s is defeated!", name))
}

// Summarize builds the terminal result report for a battle state.
func Summarize(st *game.BattleState) game.ResultSummary {
	profile := st.Difficulty.Profile()
	remaining := len(st.Player.Field) + len(st.Player.Hand) + len(st.Player.Deck)
	enemyRemaining := len(st.Enemy.Field) + len(st.Enemy.Hand) + len(st.Enemy.Deck)
	defeated := profile.DeckSize - enemyRemaining
	if defeated < 0 {
		defeated = 0
	}
	reward := 0
	if st.Phase == game.PhaseVictory {
		reward = int(math.Round(10 * profile.RewardMultiplier * float64(defeated)))
	}
	return game.ResultSummary{
		Phase:              st.Phase,
		TurnsElapsed:       st.Turn,
		RemainingCreatures: remaining,
		EnemiesDefeated:    defeated,
		Reward:             reward,
		Difficulty:         string(st.Difficulty),
	}
}

func findCreature(list []game.Creature, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func findTool(list []game.Tool, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

func findSpell(list []game.Spell, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
