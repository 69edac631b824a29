package engine

import (
	"testing"

	"github.com/creature-arena/server/internal/game"
)

func aiCreature(id string, cost int) game.Creature {
	c := *combatant(id, 15, 10, 5, 5, 40)
	c.BattleStats.EnergyCost = cost
	return c
}

func TestDecideSafeguards(t *testing.T) {
	rng := &fakeRand{}
	full := make([]game.Creature, game.DifficultyEasy.Profile().MaxFieldSize)
	for i := range full {
		full[i] = aiCreature("f", 3)
	}

	if got := Decide(rng, game.DifficultyEasy, []game.Creature{aiCreature("h", 3)}, full, nil, 10); got.Kind != game.IntentEndTurn {
		t.Errorf("full field: got %q, want end_turn", got.Kind)
	}
	if got := Decide(rng, game.DifficultyEasy, []game.Creature{aiCreature("h", 3)}, nil, nil, 0); got.Kind != game.IntentEndTurn {
		t.Errorf("no energy: got %q, want end_turn", got.Kind)
	}
	if got := Decide(rng, game.DifficultyEasy, nil, nil, nil, 10); got.Kind != game.IntentEndTurn {
		t.Errorf("nothing to act with: got %q, want end_turn", got.Kind)
	}
}

func TestDecideEasyDeploys(t *testing.T) {
	hand := []game.Creature{aiCreature("pricey", 9), aiCreature("cheap", 3)}
	got := Decide(&fakeRand{ints: []int{0}}, game.DifficultyEasy, hand, nil, nil, 4)
	if got.Kind != game.IntentDeploy {
		t.Fatalf("got %q, want deploy", got.Kind)
	}
	if got.SourceCreatureID != "cheap" {
		t.Errorf("deployed %q, want the only affordable creature", got.SourceCreatureID)
	}
}

func TestDecideEasyAttacks(t *testing.T) {
	field := []game.Creature{aiCreature("mine", 3)}
	opp := []game.Creature{aiCreature("theirs", 3)}

	// defend roll 0.99 >= 0.3 keeps the attack
	got := Decide(&fakeRand{ints: []int{0, 0}, floats: []float64{0.99}}, game.DifficultyEasy, nil, field, opp, 5)
	if got.Kind != game.IntentAttack {
		t.Fatalf("got %q, want attack", got.Kind)
	}
	if got.SourceCreatureID != "mine" || got.TargetCreatureID != "theirs" {
		t.Errorf("attack %q -> %q", got.SourceCreatureID, got.TargetCreatureID)
	}
}

func TestDecideEasySometimesDefends(t *testing.T) {
	field := []game.Creature{aiCreature("mine", 3)}
	opp := []game.Creature{aiCreature("theirs", 3)}

	got := Decide(&fakeRand{ints: []int{0, 0}, floats: []float64{0.1}}, game.DifficultyEasy, nil, field, opp, 5)
	if got.Kind != game.IntentDefend {
		t.Errorf("got %q, want defend on a low roll", got.Kind)
	}
}

func TestDecideEasyDefendsWithoutTargets(t *testing.T) {
	field := []game.Creature{aiCreature("mine", 3)}
	got := Decide(&fakeRand{ints: []int{0}}, game.DifficultyEasy, nil, field, nil, 5)
	if got.Kind != game.IntentDefend || got.SourceCreatureID != "mine" {
		t.Errorf("got %+v, want defend mine", got)
	}

	// already defending leaves nothing to do
	field[0].IsDefending = true
	got = Decide(&fakeRand{}, game.DifficultyEasy, nil, field, nil, 5)
	if got.Kind != game.IntentEndTurn {
		t.Errorf("got %q, want end_turn when everyone defends already", got.Kind)
	}
}

func TestDecideMediumDeploysStrongest(t *testing.T) {
	weak := aiCreature("weak", 3)
	weak.Attributes = game.Attributes{Energy: 2, Strength: 2, Magic: 2, Stamina: 2, Speed: 2}
	strong := aiCreature("strong", 4)
	strong.Attributes = game.Attributes{Energy: 6, Strength: 6, Magic: 6, Stamina: 6, Speed: 6}
	tooExpensive := aiCreature("titan", 12)
	tooExpensive.Attributes = game.Attributes{Energy: 9, Strength: 9, Magic: 9, Stamina: 9, Speed: 9}

	got := Decide(&fakeRand{}, game.DifficultyMedium, []game.Creature{weak, strong, tooExpensive}, nil, nil, 5)
	if got.Kind != game.IntentDeploy || got.SourceCreatureID != "strong" {
		t.Errorf("got %+v, want deploy strong", got)
	}
}

func TestDecideMediumAttacksWeakestTarget(t *testing.T) {
	hitter := aiCreature("hitter", 3)
	hitter.BattleStats.PhysicalAttack = 30
	backup := aiCreature("backup", 3)
	backup.BattleStats.PhysicalAttack = 10
	field := []game.Creature{backup, hitter}

	sturdy := aiCreature("sturdy", 3)
	wounded := aiCreature("wounded", 3)
	wounded.CurrentHealth = 5
	opp := []game.Creature{sturdy, wounded}

	// healthy attacker never rolls the defend chance
	got := Decide(&fakeRand{}, game.DifficultyMedium, nil, field, opp, 5)
	if got.Kind != game.IntentAttack {
		t.Fatalf("got %q, want attack", got.Kind)
	}
	if got.SourceCreatureID != "hitter" || got.TargetCreatureID != "wounded" {
		t.Errorf("attack %q -> %q, want hitter -> wounded", got.SourceCreatureID, got.TargetCreatureID)
	}
}

func TestDecideMediumGuardsCriticalAttacker(t *testing.T) {
	hurt := aiCreature("hurt", 3)
	hurt.CurrentHealth = 5 // 12.5% of 40
	field := []game.Creature{hurt}
	opp := []game.Creature{aiCreature("theirs", 3)}

	got := Decide(&fakeRand{floats: []float64{0.1}}, game.DifficultyMedium, nil, field, opp, 5)
	if got.Kind != game.IntentDefend || got.SourceCreatureID != "hurt" {
		t.Errorf("got %+v, want defend hurt", got)
	}
}

func TestDecideMediumDefendsWoundedWithoutTargets(t *testing.T) {
	wounded := aiCreature("wounded", 3)
	wounded.CurrentHealth = 15 // under half health
	field := []game.Creature{wounded}

	got := Decide(&fakeRand{}, game.DifficultyMedium, nil, field, nil, 5)
	if got.Kind != game.IntentDefend || got.SourceCreatureID != "wounded" {
		t.Errorf("got %+v, want defend wounded", got)
	}

	// a healthy field just ends the turn
	healthy := []game.Creature{aiCreature("fine", 3)}
	got = Decide(&fakeRand{}, game.DifficultyMedium, nil, healthy, nil, 5)
	if got.Kind != game.IntentEndTurn {
		t.Errorf("got %q, want end_turn for a healthy field", got.Kind)
	}
}

func TestDecideHardFallsBackToEasyPolicy(t *testing.T) {
	hand := []game.Creature{aiCreature("only", 3)}
	got := Decide(&fakeRand{ints: []int{0}}, game.DifficultyHard, hand, nil, nil, 5)
	if got.Kind != game.IntentDeploy || got.SourceCreatureID != "only" {
		t.Errorf("hard difficulty must run the easy policy today, got %+v", got)
	}
}
