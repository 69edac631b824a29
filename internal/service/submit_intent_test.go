package service

import (
	"errors"
	"testing"

	"github.com/creature-arena/server/internal/game"
)

// seedBattle stores a hand-built battle state under a fixed join code.
func seedBattle(t *testing.T, repo *mockRepo, st *game.BattleState) *game.BattleRecord {
	t.Helper()
	rec := &game.BattleRecord{
		JoinCode:   "TESTCODE",
		PlayerID:   "player-1",
		Difficulty: string(st.Difficulty),
	}
	if err := rec.SetState(st); err != nil {
		t.Fatal(err)
	}
	if err := repo.CreateBattle(rec); err != nil {
		t.Fatal(err)
	}
	return rec
}

func fieldedState() *game.BattleState {
	mk := func(id string) game.Creature {
		c := game.Creature{
			ID:          id,
			SpeciesName: id,
			Attributes:  game.Attributes{Energy: 5, Strength: 5, Magic: 5, Stamina: 5, Speed: 5},
		}
		c.BattleStats = game.DeriveBattleStats(&c)
		c.CurrentHealth = c.BattleStats.MaxHealth
		return c
	}
	return &game.BattleState{
		Phase:      game.PhaseInBattle,
		Turn:       1,
		ActiveSide: game.SidePlayer,
		Difficulty: game.DifficultyEasy,
		Seed:       11,
		Player: game.SideState{
			Field:  []game.Creature{mk("p-field")},
			Energy: 10,
		},
		Enemy: game.SideState{
			Field:  []game.Creature{mk("e-field")},
			Energy: 10,
		},
	}
}

func TestSubmitIntentPersistsState(t *testing.T) {
	repo := newMockRepo()
	seedBattle(t, repo, fieldedState())

	st, over, err := SubmitIntent(repo, "TESTCODE", game.Intent{Kind: game.IntentDefend, SourceCreatureID: "p-field"})
	if err != nil {
		t.Fatalf("SubmitIntent: %v", err)
	}
	if over {
		t.Error("defend must not finish the battle")
	}
	if !st.Player.Field[0].IsDefending {
		t.Error("returned state must reflect the intent")
	}

	stored, _ := repo.battles["TESTCODE"].State()
	if !stored.Player.Field[0].IsDefending {
		t.Error("persisted state must reflect the intent")
	}
}

func TestSubmitIntentReturnsEngineRejection(t *testing.T) {
	repo := newMockRepo()
	seedBattle(t, repo, fieldedState())

	_, _, err := SubmitIntent(repo, "TESTCODE", game.Intent{Kind: game.IntentDeploy, SourceCreatureID: "ghost"})
	if err == nil {
		t.Fatal("expected a rejection from the engine")
	}
	// the rejection is still persisted so the log line survives
	stored, _ := repo.battles["TESTCODE"].State()
	if len(stored.Log) == 0 {
		t.Error("rejection log line must be persisted")
	}
}

func TestSubmitIntentNotFound(t *testing.T) {
	_, _, err := SubmitIntent(newMockRepo(), "MISSING1", game.Intent{Kind: game.IntentEndTurn})
	if err != ErrBattleNotFound {
		t.Errorf("err = %v, want ErrBattleNotFound", err)
	}
}

func TestSubmitIntentRejectsFinishedBattle(t *testing.T) {
	repo := newMockRepo()
	st := fieldedState()
	st.Phase = game.PhaseVictory
	seedBattle(t, repo, st)

	_, over, err := SubmitIntent(repo, "TESTCODE", game.Intent{Kind: game.IntentEndTurn})
	if err != ErrBattleFinished {
		t.Errorf("err = %v, want ErrBattleFinished", err)
	}
	if !over {
		t.Error("finished battle must report over")
	}
}

func TestSubmitIntentRejectsConcurrentAction(t *testing.T) {
	repo := newMockRepo()
	seedBattle(t, repo, fieldedState())

	if !tryLock("TESTCODE") {
		t.Fatal("test lock setup failed")
	}
	defer unlock("TESTCODE")

	_, _, err := SubmitIntent(repo, "TESTCODE", game.Intent{Kind: game.IntentEndTurn})
	if err != ErrActionInProgress {
		t.Errorf("err = %v, want ErrActionInProgress", err)
	}
}

func TestSubmitIntentCountsStatsOnce(t *testing.T) {
	repo := newMockRepo()
	st := fieldedState()
	// the enemy side is already out of creatures; the next turn boundary
	// resolves the battle
	st.Enemy = game.SideState{Energy: 10}
	seedBattle(t, repo, st)

	got, over, err := SubmitIntent(repo, "TESTCODE", game.Intent{Kind: game.IntentEndTurn})
	if err != nil {
		t.Fatalf("SubmitIntent: %v", err)
	}
	if !over || got.Phase != game.PhaseVictory {
		t.Fatalf("over=%v phase=%q, want victory", over, got.Phase)
	}
	if repo.statsCalls != 1 || !repo.lastVictory {
		t.Errorf("statsCalls=%d victory=%v, want one victorious update", repo.statsCalls, repo.lastVictory)
	}
	if repo.lastReward <= 0 {
		t.Errorf("reward = %d, want positive on victory", repo.lastReward)
	}

	// replaying against the finished battle never counts stats again
	_, _, err = SubmitIntent(repo, "TESTCODE", game.Intent{Kind: game.IntentEndTurn})
	if err != ErrBattleFinished {
		t.Errorf("err = %v, want ErrBattleFinished", err)
	}
	if repo.statsCalls != 1 {
		t.Errorf("statsCalls = %d, want still 1", repo.statsCalls)
	}
}

func TestSubmitIntentSurvivesStatsFailure(t *testing.T) {
	repo := newMockRepo()
	repo.statsErr = errors.New("stats store down")
	st := fieldedState()
	st.Enemy = game.SideState{Energy: 10}
	seedBattle(t, repo, st)

	got, over, err := SubmitIntent(repo, "TESTCODE", game.Intent{Kind: game.IntentEndTurn})
	if err != nil {
		t.Fatalf("SubmitIntent: %v", err)
	}
	if !over || got.Phase != game.PhaseVictory {
		t.Fatalf("over=%v phase=%q, want victory despite the stats failure", over, got.Phase)
	}
	// the outcome is still persisted and never re-counted
	stored := repo.battles["TESTCODE"]
	if stored.Phase != string(game.PhaseVictory) || !stored.StatsCounted {
		t.Errorf("stored phase=%q counted=%v, want victory and counted", stored.Phase, stored.StatsCounted)
	}
}

func TestSubmitIntentDeterministicReplay(t *testing.T) {
	runOnce := func() *game.BattleState {
		repo := newMockRepo()
		seedBattle(t, repo, fieldedState())
		intents := []game.Intent{
			{Kind: game.IntentAttack, SourceCreatureID: "p-field", TargetCreatureID: "e-field"},
			{Kind: game.IntentEndTurn},
			{Kind: game.IntentAttack, SourceCreatureID: "p-field", TargetCreatureID: "e-field"},
		}
		var last *game.BattleState
		for _, in := range intents {
			st, _, err := SubmitIntent(repo, "TESTCODE", in)
			if err != nil {
				t.Fatalf("SubmitIntent(%s): %v", in.Kind, err)
			}
			last = st
		}
		return last
	}

	a, b := runOnce(), runOnce()
	if a.Player.Field[0].CurrentHealth != b.Player.Field[0].CurrentHealth {
		t.Error("same seed and intents must replay to the same player health")
	}
	if len(a.Enemy.Field) != len(b.Enemy.Field) {
		t.Error("same seed and intents must replay to the same enemy field")
	}
	if len(a.Enemy.Field) > 0 && len(b.Enemy.Field) > 0 &&
		a.Enemy.Field[0].CurrentHealth != b.Enemy.Field[0].CurrentHealth {
		t.Error("same seed and intents must replay to the same enemy health")
	}
}

func TestResult(t *testing.T) {
	repo := newMockRepo()
	st := fieldedState()
	st.Phase = game.PhaseVictory
	st.Turn = 6
	st.Enemy = game.SideState{}
	seedBattle(t, repo, st)

	sum, err := Result(repo, "TESTCODE")
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if sum.Phase != game.PhaseVictory || sum.TurnsElapsed != 6 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Reward <= 0 {
		t.Errorf("reward = %d, want positive", sum.Reward)
	}
}

func TestResultRequiresFinishedBattle(t *testing.T) {
	repo := newMockRepo()
	seedBattle(t, repo, fieldedState())

	if _, err := Result(repo, "TESTCODE"); err != ErrBattleInProgress {
		t.Errorf("err = %v, want ErrBattleInProgress", err)
	}
	if _, err := Result(repo, "MISSING1"); err != ErrBattleNotFound {
		t.Errorf("err = %v, want ErrBattleNotFound", err)
	}
}
