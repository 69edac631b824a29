package service

import (
	"sync"

	"github.com/creature-arena/server/internal/engine"
	"github.com/creature-arena/server/internal/game"
	"github.com/creature-arena/server/internal/logging"
)

// actionLocks enforces the one-intent-at-a-time rule per battle: a new
// intent is rejected (not queued) while a previous one — including the
// automatic enemy turn that follows EndTurn — is still being processed.
var actionLocks sync.Map

func tryLock(code string) bool {
	_, loaded := actionLocks.LoadOrStore(code, struct{}{})
	return !loaded
}

func unlock(code string) { actionLocks.Delete(code) }

// SubmitIntent applies one player intent to a battle and persists the
// resulting snapshot. The returned boolean reports whether the battle
// reached a terminal phase during this intent.
func SubmitIntent(repo BattleRepo, joinCode string, intent game.Intent) (*game.BattleState, bool, error) {
	if !tryLock(joinCode) {
		return nil, false, ErrActionInProgress
	}
	defer unlock(joinCode)

	rec, err := repo.GetBattleByJoinCode(joinCode)
	if err != nil || rec == nil {
		return nil, false, ErrBattleNotFound
	}
	st, err := rec.State()
	if err != nil {
		return nil, false, ErrCorruptState
	}
	if st.Phase.Over() {
		return st, true, ErrBattleFinished
	}

	// The per-action stream is derived from the battle seed and the log
	// length, so replaying the same intents against the same seed yields
	// the same rolls.
	rng := engine.NewRand(st.Seed + int64(len(st.Log))<<8 + int64(st.Turn))
	battle := engine.NewBattle(st, rng)
	applyErr := battle.Apply(intent)

	over := st.Phase.Over()
	if over && !rec.StatsCounted {
		summary := engine.Summarize(st)
		if err := repo.UpdateStatsOnBattleEnd(rec, st.Phase == game.PhaseVictory, summary.Reward); err != nil {
			logging.Error("failed to update stats for finished battle", err, logging.Fields{"join_code": rec.JoinCode})
		}
		rec.StatsCounted = true
	}

	if err := rec.SetState(st); err != nil {
		return nil, over, err
	}
	if err := repo.UpdateBattle(rec); err != nil {
		return nil, over, err
	}
	return st, over, applyErr
}

// Result returns the terminal summary for a finished battle.
func Result(repo BattleRepo, joinCode string) (*game.ResultSummary, error) {
	rec, err := repo.GetBattleByJoinCode(joinCode)
	if err != nil || rec == nil {
		return nil, ErrBattleNotFound
	}
	st, err := rec.State()
	if err != nil {
		return nil, ErrCorruptState
	}
	if !st.Phase.Over() {
		return nil, ErrBattleInProgress
	}
	summary := engine.Summarize(st)
	return &summary, nil
}
