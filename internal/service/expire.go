package service

import (
	"github.com/creature-arena/server/internal/game"
	"github.com/creature-arena/server/internal/logging"
)

// HandleExpiredBattle finishes an abandoned battle: the match is recorded
// as a defeat with no reward and never counts twice.
func HandleExpiredBattle(repo BattleRepo, rec *game.BattleRecord) error {
	st, err := rec.State()
	if err != nil {
		return ErrCorruptState
	}
	if st.Phase.Over() {
		return nil
	}
	st.Phase = game.PhaseDefeat
	st.AddLog("battle abandoned: no action was taken in time")

	if !rec.StatsCounted {
		if err := repo.UpdateStatsOnBattleEnd(rec, false, 0); err != nil {
			logging.Error("failed to update stats for expired battle", err, logging.Fields{"join_code": rec.JoinCode})
		}
		rec.StatsCounted = true
	}
	if err := rec.SetState(st); err != nil {
		return err
	}
	return repo.UpdateBattle(rec)
}
