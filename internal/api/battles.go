package api

import (
	"errors"
	"net/http"

	"github.com/creature-arena/server/internal/constants"
	"github.com/creature-arena/server/internal/dedupe"
	"github.com/creature-arena/server/internal/game"
	"github.com/creature-arena/server/internal/logging"
	"github.com/creature-arena/server/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateBattle sets up a new battle from the player's roster, inventories
// and difficulty selection.
func (h *BattleHandler) CreateBattle(c *gin.Context) {
	var req service.StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	rec, err := service.StartBattle(h.repo, req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyRoster) {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrRosterRequired})
			return
		}
		logging.Error("failed to create battle", err, logging.Fields{constants.LogFieldPlayerID: req.PlayerID})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateBattle})
		return
	}

	if req.PlayerID != "" {
		if err := h.repo.UpsertPlayer(req.PlayerID, req.PlayerName); err != nil {
			logging.Error("failed to upsert player profile", err, logging.Fields{constants.LogFieldPlayerID: req.PlayerID})
		}
	}

	st, err := rec.State()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrStateCorrupt})
		return
	}
	logging.Info("battle created", logging.Fields{
		constants.LogFieldBattleCode: rec.JoinCode,
		constants.LogFieldPlayerID:   req.PlayerID,
		constants.LogFieldDifficulty: rec.Difficulty,
	})
	c.JSON(http.StatusCreated, gin.H{"join_code": rec.JoinCode, constants.JSONKeyBattle: st})
}

// GetBattle returns the current battle snapshot. Concurrent polls for the
// same battle are coalesced through a singleflight group.
func (h *BattleHandler) GetBattle(c *gin.Context) {
	code := normalizeBattleCode(c.Param("battleCode"))
	if code == "" || !battleCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleCode})
		return
	}

	v, err, _ := dedupe.SnapshotGroup.Do(code, func() (interface{}, error) {
		rec, err := h.repo.GetBattleByJoinCode(code)
		if err != nil {
			return nil, err
		}
		return rec.State()
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyBattle: v})
}

// SubmitAction applies one player intent to the battle.
func (h *BattleHandler) SubmitAction(c *gin.Context) {
	code := normalizeBattleCode(c.Param("battleCode"))
	if code == "" || !battleCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleCode})
		return
	}
	var intent game.Intent
	if err := c.ShouldBindJSON(&intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	st, over, err := service.SubmitIntent(h.repo, code, intent)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBattleNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		case errors.Is(err, service.ErrActionInProgress):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrActionInProgress})
		case errors.Is(err, service.ErrBattleFinished):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleFinished})
		case errors.Is(err, service.ErrCorruptState):
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrStateCorrupt})
		default:
			// Engine-level rejection: the intent was refused but the battle
			// log explains why and the snapshot is unchanged.
			logging.Warn("battle action rejected", logging.Fields{
				constants.LogFieldBattleCode: code,
				constants.LogFieldIntent:     string(intent.Kind),
			})
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				constants.JSONKeyError:   constants.ErrActionRejected,
				constants.JSONKeyMessage: err.Error(),
				constants.JSONKeyBattle:  st,
			})
		}
		return
	}

	resp := gin.H{constants.JSONKeyBattle: st}
	if over {
		resp[constants.JSONKeyMessage] = "Battle finished"
	}
	c.JSON(http.StatusOK, resp)
}

// GetResult returns the terminal summary of a finished battle.
func (h *BattleHandler) GetResult(c *gin.Context) {
	code := normalizeBattleCode(c.Param("battleCode"))
	if code == "" || !battleCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleCode})
		return
	}
	summary, err := service.Result(h.repo, code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBattleNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		case errors.Is(err, service.ErrBattleInProgress):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleInProgress})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBattle})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyResult: summary})
}

// RestartBattle re-enters setup for a finished battle using its original
// roster and inventories.
func (h *BattleHandler) RestartBattle(c *gin.Context) {
	code := normalizeBattleCode(c.Param("battleCode"))
	if code == "" || !battleCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleCode})
		return
	}
	rec, err := service.RestartBattle(h.repo, code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBattleNotFound):
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		case errors.Is(err, service.ErrBattleInProgress):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleInProgress})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedRestartBattle})
		}
		return
	}
	st, err := rec.State()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrStateCorrupt})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyBattle: st})
}
