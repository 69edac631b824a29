package api

import (
	"net/http"
	"strings"

	"github.com/creature-arena/server/internal/constants"
	"github.com/creature-arena/server/internal/dedupe"

	"github.com/gin-gonic/gin"
)

// GetPlayerStats returns a player's aggregate battle stats.
func (h *BattleHandler) GetPlayerStats(c *gin.Context) {
	playerID := strings.TrimSpace(c.Param("playerID"))
	if playerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	profile, err := h.repo.GetProfileByPlayerID(playerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPlayerStatsNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": profile})
}

// ListLeaderboard returns the top players ordered by victories. Concurrent
// requests share one query.
func (h *BattleHandler) ListLeaderboard(c *gin.Context) {
	v, err, _ := dedupe.LeaderboardGroup.Do("top", func() (interface{}, error) {
		return h.repo.GetTopPlayers(10)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaders})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": v})
}
