package api

import (
	"net/http"

	"github.com/creature-arena/server/internal/constants"
	"github.com/creature-arena/server/internal/game"

	"github.com/gin-gonic/gin"
)

// ListSpecies returns the seeded species catalog.
func (h *BattleHandler) ListSpecies(c *gin.Context) {
	species, err := h.repo.ListSpecies()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchSpecies})
		return
	}
	c.JSON(http.StatusOK, gin.H{"species": species})
}

// ListDifficulties returns the selectable difficulty levels with their
// tuning profiles so clients can render the selection screen.
func (h *BattleHandler) ListDifficulties(c *gin.Context) {
	levels := []game.Difficulty{
		game.DifficultyEasy,
		game.DifficultyMedium,
		game.DifficultyHard,
		game.DifficultyExpert,
	}
	out := make([]gin.H, 0, len(levels))
	for _, d := range levels {
		out = append(out, gin.H{"name": string(d), "profile": d.Profile()})
	}
	c.JSON(http.StatusOK, gin.H{"difficulties": out})
}
