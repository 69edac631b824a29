package api

import (
	"net/http"

	"github.com/creature-arena/server/internal/version"

	"github.com/gin-gonic/gin"
)

// GetVersion reports the build version information.
func (h *BattleHandler) GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
		"dirty":   version.Dirty,
	})
}
