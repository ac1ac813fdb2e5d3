package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pledge-points-api/services"
)

// GetLeaderboard returns pledges ranked by approved point totals,
// optionally filtered with repeated ?pledge= query params.
func GetLeaderboard(c *gin.Context) {
	standings, err := services.RankPledges(c.QueryArray("pledge")...)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"standings": standings,
		"total":     len(standings),
	})
}
