package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pledge-points-api/services"
)

// GetPledges returns the current roster: canonical names plus aliases.
func GetPledges(c *gin.Context) {
	roster := services.Roster()

	c.JSON(http.StatusOK, gin.H{
		"pledges": roster.Names(),
		"aliases": roster.Aliases(),
	})
}

// GetPledgeHistory returns a pledge's approved submissions, newest first.
// The name may be an alias.
func GetPledgeHistory(c *gin.Context) {
	pledge, ok := services.Roster().Canonicalize(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pledge not found on the current roster"})
		return
	}

	history, err := services.PledgeHistory(pledge)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pledge":      pledge,
		"submissions": history,
		"total":       len(history),
	})
}
