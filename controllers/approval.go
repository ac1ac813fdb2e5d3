package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pledge-points-api/services"
)

// ApprovePoint approves a pending submission (eboard/admin only).
func ApprovePoint(c *gin.Context) {
	decidePoint(c, services.DecisionApprove)
}

// RejectPoint rejects a pending submission (eboard/admin only).
func RejectPoint(c *gin.Context) {
	decidePoint(c, services.DecisionReject)
}

func decidePoint(c *gin.Context, decision services.Decision) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission id"})
		return
	}

	actor := c.GetString("username")
	roleID := c.GetInt("roleID")

	submission, err := services.DecideSubmission(id, actor, roleID, decision)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Point submission " + submission.ApprovalStatus,
		"submission": submission,
	})
}

// DecidePoints applies one decision to a batch of ids, mirroring the old
// "approve 4,3,6" command. Outcomes are reported per id.
func DecidePoints(c *gin.Context) {
	type BatchRequest struct {
		IDs      []int  `json:"ids" binding:"required,min=1"`
		Decision string `json:"decision" binding:"required,oneof=approve reject"`
	}

	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := c.GetString("username")
	roleID := c.GetInt("roleID")

	outcomes := services.DecideSubmissions(req.IDs, actor, roleID, services.Decision(req.Decision))

	decided := 0
	for _, outcome := range outcomes {
		if outcome.Error == "" {
			decided++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"decided":  decided,
		"outcomes": outcomes,
	})
}

// DecideAllPending approves or rejects the whole pending queue.
func DecideAllPending(c *gin.Context) {
	type AllRequest struct {
		Decision string `json:"decision" binding:"required,oneof=approve reject"`
	}

	var req AllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := c.GetString("username")
	roleID := c.GetInt("roleID")

	count, err := services.DecideAllPending(actor, roleID, services.Decision(req.Decision))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Pending submissions decided",
		"decided": count,
	})
}
