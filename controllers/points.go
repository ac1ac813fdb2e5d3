package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pledge-points-api/models"
	"pledge-points-api/services"
	"pledge-points-api/utils"
)

// SubmitPoints accepts a free-text point message, e.g.
// {"message": "+10 Eli Great job at recruitment"}. The record is stored
// pending and must be approved before it counts.
func SubmitPoints(c *gin.Context) {
	type SubmitRequest struct {
		Message string `json:"message" binding:"required"`
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submitter := c.GetString("username")
	submission, err := services.SubmitPointMessage(utils.SanitizeInput(req.Message), submitter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Points submitted for approval",
		"submission": submission,
	})
}

// SubmitPointsDirect accepts a structured give/take request instead of a
// free-text message. Amounts are limited to the -128..127 range the old
// slash command allowed.
func SubmitPointsDirect(c *gin.Context) {
	type DirectRequest struct {
		Points  int64  `json:"points" binding:"required"`
		Pledge  string `json:"pledge" binding:"required"`
		Comment string `json:"comment"`
	}

	var req DirectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.ValidateDirectPointRange(req.Points) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Points must be an integer within the range -128,127"})
		return
	}

	candidate := &services.PointCandidate{
		PointChange: req.Points,
		Pledge:      req.Pledge,
		Comment:     utils.SanitizeInput(req.Comment),
	}

	submitter := c.GetString("username")
	submission, err := services.ValidateSubmission(candidate, submitter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Points submitted for approval",
		"submission": submission,
	})
}

// GetPoints returns point submissions, filterable by status and pledge.
func GetPoints(c *gin.Context) {
	var statuses []string
	if status := c.Query("status"); status != "" {
		statuses = c.QueryArray("status")
	}

	submissions, err := services.ListSubmissions(statuses, c.Query("pledge"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": submissions,
		"total":       len(submissions),
	})
}

// GetPendingPoints returns the queue awaiting an eboard decision.
func GetPendingPoints(c *gin.Context) {
	submissions, err := services.ListSubmissions([]string{models.StatusPending}, "")
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": submissions,
		"total":       len(submissions),
	})
}

// GetPoint returns a single submission by id.
func GetPoint(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission id"})
		return
	}

	submission, err := services.GetSubmission(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if submission == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Point submission not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"submission": submission})
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	var parseErr *services.ParseError
	if errors.As(err, &parseErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": parseErr.Error(), "kind": "parse_failure"})
		return
	}

	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validationErr.Message, "kind": validationErr.Kind})
		return
	}

	var workflowErr *services.WorkflowError
	if errors.As(err, &workflowErr) {
		status := http.StatusBadRequest
		switch workflowErr.Kind {
		case services.ErrUnauthorized:
			status = http.StatusForbidden
		case services.ErrNotFound:
			status = http.StatusNotFound
		case services.ErrAlreadyDecided:
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": workflowErr.Message, "kind": workflowErr.Kind})
		return
	}

	if errors.Is(err, services.ErrStorageUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage unavailable, try again later"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
