package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"pledge-points-api/config"
	"pledge-points-api/models"
)

// Decision is the requested terminal state for a pending submission.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func (d Decision) status() (string, error) {
	switch d {
	case DecisionApprove:
		return models.StatusApproved, nil
	case DecisionReject:
		return models.StatusRejected, nil
	default:
		return "", fmt.Errorf("unknown decision %q", string(d))
	}
}

// DecideSubmission moves one pending submission to a terminal status. The
// status check and the write are a single conditional UPDATE keyed by id,
// so concurrent approve/reject calls on the same record cannot both
// succeed even across process instances sharing one database.
func DecideSubmission(id int, actor string, actorRole int, decision Decision) (*models.PointSubmission, error) {
	if !models.CanApprove(actorRole) {
		return nil, &WorkflowError{
			Kind:    ErrUnauthorized,
			Message: "you do not have permission to decide point submissions",
		}
	}

	newStatus, err := decision.status()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := config.DB.Model(&models.PointSubmission{}).
		Where("id = ? AND approval_status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{
			"approval_status":    newStatus,
			"approved_by":        actor,
			"approval_timestamp": now,
		})
	if result.Error != nil {
		return nil, storageErr(result.Error)
	}

	if result.RowsAffected == 0 {
		// Either the record does not exist or someone decided it first.
		var existing models.PointSubmission
		err := config.DB.First(&existing, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &WorkflowError{
				Kind:    ErrNotFound,
				Message: fmt.Sprintf("point submission %d not found", id),
			}
		}
		if err != nil {
			return nil, storageErr(err)
		}
		return nil, &WorkflowError{
			Kind:    ErrAlreadyDecided,
			Message: fmt.Sprintf("point submission %d is already %s", id, existing.ApprovalStatus),
		}
	}

	var updated models.PointSubmission
	if err := config.DB.First(&updated, id).Error; err != nil {
		return nil, storageErr(err)
	}
	return &updated, nil
}

// DecisionOutcome reports the per-id result of a batch decide call.
type DecisionOutcome struct {
	ID         int                     `json:"id"`
	Submission *models.PointSubmission `json:"submission,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

// DecideSubmissions applies one decision to several ids. Each id goes
// through the full state machine independently; one failure does not stop
// the rest.
func DecideSubmissions(ids []int, actor string, actorRole int, decision Decision) []DecisionOutcome {
	outcomes := make([]DecisionOutcome, 0, len(ids))
	for _, id := range ids {
		submission, err := DecideSubmission(id, actor, actorRole, decision)
		outcome := DecisionOutcome{ID: id, Submission: submission}
		if err != nil {
			outcome.Error = err.Error()
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// DecideAllPending moves every pending submission to the requested terminal
// status and returns how many records were decided.
func DecideAllPending(actor string, actorRole int, decision Decision) (int64, error) {
	if !models.CanApprove(actorRole) {
		return 0, &WorkflowError{
			Kind:    ErrUnauthorized,
			Message: "you do not have permission to decide point submissions",
		}
	}

	newStatus, err := decision.status()
	if err != nil {
		return 0, err
	}

	result := config.DB.Model(&models.PointSubmission{}).
		Where("approval_status = ?", models.StatusPending).
		Updates(map[string]interface{}{
			"approval_status":    newStatus,
			"approved_by":        actor,
			"approval_timestamp": time.Now(),
		})
	if result.Error != nil {
		return 0, storageErr(result.Error)
	}
	return result.RowsAffected, nil
}

// PurgePending deletes every undecided submission. Approved and rejected
// records are never deleted.
func PurgePending() (int64, error) {
	result := config.DB.
		Where("approval_status = ?", models.StatusPending).
		Delete(&models.PointSubmission{})
	if result.Error != nil {
		return 0, storageErr(result.Error)
	}
	return result.RowsAffected, nil
}
