package services

import (
	"fmt"
	"os"
	"time"

	"pledge-points-api/config"
	"pledge-points-api/models"
)

// ValidateSubmission checks a parsed candidate against the roster and point
// rules, then persists it as a pending submission. Checks run in order and
// short-circuit on the first failure.
func ValidateSubmission(candidate *PointCandidate, submitter string) (*models.PointSubmission, error) {
	if candidate.PointChange == 0 {
		return nil, &ValidationError{
			Kind:    ErrZeroPoints,
			Message: "point change must be nonzero after rounding",
		}
	}

	pledge, ok := Roster().Canonicalize(candidate.Pledge)
	if !ok {
		return nil, &ValidationError{
			Kind:    ErrUnknownPledge,
			Message: fmt.Sprintf("%q is not a pledge on the current roster", candidate.Pledge),
		}
	}

	if !selfPointsAllowed() {
		if self, ok := Roster().Canonicalize(submitter); ok && self == pledge {
			return nil, &ValidationError{
				Kind:    ErrSelfSubmission,
				Message: "pledges cannot submit points for themselves",
			}
		}
	}

	submission := &models.PointSubmission{
		Time:           time.Now(),
		Brother:        submitter,
		PointChange:    candidate.PointChange,
		Pledge:         pledge,
		Comment:        candidate.Comment,
		ApprovalStatus: models.StatusPending,
	}

	if err := config.DB.Create(submission).Error; err != nil {
		return nil, storageErr(err)
	}

	return submission, nil
}

// SubmitPointMessage runs the full submission pipeline: parse the free-text
// message, validate it, and store the pending record.
func SubmitPointMessage(message, submitter string) (*models.PointSubmission, error) {
	candidate, err := ParsePointMessage(message)
	if err != nil {
		return nil, err
	}
	return ValidateSubmission(candidate, submitter)
}

func selfPointsAllowed() bool {
	return os.Getenv("ALLOW_SELF_POINTS") == "true"
}
