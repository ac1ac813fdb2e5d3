package services

import (
	"errors"

	"gorm.io/gorm"

	"pledge-points-api/config"
	"pledge-points-api/models"
)

// PledgeStanding is one leaderboard row: a pledge and its approved point
// total. Rank starts at 1.
type PledgeStanding struct {
	Rank        int    `json:"rank"`
	Pledge      string `json:"pledge" gorm:"column:pledge"`
	TotalPoints int64  `json:"total_points" gorm:"column:total_points"`
}

// RankPledges computes the leaderboard from approved submissions only,
// optionally restricted to the given canonical pledge names. Totals may be
// negative. Ties are broken by pledge name ascending so medal positions
// are deterministic. The result is recomputed on every call.
func RankPledges(pledges ...string) ([]PledgeStanding, error) {
	query := config.DB.Model(&models.PointSubmission{}).
		Select("pledge, SUM(point_change) AS total_points").
		Where("approval_status = ?", models.StatusApproved)

	if len(pledges) > 0 {
		query = query.Where("pledge IN ?", pledges)
	}

	var standings []PledgeStanding
	if err := query.Group("pledge").
		Order("total_points DESC, pledge ASC").
		Scan(&standings).Error; err != nil {
		return nil, storageErr(err)
	}

	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings, nil
}

// PledgeHistory returns a pledge's approved submissions, newest first.
func PledgeHistory(pledge string) ([]models.PointSubmission, error) {
	var submissions []models.PointSubmission
	err := config.DB.
		Where("pledge = ? AND approval_status = ?", pledge, models.StatusApproved).
		Order("time DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, storageErr(err)
	}
	return submissions, nil
}

// ListSubmissions returns submissions filtered by status and/or pledge.
// Empty filters return everything, newest first.
func ListSubmissions(statuses []string, pledge string) ([]models.PointSubmission, error) {
	query := config.DB.Model(&models.PointSubmission{})
	if len(statuses) > 0 {
		query = query.Where("approval_status IN ?", statuses)
	}
	if pledge != "" {
		query = query.Where("pledge = ?", pledge)
	}

	var submissions []models.PointSubmission
	if err := query.Order("time DESC").Find(&submissions).Error; err != nil {
		return nil, storageErr(err)
	}
	return submissions, nil
}

// GetSubmission fetches one submission by id, or nil when it is missing.
func GetSubmission(id int) (*models.PointSubmission, error) {
	var submission models.PointSubmission
	err := config.DB.First(&submission, id).Error
	if err == nil {
		return &submission, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, storageErr(err)
}
