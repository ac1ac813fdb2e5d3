package models

import "time"

// Approval lifecycle for a point submission. A record starts pending and
// moves exactly once to approved or rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// PointSubmission represents one row of the points table: a signed point
// change awarded to a pledge by a brother, awaiting or past admin review.
type PointSubmission struct {
	ID                int        `gorm:"primaryKey;column:id" json:"id"`
	Time              time.Time  `gorm:"column:time" json:"time"`
	Brother           string     `gorm:"column:brother" json:"brother"`
	PointChange       int64      `gorm:"column:point_change" json:"point_change"`
	Pledge            string     `gorm:"column:pledge" json:"pledge"`
	Comment           string     `gorm:"column:comment" json:"comment"`
	ApprovalStatus    string     `gorm:"column:approval_status;default:pending" json:"approval_status"`
	ApprovedBy        *string    `gorm:"column:approved_by" json:"approved_by,omitempty"`
	ApprovalTimestamp *time.Time `gorm:"column:approval_timestamp" json:"approval_timestamp,omitempty"`
}

// TableName overrides
func (PointSubmission) TableName() string {
	return "points"
}

// IsPending reports whether the submission still awaits a decision.
func (p *PointSubmission) IsPending() bool {
	return p.ApprovalStatus == StatusPending
}

// IsDecided reports whether the submission has reached a terminal status.
func (p *PointSubmission) IsDecided() bool {
	return p.ApprovalStatus == StatusApproved || p.ApprovalStatus == StatusRejected
}
