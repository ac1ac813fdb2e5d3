package services

import (
	"errors"
	"testing"
	"time"

	"pledge-points-api/models"
)

func TestDecideSubmissionApprove(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedSubmission(t, db, "Eli", 10, models.StatusPending, time.Now())

	decided, err := DecideSubmission(seeded.ID, "president", models.RoleEboard, DecisionApprove)
	if err != nil {
		t.Fatalf("DecideSubmission: %v", err)
	}

	if decided.ApprovalStatus != models.StatusApproved {
		t.Errorf("ApprovalStatus = %q; want approved", decided.ApprovalStatus)
	}
	if decided.ApprovedBy == nil || *decided.ApprovedBy != "president" {
		t.Errorf("ApprovedBy = %v; want president", decided.ApprovedBy)
	}
	if decided.ApprovalTimestamp == nil {
		t.Error("ApprovalTimestamp not set")
	}
}

func TestDecideSubmissionReject(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedSubmission(t, db, "Eli", 10, models.StatusPending, time.Now())

	decided, err := DecideSubmission(seeded.ID, "president", models.RoleAdmin, DecisionReject)
	if err != nil {
		t.Fatalf("DecideSubmission: %v", err)
	}
	if decided.ApprovalStatus != models.StatusRejected {
		t.Errorf("ApprovalStatus = %q; want rejected", decided.ApprovalStatus)
	}
}

// A decided record can never be decided again, with either decision value.
func TestDecideSubmissionIsSingleUse(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedSubmission(t, db, "Eli", 10, models.StatusPending, time.Now())

	if _, err := DecideSubmission(seeded.ID, "president", models.RoleEboard, DecisionApprove); err != nil {
		t.Fatalf("first decision: %v", err)
	}

	for _, decision := range []Decision{DecisionApprove, DecisionReject} {
		_, err := DecideSubmission(seeded.ID, "treasurer", models.RoleEboard, decision)
		assertWorkflowKind(t, err, ErrAlreadyDecided)
	}

	// The original decision survives.
	var stored models.PointSubmission
	if err := db.First(&stored, seeded.ID).Error; err != nil {
		t.Fatal(err)
	}
	if stored.ApprovalStatus != models.StatusApproved || *stored.ApprovedBy != "president" {
		t.Errorf("stored = %+v; want approved by president", stored)
	}
}

func TestDecideSubmissionUnauthorized(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedSubmission(t, db, "Eli", 10, models.StatusPending, time.Now())

	_, err := DecideSubmission(seeded.ID, "pledge", models.RoleBrother, DecisionApprove)
	assertWorkflowKind(t, err, ErrUnauthorized)

	// Status unchanged.
	var stored models.PointSubmission
	if err := db.First(&stored, seeded.ID).Error; err != nil {
		t.Fatal(err)
	}
	if stored.ApprovalStatus != models.StatusPending {
		t.Errorf("ApprovalStatus = %q; want pending", stored.ApprovalStatus)
	}
}

func TestDecideSubmissionNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := DecideSubmission(12345, "president", models.RoleEboard, DecisionApprove)
	assertWorkflowKind(t, err, ErrNotFound)
}

func TestDecideSubmissionUnknownDecision(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedSubmission(t, db, "Eli", 10, models.StatusPending, time.Now())

	if _, err := DecideSubmission(seeded.ID, "president", models.RoleEboard, Decision("defer")); err == nil {
		t.Fatal("expected error for unknown decision")
	}
}

func TestDecideSubmissionsBatch(t *testing.T) {
	db := setupTestDB(t)
	first := seedSubmission(t, db, "Eli", 10, models.StatusPending, time.Now())
	second := seedSubmission(t, db, "Matthew", 5, models.StatusApproved, time.Now())

	outcomes := DecideSubmissions([]int{first.ID, second.ID, 999}, "president", models.RoleEboard, DecisionApprove)
	if len(outcomes) != 3 {
		t.Fatalf("got %d outcomes; want 3", len(outcomes))
	}

	if outcomes[0].Error != "" || outcomes[0].Submission.ApprovalStatus != models.StatusApproved {
		t.Errorf("first outcome = %+v; want approved", outcomes[0])
	}
	if outcomes[1].Error == "" {
		t.Error("already-approved id must report an error")
	}
	if outcomes[2].Error == "" {
		t.Error("missing id must report an error")
	}
}

func TestDecideAllPending(t *testing.T) {
	db := setupTestDB(t)
	seedSubmission(t, db, "Eli", 10, models.StatusPending, time.Now())
	seedSubmission(t, db, "Matthew", 5, models.StatusPending, time.Now())
	seedSubmission(t, db, "Evan", 3, models.StatusRejected, time.Now())

	count, err := DecideAllPending("president", models.RoleEboard, DecisionApprove)
	if err != nil {
		t.Fatalf("DecideAllPending: %v", err)
	}
	if count != 2 {
		t.Errorf("decided %d; want 2", count)
	}

	var pending int64
	db.Model(&models.PointSubmission{}).Where("approval_status = ?", models.StatusPending).Count(&pending)
	if pending != 0 {
		t.Errorf("%d records still pending", pending)
	}
}

func TestDecideAllPendingUnauthorized(t *testing.T) {
	setupTestDB(t)

	_, err := DecideAllPending("pledge", models.RoleBrother, DecisionApprove)
	assertWorkflowKind(t, err, ErrUnauthorized)
}

func TestPurgePendingLeavesDecidedRecords(t *testing.T) {
	db := setupTestDB(t)
	seedSubmission(t, db, "Eli", 10, models.StatusPending, time.Now())
	approved := seedSubmission(t, db, "Matthew", 5, models.StatusApproved, time.Now())

	count, err := PurgePending()
	if err != nil {
		t.Fatalf("PurgePending: %v", err)
	}
	if count != 1 {
		t.Errorf("purged %d; want 1", count)
	}

	var remaining []models.PointSubmission
	if err := db.Find(&remaining).Error; err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 1 || remaining[0].ID != approved.ID {
		t.Errorf("remaining = %+v; want only the approved record", remaining)
	}
}

func assertWorkflowKind(t *testing.T, err error, kind string) {
	t.Helper()
	var workflowErr *WorkflowError
	if !errors.As(err, &workflowErr) {
		t.Fatalf("error = %T (%v); want *WorkflowError", err, err)
	}
	if workflowErr.Kind != kind {
		t.Fatalf("Kind = %q; want %q", workflowErr.Kind, kind)
	}
}
