package services

import (
	"testing"
	"time"

	"pledge-points-api/models"
)

// Only approved records count toward totals.
func TestRankPledgesExcludesUndecidedRecords(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now()
	seedSubmission(t, db, "Eli", 100, models.StatusPending, now)
	seedSubmission(t, db, "Eli", -50, models.StatusRejected, now)
	seedSubmission(t, db, "Eli", 5, models.StatusApproved, now)

	standings, err := RankPledges()
	if err != nil {
		t.Fatalf("RankPledges: %v", err)
	}
	if len(standings) != 1 {
		t.Fatalf("got %d standings; want 1", len(standings))
	}
	if standings[0].Pledge != "Eli" || standings[0].TotalPoints != 5 {
		t.Errorf("standing = %+v; want Eli with 5", standings[0])
	}
	if standings[0].Rank != 1 {
		t.Errorf("Rank = %d; want 1", standings[0].Rank)
	}
}

func TestRankPledgesOrderAndTieBreak(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now()
	seedSubmission(t, db, "Matthew", 10, models.StatusApproved, now)
	seedSubmission(t, db, "Eli", 10, models.StatusApproved, now)
	seedSubmission(t, db, "Evan", 25, models.StatusApproved, now)

	standings, err := RankPledges()
	if err != nil {
		t.Fatalf("RankPledges: %v", err)
	}

	want := []struct {
		pledge string
		total  int64
	}{
		{"Evan", 25},
		{"Eli", 10},      // tie with Matthew broken by name ascending
		{"Matthew", 10},
	}
	if len(standings) != len(want) {
		t.Fatalf("got %d standings; want %d", len(standings), len(want))
	}
	for i, w := range want {
		if standings[i].Pledge != w.pledge || standings[i].TotalPoints != w.total {
			t.Errorf("standings[%d] = %+v; want %s=%d", i, standings[i], w.pledge, w.total)
		}
		if standings[i].Rank != i+1 {
			t.Errorf("standings[%d].Rank = %d; want %d", i, standings[i].Rank, i+1)
		}
	}
}

func TestRankPledgesNegativeTotals(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now()
	seedSubmission(t, db, "Eli", -5, models.StatusApproved, now)
	seedSubmission(t, db, "Eli", -10, models.StatusApproved, now)

	standings, err := RankPledges()
	if err != nil {
		t.Fatalf("RankPledges: %v", err)
	}
	if len(standings) != 1 || standings[0].TotalPoints != -15 {
		t.Errorf("standings = %+v; want Eli with -15", standings)
	}
}

func TestRankPledgesFilter(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now()
	seedSubmission(t, db, "Eli", 10, models.StatusApproved, now)
	seedSubmission(t, db, "Matthew", 20, models.StatusApproved, now)

	standings, err := RankPledges("Eli")
	if err != nil {
		t.Fatalf("RankPledges: %v", err)
	}
	if len(standings) != 1 || standings[0].Pledge != "Eli" {
		t.Errorf("standings = %+v; want only Eli", standings)
	}
}

func TestRankPledgesEmpty(t *testing.T) {
	setupTestDB(t)

	standings, err := RankPledges()
	if err != nil {
		t.Fatalf("RankPledges: %v", err)
	}
	if len(standings) != 0 {
		t.Errorf("standings = %+v; want empty", standings)
	}
}

func TestPledgeHistoryNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedSubmission(t, db, "Eli", 1, models.StatusApproved, base)
	seedSubmission(t, db, "Eli", 2, models.StatusApproved, base.Add(2*time.Hour))
	seedSubmission(t, db, "Eli", 3, models.StatusApproved, base.Add(time.Hour))
	seedSubmission(t, db, "Eli", 99, models.StatusPending, base.Add(3*time.Hour))

	history, err := PledgeHistory("Eli")
	if err != nil {
		t.Fatalf("PledgeHistory: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("got %d records; want 3 (pending excluded)", len(history))
	}
	if history[0].PointChange != 2 || history[1].PointChange != 3 || history[2].PointChange != 1 {
		t.Errorf("history order = %d,%d,%d; want 2,3,1", history[0].PointChange, history[1].PointChange, history[2].PointChange)
	}
}

func TestListSubmissionsFilters(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now()
	seedSubmission(t, db, "Eli", 1, models.StatusPending, now)
	seedSubmission(t, db, "Eli", 2, models.StatusApproved, now)
	seedSubmission(t, db, "Matthew", 3, models.StatusPending, now)

	pending, err := ListSubmissions([]string{models.StatusPending}, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 2 {
		t.Errorf("pending = %d; want 2", len(pending))
	}

	eliPending, err := ListSubmissions([]string{models.StatusPending}, "Eli")
	if err != nil {
		t.Fatal(err)
	}
	if len(eliPending) != 1 || eliPending[0].PointChange != 1 {
		t.Errorf("eliPending = %+v; want the single pending Eli record", eliPending)
	}

	all, err := ListSubmissions(nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("all = %d; want 3", len(all))
	}
}

func TestGetSubmission(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedSubmission(t, db, "Eli", 7, models.StatusPending, time.Now())

	got, err := GetSubmission(seeded.ID)
	if err != nil {
		t.Fatalf("GetSubmission: %v", err)
	}
	if got == nil || got.PointChange != 7 {
		t.Errorf("got = %+v; want the seeded record", got)
	}

	missing, err := GetSubmission(999)
	if err != nil {
		t.Fatalf("GetSubmission(999): %v", err)
	}
	if missing != nil {
		t.Errorf("missing = %+v; want nil", missing)
	}
}
