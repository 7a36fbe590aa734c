package models

import (
	"testing"
	"time"
)

func newApplication(t *testing.T) *Application {
	t.Helper()
	app := &Application{
		ApplicantID: 7,
		Division:    "Finance",
		Position:    "Staff Akuntansi",
		Status:      StageApplied,
	}
	if err := app.SetTimeline(NewStageTimeline(time.Now())); err != nil {
		t.Fatalf("SetTimeline: %v", err)
	}
	return app
}

func TestStageHappyPath(t *testing.T) {
	app := newApplication(t)
	now := time.Now()

	want := []ApplicationStatus{StageScreening, StageInterview, StageOffering, StageHired}
	for _, stage := range want {
		if err := app.Advance(now, ""); err != nil {
			t.Fatalf("Advance to %s: %v", stage, err)
		}
		if app.Status != stage {
			t.Fatalf("status = %s, want %s", app.Status, stage)
		}
	}

	if !app.Status.IsTerminal() {
		t.Fatal("Hired must be terminal")
	}
	if err := app.Advance(now, ""); err == nil {
		t.Fatal("advancing past Hired must fail")
	}
}

func TestStageTimelineStates(t *testing.T) {
	app := newApplication(t)
	now := time.Now()

	if err := app.Advance(now, "lolos berkas"); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	entries, err := app.Timeline()
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	if entries[0].State != StageCompleted {
		t.Fatalf("Applied state = %s, want completed", entries[0].State)
	}
	if entries[1].Name != StageScreening || entries[1].State != StageCurrent {
		t.Fatalf("unexpected current entry: %+v", entries[1])
	}
	if entries[1].Note != "lolos berkas" {
		t.Fatalf("note = %q", entries[1].Note)
	}
	for _, e := range entries[2:] {
		if e.State != StagePending {
			t.Fatalf("stage %s state = %s, want pending", e.Name, e.State)
		}
	}
}

func TestStageRejectFromAnyStage(t *testing.T) {
	app := newApplication(t)
	now := time.Now()

	if err := app.Advance(now, ""); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if err := app.Reject(now, "tidak memenuhi kualifikasi"); err != nil {
		t.Fatalf("Reject: %v", err)
	}

	if app.Status != StageRejected || app.RejectReason == "" {
		t.Fatalf("status=%s reason=%q", app.Status, app.RejectReason)
	}
	if err := app.Reject(now, "lagi"); err == nil {
		t.Fatal("rejecting a terminal application must fail")
	}

	entries, err := app.Timeline()
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	last := entries[len(entries)-1]
	if last.Name != StageRejected || last.Note != "tidak memenuhi kualifikasi" {
		t.Fatalf("unexpected tail entry: %+v", last)
	}
}

func TestCanTransition(t *testing.T) {
	if !CanTransition(StageApplied, StageScreening) {
		t.Fatal("Applied -> Screening must be allowed")
	}
	if !CanTransition(StageOffering, StageRejected) {
		t.Fatal("any live stage may move to Rejected")
	}
	if CanTransition(StageApplied, StageInterview) {
		t.Fatal("stages cannot be skipped")
	}
	if CanTransition(StageHired, StageRejected) {
		t.Fatal("terminal stages have no outgoing transitions")
	}
}

func TestDivisionVacancy(t *testing.T) {
	d := Division{Name: "Finance", Capacity: 2, CurrentStaff: 1}
	if !d.HasVacancy() {
		t.Fatal("1/2 must have vacancy")
	}
	d.CurrentStaff = 2
	if d.HasVacancy() {
		t.Fatal("2/2 must be full")
	}
}
