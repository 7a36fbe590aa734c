package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	StageApplied   ApplicationStatus = "Applied"
	StageScreening ApplicationStatus = "Screening"
	StageInterview ApplicationStatus = "Interview"
	StageOffering  ApplicationStatus = "Offering"
	StageHired     ApplicationStatus = "Hired"
	StageRejected  ApplicationStatus = "Rejected"
)

type StageState string

const (
	StagePending   StageState = "pending"
	StageCurrent   StageState = "current"
	StageCompleted StageState = "completed"
)

// stageTransitions lists every allowed (from -> to) pair. Hired and Rejected
// are terminal.
var stageTransitions = map[ApplicationStatus][]ApplicationStatus{
	StageApplied:   {StageScreening, StageRejected},
	StageScreening: {StageInterview, StageRejected},
	StageInterview: {StageOffering, StageRejected},
	StageOffering:  {StageHired, StageRejected},
}

// StageEntry is one step of an application's timeline. Every application
// carries the full ordered stage list; each entry tracks its own sub-status.
type StageEntry struct {
	Name  ApplicationStatus `json:"name"`
	State StageState        `json:"state"`
	Date  *time.Time        `json:"date,omitempty"`
	Note  string            `json:"note,omitempty"`
}

type Application struct {
	gorm.Model
	ApplicantID uint     `gorm:"index;not null"`
	Applicant   *Account `gorm:"foreignKey:ApplicantID"`

	Division string `gorm:"type:varchar(150);not null;index"`
	Position string `gorm:"type:varchar(150);not null"`

	Status ApplicationStatus `gorm:"type:enum('Applied','Screening','Interview','Offering','Hired','Rejected');default:'Applied';not null;index"`
	Stages datatypes.JSON    `gorm:"type:json"`

	RejectReason string `gorm:"type:text"`
}

func (Application) TableName() string {
	return "applications"
}

// Division is a company division with advisory headcount capacity. New
// applications are refused once CurrentStaff reaches Capacity.
type Division struct {
	gorm.Model
	Name         string `gorm:"type:varchar(150);uniqueIndex;not null"`
	Capacity     int    `gorm:"not null;default:0"`
	CurrentStaff int    `gorm:"not null;default:0"`
}

func (Division) TableName() string {
	return "divisions"
}

func (d *Division) HasVacancy() bool {
	return d.CurrentStaff < d.Capacity
}

// --- Stage machine helpers ---

func (s ApplicationStatus) IsTerminal() bool {
	return s == StageHired || s == StageRejected
}

// NextStage returns the stage that follows s on the happy path.
func (s ApplicationStatus) NextStage() (ApplicationStatus, bool) {
	for _, to := range stageTransitions[s] {
		if to != StageRejected {
			return to, true
		}
	}
	return "", false
}

// CanTransition reports whether moving from -> to is allowed by the stage
// graph.
func CanTransition(from, to ApplicationStatus) bool {
	for _, allowed := range stageTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// NewStageTimeline builds the initial timeline: Applied marked current with
// the given date, every later stage pending.
func NewStageTimeline(now time.Time) []StageEntry {
	return []StageEntry{
		{Name: StageApplied, State: StageCurrent, Date: &now},
		{Name: StageScreening, State: StagePending},
		{Name: StageInterview, State: StagePending},
		{Name: StageOffering, State: StagePending},
	}
}

func (a *Application) Timeline() ([]StageEntry, error) {
	if len(a.Stages) == 0 {
		return nil, nil
	}
	var entries []StageEntry
	if err := json.Unmarshal(a.Stages, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (a *Application) SetTimeline(entries []StageEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	a.Stages = datatypes.JSON(raw)
	return nil
}

// Advance moves the application to the next stage, completing the current
// timeline entry and marking the next one current.
func (a *Application) Advance(now time.Time, note string) error {
	next, ok := a.Status.NextStage()
	if !ok {
		return fmt.Errorf("status %q tidak punya tahap lanjutan", a.Status)
	}

	entries, err := a.Timeline()
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].State == StageCurrent {
			entries[i].State = StageCompleted
		}
	}
	if next == StageHired {
		entries = append(entries, StageEntry{Name: StageHired, State: StageCompleted, Date: &now, Note: note})
	} else {
		found := false
		for i := range entries {
			if entries[i].Name == next {
				entries[i].State = StageCurrent
				entries[i].Date = &now
				entries[i].Note = note
				found = true
				break
			}
		}
		if !found {
			entries = append(entries, StageEntry{Name: next, State: StageCurrent, Date: &now, Note: note})
		}
	}

	a.Status = next
	return a.SetTimeline(entries)
}

// Reject moves the application to Rejected from any non-terminal stage.
func (a *Application) Reject(now time.Time, reason string) error {
	if a.Status.IsTerminal() {
		return fmt.Errorf("lamaran dengan status %q sudah final", a.Status)
	}

	entries, err := a.Timeline()
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].State == StageCurrent {
			entries[i].State = StageCompleted
		}
	}
	entries = append(entries, StageEntry{Name: StageRejected, State: StageCompleted, Date: &now, Note: reason})

	a.Status = StageRejected
	a.RejectReason = reason
	return a.SetTimeline(entries)
}
