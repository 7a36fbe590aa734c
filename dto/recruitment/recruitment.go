package recruitment

import (
	"strings"
	"time"

	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
)

type ApplyRequest struct {
	Division string `json:"division"`
	Position string `json:"position"`
}

func (r *ApplyRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Division) == "" {
		errors["division"] = "divisi wajib dipilih"
	}
	if strings.TrimSpace(r.Position) == "" {
		errors["position"] = "posisi wajib diisi"
	}

	return errors
}

// StageUpdateRequest moves an application forward or rejects it.
type StageUpdateRequest struct {
	Action string `json:"action"` // advance | reject
	Note   string `json:"note"`
}

func (r *StageUpdateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Action != "advance" && r.Action != "reject" {
		errors["action"] = "action harus advance atau reject"
	}
	if r.Action == "reject" && strings.TrimSpace(r.Note) == "" {
		errors["note"] = "alasan penolakan wajib diisi"
	}

	return errors
}

type ApplicationResponse struct {
	ID           uint                     `json:"id"`
	ApplicantID  uint                     `json:"applicant_id"`
	Applicant    string                   `json:"applicant,omitempty"`
	Division     string                   `json:"division"`
	Position     string                   `json:"position"`
	Status       models.ApplicationStatus `json:"status"`
	Stages       []models.StageEntry      `json:"stages"`
	RejectReason string                   `json:"reject_reason,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

func NewApplicationResponse(app *models.Application) ApplicationResponse {
	if app == nil {
		return ApplicationResponse{}
	}

	stages, err := app.Timeline()
	if err != nil {
		stages = nil
	}
	if stages == nil {
		stages = []models.StageEntry{}
	}

	resp := ApplicationResponse{
		ID:           app.ID,
		ApplicantID:  app.ApplicantID,
		Division:     app.Division,
		Position:     app.Position,
		Status:       app.Status,
		Stages:       stages,
		RejectReason: app.RejectReason,
		CreatedAt:    app.CreatedAt,
		UpdatedAt:    app.UpdatedAt,
	}
	if app.Applicant != nil {
		resp.Applicant = app.Applicant.Name
	}
	return resp
}

func NewApplicationResponses(apps []models.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, NewApplicationResponse(&apps[i]))
	}
	return out
}

// DivisionResponse exposes the advisory capacity gate.
type DivisionResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Capacity     int    `json:"capacity"`
	CurrentStaff int    `json:"current_staff"`
	HasVacancy   bool   `json:"has_vacancy"`
}

func NewDivisionResponse(d *models.Division) DivisionResponse {
	return DivisionResponse{
		ID:           d.ID,
		Name:         d.Name,
		Capacity:     d.Capacity,
		CurrentStaff: d.CurrentStaff,
		HasVacancy:   d.HasVacancy(),
	}
}
