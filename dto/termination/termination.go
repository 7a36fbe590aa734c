package termination

import (
	"strings"
	"time"

	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
)

type CreateTerminationRequest struct {
	Alasan         string     `json:"alasan"`
	Saran          string     `json:"saran"`
	TanggalEfektif *time.Time `json:"tanggal_efektif"`
}

func (r *CreateTerminationRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Alasan) == "" {
		errors["alasan"] = "alasan pengajuan wajib diisi"
	}

	return errors
}

// UpdateTerminationRequest is the HR-side progress/status update.
type UpdateTerminationRequest struct {
	Status   *models.TerminationStatus `json:"status"`
	Progress *int                      `json:"progress"`
}

func (r *UpdateTerminationRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Status == nil && r.Progress == nil {
		errors["_"] = "tidak ada perubahan yang dikirim"
	}
	if r.Status != nil && !r.Status.IsValid() {
		errors["status"] = "status terminasi tidak dikenal"
	}
	if r.Progress != nil && (*r.Progress < 0 || *r.Progress > 100) {
		errors["progress"] = "progress harus di antara 0 dan 100"
	}

	return errors
}

type TerminationResponse struct {
	ID               uint                     `json:"id"`
	RefCode          string                   `json:"ref_code"`
	AccountID        uint                     `json:"account_id"`
	Employee         string                   `json:"employee,omitempty"`
	Status           models.TerminationStatus `json:"status"`
	Progress         int                      `json:"progress"`
	TanggalPengajuan time.Time                `json:"tanggal_pengajuan"`
	TanggalEfektif   *time.Time               `json:"tanggal_efektif,omitempty"`
	Alasan           string                   `json:"alasan,omitempty"`
	Saran            string                   `json:"saran,omitempty"`
}

func NewTerminationResponse(t *models.Termination) TerminationResponse {
	if t == nil {
		return TerminationResponse{}
	}

	resp := TerminationResponse{
		ID:               t.ID,
		RefCode:          t.RefCode,
		AccountID:        t.AccountID,
		Status:           t.Status,
		Progress:         t.Progress,
		TanggalPengajuan: t.TanggalPengajuan,
		TanggalEfektif:   t.TanggalEfektif,
		Alasan:           t.Alasan,
		Saran:            t.Saran,
	}
	if t.Account != nil {
		resp.Employee = t.Account.Name
	}
	return resp
}

func NewTerminationResponses(records []models.Termination) []TerminationResponse {
	out := make([]TerminationResponse, 0, len(records))
	for i := range records {
		out = append(out, NewTerminationResponse(&records[i]))
	}
	return out
}

// TerminationListResponse splits the active (at most one in-flight) record
// from the terminal history partition.
type TerminationListResponse struct {
	Active  *TerminationResponse  `json:"active"`
	History []TerminationResponse `json:"history"`
}
