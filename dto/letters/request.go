package letters

import (
	"strings"

	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
	"github.com/Internship-LDP/HRIS-LDP-sub001/workflow"
)

// ComposeLetterRequest is the JSON part of the multipart compose form. One
// letter is created per target division; the attachment rides in a separate
// form field.
type ComposeLetterRequest struct {
	Perihal         string            `json:"perihal"`
	IsiSurat        string            `json:"isi_surat"`
	JenisSurat      models.LetterType `json:"jenis_surat"`
	Kategori        string            `json:"kategori"`
	Prioritas       models.Priority   `json:"prioritas"`
	Penerima        string            `json:"penerima"`
	TargetDivisions []string          `json:"target_divisions"`
}

func (r *ComposeLetterRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Perihal) == "" {
		errors["perihal"] = "perihal wajib diisi"
	}
	if strings.TrimSpace(r.IsiSurat) == "" {
		errors["isi_surat"] = "isi surat wajib diisi"
	}
	if !r.JenisSurat.IsValid() {
		errors["jenis_surat"] = "jenis_surat harus resmi atau internal"
	}
	if r.Prioritas != "" && !r.Prioritas.IsValid() {
		errors["prioritas"] = "prioritas harus high, medium, atau low"
	}

	targets := 0
	for _, d := range r.TargetDivisions {
		if strings.TrimSpace(d) != "" {
			targets++
		}
	}
	if targets == 0 {
		errors["target_divisions"] = "pilih minimal satu divisi tujuan"
	}

	return errors
}

// DispositionRequest is the batch transition submitted by the HR dialog.
type DispositionRequest struct {
	LetterIDs []uint        `json:"letter_ids"`
	Mode      workflow.Mode `json:"mode"`
	Note      string        `json:"note"`
}

func (r *DispositionRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if len(r.LetterIDs) == 0 {
		errors["letter_ids"] = "pilih minimal satu surat"
	}
	if !r.Mode.IsValid() {
		errors["mode"] = "mode harus forward, reject, atau final"
	}
	if r.Mode == workflow.ModeReject {
		if strings.TrimSpace(r.Note) == "" {
			errors["note"] = "Tambahkan catatan penolakan sebelum mengirim"
		}
		if len(r.LetterIDs) > 1 {
			errors["letter_ids"] = "penolakan hanya dapat dilakukan untuk satu surat"
		}
	}

	return errors
}

// ReplyRequest appends one entry to a letter's history trail.
type ReplyRequest struct {
	Note string `json:"note"`
}

func (r *ReplyRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Note) == "" {
		errors["note"] = "catatan balasan wajib diisi"
	}

	return errors
}
