package letters

import (
	"testing"

	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
	"github.com/Internship-LDP/HRIS-LDP-sub001/workflow"
)

func validCompose() ComposeLetterRequest {
	return ComposeLetterRequest{
		Perihal:         "Permohonan Cuti",
		IsiSurat:        "Mohon persetujuan cuti tahunan.",
		JenisSurat:      models.LetterInternal,
		Kategori:        "Cuti",
		Prioritas:       models.PriorityMedium,
		TargetDivisions: []string{"Finance"},
	}
}

func TestComposeValidateOK(t *testing.T) {
	req := validCompose()
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
}

func TestComposeRequiresTargetDivisions(t *testing.T) {
	req := validCompose()
	req.TargetDivisions = nil
	if errs := req.Validate(); errs["target_divisions"] == "" {
		t.Fatal("expected target_divisions error for empty selection")
	}

	req.TargetDivisions = []string{"  ", ""}
	if errs := req.Validate(); errs["target_divisions"] == "" {
		t.Fatal("blank-only divisions must not count as a selection")
	}
}

func TestComposeRequiresSubjectAndBody(t *testing.T) {
	req := validCompose()
	req.Perihal = "  "
	req.IsiSurat = ""

	errs := req.Validate()
	if errs["perihal"] == "" || errs["isi_surat"] == "" {
		t.Fatalf("missing field errors: %v", errs)
	}
}

func TestComposeToModelDefaults(t *testing.T) {
	sender := models.Account{Name: "Budi", Division: "HRD", Jabatan: "Staff HR"}
	sender.ID = 7

	req := validCompose()
	req.Prioritas = ""
	req.Kategori = " "

	letter := req.ToModel(&sender, "Finance")
	if letter.Status != models.StatusDiajukan {
		t.Fatalf("status = %q, want Diajukan", letter.Status)
	}
	if letter.Holder != models.HolderHR {
		t.Fatalf("holder = %q, want hr", letter.Holder)
	}
	if letter.DivisiTujuan != "Finance" {
		t.Fatalf("divisi tujuan = %q", letter.DivisiTujuan)
	}
	if letter.Prioritas != models.PriorityMedium {
		t.Fatalf("default prioritas = %q, want medium", letter.Prioritas)
	}
	if letter.Kategori != "Umum" {
		t.Fatalf("default kategori = %q, want Umum", letter.Kategori)
	}
	if letter.SenderID == nil || *letter.SenderID != 7 {
		t.Fatal("sender id must be recorded")
	}
}

func TestDispositionValidate(t *testing.T) {
	cases := []struct {
		name    string
		req     DispositionRequest
		wantKey string
	}{
		{"empty ids", DispositionRequest{Mode: workflow.ModeForward}, "letter_ids"},
		{"bad mode", DispositionRequest{LetterIDs: []uint{1}, Mode: "bounce"}, "mode"},
		{"reject without note", DispositionRequest{LetterIDs: []uint{1}, Mode: workflow.ModeReject}, "note"},
		{"reject batch", DispositionRequest{LetterIDs: []uint{1, 2}, Mode: workflow.ModeReject, Note: "x"}, "letter_ids"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := tc.req.Validate()
			if errs[tc.wantKey] == "" {
				t.Fatalf("expected error for %s, got %v", tc.wantKey, errs)
			}
		})
	}

	ok := DispositionRequest{LetterIDs: []uint{1, 2}, Mode: workflow.ModeForward, Note: "ok"}
	if errs := ok.Validate(); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}
