package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
)

var hrAdmin = models.Account{
	Name:     "Rina",
	Division: "HRD",
	Role:     models.RoleAdmin,
}

func pendingLetter() *models.Letter {
	return &models.Letter{
		NomorSurat:     "001/CUTI/VIII/2026",
		Status:         models.StatusDiajukan,
		Holder:         models.HolderHR,
		DivisiPengirim: "Marketing",
		DivisiTujuan:   "Finance",
	}
}

func TestForwardLetter(t *testing.T) {
	letter := pendingLetter()
	now := time.Now()

	if err := ForwardLetter(letter, &hrAdmin, "ok", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if letter.Status != models.StatusDidisposisi {
		t.Fatalf("status = %q, want Didisposisi", letter.Status)
	}
	if letter.Holder != models.HolderDivision {
		t.Fatalf("holder = %q, want divisi", letter.Holder)
	}

	last, err := letter.LatestEvent()
	if err != nil || last == nil {
		t.Fatalf("history entry missing: %v", err)
	}
	if last.TargetDivision != "Finance" || last.ActorName != "Rina" || last.Note != "ok" {
		t.Fatalf("unexpected history entry: %+v", last)
	}
}

func TestForwardRefusesNonPending(t *testing.T) {
	letter := pendingLetter()
	letter.Status = models.StatusDidisposisi
	letter.Holder = models.HolderDivision

	err := ForwardLetter(letter, &hrAdmin, "", time.Now())
	if !errors.Is(err, ErrNotPending) {
		t.Fatalf("err = %v, want ErrNotPending", err)
	}
}

func TestRejectReturnsToSender(t *testing.T) {
	letter := pendingLetter()

	if err := RejectLetter(letter, &hrAdmin, "dokumen tidak lengkap", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if letter.Status != models.StatusDitolak {
		t.Fatalf("status = %q, want Ditolak", letter.Status)
	}

	last, _ := letter.LatestEvent()
	if last.TargetDivision != "Marketing" {
		t.Fatalf("reject must route back to sender division, got %q", last.TargetDivision)
	}
}

func TestFinalizeClosesReplies(t *testing.T) {
	letter := pendingLetter()

	if err := FinalizeLetter(letter, &hrAdmin, "", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !letter.Final || letter.Status != models.StatusDidisposisi {
		t.Fatalf("finalize: final=%v status=%q", letter.Final, letter.Status)
	}

	recipient := models.Account{Name: "Andi", Division: "Finance", Role: models.RoleStaff}
	err := ReplyLetter(letter, &recipient, "balasan", time.Now())
	if !errors.Is(err, ErrLetterFinalized) {
		t.Fatalf("err = %v, want ErrLetterFinalized", err)
	}
}

func TestArchiveGating(t *testing.T) {
	letter := pendingLetter()

	// Diajukan: neither action may fire.
	if err := ArchiveLetter(letter); !errors.Is(err, ErrNotDisposisi) {
		t.Fatalf("archive on Diajukan: err = %v", err)
	}
	if err := UnarchiveLetter(letter); !errors.Is(err, ErrNotArchived) {
		t.Fatalf("unarchive on Diajukan: err = %v", err)
	}

	letter.Status = models.StatusDidisposisi
	if err := ArchiveLetter(letter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if letter.Status != models.StatusDiarsipkan {
		t.Fatalf("status = %q, want Diarsipkan", letter.Status)
	}

	if err := UnarchiveLetter(letter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if letter.Status != models.StatusDidisposisi {
		t.Fatalf("unarchive must restore Didisposisi, got %q", letter.Status)
	}
}

func TestReplyAppendsToTail(t *testing.T) {
	letter := pendingLetter()
	if err := ForwardLetter(letter, &hrAdmin, "diteruskan", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recipient := models.Account{Name: "Andi", Division: "Finance", Role: models.RoleStaff}
	if err := ReplyLetter(letter, &recipient, "sudah diterima", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	history, err := letter.History()
	if err != nil {
		t.Fatalf("history decode: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if history[1].Note != "sudah diterima" {
		t.Fatalf("latest event must be the reply, got %+v", history[1])
	}
}

func TestReplyRefusedForOtherDivision(t *testing.T) {
	letter := pendingLetter()
	if err := ForwardLetter(letter, &hrAdmin, "", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outsider := models.Account{Name: "Cici", Division: "Marketing", Role: models.RoleStaff}
	if err := ReplyLetter(letter, &outsider, "x", time.Now()); !errors.Is(err, ErrNotLetterHolder) {
		t.Fatalf("err = %v, want ErrNotLetterHolder", err)
	}
}
