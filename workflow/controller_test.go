package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
	"gorm.io/gorm"
)

type fakeSubmitter struct {
	requests []Request
	err      error
}

func (f *fakeSubmitter) SubmitDisposition(_ context.Context, req Request) error {
	if f.err != nil {
		return f.err
	}
	f.requests = append(f.requests, req)
	return nil
}

func pendingLetters(ids ...uint) []models.Letter {
	out := make([]models.Letter, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Letter{
			Model:  gorm.Model{ID: id},
			Status: models.StatusDiajukan,
			Holder: models.HolderHR,
		})
	}
	return out
}

func TestOpenDialogRefusesEmptyTargets(t *testing.T) {
	wc := NewController(&fakeSubmitter{}, pendingLetters(1, 2))

	if err := wc.OpenDialog(); !errors.Is(err, ErrNoTargets) {
		t.Fatalf("err = %v, want ErrNoTargets", err)
	}
	if wc.Phase() != PhaseIdle {
		t.Fatal("dialog must not open with zero targets")
	}
}

func TestOpenDialogFromSelection(t *testing.T) {
	wc := NewController(&fakeSubmitter{}, pendingLetters(1, 2, 3))
	wc.ToggleSelect(1)
	wc.ToggleSelect(3)
	wc.SetNote("sisa dari dialog sebelumnya")

	if err := wc.OpenDialog(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wc.Phase() != PhaseDialogOpen {
		t.Fatalf("phase = %v, want DialogOpen", wc.Phase())
	}
	if got := wc.Targets(); len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("targets = %v, want [1 3]", got)
	}
	if wc.Note() != "" {
		t.Fatal("opening the dialog must clear the note field")
	}
}

func TestForwardSuccessClearsState(t *testing.T) {
	sub := &fakeSubmitter{}
	wc := NewController(sub, pendingLetters(1, 2))
	wc.SelectAll()
	if err := wc.OpenDialog(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wc.SetNote("ok")

	msg, err := wc.Submit(context.Background(), ModeForward)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "2 surat didisposisi ke divisi tujuan." {
		t.Fatalf("message = %q", msg)
	}
	if len(sub.requests) != 1 {
		t.Fatalf("got %d requests, want 1", len(sub.requests))
	}
	req := sub.requests[0]
	if req.Mode != ModeForward || len(req.LetterIDs) != 2 || req.Note != "ok" {
		t.Fatalf("unexpected request: %+v", req)
	}

	if wc.Phase() != PhaseIdle {
		t.Fatalf("phase = %v, want Idle", wc.Phase())
	}
	if len(wc.Targets()) != 0 || len(wc.Selected()) != 0 || wc.Note() != "" {
		t.Fatal("success must clear targets, selection, and note")
	}
}

func TestRejectRequiresNote(t *testing.T) {
	sub := &fakeSubmitter{}
	wc := NewController(sub, pendingLetters(1))
	wc.ToggleSelect(1)
	if err := wc.OpenDialog(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wc.SetNote("   ")

	_, err := wc.Submit(context.Background(), ModeReject)
	if !errors.Is(err, ErrNoteRequired) {
		t.Fatalf("err = %v, want ErrNoteRequired", err)
	}
	if len(sub.requests) != 0 {
		t.Fatal("request must not be issued when the note is blank")
	}
	if wc.Phase() != PhaseDialogOpen {
		t.Fatal("dialog must stay open after a refused reject")
	}
	if got := wc.Targets(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("targets must be preserved, got %v", got)
	}
}

func TestRejectSingleTargetOnly(t *testing.T) {
	wc := NewController(&fakeSubmitter{}, pendingLetters(1, 2))
	wc.SelectAll()
	if err := wc.OpenDialog(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wc.SetNote("dokumen tidak lengkap")

	_, err := wc.Submit(context.Background(), ModeReject)
	if !errors.Is(err, ErrRejectSingle) {
		t.Fatalf("err = %v, want ErrRejectSingle", err)
	}
}

func TestRejectSuccessMessage(t *testing.T) {
	sub := &fakeSubmitter{}
	wc := NewController(sub, pendingLetters(7))
	wc.ToggleSelect(7)
	if err := wc.OpenDialog(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wc.SetNote("dokumen tidak lengkap")

	msg, err := wc.Submit(context.Background(), ModeReject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "1 surat ditolak dan dikembalikan ke pengirim." {
		t.Fatalf("message = %q", msg)
	}
}

func TestSubmitFailurePreservesDialog(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("network down")}
	wc := NewController(sub, pendingLetters(1, 2))
	wc.SelectAll()
	if err := wc.OpenDialog(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wc.SetNote("catatan penting")

	_, err := wc.Submit(context.Background(), ModeForward)
	if err == nil {
		t.Fatal("expected submit error")
	}
	if wc.Phase() != PhaseDialogOpen {
		t.Fatalf("phase = %v, want DialogOpen for retry", wc.Phase())
	}
	if wc.Note() != "catatan penting" || len(wc.Targets()) != 2 {
		t.Fatal("failure must preserve note and targets for retry")
	}

	// Retry succeeds once the backend recovers.
	sub.err = nil
	if _, err := wc.Submit(context.Background(), ModeForward); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
}

func TestSubmitWithoutDialog(t *testing.T) {
	wc := NewController(&fakeSubmitter{}, pendingLetters(1))

	if _, err := wc.Submit(context.Background(), ModeForward); !errors.Is(err, ErrDialogClosed) {
		t.Fatalf("err = %v, want ErrDialogClosed", err)
	}
}

func TestRefreshPrunesStaleSelection(t *testing.T) {
	wc := NewController(&fakeSubmitter{}, pendingLetters(1, 2, 3))
	wc.SelectAll()

	// Letter 2 left the pending set via a concurrent update.
	wc.Refresh(pendingLetters(1, 3))

	got := wc.Selected()
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("selection = %v, want [1 3]", got)
	}

	wc.Refresh(nil)
	if len(wc.Selected()) != 0 {
		t.Fatal("empty refresh must clear all selection")
	}
}

func TestToggleSelectIgnoresUnknownID(t *testing.T) {
	wc := NewController(&fakeSubmitter{}, pendingLetters(1))
	wc.ToggleSelect(99)

	if len(wc.Selected()) != 0 {
		t.Fatal("ids outside the pending collection must be ignored")
	}
}

func TestHeaderTriState(t *testing.T) {
	wc := NewController(&fakeSubmitter{}, pendingLetters(1, 2, 3))

	if wc.Header() != HeaderUnchecked {
		t.Fatal("empty selection must be unchecked")
	}

	wc.ToggleSelect(1)
	if wc.Header() != HeaderIndeterminate {
		t.Fatal("partial selection must be indeterminate")
	}

	wc.SelectAll()
	if wc.Header() != HeaderChecked {
		t.Fatal("full selection must be checked")
	}

	wc.ClearSelection()
	if wc.Header() != HeaderUnchecked {
		t.Fatal("cleared selection must be unchecked")
	}
}

func TestCloseDialogKeepsPendingAndSelection(t *testing.T) {
	wc := NewController(&fakeSubmitter{}, pendingLetters(1, 2))
	wc.ToggleSelect(1)
	if err := wc.OpenDialog(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wc.SetNote("draft catatan")

	wc.CloseDialog()
	if wc.Phase() != PhaseIdle {
		t.Fatalf("phase = %v, want Idle", wc.Phase())
	}
	if len(wc.Targets()) != 0 || wc.Note() != "" {
		t.Fatal("closing must clear frozen targets and note")
	}
	if len(wc.Pending()) != 2 || len(wc.Selected()) != 1 {
		t.Fatal("closing must not touch the pending collection or selection")
	}
}
