// Package workflow drives the disposition of pending letters: selecting one
// or many, freezing the selection into a dialog, and submitting a
// forward/reject/final decision with an optional note.
//
// A Controller models the UI-side sub-machine (Idle -> DialogOpen ->
// Submitting), not the letter's own status; the server owns that. It is
// designed for a single event loop and is not safe for concurrent use.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
)

type Mode string

const (
	ModeForward Mode = "forward"
	ModeReject  Mode = "reject"
	ModeFinal   Mode = "final"
)

// Phase is the dialog sub-machine state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDialogOpen
	PhaseSubmitting
)

// HeaderState is the tri-state of the select-all checkbox.
type HeaderState int

const (
	HeaderUnchecked HeaderState = iota
	HeaderIndeterminate
	HeaderChecked
)

var (
	ErrNoTargets    = errors.New("pilih minimal satu surat untuk didisposisi")
	ErrNoteRequired = errors.New("Tambahkan catatan penolakan sebelum mengirim")
	ErrRejectSingle = errors.New("penolakan hanya dapat dilakukan untuk satu surat")
	ErrDialogClosed = errors.New("dialog disposisi belum dibuka")
	ErrBusy         = errors.New("pengiriman sebelumnya masih diproses")
	ErrInvalidMode  = errors.New("mode disposisi tidak dikenal")
)

// Request is the transition request shipped to the backend.
type Request struct {
	LetterIDs []uint `json:"letter_ids"`
	Mode      Mode   `json:"mode"`
	Note      string `json:"note,omitempty"`
}

// Submitter issues the transition request. Implemented by the HTTP API
// client; injected so the controller is testable without a network.
type Submitter interface {
	SubmitDisposition(ctx context.Context, req Request) error
}

// Controller tracks checkbox selection over the pending-disposition
// collection and the disposition dialog lifecycle.
type Controller struct {
	submitter Submitter

	pending  []models.Letter
	selected map[uint]bool

	phase   Phase
	targets []uint
	note    string
}

func NewController(submitter Submitter, pending []models.Letter) *Controller {
	return &Controller{
		submitter: submitter,
		pending:   pending,
		selected:  make(map[uint]bool),
		phase:     PhaseIdle,
	}
}

func (wc *Controller) Phase() Phase { return wc.phase }

// Pending returns the current pending-disposition collection.
func (wc *Controller) Pending() []models.Letter { return wc.pending }

// Refresh replaces the pending collection (after a successful submit or an
// external reload) and prunes every selected id that no longer exists, so
// selection never references a stale letter.
func (wc *Controller) Refresh(pending []models.Letter) {
	wc.pending = pending

	alive := make(map[uint]bool, len(pending))
	for _, l := range pending {
		alive[l.ID] = true
	}
	for id := range wc.selected {
		if !alive[id] {
			delete(wc.selected, id)
		}
	}
}

// --- Selection bookkeeping ---

// ToggleSelect flips one letter's checkbox. Ids outside the pending
// collection are ignored.
func (wc *Controller) ToggleSelect(id uint) {
	if !wc.inPending(id) {
		return
	}
	if wc.selected[id] {
		delete(wc.selected, id)
	} else {
		wc.selected[id] = true
	}
}

func (wc *Controller) SelectAll() {
	for _, l := range wc.pending {
		wc.selected[l.ID] = true
	}
}

func (wc *Controller) ClearSelection() {
	wc.selected = make(map[uint]bool)
}

// Selected returns the selected ids in ascending order.
func (wc *Controller) Selected() []uint {
	ids := make([]uint, 0, len(wc.selected))
	for id := range wc.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (wc *Controller) IsSelected(id uint) bool { return wc.selected[id] }

// Header reports the tri-state of the select-all checkbox: checked when the
// whole non-empty pending set is selected, indeterminate for a partial
// selection, unchecked otherwise.
func (wc *Controller) Header() HeaderState {
	n := len(wc.selected)
	switch {
	case n == 0:
		return HeaderUnchecked
	case n == len(wc.pending):
		return HeaderChecked
	default:
		return HeaderIndeterminate
	}
}

// --- Dialog lifecycle ---

// OpenDialog freezes the target set into the dialog and clears the note.
// With no explicit targets the current selection is used. An empty target
// set is refused: the dialog must never represent zero letters.
func (wc *Controller) OpenDialog(targets ...uint) error {
	if wc.phase == PhaseSubmitting {
		return ErrBusy
	}

	if len(targets) == 0 {
		targets = wc.Selected()
	}
	if len(targets) == 0 {
		return ErrNoTargets
	}

	wc.targets = append([]uint(nil), targets...)
	wc.note = ""
	wc.phase = PhaseDialogOpen
	return nil
}

// Targets returns the letters frozen into the open dialog.
func (wc *Controller) Targets() []uint {
	return append([]uint(nil), wc.targets...)
}

func (wc *Controller) SetNote(note string) { wc.note = note }
func (wc *Controller) Note() string        { return wc.note }

// CloseDialog abandons the dialog, clearing its frozen targets and note. The
// underlying pending collection and checkbox selection are untouched.
func (wc *Controller) CloseDialog() {
	if wc.phase == PhaseSubmitting {
		return
	}
	wc.targets = nil
	wc.note = ""
	wc.phase = PhaseIdle
}

// Submit validates the transition and sends it. On success the dialog,
// selection, and note are cleared and a mode-specific Indonesian success
// message is returned. On failure the dialog stays open with its note and
// targets intact so the user can retry without re-entering data.
func (wc *Controller) Submit(ctx context.Context, mode Mode) (string, error) {
	switch wc.phase {
	case PhaseSubmitting:
		return "", ErrBusy
	case PhaseIdle:
		return "", ErrDialogClosed
	}

	if len(wc.targets) == 0 {
		return "", ErrNoTargets
	}

	switch mode {
	case ModeForward, ModeFinal:
	case ModeReject:
		if strings.TrimSpace(wc.note) == "" {
			return "", ErrNoteRequired
		}
		if len(wc.targets) != 1 {
			return "", ErrRejectSingle
		}
	default:
		return "", ErrInvalidMode
	}

	req := Request{
		LetterIDs: append([]uint(nil), wc.targets...),
		Mode:      mode,
		Note:      strings.TrimSpace(wc.note),
	}

	wc.phase = PhaseSubmitting
	if err := wc.submitter.SubmitDisposition(ctx, req); err != nil {
		wc.phase = PhaseDialogOpen
		return "", err
	}

	n := len(wc.targets)
	wc.targets = nil
	wc.note = ""
	wc.ClearSelection()
	wc.phase = PhaseIdle

	return successMessage(mode, n), nil
}

func successMessage(mode Mode, n int) string {
	switch mode {
	case ModeReject:
		return fmt.Sprintf("%d surat ditolak dan dikembalikan ke pengirim.", n)
	case ModeFinal:
		return fmt.Sprintf("%d surat difinalisasi dan ditutup untuk balasan.", n)
	default:
		return fmt.Sprintf("%d surat didisposisi ke divisi tujuan.", n)
	}
}

func (wc *Controller) inPending(id uint) bool {
	for _, l := range wc.pending {
		if l.ID == id {
			return true
		}
	}
	return false
}

func (m Mode) IsValid() bool {
	switch m {
	case ModeForward, ModeReject, ModeFinal:
		return true
	default:
		return false
	}
}
