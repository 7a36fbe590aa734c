package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
)

// Balasan divisi selalu kembali ke meja HR.
const replyTargetHR = "HR"

var (
	ErrNotPending      = errors.New("surat tidak lagi menunggu disposisi")
	ErrNotDisposisi    = errors.New("hanya surat berstatus Didisposisi yang dapat diarsipkan")
	ErrNotArchived     = errors.New("hanya arsip yang dapat dikembalikan ke daftar aktif")
	ErrLetterFinalized = errors.New("surat sudah difinalisasi dan ditutup untuk balasan")
	ErrNotLetterHolder = errors.New("surat tidak berada di divisi Anda")
)

// Letter transitions are pure mutations over an in-memory letter; handlers
// run them inside a transaction after re-reading the row, so the
// precondition is checked against the current status, not the one the
// client saw when it enabled the button.

// ForwardLetter moves a pending letter to its target division.
func ForwardLetter(letter *models.Letter, actor *models.Account, note string, now time.Time) error {
	if !letter.IsPendingDisposition() {
		return fmt.Errorf("%w (status saat ini: %s)", ErrNotPending, letter.Status)
	}

	letter.Status = models.StatusDidisposisi
	letter.Holder = models.HolderDivision
	return letter.AppendHistory(models.ReplyEvent{
		Note:           note,
		ActorName:      actor.Name,
		ActorDivision:  actor.Division,
		TargetDivision: letter.DivisiTujuan,
		CreatedAt:      now,
	})
}

// RejectLetter returns a pending letter to its sender.
func RejectLetter(letter *models.Letter, actor *models.Account, note string, now time.Time) error {
	if !letter.IsPendingDisposition() {
		return fmt.Errorf("%w (status saat ini: %s)", ErrNotPending, letter.Status)
	}

	letter.Status = models.StatusDitolak
	letter.Holder = models.HolderHR
	return letter.AppendHistory(models.ReplyEvent{
		Note:           note,
		ActorName:      actor.Name,
		ActorDivision:  actor.Division,
		TargetDivision: letter.DivisiPengirim,
		CreatedAt:      now,
	})
}

// FinalizeLetter forwards a pending letter and closes it to further replies.
func FinalizeLetter(letter *models.Letter, actor *models.Account, note string, now time.Time) error {
	if err := ForwardLetter(letter, actor, note, now); err != nil {
		return err
	}
	letter.Final = true
	return nil
}

// ArchiveLetter moves a disposed letter out of the active working list.
func ArchiveLetter(letter *models.Letter) error {
	if !letter.CanArchive() {
		return fmt.Errorf("%w (status saat ini: %s)", ErrNotDisposisi, letter.Status)
	}
	letter.Status = models.StatusDiarsipkan
	return nil
}

// UnarchiveLetter returns an archived letter to its prior active status.
func UnarchiveLetter(letter *models.Letter) error {
	if !letter.CanUnarchive() {
		return fmt.Errorf("%w (status saat ini: %s)", ErrNotArchived, letter.Status)
	}
	letter.Status = models.StatusDidisposisi
	return nil
}

// ReplyLetter appends a recipient reply to the trail. Finalized letters
// accept no further replies.
func ReplyLetter(letter *models.Letter, actor *models.Account, note string, now time.Time) error {
	if letter.Final {
		return ErrLetterFinalized
	}
	if letter.Status != models.StatusDidisposisi {
		return fmt.Errorf("surat berstatus %s tidak dapat dibalas", letter.Status)
	}
	if letter.DivisiTujuan != actor.Division && !actor.IsAdminHR() {
		return ErrNotLetterHolder
	}

	return letter.AppendHistory(models.ReplyEvent{
		Note:           note,
		ActorName:      actor.Name,
		ActorDivision:  actor.Division,
		TargetDivision: replyTargetHR,
		CreatedAt:      now,
	})
}
