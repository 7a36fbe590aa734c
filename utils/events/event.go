package events

import (
	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
)

// Kind membedakan jenis event domain yang lewat di bus.
type Kind string

const (
	// LetterSubmitted dipublikasikan saat surat baru masuk antrian HR.
	LetterSubmitted Kind = "LetterSubmitted"

	// LetterStatusMoved dipublikasikan saat status surat berubah
	// (didisposisi, ditolak, diarsipkan, dst).
	LetterStatusMoved Kind = "LetterStatusMoved"

	// AccountStatusChanged dipublikasikan saat akun diaktifkan/dinonaktifkan.
	AccountStatusChanged Kind = "AccountStatusChanged"

	// AccountLoggedIn dipublikasikan saat login berhasil, membawa
	// last_login_at terbaru.
	AccountLoggedIn Kind = "AccountLoggedIn"

	// ApplicationMoved dipublikasikan saat tahap lamaran berubah.
	ApplicationMoved Kind = "ApplicationMoved"

	// TerminationMoved dipublikasikan saat status/progres terminasi berubah.
	TerminationMoved Kind = "TerminationMoved"
)

// Event adalah payload gabungan untuk semua jenis event. Hanya field yang
// relevan dengan Kind yang terisi.
type Event struct {
	Kind Kind

	Letter    *models.Letter
	OldStatus models.LetterStatus // hanya untuk LetterStatusMoved

	Account     *models.Account
	Application *models.Application
	Termination *models.Termination
}

// Bus adalah channel untuk menangani event domain. Channel ini di-buffer
// untuk mencegah blocking pada handler API saat mempublikasikan event.
var Bus = make(chan Event, 100)

// Publish mengirim event ke bus tanpa memblokir handler ketika consumer
// tertinggal; event yang jatuh saat buffer penuh akan tersinkron ulang lewat
// snapshot berikutnya.
func Publish(e Event) {
	select {
	case Bus <- e:
	default:
	}
}
