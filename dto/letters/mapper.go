package letters

import (
	"strings"

	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
)

// ToModel builds one letter for a single target division. Compose fans this
// out over every entry of TargetDivisions.
func (r *ComposeLetterRequest) ToModel(sender *models.Account, targetDivision string) models.Letter {
	letter := models.Letter{
		JenisSurat:      r.JenisSurat,
		Kategori:        strings.TrimSpace(r.Kategori),
		Prioritas:       r.Prioritas,
		Pengirim:        sender.Name,
		DivisiPengirim:  sender.Division,
		JabatanPengirim: sender.Jabatan,
		Penerima:        strings.TrimSpace(r.Penerima),
		DivisiTujuan:    strings.TrimSpace(targetDivision),
		Perihal:         strings.TrimSpace(r.Perihal),
		IsiSurat:        r.IsiSurat,
		Status:          models.StatusDiajukan,
		Holder:          models.HolderHR,
		SenderID:        &sender.ID,
	}

	if letter.Prioritas == "" {
		letter.Prioritas = models.PriorityMedium
	}
	if letter.Kategori == "" {
		letter.Kategori = "Umum"
	}

	return letter
}

// NewLetterResponse maps a letter to its API shape. attachmentURL is the
// presigned read URL, empty when there is no attachment.
func NewLetterResponse(letter *models.Letter, attachmentURL string) LetterResponse {
	if letter == nil {
		return LetterResponse{}
	}

	history, err := letter.History()
	if err != nil {
		history = nil
	}
	if history == nil {
		history = []models.ReplyEvent{}
	}

	resp := LetterResponse{
		ID:              letter.ID,
		NomorSurat:      letter.NomorSurat,
		JenisSurat:      letter.JenisSurat,
		Kategori:        letter.Kategori,
		Prioritas:       letter.Prioritas,
		Pengirim:        letter.Pengirim,
		DivisiPengirim:  letter.DivisiPengirim,
		JabatanPengirim: letter.JabatanPengirim,
		Penerima:        letter.Penerima,
		DivisiTujuan:    letter.DivisiTujuan,
		Perihal:         letter.Perihal,
		IsiSurat:        letter.IsiSurat,
		Status:          letter.Status,
		Holder:          letter.Holder,
		Final:           letter.Final,
		CanArchive:      letter.CanArchive(),
		CanUnarchive:    letter.CanUnarchive(),
		RiwayatBalasan:  history,
		CreatedAt:       letter.CreatedAt,
		UpdatedAt:       letter.UpdatedAt,
	}

	if letter.LampiranPath != "" {
		resp.Lampiran = &AttachmentResponse{
			Name: letter.LampiranNama,
			Size: letter.LampiranUkuran,
			URL:  attachmentURL,
		}
	}

	return resp
}

// NewLetterResponses maps a slice without attachment URLs (lists don't
// presign; the detail endpoint does).
func NewLetterResponses(letters []models.Letter) []LetterResponse {
	out := make([]LetterResponse, 0, len(letters))
	for i := range letters {
		out = append(out, NewLetterResponse(&letters[i], ""))
	}
	return out
}
