package letters

import (
	"time"

	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
)

type AttachmentResponse struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

type LetterResponse struct {
	ID         uint              `json:"id"`
	NomorSurat string            `json:"nomor_surat"`
	JenisSurat models.LetterType `json:"jenis_surat"`
	Kategori   string            `json:"kategori"`
	Prioritas  models.Priority   `json:"prioritas"`

	Pengirim        string `json:"pengirim"`
	DivisiPengirim  string `json:"divisi_pengirim,omitempty"`
	JabatanPengirim string `json:"jabatan_pengirim,omitempty"`
	Penerima        string `json:"penerima,omitempty"`
	DivisiTujuan    string `json:"divisi_tujuan,omitempty"`

	Perihal  string `json:"perihal"`
	IsiSurat string `json:"isi_surat"`

	Lampiran *AttachmentResponse `json:"lampiran,omitempty"`

	Status models.LetterStatus `json:"status"`
	Holder models.HolderRole   `json:"holder"`
	Final  bool                `json:"final"`

	// Status-gated action flags so list rows can disable buttons instead of
	// hiding them.
	CanArchive   bool `json:"can_archive"`
	CanUnarchive bool `json:"can_unarchive"`

	RiwayatBalasan []models.ReplyEvent `json:"riwayat_balasan"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PriorityStatsResponse struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}
