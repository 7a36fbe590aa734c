package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LetterType string
type Priority string
type LetterStatus string
type HolderRole string

const (
	LetterResmi    LetterType = "resmi"
	LetterInternal LetterType = "internal"
)

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Status surat mengikuti siklus hidup disposisi: diajukan oleh pengirim,
// diterima HR, didisposisi ke divisi tujuan (atau ditolak kembali ke
// pengirim), lalu diarsipkan. Arsip bisa dikembalikan ke Didisposisi.
const (
	StatusDiajukan    LetterStatus = "Diajukan"
	StatusDiterima    LetterStatus = "Diterima"
	StatusDidisposisi LetterStatus = "Didisposisi"
	StatusDiarsipkan  LetterStatus = "Diarsipkan"
	StatusDitolak     LetterStatus = "Ditolak"
)

const (
	HolderHR       HolderRole = "hr"
	HolderDivision HolderRole = "divisi"
)

// ReplyEvent is one entry of a letter's disposition/reply trail. The trail is
// append-only; the latest event is always the last element.
type ReplyEvent struct {
	Note           string    `json:"note,omitempty"`
	ActorName      string    `json:"actor_name"`
	ActorDivision  string    `json:"actor_division"`
	TargetDivision string    `json:"target_division"`
	CreatedAt      time.Time `json:"created_at"`
}

type Letter struct {
	gorm.Model
	NomorSurat string     `gorm:"type:varchar(100);uniqueIndex"`
	JenisSurat LetterType `gorm:"type:enum('resmi','internal');not null;index"`
	Kategori   string     `gorm:"type:varchar(100);index"`
	Prioritas  Priority   `gorm:"type:enum('high','medium','low');default:'medium';not null;index"`

	Pengirim        string `gorm:"type:varchar(150)"`
	DivisiPengirim  string `gorm:"type:varchar(150)"`
	JabatanPengirim string `gorm:"type:varchar(150)"`
	Penerima        string `gorm:"type:varchar(150);index"`
	DivisiTujuan    string `gorm:"type:varchar(150);index"`

	Perihal  string `gorm:"type:varchar(255);index"`
	IsiSurat string `gorm:"type:longtext"`

	LampiranNama   string `gorm:"type:varchar(255)"`
	LampiranUkuran int64
	LampiranPath   string `gorm:"type:varchar(255)"` // S3 object key, presigned on read

	Status LetterStatus `gorm:"type:enum('Diajukan','Diterima','Didisposisi','Diarsipkan','Ditolak');default:'Diajukan';not null;index"`
	Holder HolderRole   `gorm:"type:enum('hr','divisi');default:'hr';not null;index"`

	// Final menandai surat yang ditutup untuk balasan (mode disposisi 'final').
	Final bool `gorm:"default:false"`

	RiwayatBalasan datatypes.JSON `gorm:"type:json"`

	SenderID *uint    `gorm:"index"`
	Sender   *Account `gorm:"foreignKey:SenderID"`
}

func (Letter) TableName() string {
	return "surat"
}

// --- Lifecycle helpers ---

// IsPendingDisposition reports whether the letter sits in HR's pending queue
// waiting for a forward/reject/final decision.
func (l *Letter) IsPendingDisposition() bool {
	return l.Status == StatusDiajukan && l.Holder == HolderHR
}

// CanArchive: hanya surat berstatus Didisposisi yang boleh diarsipkan.
func (l *Letter) CanArchive() bool {
	return l.Status == StatusDidisposisi
}

// CanUnarchive: hanya arsip yang boleh dikembalikan ke daftar aktif.
func (l *Letter) CanUnarchive() bool {
	return l.Status == StatusDiarsipkan
}

// History decodes the reply trail. A nil column decodes to an empty slice.
func (l *Letter) History() ([]ReplyEvent, error) {
	if len(l.RiwayatBalasan) == 0 {
		return nil, nil
	}
	var events []ReplyEvent
	if err := json.Unmarshal(l.RiwayatBalasan, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// AppendHistory adds one event to the end of the trail. Entries are never
// removed or reordered.
func (l *Letter) AppendHistory(ev ReplyEvent) error {
	events, err := l.History()
	if err != nil {
		return err
	}
	events = append(events, ev)
	raw, err := json.Marshal(events)
	if err != nil {
		return err
	}
	l.RiwayatBalasan = datatypes.JSON(raw)
	return nil
}

// LatestEvent returns the last entry of the trail, or nil when empty.
func (l *Letter) LatestEvent() (*ReplyEvent, error) {
	events, err := l.History()
	if err != nil || len(events) == 0 {
		return nil, err
	}
	return &events[len(events)-1], nil
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

func (t LetterType) IsValid() bool {
	switch t {
	case LetterResmi, LetterInternal:
		return true
	default:
		return false
	}
}
