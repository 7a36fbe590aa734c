package models

import (
	"time"

	"gorm.io/gorm"
)

type TerminationStatus string

const (
	TerminationDiajukan TerminationStatus = "Diajukan"
	TerminationDiproses TerminationStatus = "Diproses"
	TerminationSelesai  TerminationStatus = "Selesai"
	TerminationDitolak  TerminationStatus = "Ditolak"
)

// Termination tracks one resignation/termination request. An employee can
// have at most one non-terminal record at a time; terminal records form the
// history partition.
type Termination struct {
	gorm.Model
	RefCode   string   `gorm:"type:varchar(50);uniqueIndex;not null"`
	AccountID uint     `gorm:"index;not null"`
	Account   *Account `gorm:"foreignKey:AccountID"`

	Status   TerminationStatus `gorm:"type:enum('Diajukan','Diproses','Selesai','Ditolak');default:'Diajukan';not null;index"`
	Progress int               `gorm:"not null;default:0"` // 0-100

	TanggalPengajuan time.Time
	TanggalEfektif   *time.Time
	Alasan           string `gorm:"type:text"`
	Saran            string `gorm:"type:text"`
}

func (Termination) TableName() string {
	return "terminations"
}

func (t *Termination) IsTerminal() bool {
	return t.Status == TerminationSelesai || t.Status == TerminationDitolak
}

func (s TerminationStatus) IsValid() bool {
	switch s {
	case TerminationDiajukan, TerminationDiproses, TerminationSelesai, TerminationDitolak:
		return true
	default:
		return false
	}
}
