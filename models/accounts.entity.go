package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleSuperAdmin Role = "Super Admin"
	RoleAdmin      Role = "Admin"
	RoleStaff      Role = "Staff"
	RolePelamar    Role = "Pelamar"
)

type AccountStatus string

const (
	AccountActive   AccountStatus = "Active"
	AccountInactive AccountStatus = "Inactive"
)

type Account struct {
	gorm.Model
	Name         string        `gorm:"type:varchar(150);not null"`
	Email        string        `gorm:"type:varchar(191);uniqueIndex;not null"`
	PasswordHash string        `gorm:"type:varchar(255);not null"`
	Role         Role          `gorm:"type:enum('Super Admin','Admin','Staff','Pelamar');not null;index"`
	Status       AccountStatus `gorm:"type:enum('Active','Inactive');default:'Active';not null;index"`
	Division     string        `gorm:"type:varchar(150);index"`
	Jabatan      string        `gorm:"type:varchar(150)"`
	EmployeeCode string        `gorm:"type:varchar(50);uniqueIndex"`
	LastLoginAt  *time.Time
	InactiveAt   *time.Time
}

func (Account) TableName() string {
	return "accounts"
}

// --- Helper Methods ---

func (a *Account) IsActive() bool {
	return a.Status == AccountActive
}

// IsAdminHR covers both admin flavours that sit on the HR side of the
// disposition workflow.
func (a *Account) IsAdminHR() bool {
	return a.Role == RoleSuperAdmin || a.Role == RoleAdmin
}

func (a *Account) IsStaff() bool   { return a.Role == RoleStaff }
func (a *Account) IsPelamar() bool { return a.Role == RolePelamar }

func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleStaff, RolePelamar:
		return true
	default:
		return false
	}
}
