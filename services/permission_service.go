package services

import (
	"errors"

	"github.com/Internship-LDP/HRIS-LDP-sub001/models"

	"gorm.io/gorm"
)

var (
	ErrUnauthorized = errors.New("unauthorized: account not authenticated")
	ErrForbidden    = errors.New("forbidden: insufficient permissions")
	ErrNotFound     = errors.New("resource not found")
)

// PermissionService holds the capability set per role. Pelamar only touches
// recruitment; Staff composes letters and termination requests for itself;
// Admin runs the HR side; Super Admin additionally manages accounts.
type PermissionService struct {
	db *gorm.DB
}

func NewPermissionService(db *gorm.DB) *PermissionService {
	return &PermissionService{db: db}
}

// CanComposeLetter - siapa yang boleh membuat surat.
func (ps *PermissionService) CanComposeLetter(account *models.Account) (bool, error) {
	if account == nil {
		return false, ErrUnauthorized
	}
	switch account.Role {
	case models.RoleStaff, models.RoleAdmin, models.RoleSuperAdmin:
		return true, nil
	default:
		return false, nil
	}
}

// CanDisposition - hanya sisi HR yang memutuskan disposisi.
func (ps *PermissionService) CanDisposition(account *models.Account) (bool, error) {
	if account == nil {
		return false, ErrUnauthorized
	}
	return account.IsAdminHR(), nil
}

// CanViewLetter - pengirim, HR, atau anggota divisi tujuan.
func (ps *PermissionService) CanViewLetter(account *models.Account, letter *models.Letter) (bool, error) {
	if account == nil {
		return false, ErrUnauthorized
	}
	if letter == nil {
		return false, ErrNotFound
	}

	if account.IsAdminHR() {
		return true, nil
	}
	if letter.SenderID != nil && *letter.SenderID == account.ID {
		return true, nil
	}
	if letter.DivisiTujuan != "" && letter.DivisiTujuan == account.Division {
		return true, nil
	}
	return false, nil
}

// CanManageAccounts - kelola akun (buat, edit, toggle, reset password).
func (ps *PermissionService) CanManageAccounts(account *models.Account) (bool, error) {
	if account == nil {
		return false, ErrUnauthorized
	}
	return account.Role == models.RoleSuperAdmin, nil
}

// CanManageRecruitment - sisi HR memproses lamaran.
func (ps *PermissionService) CanManageRecruitment(account *models.Account) (bool, error) {
	if account == nil {
		return false, ErrUnauthorized
	}
	return account.IsAdminHR(), nil
}

// CanApply - hanya pelamar yang melamar.
func (ps *PermissionService) CanApply(account *models.Account) (bool, error) {
	if account == nil {
		return false, ErrUnauthorized
	}
	return account.Role == models.RolePelamar, nil
}

// CanRequestTermination - staf mengajukan untuk dirinya sendiri.
func (ps *PermissionService) CanRequestTermination(account *models.Account) (bool, error) {
	if account == nil {
		return false, ErrUnauthorized
	}
	return account.Role == models.RoleStaff, nil
}

// CanManageTermination - sisi HR memproses pengajuan terminasi.
func (ps *PermissionService) CanManageTermination(account *models.Account) (bool, error) {
	if account == nil {
		return false, ErrUnauthorized
	}
	return account.IsAdminHR(), nil
}
