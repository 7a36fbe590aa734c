package handlers

import (
	"github.com/Internship-LDP/HRIS-LDP-sub001/config"
	"github.com/Internship-LDP/HRIS-LDP-sub001/middleware"
	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GET /api/dashboard
//
// Per-role stat cards. HR gets the org-wide view, staff their own mailbox
// numbers, applicants their application progress.
func DashboardStats(c *fiber.Ctx) error {
	account, err := middleware.GetAccountFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Konteks autentikasi tidak ditemukan")
	}

	switch {
	case account.IsAdminHR():
		return adminDashboard(c)
	case account.IsPelamar():
		return applicantDashboard(c, account)
	default:
		return staffDashboard(c, account)
	}
}

func adminDashboard(c *fiber.Ctx) error {
	counts := map[string]int64{}

	steps := []struct {
		key   string
		query *gorm.DB
	}{
		{"surat_pending", config.DB.Model(&models.Letter{}).
			Where("status = ? AND holder = ?", models.StatusDiajukan, models.HolderHR)},
		{"surat_didisposisi", config.DB.Model(&models.Letter{}).
			Where("status = ?", models.StatusDidisposisi)},
		{"surat_diarsipkan", config.DB.Model(&models.Letter{}).
			Where("status = ?", models.StatusDiarsipkan)},
		{"staff_aktif", config.DB.Model(&models.Account{}).
			Where("role = ? AND status = ?", models.RoleStaff, models.AccountActive)},
		{"lamaran_berjalan", config.DB.Model(&models.Application{}).
			Where("status NOT IN ?", []models.ApplicationStatus{models.StageHired, models.StageRejected})},
		{"terminasi_berjalan", config.DB.Model(&models.Termination{}).
			Where("status IN ?", []models.TerminationStatus{models.TerminationDiajukan, models.TerminationDiproses})},
	}
	for _, s := range steps {
		var n int64
		if err := s.query.Count(&n).Error; err != nil {
			return utils.InternalServerError(c, "Gagal memuat statistik")
		}
		counts[s.key] = n
	}

	return utils.JSONSuccess(c, fiber.StatusOK, "Statistik berhasil dimuat", counts)
}

func staffDashboard(c *fiber.Ctx, account *models.Account) error {
	counts := map[string]int64{}

	steps := []struct {
		key   string
		query *gorm.DB
	}{
		{"surat_masuk", config.DB.Model(&models.Letter{}).
			Where("divisi_tujuan = ? AND status = ?", account.Division, models.StatusDidisposisi)},
		{"surat_keluar", config.DB.Model(&models.Letter{}).
			Where("sender_id = ?", account.ID)},
		{"surat_ditolak", config.DB.Model(&models.Letter{}).
			Where("sender_id = ? AND status = ?", account.ID, models.StatusDitolak)},
		{"arsip", config.DB.Model(&models.Letter{}).
			Where("status = ? AND (divisi_tujuan = ? OR sender_id = ?)",
				models.StatusDiarsipkan, account.Division, account.ID)},
	}
	for _, s := range steps {
		var n int64
		if err := s.query.Count(&n).Error; err != nil {
			return utils.InternalServerError(c, "Gagal memuat statistik")
		}
		counts[s.key] = n
	}

	return utils.JSONSuccess(c, fiber.StatusOK, "Statistik berhasil dimuat", counts)
}

func applicantDashboard(c *fiber.Ctx, account *models.Account) error {
	var applications []models.Application
	if err := config.DB.Where("applicant_id = ?", account.ID).Order("id DESC").Find(&applications).Error; err != nil {
		return utils.InternalServerError(c, "Gagal memuat statistik")
	}

	counts := map[string]int64{"total": int64(len(applications))}
	for i := range applications {
		switch applications[i].Status {
		case models.StageHired:
			counts["diterima"]++
		case models.StageRejected:
			counts["ditolak"]++
		default:
			counts["berjalan"]++
		}
	}

	return utils.JSONSuccess(c, fiber.StatusOK, "Statistik berhasil dimuat", counts)
}
