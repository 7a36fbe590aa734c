package handlers

import (
	"github.com/Internship-LDP/HRIS-LDP-sub001/config"
	"github.com/Internship-LDP/HRIS-LDP-sub001/middleware"
	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
	"github.com/Internship-LDP/HRIS-LDP-sub001/notify"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

// GET /api/notifications/snapshot
//
// Authoritative per-channel counts. Clients seed their badge counters from
// this response and apply push deltas on top; a reconnect fetches it again
// to resync.
func NotificationSnapshot(c *fiber.Ctx) error {
	account, err := middleware.GetAccountFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Konteks autentikasi tidak ditemukan")
	}

	snapshot := map[string]int{}

	if account.IsAdminHR() {
		var pendingLetters int64
		if err := config.DB.Model(&models.Letter{}).
			Where("status = ? AND holder = ?", models.StatusDiajukan, models.HolderHR).
			Count(&pendingLetters).Error; err != nil {
			return utils.InternalServerError(c, "Gagal menghitung notifikasi surat")
		}
		snapshot[notify.ChannelLetters] = int(pendingLetters)

		var openApplications int64
		if err := config.DB.Model(&models.Application{}).
			Where("status NOT IN ?", []models.ApplicationStatus{models.StageHired, models.StageRejected}).
			Count(&openApplications).Error; err != nil {
			return utils.InternalServerError(c, "Gagal menghitung notifikasi rekrutmen")
		}
		snapshot[notify.ChannelRecruitment] = int(openApplications)

		var activeStaff int64
		if err := config.DB.Model(&models.Account{}).
			Where("role = ? AND status = ?", models.RoleStaff, models.AccountActive).
			Count(&activeStaff).Error; err != nil {
			return utils.InternalServerError(c, "Gagal menghitung notifikasi staff")
		}
		snapshot[notify.ChannelStaff] = int(activeStaff)

		var openTerminations int64
		if err := config.DB.Model(&models.Termination{}).
			Where("status IN ?", []models.TerminationStatus{models.TerminationDiajukan, models.TerminationDiproses}).
			Count(&openTerminations).Error; err != nil {
			return utils.InternalServerError(c, "Gagal menghitung notifikasi terminasi")
		}
		snapshot[notify.ChannelTermination] = int(openTerminations)
	} else {
		var incoming int64
		if err := config.DB.Model(&models.Letter{}).
			Where("divisi_tujuan = ? AND status = ?", account.Division, models.StatusDidisposisi).
			Count(&incoming).Error; err != nil {
			return utils.InternalServerError(c, "Gagal menghitung notifikasi surat")
		}
		snapshot[notify.ChannelLetters] = int(incoming)
	}

	return utils.JSONSuccess(c, fiber.StatusOK, "Snapshot notifikasi berhasil dimuat", snapshot)
}
