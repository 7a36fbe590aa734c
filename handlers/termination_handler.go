package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Internship-LDP/HRIS-LDP-sub001/config"
	terminationdto "github.com/Internship-LDP/HRIS-LDP-sub001/dto/termination"
	"github.com/Internship-LDP/HRIS-LDP-sub001/middleware"
	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
	"github.com/Internship-LDP/HRIS-LDP-sub001/services"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils/events"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errTerminationOpen = errors.New("masih ada pengajuan berjalan")

func requireTerminationManager(c *fiber.Ctx) error {
	caller, err := middleware.GetAccountFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Konteks autentikasi tidak ditemukan")
	}
	perm := services.NewPermissionService(config.DB)
	if ok, _ := perm.CanManageTermination(caller); !ok {
		return utils.Forbidden(c, "Hanya admin HR yang dapat memproses terminasi")
	}
	return nil
}

// POST /api/terminations
//
// One open request per employee. A second submission while one is in flight
// is refused; finished or rejected records don't block a new one.
func CreateTermination(c *fiber.Ctx) error {
	account, err := middleware.GetAccountFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Konteks autentikasi tidak ditemukan")
	}
	perm := services.NewPermissionService(config.DB)
	if ok, _ := perm.CanRequestTermination(account); !ok {
		return utils.Forbidden(c, "Hanya staf yang dapat mengajukan terminasi")
	}

	var req terminationdto.CreateTerminationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Body request tidak valid", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.UnprocessableEntity(c, "Validasi gagal", validationErrors)
	}

	var termination models.Termination
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var open int64
		if err := tx.Model(&models.Termination{}).
			Where("account_id = ? AND status IN ?", account.ID,
				[]models.TerminationStatus{models.TerminationDiajukan, models.TerminationDiproses}).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return errTerminationOpen
		}

		termination = models.Termination{
			RefCode:          fmt.Sprintf("TRM-%s", strings.ToUpper(uuid.NewString()[:8])),
			AccountID:        account.ID,
			Status:           models.TerminationDiajukan,
			Progress:         0,
			TanggalPengajuan: time.Now(),
			TanggalEfektif:   req.TanggalEfektif,
			Alasan:           strings.TrimSpace(req.Alasan),
			Saran:            strings.TrimSpace(req.Saran),
		}
		return tx.Create(&termination).Error
	})
	if err != nil {
		if errors.Is(err, errTerminationOpen) {
			return utils.Conflict(c, "Anda masih memiliki pengajuan yang sedang diproses", nil)
		}
		return utils.InternalServerError(c, "Gagal menyimpan pengajuan")
	}

	termination.Account = account
	events.Publish(events.Event{Kind: events.TerminationMoved, Termination: &termination})

	return utils.Created(c, "Pengajuan berhasil dikirim", terminationdto.NewTerminationResponse(&termination))
}

// GET /api/terminations/me
//
// Splits the caller's records into the one active request plus history.
func MyTerminations(c *fiber.Ctx) error {
	account, err := middleware.GetAccountFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Konteks autentikasi tidak ditemukan")
	}

	var records []models.Termination
	if err := config.DB.Where("account_id = ?", account.ID).Order("id DESC").Find(&records).Error; err != nil {
		return utils.InternalServerError(c, "Gagal memuat pengajuan")
	}

	resp := terminationdto.TerminationListResponse{
		History: []terminationdto.TerminationResponse{},
	}
	for i := range records {
		if !records[i].IsTerminal() && resp.Active == nil {
			active := terminationdto.NewTerminationResponse(&records[i])
			resp.Active = &active
			continue
		}
		resp.History = append(resp.History, terminationdto.NewTerminationResponse(&records[i]))
	}

	return utils.JSONSuccess(c, fiber.StatusOK, "Pengajuan berhasil dimuat", resp)
}

// GET /api/terminations?status=&page=&limit=
func ListTerminations(c *fiber.Ctx) error {
	if err := requireTerminationManager(c); err != nil {
		return err
	}

	page, limit, offset := parsePagination(c)

	query := config.DB.Model(&models.Termination{}).Preload("Account")
	if status := models.TerminationStatus(c.Query("status")); status != "" {
		if !status.IsValid() {
			return utils.BadRequest(c, "Status filter tidak dikenal", nil)
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menghitung pengajuan")
	}

	var records []models.Termination
	if err := query.Order("id DESC").Limit(limit).Offset(offset).Find(&records).Error; err != nil {
		return utils.InternalServerError(c, "Gagal memuat pengajuan")
	}

	meta := utils.PaginationMeta{Page: page, Limit: limit, Total: total}
	return utils.JSONPaginated(c, fiber.StatusOK, "Daftar pengajuan berhasil dimuat", terminationdto.NewTerminationResponses(records), meta)
}

// PATCH /api/terminations/:id
//
// HR moves status/progress. Selesai forces progress 100 and deactivates the
// employee's account in the same transaction.
func UpdateTermination(c *fiber.Ctx) error {
	if err := requireTerminationManager(c); err != nil {
		return err
	}

	var req terminationdto.UpdateTerminationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Body request tidak valid", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.UnprocessableEntity(c, "Validasi gagal", validationErrors)
	}

	var termination models.Termination
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(forUpdate).Preload("Account").First(&termination, "id = ?", c.Params("id")).Error; err != nil {
			return err
		}
		if termination.IsTerminal() {
			return errStageTerminal
		}

		if req.Status != nil {
			termination.Status = *req.Status
		}
		if req.Progress != nil {
			termination.Progress = *req.Progress
		}
		if termination.Status == models.TerminationSelesai {
			termination.Progress = 100
		}

		updates := map[string]interface{}{
			"status":   termination.Status,
			"progress": termination.Progress,
		}
		if err := tx.Model(&termination).Updates(updates).Error; err != nil {
			return err
		}

		if termination.Status == models.TerminationSelesai && termination.Account != nil {
			now := time.Now()
			return tx.Model(&models.Account{}).
				Where("id = ?", termination.AccountID).
				Updates(map[string]interface{}{
					"status":      models.AccountInactive,
					"inactive_at": now,
				}).Error
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return utils.NotFound(c, "Pengajuan tidak ditemukan")
		case errors.Is(err, errStageTerminal):
			return utils.Conflict(c, "Pengajuan sudah berada di status final", nil)
		default:
			return utils.InternalServerError(c, "Gagal memperbarui pengajuan")
		}
	}

	events.Publish(events.Event{Kind: events.TerminationMoved, Termination: &termination})
	if termination.Status == models.TerminationSelesai && termination.Account != nil {
		termination.Account.Status = models.AccountInactive
		events.Publish(events.Event{Kind: events.AccountStatusChanged, Account: termination.Account})
	}

	return utils.JSONSuccess(c, fiber.StatusOK, "Pengajuan berhasil diperbarui", terminationdto.NewTerminationResponse(&termination))
}
