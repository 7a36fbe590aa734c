package handlers

import (
	"errors"
	"time"

	"github.com/Internship-LDP/HRIS-LDP-sub001/config"
	recruitmentdto "github.com/Internship-LDP/HRIS-LDP-sub001/dto/recruitment"
	"github.com/Internship-LDP/HRIS-LDP-sub001/middleware"
	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
	"github.com/Internship-LDP/HRIS-LDP-sub001/services"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils/events"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GET /api/recruitment/divisions
func ListDivisions(c *fiber.Ctx) error {
	var divisions []models.Division
	if err := config.DB.Order("name ASC").Find(&divisions).Error; err != nil {
		return utils.InternalServerError(c, "Gagal memuat daftar divisi")
	}

	out := make([]recruitmentdto.DivisionResponse, 0, len(divisions))
	for i := range divisions {
		out = append(out, recruitmentdto.NewDivisionResponse(&divisions[i]))
	}
	return utils.JSONSuccess(c, fiber.StatusOK, "Daftar divisi berhasil dimuat", out)
}

// POST /api/recruitment/applications
//
// Capacity is advisory but enforced at apply time: a full division refuses
// new applications until headcount drops.
func ApplyApplication(c *fiber.Ctx) error {
	applicant, err := middleware.GetAccountFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Konteks autentikasi tidak ditemukan")
	}
	perm := services.NewPermissionService(config.DB)
	if ok, _ := perm.CanApply(applicant); !ok {
		return utils.Forbidden(c, "Hanya pelamar yang dapat mengajukan lamaran")
	}

	var req recruitmentdto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Body request tidak valid", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.UnprocessableEntity(c, "Validasi gagal", validationErrors)
	}

	var application models.Application
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var division models.Division
		if err := tx.Clauses(forUpdate).Where("name = ?", req.Division).First(&division).Error; err != nil {
			return err
		}
		if !division.HasVacancy() {
			return errDivisionFull
		}

		var open int64
		if err := tx.Model(&models.Application{}).
			Where("applicant_id = ? AND status NOT IN ?", applicant.ID,
				[]models.ApplicationStatus{models.StageHired, models.StageRejected}).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return errApplicationOpen
		}

		application = models.Application{
			ApplicantID: applicant.ID,
			Division:    division.Name,
			Position:    req.Position,
			Status:      models.StageApplied,
		}
		if err := application.SetTimeline(models.NewStageTimeline(time.Now())); err != nil {
			return err
		}
		return tx.Create(&application).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return utils.NotFound(c, "Divisi tidak ditemukan")
		case errors.Is(err, errDivisionFull):
			return utils.Conflict(c, "Divisi yang dipilih sudah penuh", nil)
		case errors.Is(err, errApplicationOpen):
			return utils.Conflict(c, "Anda masih memiliki lamaran yang sedang berjalan", nil)
		default:
			return utils.InternalServerError(c, "Gagal menyimpan lamaran")
		}
	}

	application.Applicant = applicant
	events.Publish(events.Event{Kind: events.ApplicationMoved, Application: &application})

	return utils.Created(c, "Lamaran berhasil diajukan", recruitmentdto.NewApplicationResponse(&application))
}

// GET /api/recruitment/applications?status=&page=&limit=
//
// HR sees everything; an applicant only their own rows.
func ListApplications(c *fiber.Ctx) error {
	account, err := middleware.GetAccountFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Konteks autentikasi tidak ditemukan")
	}

	page, limit, offset := parsePagination(c)

	query := config.DB.Model(&models.Application{}).Preload("Applicant")
	if !account.IsAdminHR() {
		query = query.Where("applicant_id = ?", account.ID)
	}
	if status := models.ApplicationStatus(c.Query("status")); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menghitung lamaran")
	}

	var applications []models.Application
	if err := query.Order("id DESC").Limit(limit).Offset(offset).Find(&applications).Error; err != nil {
		return utils.InternalServerError(c, "Gagal memuat lamaran")
	}

	meta := utils.PaginationMeta{Page: page, Limit: limit, Total: total}
	return utils.JSONPaginated(c, fiber.StatusOK, "Daftar lamaran berhasil dimuat", recruitmentdto.NewApplicationResponses(applications), meta)
}

// PATCH /api/recruitment/applications/:id/stage
//
// Hiring bumps the division headcount in the same transaction.
func UpdateApplicationStage(c *fiber.Ctx) error {
	actor, err := middleware.GetAccountFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Konteks autentikasi tidak ditemukan")
	}
	perm := services.NewPermissionService(config.DB)
	if ok, _ := perm.CanManageRecruitment(actor); !ok {
		return utils.Forbidden(c, "Hanya admin HR yang dapat memproses lamaran")
	}

	var req recruitmentdto.StageUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Body request tidak valid", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.UnprocessableEntity(c, "Validasi gagal", validationErrors)
	}

	now := time.Now()
	var application models.Application

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(forUpdate).Preload("Applicant").First(&application, "id = ?", c.Params("id")).Error; err != nil {
			return err
		}
		if application.Status.IsTerminal() {
			return errStageTerminal
		}

		var moveErr error
		if req.Action == "advance" {
			moveErr = application.Advance(now, req.Note)
		} else {
			moveErr = application.Reject(now, req.Note)
		}
		if moveErr != nil {
			return moveErr
		}

		if application.Status == models.StageHired {
			if err := tx.Model(&models.Division{}).
				Where("name = ?", application.Division).
				UpdateColumn("current_staff", gorm.Expr("current_staff + 1")).Error; err != nil {
				return err
			}
		}

		updates := map[string]interface{}{
			"status":        application.Status,
			"stages":        application.Stages,
			"reject_reason": application.RejectReason,
		}
		return tx.Model(&application).Updates(updates).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return utils.NotFound(c, "Lamaran tidak ditemukan")
		case errors.Is(err, errStageTerminal):
			return utils.Conflict(c, "Lamaran sudah berada di tahap final", nil)
		default:
			return utils.InternalServerError(c, "Gagal memperbarui tahap lamaran")
		}
	}

	events.Publish(events.Event{Kind: events.ApplicationMoved, Application: &application})

	return utils.JSONSuccess(c, fiber.StatusOK, "Tahap lamaran berhasil diperbarui", recruitmentdto.NewApplicationResponse(&application))
}

var (
	errDivisionFull    = errors.New("divisi sudah penuh")
	errApplicationOpen = errors.New("masih ada lamaran berjalan")
	errStageTerminal   = errors.New("lamaran sudah final")
)
