package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/Internship-LDP/HRIS-LDP-sub001/config"
	letterdto "github.com/Internship-LDP/HRIS-LDP-sub001/dto/letters"
	"github.com/Internship-LDP/HRIS-LDP-sub001/letterstore"
	"github.com/Internship-LDP/HRIS-LDP-sub001/middleware"
	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
	"github.com/Internship-LDP/HRIS-LDP-sub001/services"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils/events"
	"github.com/Internship-LDP/HRIS-LDP-sub001/workflow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GET /api/dispositions/pending?priority=&search=&category=
//
// Priority counts are computed over the full pending set before any
// narrowing, so the badge numbers stay stable while a search or a priority
// chip is active.
func ListPendingDispositions(c *fiber.Ctx) error {
	actor, err := middleware.GetAccountFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Konteks autentikasi tidak ditemukan")
	}
	perm := services.NewPermissionService(config.DB)
	if ok, _ := perm.CanDisposition(actor); !ok {
		return utils.Forbidden(c, "Hanya admin HR yang dapat melihat antrian disposisi")
	}

	var pending []models.Letter
	err = config.DB.
		Where("status = ? AND holder = ?", models.StatusDiajukan, models.HolderHR).
		Order("id DESC").
		Find(&pending).Error
	if err != nil {
		return utils.InternalServerError(c, "Gagal memuat antrian disposisi")
	}

	var filter letterstore.PriorityFilter
	if p := models.Priority(c.Query("priority")); p.IsValid() {
		filter.Toggle(p)
	}

	search := c.Query("search")
	category := c.Query("category", letterstore.CategoryAll)
	visible, counts := letterstore.PendingView(pending, search, category, &filter)

	payload := fiber.Map{
		"letters": letterdto.NewLetterResponses(visible),
		"stats": letterdto.PriorityStatsResponse{
			High:   counts[models.PriorityHigh],
			Medium: counts[models.PriorityMedium],
			Low:    counts[models.PriorityLow],
		},
	}
	return utils.JSONSuccess(c, fiber.StatusOK, "Antrian disposisi berhasil dimuat", payload)
}

// POST /api/dispositions
//
// Applies one mode to a batch of letters atomically. Every letter is
// re-locked and re-validated; one stale letter fails the whole batch so the
// client can refresh and retry.
func SubmitDisposition(c *fiber.Ctx) error {
	actor, err := middleware.GetAccountFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Konteks autentikasi tidak ditemukan")
	}
	perm := services.NewPermissionService(config.DB)
	if ok, _ := perm.CanDisposition(actor); !ok {
		return utils.Forbidden(c, "Hanya admin HR yang dapat memproses disposisi")
	}

	var req letterdto.DispositionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Body request tidak valid", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.UnprocessableEntity(c, "Validasi gagal", validationErrors)
	}

	now := time.Now()
	moved := make([]models.Letter, 0, len(req.LetterIDs))

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		for _, id := range req.LetterIDs {
			var letter models.Letter
			if err := tx.Clauses(forUpdate).First(&letter, "id = ?", id).Error; err != nil {
				return err
			}

			var moveErr error
			switch req.Mode {
			case workflow.ModeForward:
				moveErr = services.ForwardLetter(&letter, actor, req.Note, now)
			case workflow.ModeReject:
				moveErr = services.RejectLetter(&letter, actor, req.Note, now)
			case workflow.ModeFinal:
				moveErr = services.FinalizeLetter(&letter, actor, req.Note, now)
			default:
				moveErr = workflow.ErrInvalidMode
			}
			if moveErr != nil {
				return moveErr
			}

			updates := map[string]interface{}{
				"status":          letter.Status,
				"holder":          letter.Holder,
				"final":           letter.Final,
				"riwayat_balasan": letter.RiwayatBalasan,
			}
			if err := tx.Model(&letter).Updates(updates).Error; err != nil {
				return err
			}
			moved = append(moved, letter)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, workflow.ErrInvalidMode) {
			return utils.BadRequest(c, "Mode disposisi tidak dikenal", nil)
		}
		return letterTransitionError(c, err)
	}

	for i := range moved {
		events.Publish(events.Event{
			Kind:      events.LetterStatusMoved,
			Letter:    &moved[i],
			OldStatus: models.StatusDiajukan,
		})
	}

	var message string
	switch req.Mode {
	case workflow.ModeForward:
		message = fmt.Sprintf("%d surat didisposisi ke divisi tujuan.", len(moved))
	case workflow.ModeReject:
		message = fmt.Sprintf("%d surat ditolak dan dikembalikan ke pengirim.", len(moved))
	case workflow.ModeFinal:
		message = fmt.Sprintf("%d surat difinalisasi dan ditutup untuk balasan.", len(moved))
	}

	return utils.JSONSuccess(c, fiber.StatusOK, message, letterdto.NewLetterResponses(moved))
}
