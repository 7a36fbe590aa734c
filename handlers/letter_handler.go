package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/Internship-LDP/HRIS-LDP-sub001/config"
	letterdto "github.com/Internship-LDP/HRIS-LDP-sub001/dto/letters"
	"github.com/Internship-LDP/HRIS-LDP-sub001/letterstore"
	"github.com/Internship-LDP/HRIS-LDP-sub001/middleware"
	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
	"github.com/Internship-LDP/HRIS-LDP-sub001/services"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils/events"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// POST /api/letters
//
// Multipart form: field 'data' carries the JSON request, 'lampiran' the
// optional attachment. One letter row is created per target division, all
// sharing the same attachment key.
func ComposeLetter(c *fiber.Ctx) error {
	sender, err := middleware.GetAccountFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Konteks autentikasi tidak ditemukan")
	}

	perm := services.NewPermissionService(config.DB)
	if ok, err := perm.CanComposeLetter(sender); err != nil || !ok {
		return utils.Forbidden(c, "Anda tidak memiliki akses untuk membuat surat")
	}

	jsonData := c.FormValue("data")
	if jsonData == "" {
		return utils.BadRequest(c, "Field form 'data' (JSON) wajib diisi", nil)
	}

	var req letterdto.ComposeLetterRequest
	if err := json.Unmarshal([]byte(jsonData), &req); err != nil {
		return utils.BadRequest(c, "Field 'data' bukan JSON yang valid", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.UnprocessableEntity(c, "Validasi gagal", validationErrors)
	}

	var s3key, lampiranNama string
	var lampiranUkuran int64
	// Lampiran bersifat opsional; c.FormFile mengembalikan error saat field
	// tidak ada, jadi error di sini berarti tidak ada lampiran.
	if fileHeader, err := c.FormFile("lampiran"); err == nil && fileHeader != nil {
		if msg := validateAttachment(fileHeader.Filename, fileHeader.Size); msg != "" {
			return utils.UnprocessableEntity(c, msg, nil)
		}
		ext := filepath.Ext(fileHeader.Filename)
		s3key = fmt.Sprintf("surat/%d/%s%s", sender.ID, uuid.NewString(), ext)
		if _, err := storage.UploadAttachment(c.Context(), fileHeader, s3key); err != nil {
			return utils.InternalServerError(c, "Gagal mengunggah lampiran")
		}
		lampiranNama = fileHeader.Filename
		lampiranUkuran = fileHeader.Size
	}

	now := time.Now()
	var created []models.Letter

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		for _, division := range req.TargetDivisions {
			letter := req.ToModel(sender, division)
			if letter.DivisiTujuan == "" {
				continue
			}

			nomor, err := utils.GenerateNomorSurat(tx, letter.Kategori, now)
			if err != nil {
				return err
			}
			letter.NomorSurat = nomor
			letter.LampiranNama = lampiranNama
			letter.LampiranUkuran = lampiranUkuran
			letter.LampiranPath = s3key

			if err := tx.Create(&letter).Error; err != nil {
				return err
			}
			created = append(created, letter)
		}
		return nil
	})
	if err != nil {
		if s3key != "" {
			go storage.DeleteAttachment(context.Background(), s3key)
		}
		return utils.InternalServerError(c, "Gagal menyimpan surat")
	}

	for i := range created {
		events.Publish(events.Event{Kind: events.LetterSubmitted, Letter: &created[i]})
	}

	return utils.Created(c, "Surat berhasil diajukan", letterdto.NewLetterResponses(created))
}

// GET /api/letters?search=&category=
//
// Returns the caller's three mailboxes in one payload. Search and category
// narrow each list; the lists stay structurally intact when both are empty.
func ListLetters(c *fiber.Ctx) error {
	account, err := middleware.GetAccountFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Konteks autentikasi tidak ditemukan")
	}

	collections, err := loadCollections(account)
	if err != nil {
		return utils.InternalServerError(c, "Gagal memuat surat")
	}

	search := c.Query("search")
	category := c.Query("category", letterstore.CategoryAll)
	filtered := collections.Filter(search, category)

	payload := fiber.Map{
		"inbox":   letterdto.NewLetterResponses(filtered.Inbox),
		"outbox":  letterdto.NewLetterResponses(filtered.Outbox),
		"archive": letterdto.NewLetterResponses(filtered.Archive),
	}
	return utils.JSONSuccess(c, fiber.StatusOK, "Daftar surat berhasil dimuat", payload)
}

// GET /api/letters/:id
func GetLetter(c *fiber.Ctx) error {
	account, err := middleware.GetAccountFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Konteks autentikasi tidak ditemukan")
	}

	var letter models.Letter
	if err := config.DB.First(&letter, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Surat tidak ditemukan")
		}
		return utils.InternalServerError(c, "Gagal memuat surat")
	}

	perm := services.NewPermissionService(config.DB)
	if ok, _ := perm.CanViewLetter(account, &letter); !ok {
		return utils.Forbidden(c, "Anda tidak memiliki akses ke surat ini")
	}

	attachmentURL := ""
	if letter.LampiranPath != "" {
		attachmentURL, err = storage.GetPresignedURL(letter.LampiranPath)
		if err != nil {
			log.Printf("presign lampiran %s gagal: %v", letter.LampiranPath, err)
			attachmentURL = ""
		}
	}

	return utils.JSONSuccess(c, fiber.StatusOK, "Surat berhasil dimuat", letterdto.NewLetterResponse(&letter, attachmentURL))
}

// POST /api/letters/:id/reply
func ReplyLetter(c *fiber.Ctx) error {
	account, err := middleware.GetAccountFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Konteks autentikasi tidak ditemukan")
	}

	var req letterdto.ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Body request tidak valid", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.UnprocessableEntity(c, "Validasi gagal", validationErrors)
	}

	var letter models.Letter
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(forUpdate).First(&letter, "id = ?", c.Params("id")).Error; err != nil {
			return err
		}
		if err := services.ReplyLetter(&letter, account, req.Note, time.Now()); err != nil {
			return err
		}
		return tx.Model(&letter).Update("riwayat_balasan", letter.RiwayatBalasan).Error
	})
	if err != nil {
		return letterTransitionError(c, err)
	}

	return utils.JSONSuccess(c, fiber.StatusOK, "Balasan berhasil dikirim", letterdto.NewLetterResponse(&letter, ""))
}

// POST /api/letters/:id/archive
//
// Status is re-read inside the transaction; a letter that moved since the
// list was rendered is refused instead of silently archived.
func ArchiveLetter(c *fiber.Ctx) error {
	return moveArchiveState(c, services.ArchiveLetter, "Surat berhasil diarsipkan")
}

// POST /api/letters/:id/unarchive
func UnarchiveLetter(c *fiber.Ctx) error {
	return moveArchiveState(c, services.UnarchiveLetter, "Surat dikembalikan dari arsip")
}

func moveArchiveState(c *fiber.Ctx, transition func(*models.Letter) error, successMsg string) error {
	account, err := middleware.GetAccountFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Konteks autentikasi tidak ditemukan")
	}

	perm := services.NewPermissionService(config.DB)

	var letter models.Letter
	var oldStatus models.LetterStatus
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(forUpdate).First(&letter, "id = ?", c.Params("id")).Error; err != nil {
			return err
		}
		if ok, _ := perm.CanViewLetter(account, &letter); !ok {
			return services.ErrForbidden
		}
		oldStatus = letter.Status
		if err := transition(&letter); err != nil {
			return err
		}
		return tx.Model(&letter).Update("status", letter.Status).Error
	})
	if err != nil {
		return letterTransitionError(c, err)
	}

	events.Publish(events.Event{Kind: events.LetterStatusMoved, Letter: &letter, OldStatus: oldStatus})

	return utils.JSONSuccess(c, fiber.StatusOK, successMsg, letterdto.NewLetterResponse(&letter, ""))
}

func loadCollections(account *models.Account) (letterstore.Collections, error) {
	var out letterstore.Collections
	db := config.DB

	inboxQuery := db.Order("id DESC")
	archiveQuery := db.Order("id DESC").Where("status = ?", models.StatusDiarsipkan)
	if account.IsAdminHR() {
		inboxQuery = inboxQuery.Where("status = ? AND holder = ?", models.StatusDiajukan, models.HolderHR)
	} else {
		inboxQuery = inboxQuery.Where("divisi_tujuan = ? AND status = ?", account.Division, models.StatusDidisposisi)
		archiveQuery = archiveQuery.Where("divisi_tujuan = ? OR sender_id = ?", account.Division, account.ID)
	}

	if err := inboxQuery.Find(&out.Inbox).Error; err != nil {
		return out, err
	}
	if err := db.Order("id DESC").Where("sender_id = ?", account.ID).Find(&out.Outbox).Error; err != nil {
		return out, err
	}
	if err := archiveQuery.Find(&out.Archive).Error; err != nil {
		return out, err
	}
	return out, nil
}

func letterTransitionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return utils.NotFound(c, "Surat tidak ditemukan")
	case errors.Is(err, services.ErrForbidden):
		return utils.Forbidden(c, "Anda tidak memiliki akses ke surat ini")
	case errors.Is(err, services.ErrNotPending):
		return utils.Conflict(c, "Surat tidak lagi menunggu disposisi", nil)
	case errors.Is(err, services.ErrNotDisposisi):
		return utils.Conflict(c, "Hanya surat berstatus Didisposisi yang dapat diarsipkan", nil)
	case errors.Is(err, services.ErrNotArchived):
		return utils.Conflict(c, "Surat tidak berada di arsip", nil)
	case errors.Is(err, services.ErrLetterFinalized):
		return utils.Conflict(c, "Surat sudah difinalisasi dan ditutup untuk balasan", nil)
	case errors.Is(err, services.ErrNotLetterHolder):
		return utils.Forbidden(c, "Surat tidak sedang berada di divisi Anda")
	default:
		return utils.InternalServerError(c, "Gagal memproses surat")
	}
}
