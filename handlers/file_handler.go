package handlers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Internship-LDP/HRIS-LDP-sub001/utils"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils/storage"

	"github.com/gofiber/fiber/v2"
)

const maxAttachmentSize = 10 << 20 // 10 MB

// validateAttachment returns an empty string when the file is acceptable,
// otherwise a user-facing reason.
func validateAttachment(filename string, size int64) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".jpg", ".jpeg", ".png":
	default:
		return "Hanya file PDF dan gambar (jpg, jpeg, png) yang diperbolehkan"
	}
	if size > maxAttachmentSize {
		return "Ukuran lampiran maksimal 10 MB"
	}
	return ""
}

// POST /api/files
//
// Standalone upload for clients that stage the attachment before submitting
// the compose form.
func UploadFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequest(c, "Field form 'file' wajib diisi", nil)
	}

	if msg := validateAttachment(fileHeader.Filename, fileHeader.Size); msg != "" {
		return utils.UnprocessableEntity(c, msg, nil)
	}

	ext := filepath.Ext(fileHeader.Filename)
	key := fmt.Sprintf("uploads/%d%s", time.Now().UnixNano(), ext)

	if _, err := storage.UploadAttachment(c.Context(), fileHeader, key); err != nil {
		return utils.InternalServerError(c, "Gagal mengunggah file")
	}

	return utils.Created(c, "File berhasil diunggah", fiber.Map{
		"key":  key,
		"name": fileHeader.Filename,
		"size": fileHeader.Size,
	})
}
