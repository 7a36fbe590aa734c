package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/Internship-LDP/HRIS-LDP-sub001/config"
	accountdto "github.com/Internship-LDP/HRIS-LDP-sub001/dto/accounts"
	"github.com/Internship-LDP/HRIS-LDP-sub001/middleware"
	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
	"github.com/Internship-LDP/HRIS-LDP-sub001/services"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils/events"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// requireAccountManager reloads the caller and re-checks the capability in
// the handler, alongside the router-level role gate.
func requireAccountManager(c *fiber.Ctx) error {
	caller, err := middleware.GetAccountFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Konteks autentikasi tidak ditemukan")
	}
	perm := services.NewPermissionService(config.DB)
	if ok, _ := perm.CanManageAccounts(caller); !ok {
		return utils.Forbidden(c, "Hanya Super Admin yang dapat mengelola akun")
	}
	return nil
}

// GET /api/accounts?q=&role=&page=&limit=
func ListAccounts(c *fiber.Ctx) error {
	if err := requireAccountManager(c); err != nil {
		return err
	}

	page, limit, offset := parsePagination(c)

	query := config.DB.Model(&models.Account{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR employee_code LIKE ?", like, like, like)
	}
	if role := models.Role(c.Query("role")); role != "" {
		if !role.IsValid() {
			return utils.BadRequest(c, "Role filter tidak dikenal", nil)
		}
		query = query.Where("role = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menghitung akun")
	}

	var accounts []models.Account
	if err := query.Order("id DESC").Limit(limit).Offset(offset).Find(&accounts).Error; err != nil {
		return utils.InternalServerError(c, "Gagal memuat akun")
	}

	meta := utils.PaginationMeta{Page: page, Limit: limit, Total: total}
	return utils.JSONPaginated(c, fiber.StatusOK, "Daftar akun berhasil dimuat", accountdto.NewAccountResponses(accounts), meta)
}

// POST /api/accounts
func CreateAccount(c *fiber.Ctx) error {
	if err := requireAccountManager(c); err != nil {
		return err
	}

	var req accountdto.CreateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Body request tidak valid", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.UnprocessableEntity(c, "Validasi gagal", validationErrors)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.InternalServerError(c, "Gagal memproses password")
	}

	account := models.Account{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(strings.ToLower(req.Email)),
		PasswordHash: hash,
		Role:         req.Role,
		Status:       models.AccountActive,
		Division:     strings.TrimSpace(req.Division),
		Jabatan:      strings.TrimSpace(req.Jabatan),
		EmployeeCode: strings.TrimSpace(req.EmployeeCode),
	}

	if err := config.DB.Create(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Conflict(c, "Email atau kode karyawan sudah terdaftar", nil)
		}
		return utils.InternalServerError(c, "Gagal membuat akun")
	}

	return utils.Created(c, "Akun berhasil dibuat", accountdto.NewAccountResponse(&account))
}

// PUT /api/accounts/:id
func UpdateAccount(c *fiber.Ctx) error {
	if err := requireAccountManager(c); err != nil {
		return err
	}

	var account models.Account
	if err := config.DB.First(&account, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Akun tidak ditemukan")
		}
		return utils.InternalServerError(c, "Gagal memuat akun")
	}

	var req accountdto.UpdateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Body request tidak valid", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.UnprocessableEntity(c, "Validasi gagal", validationErrors)
	}

	accountdto.ApplyUpdate(&account, &req)

	if err := config.DB.Save(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Conflict(c, "Email atau kode karyawan sudah terdaftar", nil)
		}
		return utils.InternalServerError(c, "Gagal memperbarui akun")
	}

	return utils.JSONSuccess(c, fiber.StatusOK, "Akun berhasil diperbarui", accountdto.NewAccountResponse(&account))
}

// POST /api/accounts/:id/toggle-status
//
// Deactivating publishes a force-logout push; the auth middleware also
// rejects the account's tokens from here on.
func ToggleAccountStatus(c *fiber.Ctx) error {
	if err := requireAccountManager(c); err != nil {
		return err
	}

	var account models.Account
	if err := config.DB.First(&account, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Akun tidak ditemukan")
		}
		return utils.InternalServerError(c, "Gagal memuat akun")
	}

	now := time.Now()
	if account.IsActive() {
		account.Status = models.AccountInactive
		account.InactiveAt = &now
	} else {
		account.Status = models.AccountActive
		account.InactiveAt = nil
	}

	updates := map[string]interface{}{
		"status":      account.Status,
		"inactive_at": account.InactiveAt,
	}
	if err := config.DB.Model(&account).Updates(updates).Error; err != nil {
		return utils.InternalServerError(c, "Gagal memperbarui status akun")
	}

	events.Publish(events.Event{Kind: events.AccountStatusChanged, Account: &account})

	message := "Akun berhasil diaktifkan"
	if account.Status == models.AccountInactive {
		message = "Akun berhasil dinonaktifkan"
	}
	return utils.JSONSuccess(c, fiber.StatusOK, message, accountdto.NewAccountResponse(&account))
}

// POST /api/accounts/:id/reset-password
//
// The generated password is returned once in the response body and never
// stored in plain form.
func ResetAccountPassword(c *fiber.Ctx) error {
	if err := requireAccountManager(c); err != nil {
		return err
	}

	var account models.Account
	if err := config.DB.First(&account, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Akun tidak ditemukan")
		}
		return utils.InternalServerError(c, "Gagal memuat akun")
	}

	newPassword, err := utils.GenerateTempPassword(12)
	if err != nil {
		return utils.InternalServerError(c, "Gagal membuat password baru")
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.InternalServerError(c, "Gagal memproses password")
	}

	if err := config.DB.Model(&account).Update("password_hash", hash).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menyimpan password baru")
	}

	resp := accountdto.ResetPasswordResponse{AccountID: account.ID, NewPassword: newPassword}
	return utils.JSONSuccess(c, fiber.StatusOK, "Password berhasil direset", resp)
}
