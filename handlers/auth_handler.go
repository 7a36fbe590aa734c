package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/Internship-LDP/HRIS-LDP-sub001/config"
	"github.com/Internship-LDP/HRIS-LDP-sub001/dto"
	"github.com/Internship-LDP/HRIS-LDP-sub001/middleware"
	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils/events"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// POST /api/auth/login
func Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Body request tidak valid", err.Error())
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		return utils.BadRequest(c, "Email dan password wajib diisi", nil)
	}

	var account models.Account
	if err := config.DB.Where("email = ?", req.Email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Unauthorized(c, "Email atau password salah")
		}
		return utils.InternalServerError(c, "Gagal memuat akun")
	}

	if !utils.CheckPassword(account.PasswordHash, req.Password) {
		return utils.Unauthorized(c, "Email atau password salah")
	}
	if !account.IsActive() {
		return utils.Forbidden(c, "Akun Anda sudah dinonaktifkan")
	}

	now := time.Now()
	account.LastLoginAt = &now
	if err := config.DB.Model(&account).Update("last_login_at", now).Error; err != nil {
		return utils.InternalServerError(c, "Gagal memperbarui waktu login")
	}

	accessToken, claims, err := utils.GenerateAccessToken(account)
	if err != nil {
		return utils.InternalServerError(c, "Gagal membuat token")
	}
	refreshToken, _, err := utils.GenerateRefreshToken(account)
	if err != nil {
		return utils.InternalServerError(c, "Gagal membuat refresh token")
	}

	events.Publish(events.Event{Kind: events.AccountLoggedIn, Account: &account})

	resp := dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    claims.ExpiresAt.Time,
		Account:      dto.NewAccountSummary(&account),
	}
	return utils.JSONSuccess(c, fiber.StatusOK, "Login berhasil", resp)
}

// POST /api/auth/refresh
func RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Body request tidak valid", err.Error())
	}
	if strings.TrimSpace(req.RefreshToken) == "" {
		return utils.BadRequest(c, "refresh_token wajib diisi", nil)
	}

	claims, err := utils.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		return utils.Unauthorized(c, "Refresh token tidak valid atau sudah kedaluwarsa")
	}

	var account models.Account
	if err := config.DB.First(&account, claims.AccountID).Error; err != nil {
		return utils.Unauthorized(c, "Akun tidak ditemukan")
	}
	if !account.IsActive() {
		return utils.Forbidden(c, "Akun Anda sudah dinonaktifkan")
	}

	accessToken, newClaims, err := utils.GenerateAccessToken(account)
	if err != nil {
		return utils.InternalServerError(c, "Gagal membuat token")
	}

	resp := dto.LoginResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   newClaims.ExpiresAt.Time,
		Account:     dto.NewAccountSummary(&account),
	}
	return utils.JSONSuccess(c, fiber.StatusOK, "Token diperbarui", resp)
}

// GET /api/auth/me
func Me(c *fiber.Ctx) error {
	account, err := middleware.GetAccountFromContext(c)
	if err != nil {
		return utils.Unauthorized(c, "Konteks autentikasi tidak ditemukan")
	}
	return utils.JSONSuccess(c, fiber.StatusOK, "Profil berhasil dimuat", dto.NewAccountSummary(account))
}
