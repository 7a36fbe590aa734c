package middleware

import (
	"strings"

	"github.com/Internship-LDP/HRIS-LDP-sub001/config"
	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	ContextClaimsKey      = "jwtClaims"
	ContextAccountIDKey   = "accountID"
	ContextAccountRoleKey = "accountRole"
)

// RequireAuth validates the Bearer access token and stores its claims in
// c.Locals. Accounts deactivated after the token was issued are still
// rejected here, so a force-logout takes effect on the next request.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return utils.Unauthorized(c, "Header Authorization tidak ditemukan")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.Unauthorized(c, "Format header Authorization tidak valid")
		}

		tokenString := strings.TrimSpace(parts[1])
		claims, err := utils.VerifyAccessToken(tokenString)
		if err != nil {
			return utils.Unauthorized(c, "Token tidak valid atau sudah kedaluwarsa")
		}

		var account models.Account
		if err := config.DB.First(&account, claims.AccountID).Error; err != nil {
			return utils.Unauthorized(c, "Akun tidak ditemukan")
		}
		if !account.IsActive() {
			return utils.Forbidden(c, "Akun sudah dinonaktifkan")
		}

		c.Locals(ContextClaimsKey, claims)
		c.Locals(ContextAccountIDKey, claims.AccountID)
		c.Locals(ContextAccountRoleKey, claims.Role)

		return c.Next()
	}
}

func GetJWTClaims(c *fiber.Ctx) (*utils.JWTClaims, bool) {
	claims, ok := c.Locals(ContextClaimsKey).(*utils.JWTClaims)
	return claims, ok
}

// GetAccountFromContext reloads the authenticated account row. Handlers that
// need fresh Division/Status data use this instead of trusting the claims.
func GetAccountFromContext(c *fiber.Ctx) (*models.Account, error) {
	claims, ok := GetJWTClaims(c)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	var account models.Account
	if err := config.DB.First(&account, claims.AccountID).Error; err != nil {
		return nil, err
	}
	return &account, nil
}
