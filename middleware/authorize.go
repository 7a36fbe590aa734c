package middleware

import (
	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthorizeRoles allows only the listed roles past. Must run after RequireAuth.
func AuthorizeRoles(allowedRoles ...models.Role) fiber.Handler {
	allowed := make(map[models.Role]struct{}, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		claims, ok := GetJWTClaims(c)
		if !ok {
			return utils.Forbidden(c, "Konteks autentikasi tidak ditemukan")
		}

		if len(allowed) == 0 {
			return c.Next()
		}

		if _, ok := allowed[claims.Role]; !ok {
			return utils.Forbidden(c, "Anda tidak memiliki akses untuk aksi ini")
		}

		return c.Next()
	}
}

// RequireAdminHR gates the disposition and HR management surfaces.
func RequireAdminHR() fiber.Handler {
	return AuthorizeRoles(models.RoleSuperAdmin, models.RoleAdmin)
}

// RequireSuperAdmin gates account administration.
func RequireSuperAdmin() fiber.Handler {
	return AuthorizeRoles(models.RoleSuperAdmin)
}
