package routes

import (
	"github.com/Internship-LDP/HRIS-LDP-sub001/handlers"
	"github.com/Internship-LDP/HRIS-LDP-sub001/middleware"
	"github.com/Internship-LDP/HRIS-LDP-sub001/models"

	"github.com/gofiber/fiber/v2"
)

func Register(app *fiber.App) {
	api := app.Group("/api")

	// Auth
	api.Post("/auth/login", handlers.Login)
	api.Post("/auth/refresh", handlers.RefreshToken)
	api.Get("/auth/me", middleware.RequireAuth(), handlers.Me)

	authed := api.Group("", middleware.RequireAuth())

	// Letters
	letters := authed.Group("/letters")
	letters.Post("", middleware.AuthorizeRoles(models.RoleSuperAdmin, models.RoleAdmin, models.RoleStaff), handlers.ComposeLetter)
	letters.Get("", handlers.ListLetters)
	letters.Get("/:id", handlers.GetLetter)
	letters.Post("/:id/reply", handlers.ReplyLetter)
	letters.Post("/:id/archive", middleware.RequireAdminHR(), handlers.ArchiveLetter)
	letters.Post("/:id/unarchive", middleware.RequireAdminHR(), handlers.UnarchiveLetter)

	// Disposition queue (HR only)
	dispositions := authed.Group("/dispositions", middleware.RequireAdminHR())
	dispositions.Get("/pending", handlers.ListPendingDispositions) // ?priority=&search=&category=
	dispositions.Post("", handlers.SubmitDisposition)

	// Account administration (super admin only)
	accounts := authed.Group("/accounts", middleware.RequireSuperAdmin())
	accounts.Get("", handlers.ListAccounts) // ?q=&role=&page=&limit=
	accounts.Post("", handlers.CreateAccount)
	accounts.Put("/:id", handlers.UpdateAccount)
	accounts.Post("/:id/toggle-status", handlers.ToggleAccountStatus)
	accounts.Post("/:id/reset-password", handlers.ResetAccountPassword)

	// Recruitment
	recruitment := authed.Group("/recruitment")
	recruitment.Get("/divisions", handlers.ListDivisions)
	recruitment.Post("/applications", middleware.AuthorizeRoles(models.RolePelamar), handlers.ApplyApplication)
	recruitment.Get("/applications", handlers.ListApplications) // ?status=&page=&limit=
	recruitment.Patch("/applications/:id/stage", middleware.RequireAdminHR(), handlers.UpdateApplicationStage)

	// Terminations
	terminations := authed.Group("/terminations")
	terminations.Post("", middleware.AuthorizeRoles(models.RoleStaff), handlers.CreateTermination)
	terminations.Get("/me", handlers.MyTerminations)
	terminations.Get("", middleware.RequireAdminHR(), handlers.ListTerminations) // ?status=&page=&limit=
	terminations.Patch("/:id", middleware.RequireAdminHR(), handlers.UpdateTermination)

	// Dashboard dan notifikasi
	authed.Get("/dashboard", handlers.DashboardStats)
	authed.Get("/notifications/snapshot", handlers.NotificationSnapshot)

	// File staging
	authed.Post("/files", handlers.UploadFile)
}
