package webserver

import (
	"github.com/gofiber/fiber/v2"
)

func routes(app *fiber.App, cfg Config, controllers Controllers, logs logRing) {
	requireAuth := RequireAuthentication(cfg.JwtSecret)

	api := app.Group("/api")

	api.Get("/setup", controllers.Setup.Status)
	api.Post("/setup", controllers.Setup.Initialize)

	api.Post("/auth/login", controllers.Auth.Login)
	api.Post("/auth/logout", controllers.Auth.Logout)
	api.Get("/auth/me", requireAuth, controllers.Auth.Me)
	api.Post("/auth/change-password", requireAuth, controllers.Auth.ChangePassword)
	api.Post("/auth/forgot-password", controllers.Auth.ForgotPassword)
	api.Post("/auth/reset-password", controllers.Auth.ResetPassword)
	api.Post("/auth/send-verification", requireAuth, controllers.Auth.SendVerification)
	api.Post("/auth/verify-email/:token", controllers.Auth.VerifyEmail)

	api.Get("/invitations/:token", controllers.Users.InvitationDetails)
	api.Post("/invitations/:token/accept", controllers.Users.AcceptInvitation)

	api.Get("/settings", controllers.Settings.Public)

	api.Get("/cards", requireAuth, controllers.Cards.List)
	api.Post("/cards", requireAuth, controllers.Cards.Save)
	api.Delete("/cards/:slug", requireAuth, controllers.Cards.Delete)

	// Short code lookups register before the two slug routes so a code is
	// never swallowed by the catch-all slug parameter.
	api.Get("/cards/short/:shortCode", controllers.Cards.GetByShortCode)
	api.Get("/cards/:orgSlug/:cardSlug", controllers.Cards.GetByOrgAndSlug)
	api.Get("/cards/:slug", controllers.Cards.GetBySlug)

	admin := api.Group("/admin", requireAuth, RequireOwner)
	admin.Get("/settings", controllers.Settings.Get)
	admin.Post("/settings", controllers.Settings.Update)
	admin.Get("/users", controllers.Users.List)
	admin.Post("/users", controllers.Users.Create)
	admin.Patch("/users/:userId/role", controllers.Users.UpdateRole)
	admin.Delete("/users/:userId", controllers.Users.Remove)
	admin.Post("/invitations", controllers.Users.Invite)
	admin.Get("/logs", func(c *fiber.Ctx) error {
		n := c.QueryInt("limit", 100)
		return c.JSON(fiber.Map{"logs": logs.Last(n)})
	})
}
