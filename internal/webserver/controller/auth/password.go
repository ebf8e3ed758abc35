package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/swiish/swiish/internal/webserver/jwtclaimsreader"
	"github.com/swiish/swiish/internal/webserver/model"
)

// ChangePassword replaces the password of the current user after checking
// the old one.
func (a *Controller) ChangePassword(c *fiber.Ctx) error {
	principal, ok := jwtclaimsreader.Principal(c)
	if !ok || !principal.HasUser() {
		return fiber.ErrUnauthorized
	}

	var request struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if len(request.NewPassword) < a.config.MinPasswordLength {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Password must be at least %d characters long", a.config.MinPasswordLength))
	}

	user, err := a.users.FindByID(principal.UserID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil {
		return fiber.ErrUnauthorized
	}
	if !model.CheckPassword(user.PasswordHash, request.CurrentPassword) {
		return fiber.NewError(fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hash, err := model.HashPassword(request.NewPassword)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if err := a.users.UpdatePassword(user.ID, hash); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"success": true})
}
