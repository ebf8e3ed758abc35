package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/swiish/swiish/internal/webserver/model"
)

// ForgotPassword issues a reset token and emails its link. The response is
// identical whether or not the address exists.
func (a *Controller) ForgotPassword(c *fiber.Ctx) error {
	var request struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if request.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Email is required")
	}

	response := fiber.Map{
		"success": true,
		"message": "If an account with that email exists, a password reset link has been sent",
	}

	user, err := a.users.FindByEmail(request.Email)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil {
		return c.JSON(response)
	}

	reset, err := a.resets.Create(user.ID, time.Now().UTC())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	link := fmt.Sprintf("%s/reset-password/%s", a.config.FQDN, reset.Token)
	go a.sender.Send(
		user.Email,
		"Reset your password",
		fmt.Sprintf("<p>Someone requested a password reset for this address.</p><p><a href=\"%s\">Choose a new password</a></p><p>The link expires in one hour. If this wasn't you, ignore this email.</p>", link),
	)

	return c.JSON(response)
}

// ResetPassword consumes a reset token and stores the new password.
func (a *Controller) ResetPassword(c *fiber.Ctx) error {
	var request struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if request.Token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Token is required")
	}
	if len(request.Password) < a.config.MinPasswordLength {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Password must be at least %d characters long", a.config.MinPasswordLength))
	}

	hash, err := model.HashPassword(request.Password)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	switch err := a.resets.Consume(request.Token, hash, time.Now().UTC()); {
	case err == nil:
		return c.JSON(fiber.Map{"success": true})
	case errors.Is(err, model.ErrTokenConsumed):
		return fiber.NewError(fiber.StatusBadRequest, "This reset token has already been used")
	case errors.Is(err, model.ErrTokenExpired):
		return fiber.NewError(fiber.StatusBadRequest, "Reset token has expired")
	case errors.Is(err, model.ErrTokenInvalid):
		return fiber.NewError(fiber.StatusBadRequest, "Invalid or expired reset token")
	default:
		return fiber.ErrInternalServerError
	}
}
