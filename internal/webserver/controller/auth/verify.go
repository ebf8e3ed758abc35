package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/swiish/swiish/internal/webserver/jwtclaimsreader"
	"github.com/swiish/swiish/internal/webserver/model"
)

// SendVerification emails a verification link to the current user. At most
// one active token exists per user at a time.
func (a *Controller) SendVerification(c *fiber.Ctx) error {
	principal, ok := jwtclaimsreader.Principal(c)
	if !ok || !principal.HasUser() {
		return fiber.ErrUnauthorized
	}

	user, err := a.users.FindByID(principal.UserID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil {
		return fiber.ErrUnauthorized
	}
	if user.EmailVerified {
		return fiber.NewError(fiber.StatusBadRequest, "Email is already verified")
	}

	verification, err := a.verifications.Create(user.ID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, model.ErrActiveTokenExists) {
			return fiber.NewError(fiber.StatusBadRequest, "A verification email has already been sent")
		}
		return fiber.ErrInternalServerError
	}

	link := fmt.Sprintf("%s/verify-email/%s", a.config.FQDN, verification.Token)
	go a.sender.Send(
		user.Email,
		"Verify your email address",
		fmt.Sprintf("<p>Please confirm this is your address.</p><p><a href=\"%s\">Verify email</a></p><p>The link expires in seven days.</p>", link),
	)

	return c.JSON(fiber.Map{"success": true})
}

// VerifyEmail consumes a verification token from the emailed link.
func (a *Controller) VerifyEmail(c *fiber.Ctx) error {
	token := c.Params("token")

	switch err := a.verifications.Consume(token, time.Now().UTC()); {
	case err == nil:
		return c.JSON(fiber.Map{"success": true, "message": "Email verified successfully"})
	case errors.Is(err, model.ErrTokenConsumed):
		return fiber.NewError(fiber.StatusBadRequest, "This verification link has already been used")
	case errors.Is(err, model.ErrTokenExpired):
		return fiber.NewError(fiber.StatusBadRequest, "Verification link has expired")
	case errors.Is(err, model.ErrTokenInvalid):
		return fiber.NewError(fiber.StatusBadRequest, "Invalid verification link")
	default:
		return fiber.ErrInternalServerError
	}
}
