package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/swiish/swiish/internal/webserver/model"
)

// Login verifies the credentials and grants a session. Unknown emails and
// wrong passwords share one message so accounts cannot be enumerated.
func (a *Controller) Login(c *fiber.Ctx) error {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if request.Email == "" || request.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Email and password are required")
	}

	user, err := a.users.FindByEmail(strings.ToLower(request.Email))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil || !model.CheckPassword(user.PasswordHash, request.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	if err := GrantSession(c, user, a.config.SessionTimeout, a.config.Secret); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":            user.ID,
			"email":         user.Email,
			"role":          user.Role,
			"emailVerified": user.EmailVerified,
		},
	})
}

func (a *Controller) Logout(c *fiber.Ctx) error {
	ClearSession(c)
	return c.JSON(fiber.Map{"success": true})
}
