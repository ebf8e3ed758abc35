package user

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/swiish/swiish/internal/webserver/jwtclaimsreader"
	"github.com/swiish/swiish/internal/webserver/model"
)

// Create adds a member to the caller's organisation directly, without an
// invitation.
func (u *Controller) Create(c *fiber.Ctx) error {
	principal, ok := jwtclaimsreader.Principal(c)
	if !ok || !principal.HasOrganisation() {
		return fiber.ErrUnauthorized
	}

	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if request.Role == "" {
		request.Role = model.RoleMember
	}
	if len(request.Password) < u.config.MinPasswordLength {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Password must be at least %d characters long", u.config.MinPasswordLength))
	}

	member := model.User{
		ID:             uuid.NewString(),
		Email:          strings.ToLower(request.Email),
		Role:           request.Role,
		OrganisationID: &principal.OrganisationID,
	}
	if errs := member.Validate(u.config.MinPasswordLength); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	hash, err := model.HashPassword(request.Password)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	member.PasswordHash = hash

	if err := u.users.Create(&member); err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			return fiber.NewError(fiber.StatusConflict, "A user with this email already exists")
		}
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":    member.ID,
			"email": member.Email,
			"role":  member.Role,
		},
	})
}
