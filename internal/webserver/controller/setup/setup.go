package setup

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/swiish/swiish/internal/webserver/controller/auth"
	"github.com/swiish/swiish/internal/webserver/model"
)

// Status reports whether first-run setup has happened yet.
func (s *Controller) Status(c *fiber.Ctx) error {
	count, err := s.users.Total()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{
		"setupComplete": count > 0,
		"userCount":     count,
	})
}

// Initialize creates the first organisation and its owner. Refused once any
// user exists.
func (s *Controller) Initialize(c *fiber.Ctx) error {
	count, err := s.users.Total()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusForbidden, "Setup already completed")
	}

	var request struct {
		OrganisationName string `json:"organisationName"`
		Email            string `json:"email"`
		Password         string `json:"password"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if request.OrganisationName == "" || request.Email == "" || request.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Organisation name, email and password are required")
	}
	if len(request.Password) < s.config.MinPasswordLength {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Password must be at least %d characters long", s.config.MinPasswordLength))
	}

	owner := model.User{
		ID:    uuid.NewString(),
		Email: strings.ToLower(request.Email),
		Role:  model.RoleOwner,
	}
	if errs := owner.Validate(s.config.MinPasswordLength); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	slug, err := s.organisations.UniqueSlug(request.OrganisationName)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	org, err := s.organisations.Create(request.OrganisationName, slug)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	hash, err := model.HashPassword(request.Password)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	owner.PasswordHash = hash
	owner.OrganisationID = &org.ID
	if err := s.users.Create(&owner); err != nil {
		return fiber.ErrInternalServerError
	}

	if err := s.settings.Seed(org.ID, org.Name); err != nil {
		return fiber.ErrInternalServerError
	}

	if err := auth.GrantSession(c, &owner, s.config.SessionTimeout, s.config.Secret); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"success": true,
		"organisation": fiber.Map{
			"id":   org.ID,
			"name": org.Name,
			"slug": org.Slug,
		},
		"user": fiber.Map{
			"id":    owner.ID,
			"email": owner.Email,
			"role":  owner.Role,
		},
	})
}
