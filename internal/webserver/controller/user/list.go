package user

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swiish/swiish/internal/webserver/jwtclaimsreader"
)

// List returns the members of the caller's organisation.
func (u *Controller) List(c *fiber.Ctx) error {
	principal, ok := jwtclaimsreader.Principal(c)
	if !ok || !principal.HasOrganisation() {
		return fiber.ErrUnauthorized
	}

	users, err := u.users.ListByOrganisation(principal.OrganisationID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	members := make([]fiber.Map, 0, len(users))
	for _, user := range users {
		members = append(members, fiber.Map{
			"id":            user.ID,
			"email":         user.Email,
			"role":          user.Role,
			"emailVerified": user.EmailVerified,
			"createdAt":     user.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"users": members})
}
