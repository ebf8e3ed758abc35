package user

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/swiish/swiish/internal/webserver/jwtclaimsreader"
	"github.com/swiish/swiish/internal/webserver/model"
)

// UpdateRole changes a member's role. Owners cannot change their own role,
// and the organisation's last owner cannot be demoted.
func (u *Controller) UpdateRole(c *fiber.Ctx) error {
	principal, ok := jwtclaimsreader.Principal(c)
	if !ok || !principal.HasOrganisation() {
		return fiber.ErrUnauthorized
	}

	var request struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if !model.ValidRole(request.Role) {
		return fiber.NewError(fiber.StatusBadRequest, "Role must be either \"owner\" or \"member\"")
	}

	switch err := u.users.ChangeRole(principal, c.Params("userId"), request.Role); {
	case err == nil:
		return c.JSON(fiber.Map{"success": true})
	case errors.Is(err, model.ErrSelfModification):
		return fiber.NewError(fiber.StatusBadRequest, "You cannot change your own role")
	case errors.Is(err, model.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	case errors.Is(err, model.ErrLastOwner):
		return fiber.NewError(fiber.StatusConflict, "An organisation must have at least one owner")
	default:
		return fiber.ErrInternalServerError
	}
}
