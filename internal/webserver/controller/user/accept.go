package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/swiish/swiish/internal/webserver/controller/auth"
	"github.com/swiish/swiish/internal/webserver/model"
)

// InvitationDetails describes an invitation to the person holding its link,
// before they commit to a password.
func (u *Controller) InvitationDetails(c *fiber.Ctx) error {
	invitation, err := u.invitations.FindByToken(c.Params("token"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if invitation == nil {
		return fiber.NewError(fiber.StatusNotFound, "Invitation not found")
	}

	switch invitation.State(time.Now().UTC()) {
	case model.TokenConsumed:
		return fiber.NewError(fiber.StatusGone, "This invitation has already been accepted")
	case model.TokenExpired:
		return fiber.NewError(fiber.StatusGone, "This invitation has expired")
	}

	organisationName := ""
	if org, err := u.organisations.FindByID(invitation.OrganisationID); err == nil && org != nil {
		organisationName = org.Name
	}

	return c.JSON(fiber.Map{
		"email":            invitation.Email,
		"role":             invitation.Role,
		"organisationName": organisationName,
		"expiresAt":        invitation.ExpiresAt,
	})
}

// AcceptInvitation consumes the invitation, creates the member and signs
// them in.
func (u *Controller) AcceptInvitation(c *fiber.Ctx) error {
	var request struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if len(request.Password) < u.config.MinPasswordLength {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Password must be at least %d characters long", u.config.MinPasswordLength))
	}

	hash, err := model.HashPassword(request.Password)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	member, err := u.invitations.Accept(c.Params("token"), hash, time.Now().UTC())
	switch {
	case err == nil:
	case errors.Is(err, model.ErrTokenInvalid):
		return fiber.NewError(fiber.StatusNotFound, "Invitation not found")
	case errors.Is(err, model.ErrTokenConsumed):
		return fiber.NewError(fiber.StatusGone, "This invitation has already been accepted")
	case errors.Is(err, model.ErrTokenExpired):
		return fiber.NewError(fiber.StatusGone, "This invitation has expired")
	case errors.Is(err, model.ErrDuplicateEmail):
		return fiber.NewError(fiber.StatusConflict, "A user with this email already exists")
	default:
		return fiber.ErrInternalServerError
	}

	if err := auth.GrantSession(c, member, u.config.SessionTimeout, u.config.Secret); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"success": true,
		"userId":  member.ID,
		"email":   member.Email,
		"role":    member.Role,
	})
}
