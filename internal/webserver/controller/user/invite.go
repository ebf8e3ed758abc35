package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/swiish/swiish/internal/webserver/jwtclaimsreader"
	"github.com/swiish/swiish/internal/webserver/model"
)

// Invite creates an invitation and emails its acceptance link. An address
// that already belongs to a user, or that already holds an active
// invitation, is refused.
func (u *Controller) Invite(c *fiber.Ctx) error {
	principal, ok := jwtclaimsreader.Principal(c)
	if !ok || !principal.HasOrganisation() {
		return fiber.ErrUnauthorized
	}

	var request struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if request.Role == "" {
		request.Role = model.RoleMember
	}
	if !model.ValidRole(request.Role) {
		return fiber.NewError(fiber.StatusBadRequest, "Role must be either \"owner\" or \"member\"")
	}
	if _, err := mail.ParseAddress(request.Email); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Incorrect email address")
	}

	email := strings.ToLower(request.Email)
	existing, err := u.users.FindByEmail(email)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if existing != nil {
		return fiber.NewError(fiber.StatusConflict, "A user with this email already exists")
	}

	now := time.Now().UTC()
	active, err := u.invitations.HasActive(principal.OrganisationID, email, now)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if active {
		return fiber.NewError(fiber.StatusConflict, "An invitation for this email is already pending")
	}

	invitation, err := u.invitations.Create(principal.OrganisationID, email, request.Role, principal.UserID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	link := fmt.Sprintf("%s/invite/%s", u.config.FQDN, invitation.Token)
	go u.sender.Send(
		email,
		"You have been invited",
		fmt.Sprintf("<p>You have been invited to join an organisation.</p><p><a href=\"%s\">Accept the invitation</a></p><p>The link expires in seven days.</p>", link),
	)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":      true,
		"invitationId": invitation.ID,
		"expiresAt":    invitation.ExpiresAt,
	})
}
