package user

import (
	"time"

	"github.com/swiish/swiish/internal/webserver/model"
)

type usersRepository interface {
	ListByOrganisation(organisationID string) ([]model.User, error)
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
	ChangeRole(actor model.Principal, targetID, newRole string) error
	Remove(actor model.Principal, targetID string) error
}

type invitationsRepository interface {
	Create(organisationID, email, role, invitedBy string) (*model.Invitation, error)
	FindByToken(token string) (*model.Invitation, error)
	HasActive(organisationID, email string, now time.Time) (bool, error)
	Accept(token, passwordHash string, now time.Time) (*model.User, error)
}

type organisationsRepository interface {
	FindByID(id string) (*model.Organisation, error)
}

type invitationEmail interface {
	Send(address, subject, body string) error
	From() string
}

type Controller struct {
	users         usersRepository
	invitations   invitationsRepository
	organisations organisationsRepository
	sender        invitationEmail
	config        Config
}

type Config struct {
	Secret            []byte
	FQDN              string
	SessionTimeout    time.Duration
	MinPasswordLength int
}

func NewController(users usersRepository, invitations invitationsRepository, organisations organisationsRepository, sender invitationEmail, cfg Config) *Controller {
	return &Controller{
		users:         users,
		invitations:   invitations,
		organisations: organisations,
		sender:        sender,
		config:        cfg,
	}
}
