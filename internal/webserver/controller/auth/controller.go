package auth

import (
	"time"

	"github.com/swiish/swiish/internal/webserver/model"
)

type usersRepository interface {
	FindByEmail(email string) (*model.User, error)
	FindByID(id string) (*model.User, error)
	UpdatePassword(userID, hash string) error
}

type resetsRepository interface {
	Create(userID string, now time.Time) (*model.PasswordReset, error)
	Consume(token, newHash string, now time.Time) error
}

type verificationsRepository interface {
	Create(userID string, now time.Time) (*model.EmailVerification, error)
	Consume(token string, now time.Time) error
}

type recoveryEmail interface {
	Send(address, subject, body string) error
	From() string
}

type Controller struct {
	users         usersRepository
	resets        resetsRepository
	verifications verificationsRepository
	sender        recoveryEmail
	config        Config
}

type Config struct {
	Secret            []byte
	FQDN              string
	SessionTimeout    time.Duration
	MinPasswordLength int
}

func NewController(users usersRepository, resets resetsRepository, verifications verificationsRepository, sender recoveryEmail, cfg Config) *Controller {
	return &Controller{
		users:         users,
		resets:        resets,
		verifications: verifications,
		sender:        sender,
		config:        cfg,
	}
}
