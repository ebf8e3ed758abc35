package setup

import (
	"time"

	"github.com/swiish/swiish/internal/webserver/model"
)

type usersRepository interface {
	Total() (int64, error)
	Create(user *model.User) error
}

type organisationsRepository interface {
	Create(name, slug string) (*model.Organisation, error)
	UniqueSlug(name string) (string, error)
}

type settingsRepository interface {
	Seed(organisationID, name string) error
}

type Controller struct {
	users         usersRepository
	organisations organisationsRepository
	settings      settingsRepository
	config        Config
}

type Config struct {
	Secret            []byte
	SessionTimeout    time.Duration
	MinPasswordLength int
}

func NewController(users usersRepository, organisations organisationsRepository, settings settingsRepository, cfg Config) *Controller {
	return &Controller{
		users:         users,
		organisations: organisations,
		settings:      settings,
		config:        cfg,
	}
}
