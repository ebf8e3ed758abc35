package card

import (
	"github.com/swiish/swiish/internal/webserver/model"
)

type cardsRepository interface {
	FindBySlugAndUser(slug, userID string) (*model.Card, error)
	FindByShortCode(code string) (*model.Card, error)
	FindFirstBySlug(slug string) (*model.Card, error)
	FindBySlugInOrganisation(slug, organisationID string) (*model.Card, error)
	Save(card *model.Card, mint func() (string, error)) error
	Delete(slug, userID string) error
	ListByUser(userID string) ([]model.Card, error)
	ListByOrganisation(organisationID string) ([]model.Card, error)
}

type usersRepository interface {
	FindByID(id string) (*model.User, error)
	ListByOrganisation(organisationID string) ([]model.User, error)
}

type settingsRepository interface {
	Load(organisationID string) (model.Settings, error)
}

type organisationsRepository interface {
	FindByID(id string) (*model.Organisation, error)
	FindBySlug(slug string) (*model.Organisation, error)
	EnsureSlug(org *model.Organisation) (string, error)
}

type codeGenerator interface {
	Issue() (string, error)
}

type Controller struct {
	cards         cardsRepository
	users         usersRepository
	settings      settingsRepository
	organisations organisationsRepository
	codes         codeGenerator
}

func NewController(cards cardsRepository, users usersRepository, settings settingsRepository, organisations organisationsRepository, codes codeGenerator) *Controller {
	return &Controller{
		cards:         cards,
		users:         users,
		settings:      settings,
		organisations: organisations,
		codes:         codes,
	}
}
