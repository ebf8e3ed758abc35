package setting

import (
	"github.com/swiish/swiish/internal/webserver/model"
)

type settingsRepository interface {
	Load(organisationID string) (model.Settings, error)
	Upsert(organisationID, key, value string) error
	UpsertBool(organisationID, key string, value bool) error
	UpsertColors(organisationID string, colors []model.ThemeColor) error
}

type organisationsRepository interface {
	FindBySlug(slug string) (*model.Organisation, error)
}

type Controller struct {
	settings      settingsRepository
	organisations organisationsRepository
}

func NewController(settings settingsRepository, organisations organisationsRepository) *Controller {
	return &Controller{
		settings:      settings,
		organisations: organisations,
	}
}
