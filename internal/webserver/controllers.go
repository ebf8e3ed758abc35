package webserver

import (
	"gorm.io/gorm"

	"github.com/swiish/swiish/internal/shortcode"
	"github.com/swiish/swiish/internal/webserver/controller/auth"
	"github.com/swiish/swiish/internal/webserver/controller/card"
	"github.com/swiish/swiish/internal/webserver/controller/setting"
	"github.com/swiish/swiish/internal/webserver/controller/setup"
	"github.com/swiish/swiish/internal/webserver/controller/user"
	"github.com/swiish/swiish/internal/webserver/model"
)

type Controllers struct {
	Setup    *setup.Controller
	Auth     *auth.Controller
	Users    *user.Controller
	Cards    *card.Controller
	Settings *setting.Controller
}

func SetupControllers(cfg Config, db *gorm.DB, sender Sender) Controllers {
	usersRepository := model.UserRepository{DB: db}
	organisationsRepository := model.OrganisationRepository{DB: db}
	settingsRepository := model.SettingRepository{DB: db}
	cardsRepository := model.CardRepository{DB: db}
	invitationsRepository := model.InvitationRepository{DB: db}
	resetsRepository := model.PasswordResetRepository{DB: db}
	verificationsRepository := model.EmailVerificationRepository{DB: db}

	codes := shortcode.NewGenerator(cardsRepository.ShortCodeExists)

	authCfg := auth.Config{
		Secret:            cfg.JwtSecret,
		FQDN:              cfg.FQDN,
		SessionTimeout:    cfg.SessionTimeout,
		MinPasswordLength: cfg.MinPasswordLength,
	}

	return Controllers{
		Setup: setup.NewController(usersRepository, organisationsRepository, settingsRepository, setup.Config{
			Secret:            cfg.JwtSecret,
			SessionTimeout:    cfg.SessionTimeout,
			MinPasswordLength: cfg.MinPasswordLength,
		}),
		Auth: auth.NewController(usersRepository, resetsRepository, verificationsRepository, sender, authCfg),
		Users: user.NewController(usersRepository, invitationsRepository, organisationsRepository, sender, user.Config{
			Secret:            cfg.JwtSecret,
			FQDN:              cfg.FQDN,
			SessionTimeout:    cfg.SessionTimeout,
			MinPasswordLength: cfg.MinPasswordLength,
		}),
		Cards:    card.NewController(cardsRepository, usersRepository, settingsRepository, organisationsRepository, codes),
		Settings: setting.NewController(settingsRepository, organisationsRepository),
	}
}
