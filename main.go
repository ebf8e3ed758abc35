package main

import (
	"fmt"
	"log"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/swiish/swiish/internal/logbuffer"
	"github.com/swiish/swiish/internal/webserver"
	"github.com/swiish/swiish/internal/webserver/infrastructure"
)

var version string = "unknown"

func main() {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Sprintf("Error parsing configuration from environment variables: %s", err))
	}

	db := infrastructure.Connect(cfg.DatabasePath)

	var sender webserver.Sender = &infrastructure.NoEmail{}
	if cfg.SmtpServer != "" && cfg.SmtpUser != "" && cfg.SmtpPassword != "" {
		sender = &infrastructure.SMTP{
			Server:   cfg.SmtpServer,
			Port:     cfg.SmtpPort,
			User:     cfg.SmtpUser,
			Password: cfg.SmtpPassword,
		}
	}

	webserverCfg := webserver.Config{
		JwtSecret:         []byte(cfg.JwtSecret),
		FQDN:              cfg.FQDN,
		SessionTimeout:    cfg.SessionTimeout,
		MinPasswordLength: cfg.MinPasswordLength,
	}

	logs := logbuffer.New(cfg.LogBufferSize)
	controllers := webserver.SetupControllers(webserverCfg, db, sender)
	app := webserver.New(webserverCfg, controllers, logs)

	fmt.Printf("Swiish version %s started listening on port %s\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
