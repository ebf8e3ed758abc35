package main

import "time"

type Config struct {
	Port              string        `env:"PORT" env-default:"3000"`
	DatabasePath      string        `env:"DATABASE_PATH" env-default:"swiish.db"`
	JwtSecret         string        `env:"JWT_SECRET" env-required:"true"`
	FQDN              string        `env:"APP_URL" env-default:"http://localhost:3000"`
	SessionTimeout    time.Duration `env:"SESSION_TIMEOUT" env-default:"24h"`
	MinPasswordLength int           `env:"MIN_PASSWORD_LENGTH" env-default:"8"`
	LogBufferSize     int           `env:"LOG_BUFFER_SIZE" env-default:"1000"`
	SmtpServer        string        `env:"SMTP_SERVER"`
	SmtpPort          int           `env:"SMTP_PORT" env-default:"587"`
	SmtpUser          string        `env:"SMTP_USER"`
	SmtpPassword      string        `env:"SMTP_PASSWORD"`
}
