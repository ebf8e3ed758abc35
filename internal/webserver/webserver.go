package webserver

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	JwtSecret         []byte
	FQDN              string
	SessionTimeout    time.Duration
	MinPasswordLength int
}

// Sender sends an email to an address.
type Sender interface {
	Send(address, subject, body string) error
	From() string
}

type logRing interface {
	Add(format string, args ...any)
	Last(n int) []string
}

// New builds a new Fiber application and sets up the required routes.
func New(cfg Config, controllers Controllers, logs logRing) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var e *fiber.Error
			if errors.As(err, &e) {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			logs.Add("error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		},
	})

	app.Use(RequestLogger(logs))

	routes(app, cfg, controllers, logs)

	return app
}
