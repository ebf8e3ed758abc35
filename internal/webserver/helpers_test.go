package webserver_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/swiish/swiish/internal/logbuffer"
	"github.com/swiish/swiish/internal/webserver"
	"github.com/swiish/swiish/internal/webserver/controller/auth"
	"github.com/swiish/swiish/internal/webserver/infrastructure"
)

func bootstrapApp(db *gorm.DB, sender webserver.Sender) *fiber.App {
	cfg := webserver.Config{
		JwtSecret:         []byte("top-secret"),
		FQDN:              "http://localhost:3000",
		SessionTimeout:    time.Hour,
		MinPasswordLength: 8,
	}

	controllers := webserver.SetupControllers(cfg, db, sender)
	return webserver.New(cfg, controllers, logbuffer.New(100))
}

func jsonRequest(t *testing.T, method, url string, payload any, session string) *http.Request {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: session})
	}
	return req
}

func decode(t *testing.T, response *http.Response, target any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(response.Body).Decode(target))
}

func sessionCookie(response *http.Response) string {
	for _, cookie := range response.Cookies() {
		if cookie.Name == auth.SessionCookieName {
			return cookie.Value
		}
	}
	return ""
}

// setupOrganisation runs first-run setup and returns the owner's session.
func setupOrganisation(t *testing.T, app *fiber.App, orgName, email, password string) string {
	t.Helper()

	req := jsonRequest(t, http.MethodPost, "/api/setup", fiber.Map{
		"organisationName": orgName,
		"email":            email,
		"password":         password,
	}, "")
	response, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, response.StatusCode)
	session := sessionCookie(response)
	require.NotEmpty(t, session)
	return session
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	req := jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    email,
		"password": password,
	}, "")
	response, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, response.StatusCode)
	session := sessionCookie(response)
	require.NotEmpty(t, session)
	return session
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	return infrastructure.Connect("file::memory:")
}
