package webserver_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiish/swiish/internal/webserver/infrastructure"
)

func TestSetup(t *testing.T) {
	db := testDB(t)
	app := bootstrapApp(db, &infrastructure.NoEmail{})

	t.Run("Status reports setup pending on a fresh database", func(t *testing.T) {
		response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/setup", nil, ""))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, response.StatusCode)

		var status struct {
			SetupComplete bool `json:"setupComplete"`
			UserCount     int  `json:"userCount"`
		}
		decode(t, response, &status)
		assert.False(t, status.SetupComplete)
		assert.Zero(t, status.UserCount)
	})

	t.Run("Initialize creates the organisation and signs in its owner", func(t *testing.T) {
		session := setupOrganisation(t, app, "Acme Corp", "owner@example.com", "secret-password")

		response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/auth/me", nil, session))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, response.StatusCode)

		var me struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		}
		decode(t, response, &me)
		assert.Equal(t, "owner@example.com", me.Email)
		assert.Equal(t, "owner", me.Role)
	})

	t.Run("Status reports setup complete afterwards", func(t *testing.T) {
		response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/setup", nil, ""))
		require.NoError(t, err)

		var status struct {
			SetupComplete bool `json:"setupComplete"`
		}
		decode(t, response, &status)
		assert.True(t, status.SetupComplete)
	})

	t.Run("A second setup attempt is refused", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/setup", fiber.Map{
			"organisationName": "Other Corp",
			"email":            "intruder@example.com",
			"password":         "secret-password",
		}, "")
		response, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, response.StatusCode)
	})
}

func TestSetupValidation(t *testing.T) {
	db := testDB(t)
	app := bootstrapApp(db, &infrastructure.NoEmail{})

	for name, payload := range map[string]fiber.Map{
		"missing fields": {"email": "owner@example.com"},
		"short password": {"organisationName": "Acme", "email": "owner@example.com", "password": "short"},
		"invalid email":  {"organisationName": "Acme", "email": "not-an-email", "password": "secret-password"},
	} {
		t.Run(name, func(t *testing.T) {
			response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/setup", payload, ""))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, response.StatusCode)
		})
	}
}
