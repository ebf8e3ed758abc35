package webserver_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiish/swiish/internal/webserver/infrastructure"
	"github.com/swiish/swiish/internal/webserver/model"
)

func TestPasswordReset(t *testing.T) {
	db := testDB(t)
	smtpMock := &infrastructure.SMTPMock{}
	app := bootstrapApp(db, smtpMock)
	setupOrganisation(t, app, "Acme Corp", "owner@example.com", "secret-password")

	t.Run("Forgot password responds success whether or not the email exists", func(t *testing.T) {
		for _, email := range []string{"owner@example.com", "nobody@example.com"} {
			if email == "owner@example.com" {
				smtpMock.Wg.Add(1)
			}
			response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/forgot-password", fiber.Map{
				"email": email,
			}, ""))
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, response.StatusCode)
		}
		smtpMock.Wg.Wait()

		messages := smtpMock.Messages()
		require.Len(t, messages, 1, "only the existing address receives an email")
		assert.Equal(t, "owner@example.com", messages[0].Address)
	})

	t.Run("A new request discards earlier unused tokens", func(t *testing.T) {
		var before model.PasswordReset
		require.NoError(t, db.Where("used_at IS NULL").First(&before).Error)

		smtpMock.Wg.Add(1)
		response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/forgot-password", fiber.Map{
			"email": "owner@example.com",
		}, ""))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, response.StatusCode)
		smtpMock.Wg.Wait()

		var count int64
		require.NoError(t, db.Model(&model.PasswordReset{}).Where("token = ?", before.Token).Count(&count).Error)
		assert.Zero(t, count, "the earlier token is gone")
	})

	t.Run("Consuming the token rewrites the password exactly once", func(t *testing.T) {
		var reset model.PasswordReset
		require.NoError(t, db.Where("used_at IS NULL").First(&reset).Error)

		response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/reset-password", fiber.Map{
			"token":    reset.Token,
			"password": "brand-new-password",
		}, ""))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, response.StatusCode)

		login(t, app, "owner@example.com", "brand-new-password")

		response, err = app.Test(jsonRequest(t, http.MethodPost, "/api/auth/reset-password", fiber.Map{
			"token":    reset.Token,
			"password": "yet-another-password",
		}, ""))
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, response.StatusCode)

		var body struct {
			Error string `json:"error"`
		}
		decode(t, response, &body)
		assert.Equal(t, "This reset token has already been used", body.Error)
	})

	t.Run("Expired tokens are rejected", func(t *testing.T) {
		smtpMock.Wg.Add(1)
		response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/forgot-password", fiber.Map{
			"email": "owner@example.com",
		}, ""))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, response.StatusCode)
		smtpMock.Wg.Wait()

		var reset model.PasswordReset
		require.NoError(t, db.Where("used_at IS NULL").First(&reset).Error)
		require.NoError(t, db.Model(&reset).Update("expires_at", time.Now().UTC().Add(-time.Minute)).Error)

		response, err = app.Test(jsonRequest(t, http.MethodPost, "/api/auth/reset-password", fiber.Map{
			"token":    reset.Token,
			"password": "expired-password",
		}, ""))
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, response.StatusCode)

		var body struct {
			Error string `json:"error"`
		}
		decode(t, response, &body)
		assert.Equal(t, "Reset token has expired", body.Error)
	})

	t.Run("Unknown tokens are rejected without detail", func(t *testing.T) {
		response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/reset-password", fiber.Map{
			"token":    "0000000000000000000000000000000000000000000000000000000000000000",
			"password": "whatever-password",
		}, ""))
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, response.StatusCode)

		var body struct {
			Error string `json:"error"`
		}
		decode(t, response, &body)
		assert.Equal(t, "Invalid or expired reset token", body.Error)
	})
}
