package webserver_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiish/swiish/internal/webserver/infrastructure"
	"github.com/swiish/swiish/internal/webserver/model"
)

func TestEmailVerification(t *testing.T) {
	db := testDB(t)
	smtpMock := &infrastructure.SMTPMock{}
	app := bootstrapApp(db, smtpMock)
	setupOrganisation(t, app, "Acme Corp", "owner@example.com", "secret-password")
	session := login(t, app, "owner@example.com", "secret-password")

	t.Run("Requesting verification emails a token", func(t *testing.T) {
		smtpMock.Wg.Add(1)
		response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/send-verification", nil, session))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, response.StatusCode)
		smtpMock.Wg.Wait()

		var verification model.EmailVerification
		require.NoError(t, db.First(&verification).Error)
		messages := smtpMock.Messages()
		require.Len(t, messages, 1)
		assert.Contains(t, messages[0].Body, verification.Token)
	})

	t.Run("A second request while one is active is refused", func(t *testing.T) {
		response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/send-verification", nil, session))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})

	t.Run("Consuming the token flags the user verified", func(t *testing.T) {
		var verification model.EmailVerification
		require.NoError(t, db.First(&verification).Error)

		response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/verify-email/"+verification.Token, nil, ""))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, response.StatusCode)

		var user model.User
		require.NoError(t, db.Where("email = ?", "owner@example.com").First(&user).Error)
		assert.True(t, user.EmailVerified)
	})

	t.Run("A consumed token cannot be used again", func(t *testing.T) {
		var verification model.EmailVerification
		require.NoError(t, db.First(&verification).Error)

		response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/verify-email/"+verification.Token, nil, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})

	t.Run("Requesting verification for an already verified user is refused", func(t *testing.T) {
		response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/send-verification", nil, session))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})
}

func TestEmailVerificationExpiry(t *testing.T) {
	db := testDB(t)
	smtpMock := &infrastructure.SMTPMock{}
	app := bootstrapApp(db, smtpMock)
	setupOrganisation(t, app, "Acme Corp", "owner@example.com", "secret-password")
	session := login(t, app, "owner@example.com", "secret-password")

	smtpMock.Wg.Add(1)
	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/send-verification", nil, session))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, response.StatusCode)
	smtpMock.Wg.Wait()

	var verification model.EmailVerification
	require.NoError(t, db.First(&verification).Error)
	require.NoError(t, db.Model(&verification).Update("expires_at", time.Now().UTC().Add(-time.Minute)).Error)

	t.Run("An expired token is rejected", func(t *testing.T) {
		response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/verify-email/"+verification.Token, nil, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})

	t.Run("An expired token no longer blocks a fresh request", func(t *testing.T) {
		smtpMock.Wg.Add(1)
		response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/send-verification", nil, session))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, response.StatusCode)
		smtpMock.Wg.Wait()
	})
}
