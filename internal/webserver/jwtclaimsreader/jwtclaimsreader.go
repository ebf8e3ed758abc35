package jwtclaimsreader

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/swiish/swiish/internal/webserver/model"
)

// Principal resolves the authenticated identity from the validated session
// token. Tokens minted before organisations existed carry only an admin
// flag; those sessions act as owners without a user or organisation
// reference.
func Principal(c *fiber.Ctx) (model.Principal, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return model.Principal{}, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.Principal{}, false
	}

	if userID, ok := claims["user_id"].(string); ok && userID != "" {
		principal := model.Principal{
			UserID: userID,
			Role:   model.RoleMember,
		}
		if role, ok := claims["role"].(string); ok && model.ValidRole(role) {
			principal.Role = role
		}
		if orgID, ok := claims["organisation_id"].(string); ok {
			principal.OrganisationID = orgID
		}
		return principal, true
	}

	if admin, ok := claims["admin"].(bool); ok && admin {
		return model.Principal{Role: model.RoleOwner, LegacyAdmin: true}, true
	}

	return model.Principal{}, false
}
