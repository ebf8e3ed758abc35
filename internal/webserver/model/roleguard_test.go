package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fixedOwners(count int64) OwnerCounter {
	return func(string) (int64, error) {
		return count, nil
	}
}

func orgMember(orgID, role string) *User {
	return &User{ID: "target", OrganisationID: &orgID, Role: role}
}

func TestCanChangeRoleSelf(t *testing.T) {
	guard := RoleGuard{Owners: fixedOwners(1)}
	actor := Principal{UserID: "me", OrganisationID: "org", Role: RoleOwner}

	err := guard.CanChangeRole(actor, "me", orgMember("org", RoleOwner), RoleMember)
	assert.ErrorIs(t, err, ErrSelfModification,
		"self-modification is reported before the last-owner check")
}

func TestCanChangeRoleCrossOrganisation(t *testing.T) {
	guard := RoleGuard{Owners: fixedOwners(5)}
	actor := Principal{UserID: "me", OrganisationID: "org", Role: RoleOwner}

	err := guard.CanChangeRole(actor, "target", orgMember("other-org", RoleMember), RoleOwner)
	assert.ErrorIs(t, err, ErrNotFound)

	err = guard.CanChangeRole(actor, "target", nil, RoleOwner)
	assert.ErrorIs(t, err, ErrNotFound)

	detached := &User{ID: "target", Role: RoleMember}
	err = guard.CanChangeRole(actor, "target", detached, RoleOwner)
	assert.ErrorIs(t, err, ErrNotFound, "users without an organisation are invisible")
}

func TestCanChangeRoleLastOwner(t *testing.T) {
	actor := Principal{UserID: "me", OrganisationID: "org", Role: RoleOwner}

	guard := RoleGuard{Owners: fixedOwners(1)}
	err := guard.CanChangeRole(actor, "target", orgMember("org", RoleOwner), RoleMember)
	assert.ErrorIs(t, err, ErrLastOwner)

	guard = RoleGuard{Owners: fixedOwners(2)}
	err = guard.CanChangeRole(actor, "target", orgMember("org", RoleOwner), RoleMember)
	assert.NoError(t, err, "demotion is fine with another owner left")

	guard = RoleGuard{Owners: fixedOwners(1)}
	err = guard.CanChangeRole(actor, "target", orgMember("org", RoleOwner), RoleOwner)
	assert.NoError(t, err, "owner to owner is not a demotion")
}

func TestCanChangeRolePromotion(t *testing.T) {
	guard := RoleGuard{Owners: fixedOwners(1)}
	actor := Principal{UserID: "me", OrganisationID: "org", Role: RoleOwner}

	err := guard.CanChangeRole(actor, "target", orgMember("org", RoleMember), RoleOwner)
	assert.NoError(t, err)
}

func TestCanRemove(t *testing.T) {
	actor := Principal{UserID: "me", OrganisationID: "org", Role: RoleOwner}

	guard := RoleGuard{Owners: fixedOwners(1)}
	assert.ErrorIs(t, guard.CanRemove(actor, "me", orgMember("org", RoleOwner)), ErrSelfModification)
	assert.ErrorIs(t, guard.CanRemove(actor, "target", nil), ErrNotFound)
	assert.ErrorIs(t, guard.CanRemove(actor, "target", orgMember("org", RoleOwner)), ErrLastOwner)
	assert.NoError(t, guard.CanRemove(actor, "target", orgMember("org", RoleMember)))

	guard = RoleGuard{Owners: fixedOwners(2)}
	assert.NoError(t, guard.CanRemove(actor, "target", orgMember("org", RoleOwner)))
}

func TestCanChangeRoleLegacyAdmin(t *testing.T) {
	guard := RoleGuard{Owners: fixedOwners(2)}
	actor := Principal{Role: RoleOwner, LegacyAdmin: true, OrganisationID: "org"}

	err := guard.CanChangeRole(actor, "target", orgMember("org", RoleOwner), RoleMember)
	assert.NoError(t, err, "legacy sessions have no user id, so the self check never fires")
}
