package model

// OwnerCounter reports how many owners an organisation currently has.
type OwnerCounter func(organisationID string) (int64, error)

// RoleGuard enforces the membership management rules. Checks run in a fixed
// order: self-modification first, then target visibility, then last-owner
// protection.
type RoleGuard struct {
	Owners OwnerCounter
}

// CanChangeRole validates a role change of target by actor. The target must
// belong to the actor's organisation; users outside it are reported as not
// found rather than forbidden.
func (g RoleGuard) CanChangeRole(actor Principal, targetID string, target *User, newRole string) error {
	if actor.HasUser() && actor.UserID == targetID {
		return ErrSelfModification
	}
	if target == nil || !sameOrganisation(actor, target) {
		return ErrNotFound
	}
	if target.Role == RoleOwner && newRole != RoleOwner {
		count, err := g.Owners(actor.OrganisationID)
		if err != nil {
			return err
		}
		if count <= 1 {
			return ErrLastOwner
		}
	}
	return nil
}

// CanRemove validates removing target from the organisation.
func (g RoleGuard) CanRemove(actor Principal, targetID string, target *User) error {
	if actor.HasUser() && actor.UserID == targetID {
		return ErrSelfModification
	}
	if target == nil || !sameOrganisation(actor, target) {
		return ErrNotFound
	}
	if target.Role == RoleOwner {
		count, err := g.Owners(actor.OrganisationID)
		if err != nil {
			return err
		}
		if count <= 1 {
			return ErrLastOwner
		}
	}
	return nil
}

func sameOrganisation(actor Principal, target *User) bool {
	return target.OrganisationID != nil && *target.OrganisationID == actor.OrganisationID
}
