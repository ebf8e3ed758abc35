package model

// Principal is the authenticated identity resolved once from the session
// token. Legacy tokens carry no user reference, only an admin flag, and are
// treated as owners without a user or organisation.
type Principal struct {
	UserID         string
	OrganisationID string
	Role           string
	LegacyAdmin    bool
}

func (p Principal) IsOwner() bool {
	return p.Role == RoleOwner
}

// HasUser reports whether the principal references a stored user.
func (p Principal) HasUser() bool {
	return p.UserID != ""
}

// HasOrganisation reports whether the principal belongs to an organisation.
func (p Principal) HasOrganisation() bool {
	return p.OrganisationID != ""
}
