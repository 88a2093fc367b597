package models

// CreatorRole is the label persisted in students.created_by
type CreatorRole string

const (
	CreatorAdmin      CreatorRole = "Admin"
	CreatorSuperAdmin CreatorRole = "SuperAdmin"
	CreatorUnknown    CreatorRole = "Unknown"
)

// Creator codes accepted from clients
const (
	CreatorCodeAdmin      = 1
	CreatorCodeSuperAdmin = 2
)

// CreatorRoleFromCode maps a client-supplied code onto one of the three labels.
// Unrecognized codes (zero, negative, large) are Unknown, not an error.
func CreatorRoleFromCode(code int) CreatorRole {
	switch code {
	case CreatorCodeAdmin:
		return CreatorAdmin
	case CreatorCodeSuperAdmin:
		return CreatorSuperAdmin
	default:
		return CreatorUnknown
	}
}

// Valid reports whether r is one of the persisted labels
func (r CreatorRole) Valid() bool {
	switch r {
	case CreatorAdmin, CreatorSuperAdmin, CreatorUnknown:
		return true
	}
	return false
}
