package constants

import "fmt"

const (
	RoleAdmin    = "admin"
	RoleDentist  = "dentist"
	RoleGuardian = "guardian"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess   = "Only administrators may access %s."
	ErrOnlyDentistsCanAccess = "Only dentists or administrators may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorDentist(feature string) string {
	return fmt.Sprintf(ErrOnlyDentistsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleDentist,
		RoleGuardian,
	}

	StaffRoles = []string{
		RoleAdmin,
		RoleDentist,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
